package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Country is reference data a Person may point at. Rows are written once
// through the adder/import paths; there is no update or delete operation.
type Country struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(50);uniqueIndex:idx_countries_name" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	People []Person `gorm:"foreignKey:CountryID" json:"-"`
}

// TableName specifies the table name for Country model
func (*Country) TableName() string {
	return "countries"
}

// BeforeCreate sets up the model before creation
func (c *Country) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Validate performs validation on the country model
func (c *Country) Validate() error {
	if c.Name == "" {
		return ErrInvalidCountryName
	}
	return nil
}
