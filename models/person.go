package models

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Person is a contact record. Every attribute except the identifier is
// optional at the store level; the service layer enforces the required
// fields on its write paths. TaxID carries a store-level CHECK constraint
// (exactly 8 characters) that is deliberately not pre-validated here.
type Person struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name                string     `gorm:"type:varchar(40)" json:"name"`
	Email               string     `gorm:"type:varchar(40)" json:"email"`
	DateOfBirth         *time.Time `json:"date_of_birth"`
	Gender              string     `gorm:"type:varchar(10)" json:"gender"`
	CountryID           *uuid.UUID `gorm:"type:uuid;index:idx_people_country_id" json:"country_id"`
	Address             string     `gorm:"type:varchar(200)" json:"address"`
	ReceivesNewsletters bool       `json:"receives_newsletters"`
	TaxID               *string    `gorm:"type:varchar(8)" json:"tax_id"`

	// Associations
	Country *Country `gorm:"foreignKey:CountryID" json:"country,omitempty"`
}

// TableName specifies the table name for Person model
func (*Person) TableName() string {
	return "people"
}

// BeforeCreate sets up the model before creation
func (p *Person) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Age returns whole years lived as floor((now-dob)/365.25 days), or nil
// when the date of birth is not set.
func (p *Person) Age() *float64 {
	return p.AgeAt(time.Now())
}

// AgeAt computes the age relative to a fixed instant. Tests use this to
// pin "now".
func (p *Person) AgeAt(now time.Time) *float64 {
	if p.DateOfBirth == nil {
		return nil
	}
	age := math.Floor(now.Sub(*p.DateOfBirth).Hours() / 24 / 365.25)
	return &age
}

// CountryName returns the name of the preloaded country, or "" when the
// person has no country or the association was not resolved.
func (p *Person) CountryName() string {
	if p.Country == nil {
		return ""
	}
	return p.Country.Name
}
