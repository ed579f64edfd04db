package countries

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/asolis/contactbook/models"
)

// repository implements the Repository interface using GORM
type repository struct {
	db              *gorm.DB
	caseInsensitive bool
}

// NewRepository creates a new country repository. When caseInsensitive is
// set, name lookups compare case-folded values.
func NewRepository(db *gorm.DB, caseInsensitive bool) Repository {
	return &repository{
		db:              db,
		caseInsensitive: caseInsensitive,
	}
}

// GetAll returns all countries
func (r *repository) GetAll(ctx context.Context) ([]models.Country, error) {
	var countries []models.Country
	err := r.db.WithContext(ctx).Find(&countries).Error
	return countries, err
}

// GetByID returns a country by ID
func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Country, error) {
	var country models.Country
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&country).Error
	if err != nil {
		return nil, err
	}
	return &country, nil
}

// GetByName returns a country by exact name, or case-folded name under the
// case-insensitive policy.
func (r *repository) GetByName(ctx context.Context, name string) (*models.Country, error) {
	var country models.Country
	q := r.db.WithContext(ctx)
	if r.caseInsensitive {
		q = q.Where("LOWER(name) = LOWER(?)", name)
	} else {
		q = q.Where("name = ?", name)
	}
	if err := q.First(&country).Error; err != nil {
		return nil, err
	}
	return &country, nil
}

// Create persists a new country. The unique index on name is the final
// arbiter of uniqueness; a violation surfaces as ErrDuplicateCountryName
// so concurrent duplicate inserts cannot both succeed.
func (r *repository) Create(ctx context.Context, country *models.Country) error {
	err := r.db.WithContext(ctx).Create(country).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.ErrDuplicateCountryName
	}
	return err
}
