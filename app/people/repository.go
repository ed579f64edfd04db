package people

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/asolis/contactbook/models"
)

// repository implements the Repository interface using GORM
type repository struct {
	db    *gorm.DB
	merge models.MergeStrategy
}

// NewRepository creates a new person repository. The merge strategy
// governs how UpdatePerson combines the incoming entity with the stored
// one.
func NewRepository(db *gorm.DB, merge models.MergeStrategy) Repository {
	return &repository{
		db:    db,
		merge: merge,
	}
}

// AddPerson persists a new person. The identifier is assigned by the
// caller.
func (r *repository) AddPerson(ctx context.Context, person *models.Person) error {
	return r.db.WithContext(ctx).Create(person).Error
}

// GetPeople returns every person with its country resolved.
func (r *repository) GetPeople(ctx context.Context) ([]models.Person, error) {
	var persons []models.Person
	err := r.db.WithContext(ctx).Preload("Country").Find(&persons).Error
	return persons, err
}

// GetPersonByID returns a person by ID with its country resolved.
func (r *repository) GetPersonByID(ctx context.Context, id uuid.UUID) (*models.Person, error) {
	var person models.Person
	err := r.db.WithContext(ctx).Preload("Country").Where("id = ?", id).First(&person).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

// GetFilteredPeople returns every person satisfying pred. Rows are loaded
// with their association and reduced here; GORM cannot translate an
// arbitrary Go closure into SQL.
func (r *repository) GetFilteredPeople(ctx context.Context, pred func(*models.Person) bool) ([]models.Person, error) {
	persons, err := r.GetPeople(ctx)
	if err != nil {
		return nil, err
	}

	matching := make([]models.Person, 0, len(persons))
	for i := range persons {
		if pred(&persons[i]) {
			matching = append(matching, persons[i])
		}
	}
	return matching, nil
}

// DeletePersonByID removes all rows matching id and reports whether
// anything was removed.
func (r *repository) DeletePersonByID(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Person{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// UpdatePerson merges incoming into existing per the configured strategy,
// persists the result and returns it with the country resolved.
func (r *repository) UpdatePerson(ctx context.Context, existing, incoming *models.Person) (*models.Person, error) {
	merged, err := r.merge.Merge(existing, incoming)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Save(merged).Error; err != nil {
		return nil, err
	}

	return r.GetPersonByID(ctx, merged.ID)
}
