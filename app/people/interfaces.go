package people

import (
	"context"

	"github.com/asolis/contactbook/models"
	"github.com/google/uuid"
)

// Repository defines the interface for person data access. All reads
// resolve the Country association.
type Repository interface {
	AddPerson(ctx context.Context, person *models.Person) error
	GetPeople(ctx context.Context) ([]models.Person, error)
	GetPersonByID(ctx context.Context, id uuid.UUID) (*models.Person, error)
	GetFilteredPeople(ctx context.Context, pred func(*models.Person) bool) ([]models.Person, error)
	DeletePersonByID(ctx context.Context, id uuid.UUID) (bool, error)
	UpdatePerson(ctx context.Context, existing, incoming *models.Person) (*models.Person, error)
}

// The service surface is split per concern; Service composes them for
// callers that want the whole thing.

type Adder interface {
	AddPerson(ctx context.Context, req *PersonAddRequest) (*PersonResponse, error)
}

type Getter interface {
	GetPeople(ctx context.Context) ([]PersonResponse, error)
	GetPersonByID(ctx context.Context, id uuid.UUID) (*PersonResponse, error)
	GetFilteredPeople(ctx context.Context, searchBy, query string) ([]PersonResponse, error)
}

type Updater interface {
	UpdatePerson(ctx context.Context, req *PersonUpdateRequest) (*PersonResponse, error)
}

type Deleter interface {
	DeletePerson(ctx context.Context, id uuid.UUID) (bool, error)
}

type Sorter interface {
	GetSortedPeople(people []PersonResponse, sortBy string, order SortOrder) []PersonResponse
}

// Service defines the interface for person business logic
type Service interface {
	Adder
	Getter
	Updater
	Deleter
	Sorter
}
