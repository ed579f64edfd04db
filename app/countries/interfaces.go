package countries

import (
	"context"

	"github.com/asolis/contactbook/models"
	"github.com/google/uuid"
)

// Repository defines the interface for country data access
type Repository interface {
	GetAll(ctx context.Context) ([]models.Country, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Country, error)
	GetByName(ctx context.Context, name string) (*models.Country, error)
	Create(ctx context.Context, country *models.Country) error
}

// Service defines the interface for country business logic
type Service interface {
	AddCountry(ctx context.Context, req *CountryAddRequest) (*CountryResponse, error)
	GetCountries(ctx context.Context) ([]CountryResponse, error)
	GetCountryByID(ctx context.Context, id uuid.UUID) (*CountryResponse, error)
	ImportCountries(ctx context.Context, names []string) (int, error)
}
