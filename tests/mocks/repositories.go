package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/asolis/contactbook/models"
)

// MockCountryRepository is a testify mock of the countries.Repository
// interface.
type MockCountryRepository struct {
	mock.Mock
}

func (m *MockCountryRepository) GetAll(ctx context.Context) ([]models.Country, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Country), args.Error(1)
}

func (m *MockCountryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Country, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Country), args.Error(1)
}

func (m *MockCountryRepository) GetByName(ctx context.Context, name string) (*models.Country, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Country), args.Error(1)
}

func (m *MockCountryRepository) Create(ctx context.Context, country *models.Country) error {
	args := m.Called(ctx, country)
	return args.Error(0)
}

// MockPeopleRepository is a testify mock of the people.Repository
// interface.
type MockPeopleRepository struct {
	mock.Mock
}

func (m *MockPeopleRepository) AddPerson(ctx context.Context, person *models.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *MockPeopleRepository) GetPeople(ctx context.Context) ([]models.Person, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Person), args.Error(1)
}

func (m *MockPeopleRepository) GetPersonByID(ctx context.Context, id uuid.UUID) (*models.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Person), args.Error(1)
}

func (m *MockPeopleRepository) GetFilteredPeople(ctx context.Context, pred func(*models.Person) bool) ([]models.Person, error) {
	args := m.Called(ctx, pred)
	return args.Get(0).([]models.Person), args.Error(1)
}

func (m *MockPeopleRepository) DeletePersonByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPeopleRepository) UpdatePerson(ctx context.Context, existing, incoming *models.Person) (*models.Person, error) {
	args := m.Called(ctx, existing, incoming)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Person), args.Error(1)
}
