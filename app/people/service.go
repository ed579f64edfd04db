package people

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/asolis/contactbook/internal/logger"
	"github.com/asolis/contactbook/internal/sanitizer"
	"github.com/asolis/contactbook/internal/validator"
	"github.com/asolis/contactbook/models"
)

// service implements the Service interface
type service struct {
	repo  Repository
	log   logger.Logger
	strip sanitizer.HTMLStripperer
}

// NewService creates a new person service
func NewService(repo Repository, log logger.Logger, strip sanitizer.HTMLStripperer) Service {
	return &service{
		repo:  repo,
		log:   log,
		strip: strip,
	}
}

// AddPerson validates and persists a new person with a fresh identifier.
func (s *service) AddPerson(ctx context.Context, req *PersonAddRequest) (*PersonResponse, error) {
	if req == nil {
		return nil, models.ErrNilPersonRequest
	}

	req.Name = s.strip.StripHTML(req.Name)
	req.Address = s.strip.StripHTML(req.Address)

	v := validator.New()
	if !req.Validate(v) {
		return nil, models.NewValidationError(v.Errors)
	}

	person := req.ToPerson()
	person.ID = uuid.New()

	if err := s.repo.AddPerson(ctx, person); err != nil {
		return nil, err
	}

	s.log.Info("person added", map[string]interface{}{"id": person.ID.String()})
	return ToPersonResponse(person), nil
}

// GetPeople returns every person.
func (s *service) GetPeople(ctx context.Context) ([]PersonResponse, error) {
	persons, err := s.repo.GetPeople(ctx)
	if err != nil {
		return nil, err
	}
	return ToPersonResponseList(persons), nil
}

// GetPersonByID returns a person or nil when the id is zero or unmatched.
func (s *service) GetPersonByID(ctx context.Context, id uuid.UUID) (*PersonResponse, error) {
	if id == uuid.Nil {
		return nil, nil
	}

	person, err := s.repo.GetPersonByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ToPersonResponse(person), nil
}

// GetFilteredPeople returns every person whose searchBy field matches
// query. An unrecognized field or empty query falls back to the full
// list.
func (s *service) GetFilteredPeople(ctx context.Context, searchBy, query string) ([]PersonResponse, error) {
	if query == "" {
		return s.GetPeople(ctx)
	}

	pred := searchPredicate(searchBy, query)
	if pred == nil {
		return s.GetPeople(ctx)
	}

	persons, err := s.repo.GetFilteredPeople(ctx, pred)
	if err != nil {
		return nil, err
	}

	s.log.Info("people filtered", map[string]interface{}{
		"search_by": searchBy,
		"matches":   len(persons),
	})
	return ToPersonResponseList(persons), nil
}

// GetSortedPeople reorders an already-fetched list; see SortPeople.
func (s *service) GetSortedPeople(people []PersonResponse, sortBy string, order SortOrder) []PersonResponse {
	return SortPeople(people, sortBy, order)
}

// UpdatePerson validates the request and persists it through the
// repository's merge policy.
func (s *service) UpdatePerson(ctx context.Context, req *PersonUpdateRequest) (*PersonResponse, error) {
	if req == nil {
		return nil, models.ErrNilPersonRequest
	}
	if req.ID == uuid.Nil {
		return nil, models.ErrInvalidPersonID
	}

	req.Name = s.strip.StripHTML(req.Name)
	req.Address = s.strip.StripHTML(req.Address)

	v := validator.New()
	if !req.Validate(v) {
		return nil, models.NewValidationError(v.Errors)
	}

	existing, err := s.repo.GetPersonByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrPersonNotFound
		}
		return nil, err
	}

	updated, err := s.repo.UpdatePerson(ctx, existing, req.ToPerson())
	if err != nil {
		return nil, err
	}

	s.log.Info("person updated", map[string]interface{}{"id": req.ID.String()})
	return ToPersonResponse(updated), nil
}

// DeletePerson removes a person by id. A zero id is a no-op false, not an
// error.
func (s *service) DeletePerson(ctx context.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, nil
	}

	deleted, err := s.repo.DeletePersonByID(ctx, id)
	if err != nil {
		return false, err
	}

	if deleted {
		s.log.Info("person deleted", map[string]interface{}{"id": id.String()})
	}
	return deleted, nil
}
