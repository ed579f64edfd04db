package countries

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/asolis/contactbook/internal/cache"
	"github.com/asolis/contactbook/internal/logger"
	"github.com/asolis/contactbook/models"
)

const listCacheKey = "countries:all"

// Config carries the country-name uniqueness policy and cache tuning.
// The defaults (no trim, case-sensitive) match the store's unique index.
type Config struct {
	TrimNames       bool
	CaseInsensitive bool
	CacheTTL        time.Duration
}

// service implements the Service interface
type service struct {
	repo  Repository
	cache cache.Cache[[]models.Country]
	log   logger.Logger
	cfg   Config
}

// NewService creates a new country service
func NewService(repo Repository, c cache.Cache[[]models.Country], log logger.Logger, cfg Config) Service {
	return &service{
		repo:  repo,
		cache: c,
		log:   log,
		cfg:   cfg,
	}
}

func (s *service) normalize(name string) string {
	if s.cfg.TrimNames {
		return strings.TrimSpace(name)
	}
	return name
}

// AddCountry creates a new country with a fresh identifier. The duplicate
// pre-check gives the friendly error path; the store's unique index closes
// the remaining check-then-insert race.
func (s *service) AddCountry(ctx context.Context, req *CountryAddRequest) (*CountryResponse, error) {
	if req == nil {
		return nil, models.ErrNilCountryRequest
	}
	if req.Name == nil {
		return nil, models.ErrInvalidCountryName
	}

	name := s.normalize(*req.Name)

	country := &models.Country{ID: uuid.New(), Name: name}
	if err := country.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByName(ctx, name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrDuplicateCountryName
	}

	if err := s.repo.Create(ctx, country); err != nil {
		return nil, err
	}

	if err := s.cache.Delete(ctx, listCacheKey); err != nil {
		s.log.Error(err, map[string]interface{}{"key": listCacheKey})
	}

	return ToCountryResponse(country), nil
}

// GetCountries returns all countries through the list cache.
func (s *service) GetCountries(ctx context.Context) ([]CountryResponse, error) {
	if cached, err := s.cache.Get(ctx, listCacheKey); err == nil {
		return ToCountryResponseList(cached), nil
	}

	countries, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, listCacheKey, countries, s.cfg.CacheTTL); err != nil {
		s.log.Error(err, map[string]interface{}{"key": listCacheKey})
	}

	return ToCountryResponseList(countries), nil
}

// GetCountryByID returns the country or nil when the id is absent or does
// not match; a miss on a read path is a value, not an error.
func (s *service) GetCountryByID(ctx context.Context, id uuid.UUID) (*CountryResponse, error) {
	if id == uuid.Nil {
		return nil, nil
	}

	country, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ToCountryResponse(country), nil
}

// ImportCountries adds every non-blank, non-duplicate name from an
// externally parsed sheet. A failing row is logged and skipped; the batch
// always runs to completion. Returns the number of rows added.
func (s *service) ImportCountries(ctx context.Context, names []string) (int, error) {
	added := 0
	for _, raw := range names {
		name := raw
		if strings.TrimSpace(name) == "" {
			continue
		}

		if _, err := s.AddCountry(ctx, &CountryAddRequest{Name: &name}); err != nil {
			s.log.Debug("skipping country import row", map[string]interface{}{
				"name":  name,
				"error": err.Error(),
			})
			continue
		}
		added++
	}

	s.log.Info("countries imported", map[string]interface{}{"added": added, "rows": len(names)})
	return added, nil
}
