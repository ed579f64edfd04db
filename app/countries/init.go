package countries

import (
	"github.com/asolis/contactbook/internal/cache"
	"github.com/asolis/contactbook/internal/deps"
	"github.com/asolis/contactbook/models"
)

// Init wires the module from the shared dependency bag.
func Init(container *deps.Container, listCache cache.Cache[[]models.Country], cfg Config) Service {
	repo := NewRepository(container.DB, cfg.CaseInsensitive)
	return NewService(repo, listCache, container.Logger, cfg)
}
