package people

import (
	"github.com/asolis/contactbook/internal/deps"
	"github.com/asolis/contactbook/models"
)

// Init wires the module from the shared dependency bag.
func Init(container *deps.Container, merge models.MergeStrategy) Service {
	repo := NewRepository(container.DB, merge)
	return NewService(repo, container.Logger, container.Sanitizer)
}
