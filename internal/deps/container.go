package deps

import (
	"github.com/asolis/contactbook/internal/logger"
	"github.com/asolis/contactbook/internal/sanitizer"
	"gorm.io/gorm"
)

// Container holds the shared dependencies handed to each module's
// constructors. It is plain wiring, not a service locator.
type Container struct {
	DB        *gorm.DB
	Logger    logger.Logger
	Sanitizer sanitizer.HTMLStripperer
}

func NewContainer(db *gorm.DB, log logger.Logger, strip sanitizer.HTMLStripperer) *Container {
	return &Container{
		DB:        db,
		Logger:    log,
		Sanitizer: strip,
	}
}
