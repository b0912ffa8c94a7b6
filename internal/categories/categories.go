// Package categories provides read access to the spending categories.
package categories

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spendwise-app/backend/internal/i18n"
	"github.com/spendwise-app/backend/internal/models"
	"gorm.io/gorm"
)

// Directory looks up categories. Categories are seeded externally, the
// directory never writes.
type Directory struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Directory {
	return &Directory{db: db}
}

// List returns all categories ordered by their English name.
//
// When the database cannot be read, the error is logged and an empty
// list is returned. Callers must treat an empty list as "nothing loaded".
func (d *Directory) List(ctx context.Context) []models.Category {
	var categories []models.Category

	err := d.db.WithContext(ctx).Order("name_en ASC").Find(&categories).Error
	if err != nil {
		log.Error().Err(err).Msg("listing categories failed")
		return []models.Category{}
	}

	return categories
}

// Get returns the category with the given ID.
func (d *Directory) Get(ctx context.Context, id uuid.UUID) (models.Category, error) {
	var category models.Category

	err := d.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		return models.Category{}, err
	}

	return category, nil
}

// Names maps category IDs to their display name in the locale.
func Names(categories []models.Category, locale i18n.Locale) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name(locale)
	}

	return names
}
