package infra

import (
	"fmt"

	"aroundtown/internal/models/db_models"
)

// AutoMigrate creates the categories and groups tables when they are missing.
// Production schemas are managed elsewhere; this exists for local sqlite files.
func (p *Provider) AutoMigrate() error {
	if err := p.db.AutoMigrate(&db_models.Category{}, &db_models.Group{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
