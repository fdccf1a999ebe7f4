// Package seed loads a small demo dataset for local development.
package seed

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/tmarques/wildfire_tracking_system/internal/models"
	"github.com/tmarques/wildfire_tracking_system/internal/service"
)

// Run populates the store with demo regions, hotspots and combat actions.
// It is a no-op when regions already exist, so restarting the service does
// not duplicate the dataset.
func Run(ctx context.Context, regions service.RegionService, hotspots service.HotspotService, actions service.ActionService, log *logrus.Logger) error {
	existing, err := regions.List(ctx)
	if err != nil {
		return fmt.Errorf("seed: could not check existing regions: %w", err)
	}
	if len(existing) > 0 {
		log.Info("Demo data already present, skipping seed")
		return nil
	}

	log.Info("Seeding demo data")

	amazonia, err := regions.Register(ctx, &models.Region{
		Name:        "Amazônia Legal",
		Type:        "rainforest",
		AreaM2:      5.0e12,
		Description: "Federal monitoring perimeter covering the Legal Amazon",
	})
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	cerrado, err := regions.Register(ctx, &models.Region{
		Name:        "Cerrado Central",
		Type:        "savanna",
		AreaM2:      2.5e11,
		Description: "Central savanna belt with pronounced dry season",
	})
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	pantanal, err := regions.Register(ctx, &models.Region{
		Name:        "Pantanal",
		Type:        "wetland",
		AreaM2:      1.5e11,
		Description: "Seasonal wetland, critical during drought years",
	})
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	intensity := 0.85
	area := 120000.0
	burning, err := hotspots.RegisterDetailed(ctx, -9.2, -56.1, &intensity, &area, "Large front advancing on secondary forest", &amazonia.ID)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	lowIntensity := 0.3
	smolder, err := hotspots.RegisterDetailed(ctx, -15.6, -47.9, &lowIntensity, nil, "Smoldering pasture edge", &cerrado.ID)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	if _, err := hotspots.Register(ctx, -17.7, -57.4, &pantanal.ID); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if _, err := hotspots.Register(ctx, -3.1, -60.0, nil); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	if _, err := actions.StartGroundCombat(ctx, burning.ID, "Two brigades holding the southern flank", "Corpo de Bombeiros"); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if _, err := actions.StartMonitoring(ctx, smolder.ID, "Satellite revisit every 6h", "CENSIPAM"); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	log.Info("Demo data seeded")
	return nil
}
