package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tmarques/wildfire_tracking_system/internal/models"
	"github.com/tmarques/wildfire_tracking_system/internal/service"
	"github.com/tmarques/wildfire_tracking_system/internal/service/mocks"
	"github.com/tmarques/wildfire_tracking_system/internal/webhook"
	webhookmocks "github.com/tmarques/wildfire_tracking_system/internal/webhook/mocks"
)

type regionServiceMocks struct {
	repo        *mocks.MockRegionRepository
	hotspotRepo *mocks.MockHotspotRepository
	actionRepo  *mocks.MockActionRepository
	publisher   *webhookmocks.MockAlertPublisher
}

func newRegionService(t *testing.T) (service.RegionService, regionServiceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := regionServiceMocks{
		repo:        mocks.NewMockRegionRepository(ctrl),
		hotspotRepo: mocks.NewMockHotspotRepository(ctrl),
		actionRepo:  mocks.NewMockActionRepository(ctrl),
		publisher:   webhookmocks.NewMockAlertPublisher(ctrl),
	}
	svc := service.NewRegionService(m.repo, m.hotspotRepo, m.actionRepo, passthroughTx(ctrl), testLogger(), m.publisher)
	return svc, m
}

func TestRegionService_Register_DefaultsRiskLevel(t *testing.T) {
	svc, m := newRegionService(t)
	ctx := context.Background()

	m.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, r *models.Region) error {
			r.ID = uuid.New()
			return nil
		},
	)

	region, err := svc.Register(ctx, &models.Region{
		Name:   "Cerrado Central",
		Type:   "savanna",
		AreaM2: 2.5e11,
	})
	require.NoError(t, err)
	assert.Equal(t, models.MinRiskLevel, region.RiskLevel)
	assert.NotEqual(t, uuid.Nil, region.ID)
}

func TestRegionService_Register_RiskLevelOutOfRange(t *testing.T) {
	for _, level := range []int{-1, 6, 100} {
		svc, _ := newRegionService(t)

		_, err := svc.Register(context.Background(), &models.Region{Name: "Pantanal", RiskLevel: level})
		assert.Error(t, err)
	}
}

func TestRegionService_Update_DoesNotTouchRiskLevel(t *testing.T) {
	svc, m := newRegionService(t)
	ctx := context.Background()
	id := uuid.New()
	stored := &models.Region{ID: id, Name: "old name", Type: "forest", RiskLevel: 4}

	m.repo.EXPECT().GetByID(ctx, id).Return(stored, nil)
	m.repo.EXPECT().Update(ctx, stored).Return(nil)

	region, err := svc.Update(ctx, id, service.RegionUpdate{
		Name:        "Amazônia Legal",
		Type:        "rainforest",
		AreaM2:      5.0e12,
		Description: "federal monitoring perimeter",
	})
	require.NoError(t, err)
	assert.Equal(t, "Amazônia Legal", region.Name)
	assert.Equal(t, "rainforest", region.Type)
	assert.Equal(t, 4, region.RiskLevel)
}

func TestRegionService_Update_NotFound(t *testing.T) {
	svc, m := newRegionService(t)
	ctx := context.Background()
	id := uuid.New()

	m.repo.EXPECT().GetByID(ctx, id).Return(nil, service.ErrNotFound)

	_, err := svc.Update(ctx, id, service.RegionUpdate{Name: "anything"})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestRegionService_RecalculateRisk(t *testing.T) {
	tests := []struct {
		name        string
		activeCount int64
		wantLevel   int
	}{
		{"no active hotspots", 0, 1},
		{"two active hotspots", 2, 2},
		{"four active hotspots", 4, 3},
		{"nine active hotspots", 9, 4},
		{"ten active hotspots", 10, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newRegionService(t)
			ctx := context.Background()
			id := uuid.New()
			stored := &models.Region{ID: id, Name: "Cerrado Central", RiskLevel: 1}

			m.repo.EXPECT().GetByID(ctx, id).Return(stored, nil)
			m.hotspotRepo.EXPECT().CountActiveByRegion(ctx, id).Return(tt.activeCount, nil)
			m.repo.EXPECT().UpdateRiskLevel(ctx, id, tt.wantLevel).Return(nil)
			m.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, event webhook.AlertEvent) error {
					assert.Equal(t, webhook.EventRegionRiskChanged, event.Event)
					assert.Equal(t, tt.wantLevel, event.RiskLevel)
					return nil
				},
			)

			region, err := svc.RecalculateRisk(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, region.RiskLevel)
		})
	}
}

func TestRegionService_RiskLifecycle(t *testing.T) {
	svc, m := newRegionService(t)
	ctx := context.Background()

	stored := &models.Region{Name: "Cerrado", Type: "savanna"}
	m.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, r *models.Region) error {
			r.ID = uuid.New()
			stored = r
			return nil
		},
	)

	region, err := svc.Register(ctx, &models.Region{Name: "Cerrado", Type: "savanna"})
	require.NoError(t, err)
	assert.Equal(t, 1, region.RiskLevel)

	m.repo.EXPECT().GetByID(ctx, region.ID).Return(stored, nil).Times(2)
	m.repo.EXPECT().UpdateRiskLevel(ctx, region.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, riskLevel int) error {
			stored.RiskLevel = riskLevel
			return nil
		},
	).Times(2)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(2)

	// Three hotspots burning.
	m.hotspotRepo.EXPECT().CountActiveByRegion(ctx, region.ID).Return(int64(3), nil)
	region, err = svc.RecalculateRisk(ctx, region.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, region.RiskLevel)

	// Two of them resolved, one still active.
	m.hotspotRepo.EXPECT().CountActiveByRegion(ctx, region.ID).Return(int64(1), nil)
	region, err = svc.RecalculateRisk(ctx, region.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, region.RiskLevel)
}

func TestRegionService_Remove_CascadesHotspotsAndActions(t *testing.T) {
	svc, m := newRegionService(t)
	ctx := context.Background()
	id := uuid.New()
	owned := []*models.Hotspot{
		{ID: uuid.New(), RegionID: &id},
		{ID: uuid.New(), RegionID: &id},
	}

	gomock.InOrder(
		m.repo.EXPECT().GetByID(ctx, id).Return(&models.Region{ID: id}, nil),
		m.hotspotRepo.EXPECT().ListByRegion(ctx, id).Return(owned, nil),
		m.actionRepo.EXPECT().DeleteByRegion(ctx, id).Return(nil),
		m.hotspotRepo.EXPECT().DeleteByRegion(ctx, id).Return(nil),
		m.repo.EXPECT().Delete(ctx, id).Return(nil),
	)
	m.hotspotRepo.EXPECT().InvalidateCache(ctx, owned[0].ID).Return(nil)
	m.hotspotRepo.EXPECT().InvalidateCache(ctx, owned[1].ID).Return(nil)

	removed, err := svc.Remove(ctx, id)
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestRegionService_Remove_Unknown(t *testing.T) {
	svc, m := newRegionService(t)
	ctx := context.Background()
	id := uuid.New()

	m.repo.EXPECT().GetByID(ctx, id).Return(nil, service.ErrNotFound)

	removed, err := svc.Remove(ctx, id)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRegionService_ListByMinRiskLevel(t *testing.T) {
	svc, m := newRegionService(t)
	ctx := context.Background()
	critical := []*models.Region{{ID: uuid.New(), RiskLevel: 5}}

	m.repo.EXPECT().ListByMinRiskLevel(ctx, 4).Return(critical, nil)

	regions, err := svc.ListByMinRiskLevel(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, critical, regions)
}

func TestRegionService_SearchByName(t *testing.T) {
	svc, m := newRegionService(t)
	ctx := context.Background()
	matches := []*models.Region{{ID: uuid.New(), Name: "Pantanal"}}

	m.repo.EXPECT().SearchByName(ctx, "panta").Return(matches, nil)

	regions, err := svc.SearchByName(ctx, "panta")
	require.NoError(t, err)
	assert.Equal(t, matches, regions)
}
