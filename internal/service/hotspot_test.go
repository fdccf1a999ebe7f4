package service_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tmarques/wildfire_tracking_system/internal/models"
	"github.com/tmarques/wildfire_tracking_system/internal/service"
	"github.com/tmarques/wildfire_tracking_system/internal/service/mocks"
	"github.com/tmarques/wildfire_tracking_system/internal/webhook"
	webhookmocks "github.com/tmarques/wildfire_tracking_system/internal/webhook/mocks"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// passthroughTx runs the transactional closure directly against the mocks.
func passthroughTx(ctrl *gomock.Controller) *mocks.MockTxManager {
	txm := mocks.NewMockTxManager(ctrl)
	txm.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	return txm
}

type hotspotServiceMocks struct {
	repo       *mocks.MockHotspotRepository
	regionRepo *mocks.MockRegionRepository
	publisher  *webhookmocks.MockAlertPublisher
}

func newHotspotService(t *testing.T) (service.HotspotService, hotspotServiceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := hotspotServiceMocks{
		repo:       mocks.NewMockHotspotRepository(ctrl),
		regionRepo: mocks.NewMockRegionRepository(ctrl),
		publisher:  webhookmocks.NewMockAlertPublisher(ctrl),
	}
	svc := service.NewHotspotService(m.repo, m.regionRepo, passthroughTx(ctrl), testLogger(), m.publisher)
	return svc, m
}

func TestHotspotService_Register(t *testing.T) {
	svc, m := newHotspotService(t)
	ctx := context.Background()

	m.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, h *models.Hotspot) error {
			h.ID = uuid.New()
			return nil
		},
	)

	hotspot, err := svc.Register(ctx, -15.5, -47.8, nil)
	require.NoError(t, err)
	assert.Equal(t, models.StatusNew, hotspot.Status)
	assert.Equal(t, -15.5, hotspot.Latitude)
	assert.Equal(t, -47.8, hotspot.Longitude)
	assert.Nil(t, hotspot.RegionID)
	assert.NotEqual(t, uuid.Nil, hotspot.ID)
}

func TestHotspotService_Register_InvalidCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
	}{
		{"latitude above range", 90.01, 0},
		{"latitude below range", -91, 0},
		{"longitude above range", 0, 180.5},
		{"longitude below range", 0, -181},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newHotspotService(t)

			_, err := svc.Register(context.Background(), tt.lat, tt.lon, nil)
			assert.ErrorIs(t, err, service.ErrInvalidCoordinates)
		})
	}
}

func TestHotspotService_Register_UnknownRegionLeavesUnattached(t *testing.T) {
	svc, m := newHotspotService(t)
	ctx := context.Background()
	regionID := uuid.New()

	m.regionRepo.EXPECT().GetByID(ctx, regionID).Return(nil, service.ErrNotFound)
	m.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	hotspot, err := svc.Register(ctx, -3.1, -60.0, &regionID)
	require.NoError(t, err)
	assert.Nil(t, hotspot.RegionID)
}

func TestHotspotService_RegisterDetailed(t *testing.T) {
	svc, m := newHotspotService(t)
	ctx := context.Background()
	regionID := uuid.New()
	intensity := 0.8
	area := 15000.0

	m.regionRepo.EXPECT().GetByID(ctx, regionID).Return(&models.Region{ID: regionID}, nil)
	m.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	m.repo.EXPECT().CountActiveByRegion(ctx, regionID).Return(int64(3), nil)
	m.regionRepo.EXPECT().UpdateRiskLevel(ctx, regionID, 3).Return(nil)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, event webhook.AlertEvent) error {
			assert.Equal(t, webhook.EventRegionRiskChanged, event.Event)
			assert.Equal(t, 3, event.RiskLevel)
			return nil
		},
	)

	hotspot, err := svc.RegisterDetailed(ctx, -15.5, -47.8, &intensity, &area, "Dense smoke column", &regionID)
	require.NoError(t, err)
	require.NotNil(t, hotspot.RegionID)
	assert.Equal(t, regionID, *hotspot.RegionID)
	assert.Equal(t, intensity, *hotspot.Intensity)
	assert.Equal(t, area, *hotspot.EstimatedAreaM2)
	assert.Equal(t, "Dense smoke column", hotspot.Description)
}

func TestHotspotService_RegisterDetailed_NegativeIntensity(t *testing.T) {
	svc, _ := newHotspotService(t)
	intensity := -0.1

	_, err := svc.RegisterDetailed(context.Background(), 0, 0, &intensity, nil, "", nil)
	assert.Error(t, err)
}

func TestHotspotService_Get_CacheHit(t *testing.T) {
	svc, m := newHotspotService(t)
	ctx := context.Background()
	id := uuid.New()
	cached := &models.Hotspot{ID: id, Status: models.StatusConfirmed}

	m.repo.EXPECT().GetFromCache(ctx, id).Return(cached, nil)

	hotspot, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, cached, hotspot)
}

func TestHotspotService_Get_CacheMiss(t *testing.T) {
	svc, m := newHotspotService(t)
	ctx := context.Background()
	id := uuid.New()
	stored := &models.Hotspot{ID: id, Status: models.StatusNew}

	m.repo.EXPECT().GetFromCache(ctx, id).Return(nil, nil)
	m.repo.EXPECT().GetByID(ctx, id).Return(stored, nil)
	m.repo.EXPECT().SetCache(ctx, stored).Return(nil)

	hotspot, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, stored, hotspot)
}

func TestHotspotService_Get_NotFound(t *testing.T) {
	svc, m := newHotspotService(t)
	ctx := context.Background()
	id := uuid.New()

	m.repo.EXPECT().GetFromCache(ctx, id).Return(nil, nil)
	m.repo.EXPECT().GetByID(ctx, id).Return(nil, service.ErrNotFound)

	_, err := svc.Get(ctx, id)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestHotspotService_UpdateStatus_RecalculatesRegionRisk(t *testing.T) {
	svc, m := newHotspotService(t)
	ctx := context.Background()
	id := uuid.New()
	regionID := uuid.New()
	stored := &models.Hotspot{ID: id, Status: models.StatusConfirmed, RegionID: &regionID}

	m.repo.EXPECT().GetByID(ctx, id).Return(stored, nil)
	m.repo.EXPECT().Update(ctx, stored).Return(nil)
	// One hotspot left active after the resolution.
	m.repo.EXPECT().CountActiveByRegion(ctx, regionID).Return(int64(1), nil)
	m.regionRepo.EXPECT().UpdateRiskLevel(ctx, regionID, 2).Return(nil)
	m.repo.EXPECT().InvalidateCache(ctx, id).Return(nil)

	var events []string
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, event webhook.AlertEvent) error {
			events = append(events, event.Event)
			return nil
		},
	).Times(2)

	hotspot, err := svc.UpdateStatus(ctx, id, models.StatusResolved)
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, hotspot.Status)
	assert.Equal(t, []string{webhook.EventHotspotStatusChanged, webhook.EventRegionRiskChanged}, events)
}

func TestHotspotService_UpdateStatus_NotFound(t *testing.T) {
	svc, m := newHotspotService(t)
	ctx := context.Background()
	id := uuid.New()

	m.repo.EXPECT().GetByID(ctx, id).Return(nil, service.ErrNotFound)

	_, err := svc.UpdateStatus(ctx, id, models.StatusConfirmed)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestHotspotService_UpdateDetails_PartialFields(t *testing.T) {
	svc, m := newHotspotService(t)
	ctx := context.Background()
	id := uuid.New()
	originalIntensity := 0.4
	stored := &models.Hotspot{
		ID:          id,
		Status:      models.StatusConfirmed,
		Intensity:   &originalIntensity,
		Description: "initial sighting",
		UpdatedAt:   time.Now().Add(-time.Hour),
	}

	m.repo.EXPECT().GetByID(ctx, id).Return(stored, nil)
	m.repo.EXPECT().Update(ctx, stored).Return(nil)
	m.repo.EXPECT().InvalidateCache(ctx, id).Return(nil)

	newDescription := "flare-up on the northern flank"
	before := time.Now()
	hotspot, err := svc.UpdateDetails(ctx, id, nil, nil, &newDescription)
	require.NoError(t, err)
	assert.Equal(t, newDescription, hotspot.Description)
	assert.Equal(t, originalIntensity, *hotspot.Intensity)
	assert.False(t, hotspot.UpdatedAt.Before(before))
}

func TestHotspotService_ListByProximity(t *testing.T) {
	svc, m := newHotspotService(t)
	ctx := context.Background()
	nearby := []*models.Hotspot{{ID: uuid.New()}}

	m.repo.EXPECT().ListByProximity(ctx, -10.0, -55.0, 0.5).Return(nearby, nil)

	hotspots, err := svc.ListByProximity(ctx, -10.0, -55.0, 0.5)
	require.NoError(t, err)
	assert.Equal(t, nearby, hotspots)
}

func TestHotspotService_ListByProximity_InvalidCenter(t *testing.T) {
	svc, _ := newHotspotService(t)

	_, err := svc.ListByProximity(context.Background(), 120, 0, 1)
	assert.ErrorIs(t, err, service.ErrInvalidCoordinates)
}

func TestHotspotService_Remove(t *testing.T) {
	svc, m := newHotspotService(t)
	ctx := context.Background()
	id := uuid.New()
	regionID := uuid.New()
	stored := &models.Hotspot{ID: id, Status: models.StatusResolved, RegionID: &regionID}

	m.repo.EXPECT().GetByID(ctx, id).Return(stored, nil)
	m.repo.EXPECT().Delete(ctx, id).Return(nil)
	m.repo.EXPECT().CountActiveByRegion(ctx, regionID).Return(int64(0), nil)
	m.regionRepo.EXPECT().UpdateRiskLevel(ctx, regionID, 1).Return(nil)
	m.repo.EXPECT().InvalidateCache(ctx, id).Return(nil)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	removed, err := svc.Remove(ctx, id)
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestHotspotService_Remove_Unknown(t *testing.T) {
	svc, m := newHotspotService(t)
	ctx := context.Background()
	id := uuid.New()

	m.repo.EXPECT().GetByID(ctx, id).Return(nil, service.ErrNotFound)

	removed, err := svc.Remove(ctx, id)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestHotspotService_List_RepositoryError(t *testing.T) {
	svc, m := newHotspotService(t)
	ctx := context.Background()
	boom := errors.New("connection reset")

	m.repo.EXPECT().List(ctx).Return(nil, boom)

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, boom)
}
