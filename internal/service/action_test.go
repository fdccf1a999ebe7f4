package service_test

import (
	"context"
	"testing"
	"time"

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

type actionServiceMocks struct {
	repo        *mocks.MockActionRepository
	hotspotRepo *mocks.MockHotspotRepository
	publisher   *webhookmocks.MockAlertPublisher
}

func newActionService(t *testing.T) (service.ActionService, actionServiceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := actionServiceMocks{
		repo:        mocks.NewMockActionRepository(ctrl),
		hotspotRepo: mocks.NewMockHotspotRepository(ctrl),
		publisher:   webhookmocks.NewMockAlertPublisher(ctrl),
	}
	svc := service.NewActionService(m.repo, m.hotspotRepo, passthroughTx(ctrl), testLogger(), m.publisher)
	return svc, m
}

func TestActionService_StartGroundCombat(t *testing.T) {
	svc, m := newActionService(t)
	ctx := context.Background()
	hotspotID := uuid.New()
	hotspot := &models.Hotspot{ID: hotspotID, Status: models.StatusConfirmed}

	m.hotspotRepo.EXPECT().GetByID(ctx, hotspotID).Return(hotspot, nil)
	m.hotspotRepo.EXPECT().Update(ctx, hotspot).Return(nil)
	m.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *models.CombatAction) error {
			a.ID = uuid.New()
			return nil
		},
	)
	m.hotspotRepo.EXPECT().InvalidateCache(ctx, hotspotID).Return(nil)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, event webhook.AlertEvent) error {
			assert.Equal(t, webhook.EventActionStarted, event.Event)
			assert.Equal(t, models.ActionTypeGround, event.ActionType)
			return nil
		},
	)

	action, err := svc.StartGroundCombat(ctx, hotspotID, "Containment line on the east flank", "Corpo de Bombeiros")
	require.NoError(t, err)
	assert.Equal(t, models.StatusInCombat, hotspot.Status)
	assert.Equal(t, models.ActionTypeGround, action.ActionType)
	assert.Equal(t, "Corpo de Bombeiros", action.Responsible)
	assert.Nil(t, action.EndedAt)
	assert.True(t, action.InProgress())
}

func TestActionService_StartMonitoring(t *testing.T) {
	svc, m := newActionService(t)
	ctx := context.Background()
	hotspotID := uuid.New()
	hotspot := &models.Hotspot{ID: hotspotID, Status: models.StatusNew}

	m.hotspotRepo.EXPECT().GetByID(ctx, hotspotID).Return(hotspot, nil)
	m.hotspotRepo.EXPECT().Update(ctx, hotspot).Return(nil)
	m.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	m.hotspotRepo.EXPECT().InvalidateCache(ctx, hotspotID).Return(nil)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	action, err := svc.StartMonitoring(ctx, hotspotID, "Satellite revisit every 6h", "CENSIPAM")
	require.NoError(t, err)
	assert.Equal(t, models.StatusMonitoring, hotspot.Status)
	assert.Equal(t, models.ActionTypeMonitoring, action.ActionType)
}

func TestActionService_StartCustom(t *testing.T) {
	svc, m := newActionService(t)
	ctx := context.Background()
	hotspotID := uuid.New()
	hotspot := &models.Hotspot{ID: hotspotID, Status: models.StatusConfirmed}

	m.hotspotRepo.EXPECT().GetByID(ctx, hotspotID).Return(hotspot, nil)
	m.hotspotRepo.EXPECT().Update(ctx, hotspot).Return(nil)
	m.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	m.hotspotRepo.EXPECT().InvalidateCache(ctx, hotspotID).Return(nil)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	action, err := svc.StartCustom(ctx, hotspotID, "Aceiro preventivo", "Firebreak around the perimeter", "Brigada municipal", "Tratores, lâminas", models.StatusUnderEvaluation)
	require.NoError(t, err)
	assert.Equal(t, models.StatusUnderEvaluation, hotspot.Status)
	assert.Equal(t, "Aceiro preventivo", action.ActionType)
	assert.Equal(t, "Tratores, lâminas", action.ResourcesUsed)
}

func TestActionService_Start_UnknownHotspot(t *testing.T) {
	svc, m := newActionService(t)
	ctx := context.Background()
	hotspotID := uuid.New()

	m.hotspotRepo.EXPECT().GetByID(ctx, hotspotID).Return(nil, service.ErrNotFound)

	_, err := svc.StartAerialCombat(ctx, hotspotID, "", "")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestActionService_Conclude(t *testing.T) {
	svc, m := newActionService(t)
	ctx := context.Background()
	actionID := uuid.New()
	hotspotID := uuid.New()
	action := &models.CombatAction{
		ID:         actionID,
		HotspotID:  hotspotID,
		StartedAt:  time.Now().Add(-2 * time.Hour),
		ActionType: models.ActionTypeGround,
	}
	hotspot := &models.Hotspot{ID: hotspotID, Status: models.StatusInCombat}

	m.repo.EXPECT().GetByID(ctx, actionID).Return(action, nil)
	m.repo.EXPECT().Update(ctx, action).Return(nil)
	m.hotspotRepo.EXPECT().GetByID(ctx, hotspotID).Return(hotspot, nil)
	m.hotspotRepo.EXPECT().Update(ctx, hotspot).Return(nil)
	m.hotspotRepo.EXPECT().InvalidateCache(ctx, hotspotID).Return(nil)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, event webhook.AlertEvent) error {
			assert.Equal(t, webhook.EventActionConcluded, event.Event)
			return nil
		},
	)

	concluded, err := svc.Conclude(ctx, actionID, "Fire extinguished", models.StatusResolved)
	require.NoError(t, err)
	require.NotNil(t, concluded.EndedAt)
	assert.Equal(t, "Fire extinguished", concluded.Outcome)
	assert.Equal(t, models.StatusResolved, hotspot.Status)
	assert.False(t, concluded.InProgress())

	hours := concluded.DurationHours()
	require.NotNil(t, hours)
	assert.InDelta(t, 2.0, *hours, 0.1)
}

func TestActionService_GroundCombatLifecycle(t *testing.T) {
	svc, m := newActionService(t)
	ctx := context.Background()
	hotspotID := uuid.New()
	hotspot := &models.Hotspot{ID: hotspotID, Status: models.StatusNew}

	var created *models.CombatAction
	m.hotspotRepo.EXPECT().GetByID(ctx, hotspotID).Return(hotspot, nil).Times(2)
	m.hotspotRepo.EXPECT().Update(ctx, hotspot).Return(nil).Times(2)
	m.hotspotRepo.EXPECT().InvalidateCache(ctx, hotspotID).Return(nil).Times(2)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(2)
	m.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *models.CombatAction) error {
			a.ID = uuid.New()
			created = a
			return nil
		},
	)

	action, err := svc.StartGroundCombat(ctx, hotspotID, "First response", "Corpo de Bombeiros")
	require.NoError(t, err)
	assert.Equal(t, models.StatusInCombat, hotspot.Status)
	assert.Equal(t, models.ActionTypeGround, action.ActionType)
	assert.Nil(t, action.EndedAt)

	m.repo.EXPECT().GetByID(ctx, action.ID).Return(created, nil)
	m.repo.EXPECT().Update(ctx, created).Return(nil)

	concluded, err := svc.Conclude(ctx, action.ID, "extinguished", models.StatusResolved)
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, hotspot.Status)
	require.NotNil(t, concluded.EndedAt)
	assert.Equal(t, "extinguished", concluded.Outcome)
}

func TestActionService_Conclude_AlreadyConcluded(t *testing.T) {
	svc, m := newActionService(t)
	ctx := context.Background()
	actionID := uuid.New()
	endedAt := time.Now().Add(-time.Hour)
	action := &models.CombatAction{
		ID:        actionID,
		HotspotID: uuid.New(),
		StartedAt: time.Now().Add(-3 * time.Hour),
		EndedAt:   &endedAt,
		Outcome:   "Fire extinguished",
	}

	m.repo.EXPECT().GetByID(ctx, actionID).Return(action, nil)

	_, err := svc.Conclude(ctx, actionID, "second attempt", models.StatusResolved)
	assert.ErrorIs(t, err, service.ErrActionConcluded)
	// The first conclusion must stay intact.
	assert.Equal(t, endedAt, *action.EndedAt)
	assert.Equal(t, "Fire extinguished", action.Outcome)
}

func TestActionService_Conclude_UnknownAction(t *testing.T) {
	svc, m := newActionService(t)
	ctx := context.Background()
	actionID := uuid.New()

	m.repo.EXPECT().GetByID(ctx, actionID).Return(nil, service.ErrNotFound)

	_, err := svc.Conclude(ctx, actionID, "", models.StatusResolved)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestActionService_UpdateInProgress(t *testing.T) {
	svc, m := newActionService(t)
	ctx := context.Background()
	actionID := uuid.New()
	action := &models.CombatAction{
		ID:            actionID,
		HotspotID:     uuid.New(),
		StartedAt:     time.Now(),
		Description:   "initial deployment",
		ResourcesUsed: "Brigada terrestre",
	}

	m.repo.EXPECT().GetByID(ctx, actionID).Return(action, nil)
	m.repo.EXPECT().Update(ctx, action).Return(nil)

	description := "reinforcements arrived"
	empty := ""
	updated, err := svc.UpdateInProgress(ctx, actionID, &description, &empty)
	require.NoError(t, err)
	assert.Equal(t, "reinforcements arrived", updated.Description)
	assert.Equal(t, "Brigada terrestre", updated.ResourcesUsed)
}

func TestActionService_UpdateInProgress_Concluded(t *testing.T) {
	svc, m := newActionService(t)
	ctx := context.Background()
	actionID := uuid.New()
	endedAt := time.Now()
	action := &models.CombatAction{ID: actionID, EndedAt: &endedAt}

	m.repo.EXPECT().GetByID(ctx, actionID).Return(action, nil)

	description := "too late"
	_, err := svc.UpdateInProgress(ctx, actionID, &description, nil)
	assert.ErrorIs(t, err, service.ErrActionConcluded)
}

func TestActionService_Remove_Unknown(t *testing.T) {
	svc, m := newActionService(t)
	ctx := context.Background()
	id := uuid.New()

	m.repo.EXPECT().Delete(ctx, id).Return(service.ErrNotFound)

	removed, err := svc.Remove(ctx, id)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestActionService_ListByType(t *testing.T) {
	svc, m := newActionService(t)
	ctx := context.Background()
	aerial := []*models.CombatAction{{ID: uuid.New(), ActionType: models.ActionTypeAerial}}

	m.repo.EXPECT().ListByTypeContaining(ctx, "aéreo").Return(aerial, nil)

	actions, err := svc.ListByType(ctx, "aéreo")
	require.NoError(t, err)
	assert.Equal(t, aerial, actions)
}

func TestActionService_CountInProgressByRegion(t *testing.T) {
	svc, m := newActionService(t)
	ctx := context.Background()
	regionID := uuid.New()

	m.repo.EXPECT().CountInProgressByRegion(ctx, regionID).Return(int64(3), nil)

	count, err := svc.CountInProgressByRegion(ctx, regionID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
