package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tmarques/wildfire_tracking_system/internal/config"
	"github.com/tmarques/wildfire_tracking_system/internal/models"
	"github.com/tmarques/wildfire_tracking_system/internal/service"
	"github.com/tmarques/wildfire_tracking_system/internal/service/mocks"
)

const testAPIKey = "test-api-key"

type handlerMocks struct {
	hotspots *mocks.MockHotspotService
	regions  *mocks.MockRegionService
	actions  *mocks.MockActionService
}

func newTestHandler(t *testing.T) (handlerMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		hotspots: mocks.NewMockHotspotService(ctrl),
		regions:  mocks.NewMockRegionService(ctrl),
		actions:  mocks.NewMockActionService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{testAPIKey},
	}

	handler := NewHandler(m.hotspots, m.regions, m.actions, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return m, router
}

func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-API-Key", testAPIKey)
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateHotspot_Success(t *testing.T) {
	m, router := newTestHandler(t)
	hotspotID := uuid.New()
	reqBody := CreateHotspotRequest{Latitude: -15.5, Longitude: -47.8}

	m.hotspots.EXPECT().
		Register(gomock.Any(), reqBody.Latitude, reqBody.Longitude, nil).
		Return(&models.Hotspot{
			ID:         hotspotID,
			Latitude:   reqBody.Latitude,
			Longitude:  reqBody.Longitude,
			Status:     models.StatusNew,
			DetectedAt: time.Now(),
			UpdatedAt:  time.Now(),
		}, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/hotspots", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp HotspotResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, hotspotID, resp.ID)
	assert.Equal(t, string(models.StatusNew), resp.Status)
}

func TestCreateHotspot_InvalidJSON(t *testing.T) {
	m, router := newTestHandler(t)

	m.hotspots.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/hotspots", bytes.NewBufferString(`{"latitude": -15.5`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateHotspot_LatitudeOutOfRange(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := CreateHotspotRequest{Latitude: 91, Longitude: 0}

	m.hotspots.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/hotspots", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Latitude' failed on the 'max' tag")
}

func TestCreateDetailedHotspot_Success(t *testing.T) {
	m, router := newTestHandler(t)
	regionID := uuid.New()
	intensity := 0.9
	reqBody := CreateDetailedHotspotRequest{
		Latitude:    -9.2,
		Longitude:   -56.1,
		Intensity:   &intensity,
		Description: "Dense smoke column",
		RegionID:    &regionID,
	}

	m.hotspots.EXPECT().
		RegisterDetailed(gomock.Any(), reqBody.Latitude, reqBody.Longitude, gomock.Any(), nil, reqBody.Description, gomock.Any()).
		Return(&models.Hotspot{
			ID:          uuid.New(),
			Latitude:    reqBody.Latitude,
			Longitude:   reqBody.Longitude,
			Intensity:   &intensity,
			Status:      models.StatusNew,
			Description: reqBody.Description,
			RegionID:    &regionID,
		}, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/hotspots/detailed", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp HotspotResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.NotNil(t, resp.Intensity)
	assert.Equal(t, intensity, *resp.Intensity)
	require.NotNil(t, resp.RegionID)
	assert.Equal(t, regionID, *resp.RegionID)
}

func TestGetHotspot_NotFound(t *testing.T) {
	m, router := newTestHandler(t)
	hotspotID := uuid.New()

	m.hotspots.EXPECT().Get(gomock.Any(), hotspotID).Return(nil, fmt.Errorf("service: %w", service.ErrNotFound)).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/hotspots/%s", hotspotID), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "hotspot not found")
}

func TestGetHotspot_InvalidID(t *testing.T) {
	m, router := newTestHandler(t)

	m.hotspots.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/hotspots/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid hotspot ID")
}

func TestListHotspotsByStatus_UnknownStatus(t *testing.T) {
	m, router := newTestHandler(t)

	m.hotspots.EXPECT().ListByStatus(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/hotspots/status/ON_FIRE", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListHotspotsByProximity_Success(t *testing.T) {
	m, router := newTestHandler(t)
	nearby := []*models.Hotspot{{ID: uuid.New(), Status: models.StatusConfirmed}}

	m.hotspots.EXPECT().ListByProximity(gomock.Any(), -10.0, -55.0, 0.5).Return(nearby, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/hotspots/proximity?latitude=-10&longitude=-55&radius=0.5", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []HotspotResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 1)
}

func TestListHotspotsByProximity_MissingParams(t *testing.T) {
	m, router := newTestHandler(t)

	m.hotspots.EXPECT().ListByProximity(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/hotspots/proximity?latitude=-10", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateHotspotStatus_Success(t *testing.T) {
	m, router := newTestHandler(t)
	hotspotID := uuid.New()
	reqBody := UpdateHotspotStatusRequest{Status: "CONFIRMED"}

	m.hotspots.EXPECT().
		UpdateStatus(gomock.Any(), hotspotID, models.StatusConfirmed).
		Return(&models.Hotspot{ID: hotspotID, Status: models.StatusConfirmed}, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/hotspots/%s/status", hotspotID), bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp HotspotResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", resp.Status)
}

func TestUpdateHotspotStatus_UnknownStatus(t *testing.T) {
	m, router := newTestHandler(t)
	hotspotID := uuid.New()

	m.hotspots.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(UpdateHotspotStatusRequest{Status: "BURNING"})
	w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/hotspots/%s/status", hotspotID), bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteHotspot_NotFound(t *testing.T) {
	m, router := newTestHandler(t)
	hotspotID := uuid.New()

	m.hotspots.EXPECT().Remove(gomock.Any(), hotspotID).Return(false, nil).Times(1)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/hotspots/%s", hotspotID), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteHotspot_Success(t *testing.T) {
	m, router := newTestHandler(t)
	hotspotID := uuid.New()

	m.hotspots.EXPECT().Remove(gomock.Any(), hotspotID).Return(true, nil).Times(1)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/hotspots/%s", hotspotID), nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCreateRegion_Success(t *testing.T) {
	m, router := newTestHandler(t)
	regionID := uuid.New()
	reqBody := CreateRegionRequest{
		Name:   "Cerrado Central",
		Type:   "savanna",
		AreaM2: 2.5e11,
	}

	m.regions.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, region *models.Region) (*models.Region, error) {
			region.ID = regionID
			region.RiskLevel = models.MinRiskLevel
			return region, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/regions", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp RegionResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, regionID, resp.ID)
	assert.Equal(t, 1, resp.RiskLevel)
}

func TestCreateRegion_ValidationError(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := CreateRegionRequest{Type: "savanna"}

	m.regions.EXPECT().Register(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/regions", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Name' failed on the 'required' tag")
}

func TestListRegionsByMinRisk_Success(t *testing.T) {
	m, router := newTestHandler(t)
	critical := []*models.Region{{ID: uuid.New(), Name: "Pantanal", RiskLevel: 5}}

	m.regions.EXPECT().ListByMinRiskLevel(gomock.Any(), 4).Return(critical, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/regions/risk?min=4", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []RegionResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, 5, resp[0].RiskLevel)
}

func TestRecalculateRegionRisk_Success(t *testing.T) {
	m, router := newTestHandler(t)
	regionID := uuid.New()

	m.regions.EXPECT().
		RecalculateRisk(gomock.Any(), regionID).
		Return(&models.Region{ID: regionID, Name: "Cerrado Central", RiskLevel: 3}, nil).Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/regions/%s/recalculate-risk", regionID), nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp RegionResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.RiskLevel)
}

func TestDeleteRegion_Success(t *testing.T) {
	m, router := newTestHandler(t)
	regionID := uuid.New()

	m.regions.EXPECT().Remove(gomock.Any(), regionID).Return(true, nil).Times(1)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/regions/%s", regionID), nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestStartGroundCombat_Success(t *testing.T) {
	m, router := newTestHandler(t)
	hotspotID := uuid.New()
	reqBody := StartActionRequest{
		HotspotID:   hotspotID,
		Description: "Containment line on the east flank",
		Responsible: "Corpo de Bombeiros",
	}

	m.actions.EXPECT().
		StartGroundCombat(gomock.Any(), hotspotID, reqBody.Description, reqBody.Responsible).
		Return(&models.CombatAction{
			ID:          uuid.New(),
			HotspotID:   hotspotID,
			StartedAt:   time.Now(),
			ActionType:  models.ActionTypeGround,
			Description: reqBody.Description,
			Responsible: reqBody.Responsible,
		}, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/actions/ground", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp ActionResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, models.ActionTypeGround, resp.ActionType)
	assert.Nil(t, resp.EndedAt)
}

func TestStartGroundCombat_UnknownHotspot(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := StartActionRequest{
		HotspotID:   uuid.New(),
		Responsible: "Corpo de Bombeiros",
	}

	m.actions.EXPECT().
		StartGroundCombat(gomock.Any(), reqBody.HotspotID, gomock.Any(), gomock.Any()).
		Return(nil, service.ErrNotFound).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/actions/ground", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStartCustomAction_UnknownStatus(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := StartCustomActionRequest{
		HotspotID:   uuid.New(),
		ActionType:  "Aceiro preventivo",
		Responsible: "Brigada municipal",
		NewStatus:   "SMOLDERING",
	}

	m.actions.EXPECT().StartCustom(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/actions/custom", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConcludeAction_Success(t *testing.T) {
	m, router := newTestHandler(t)
	actionID := uuid.New()
	endedAt := time.Now()
	reqBody := ConcludeActionRequest{Outcome: "Fire extinguished", NewStatus: "RESOLVED"}

	m.actions.EXPECT().
		Conclude(gomock.Any(), actionID, reqBody.Outcome, models.StatusResolved).
		Return(&models.CombatAction{
			ID:         actionID,
			HotspotID:  uuid.New(),
			StartedAt:  endedAt.Add(-2 * time.Hour),
			EndedAt:    &endedAt,
			ActionType: models.ActionTypeGround,
			Outcome:    reqBody.Outcome,
		}, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/actions/%s/conclude", actionID), bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ActionResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.NotNil(t, resp.EndedAt)
	require.NotNil(t, resp.DurationHours)
	assert.InDelta(t, 2.0, *resp.DurationHours, 0.01)
}

func TestConcludeAction_AlreadyConcluded(t *testing.T) {
	m, router := newTestHandler(t)
	actionID := uuid.New()
	reqBody := ConcludeActionRequest{Outcome: "second attempt", NewStatus: "RESOLVED"}

	m.actions.EXPECT().
		Conclude(gomock.Any(), actionID, reqBody.Outcome, models.StatusResolved).
		Return(nil, service.ErrActionConcluded).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/actions/%s/conclude", actionID), bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "already concluded")
}

func TestListActionsConcluded_InvalidBounds(t *testing.T) {
	m, router := newTestHandler(t)

	m.actions.EXPECT().ListConcludedBetween(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/actions/concluded?from=yesterday&to=today", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCountActionsInProgressByRegion_Success(t *testing.T) {
	m, router := newTestHandler(t)
	regionID := uuid.New()

	m.actions.EXPECT().CountInProgressByRegion(gomock.Any(), regionID).Return(int64(3), nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/actions/region/%s/count", regionID), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"in_progress":3`)
}

func TestListActions_ServiceError(t *testing.T) {
	m, router := newTestHandler(t)

	m.actions.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection reset")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/actions", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestHealthCheck_Success(t *testing.T) {
	_, router := newTestHandler(t)

	req := httptest.NewRequest("GET", "/api/v1/system/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	_, router := newTestHandler(t)

	req := httptest.NewRequest("GET", "/api/v1/hotspots", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	_, router := newTestHandler(t)

	req := httptest.NewRequest("GET", "/api/v1/hotspots", nil)
	req.Header.Set("X-API-Key", "wrong-key")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid API key")
}

func TestAPIKeyAuthMiddleware_BearerToken(t *testing.T) {
	m, router := newTestHandler(t)

	m.hotspots.EXPECT().List(gomock.Any()).Return(nil, nil).Times(1)

	req := httptest.NewRequest("GET", "/api/v1/hotspots", nil)
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
