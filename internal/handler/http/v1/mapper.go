package v1

import "github.com/tmarques/wildfire_tracking_system/internal/models"

// ModelToHotspotResponse converts a domain hotspot into the response DTO.
func ModelToHotspotResponse(model *models.Hotspot) *HotspotResponse {
	return &HotspotResponse{
		ID:              model.ID,
		Latitude:        model.Latitude,
		Longitude:       model.Longitude,
		DetectedAt:      model.DetectedAt,
		Intensity:       model.Intensity,
		EstimatedAreaM2: model.EstimatedAreaM2,
		Status:          string(model.Status),
		Description:     model.Description,
		UpdatedAt:       model.UpdatedAt,
		RegionID:        model.RegionID,
	}
}

// ModelsToHotspotResponses converts a slice of domain hotspots.
func ModelsToHotspotResponses(models []*models.Hotspot) []*HotspotResponse {
	responses := make([]*HotspotResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToHotspotResponse(model)
	}
	return responses
}

// DTOToRegionModel converts a region creation request into the domain model.
func DTOToRegionModel(dto CreateRegionRequest) *models.Region {
	return &models.Region{
		Name:        dto.Name,
		Type:        dto.Type,
		AreaM2:      dto.AreaM2,
		Description: dto.Description,
		RiskLevel:   dto.RiskLevel,
	}
}

// ModelToRegionResponse converts a domain region into the response DTO.
func ModelToRegionResponse(model *models.Region) *RegionResponse {
	return &RegionResponse{
		ID:          model.ID,
		Name:        model.Name,
		Type:        model.Type,
		AreaM2:      model.AreaM2,
		Description: model.Description,
		RiskLevel:   model.RiskLevel,
	}
}

// ModelsToRegionResponses converts a slice of domain regions.
func ModelsToRegionResponses(models []*models.Region) []*RegionResponse {
	responses := make([]*RegionResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToRegionResponse(model)
	}
	return responses
}

// ModelToActionResponse converts a domain combat action into the response DTO.
func ModelToActionResponse(model *models.CombatAction) *ActionResponse {
	return &ActionResponse{
		ID:            model.ID,
		HotspotID:     model.HotspotID,
		StartedAt:     model.StartedAt,
		EndedAt:       model.EndedAt,
		ActionType:    model.ActionType,
		Description:   model.Description,
		ResourcesUsed: model.ResourcesUsed,
		Outcome:       model.Outcome,
		Responsible:   model.Responsible,
		DurationHours: model.DurationHours(),
	}
}

// ModelsToActionResponses converts a slice of domain combat actions.
func ModelsToActionResponses(models []*models.CombatAction) []*ActionResponse {
	responses := make([]*ActionResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToActionResponse(model)
	}
	return responses
}
