package v1

import (
	"github.com/shenikar/guard_dispatch_system/internal/models"
	"github.com/shenikar/guard_dispatch_system/internal/service"
)

// DTOToLocationRecord преобразует DTO позиции в доменную модель
func DTOToLocationRecord(dto ReportLocationRequest) models.GuardLocationRecord {
	return models.GuardLocationRecord{
		GuardID:        dto.GuardID,
		Position:       models.GeoPoint{Latitude: dto.Latitude, Longitude: dto.Longitude},
		AccuracyMeters: dto.AccuracyMeters,
		RecordedAt:     dto.RecordedAt,
		SpeedMPS:       dto.SpeedMPS,
		HeadingDegrees: dto.HeadingDegrees,
	}
}

// ModelToLocationResponse преобразует запись реестра в DTO для ответа
func ModelToLocationResponse(record *models.GuardLocationRecord) *GuardLocationResponse {
	return &GuardLocationResponse{
		GuardID:        record.GuardID,
		Latitude:       record.Position.Latitude,
		Longitude:      record.Position.Longitude,
		AccuracyMeters: record.AccuracyMeters,
		RecordedAt:     record.RecordedAt,
		SpeedMPS:       record.SpeedMPS,
		HeadingDegrees: record.HeadingDegrees,
		SourceStatus:   string(record.SourceStatus),
	}
}

// DTOToDispatchRequest преобразует DTO в запрос подбора, подставляя значения по умолчанию
func DTOToDispatchRequest(dto DispatchRequest, defaultRadius float64, defaultMax int) models.DispatchRequest {
	req := models.DispatchRequest{
		IncidentLocation: models.GeoPoint{Latitude: dto.Latitude, Longitude: dto.Longitude},
		RadiusMeters:     dto.RadiusMeters,
		MaxCandidates:    dto.MaxCandidates,
	}
	if req.RadiusMeters == 0 {
		req.RadiusMeters = defaultRadius
	}
	if req.MaxCandidates == 0 {
		req.MaxCandidates = defaultMax
	}
	if len(dto.ExcludeGuardIDs) > 0 {
		req.ExcludeGuardIDs = make(map[string]struct{}, len(dto.ExcludeGuardIDs))
		for _, id := range dto.ExcludeGuardIDs {
			req.ExcludeGuardIDs[id] = struct{}{}
		}
	}
	return req
}

// ModelToCandidateResponse преобразует кандидата в DTO
func ModelToCandidateResponse(candidate *models.DispatchCandidate) *CandidateResponse {
	warnings := candidate.Route.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return &CandidateResponse{
		GuardID:         candidate.GuardID,
		Rank:            candidate.Rank,
		Latitude:        candidate.Location.Position.Latitude,
		Longitude:       candidate.Location.Position.Longitude,
		RecordedAt:      candidate.Location.RecordedAt,
		Provider:        candidate.Route.Provider,
		DistanceMeters:  candidate.Route.DistanceMeters,
		DurationSeconds: candidate.Route.DurationSeconds,
		Polyline:        string(candidate.Route.Polyline),
		IsFallback:      candidate.Route.IsFallback,
		Warnings:        warnings,
	}
}

// ModelToDispatchResponse преобразует результат подбора в DTO, выделяя основного и резервного охранника
func ModelToDispatchResponse(result *models.DispatchResult, requireBackup bool) *DispatchResponse {
	resp := &DispatchResponse{
		RequestID:  result.RequestID.String(),
		Candidates: make([]CandidateResponse, len(result.Candidates)),
		Warnings:   result.Warnings,
		Partial:    result.Partial,
		ComputedAt: result.ComputedAt,
	}
	if resp.Warnings == nil {
		resp.Warnings = []string{}
	}
	for i := range result.Candidates {
		resp.Candidates[i] = *ModelToCandidateResponse(&result.Candidates[i])
	}

	primary, backup := service.SelectPrimaryAndBackup(result.Candidates, requireBackup)
	if primary != nil {
		resp.Primary = ModelToCandidateResponse(primary)
	}
	if backup != nil {
		resp.Backup = ModelToCandidateResponse(backup)
	}
	return resp
}

// CreateDTOToGeofence преобразует DTO создания зоны в доменную модель
func CreateDTOToGeofence(dto CreateGeofenceRequest) *models.Geofence {
	return &models.Geofence{
		ZoneID:       dto.ZoneID,
		Name:         dto.Name,
		Center:       models.GeoPoint{Latitude: dto.Latitude, Longitude: dto.Longitude},
		RadiusMeters: dto.RadiusMeters,
	}
}

// UpdateDTOToGeofence преобразует DTO обновления зоны в доменную модель
func UpdateDTOToGeofence(zoneID string, dto UpdateGeofenceRequest) *models.Geofence {
	return &models.Geofence{
		ZoneID:       zoneID,
		Name:         dto.Name,
		Center:       models.GeoPoint{Latitude: dto.Latitude, Longitude: dto.Longitude},
		RadiusMeters: dto.RadiusMeters,
		Active:       dto.Active != nil && *dto.Active,
	}
}

// ModelToGeofenceResponse преобразует зону в DTO для ответа
func ModelToGeofenceResponse(model *models.Geofence) *GeofenceResponse {
	return &GeofenceResponse{
		ZoneID:       model.ZoneID,
		Name:         model.Name,
		Latitude:     model.Center.Latitude,
		Longitude:    model.Center.Longitude,
		RadiusMeters: model.RadiusMeters,
		Active:       model.Active,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

// ModelsToGeofenceResponses преобразует слайс зон в слайс DTO
func ModelsToGeofenceResponses(zones []*models.Geofence) []*GeofenceResponse {
	responses := make([]*GeofenceResponse, len(zones))
	for i, zone := range zones {
		responses[i] = ModelToGeofenceResponse(zone)
	}
	return responses
}

func ModelsToOverlapResponses(overlaps []models.ZoneOverlap) []ZoneOverlapResponse {
	responses := make([]ZoneOverlapResponse, 0, len(overlaps))
	for _, overlap := range overlaps {
		responses = append(responses, ZoneOverlapResponse{
			ZoneID:         overlap.ZoneID,
			OverlapPercent: overlap.OverlapPercent,
		})
	}
	return responses
}
