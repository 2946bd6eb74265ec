package v1

import (
	"github.com/mvoloshin/camera_coordination_system/internal/models"
	"github.com/mvoloshin/camera_coordination_system/internal/overlay"
)

// DTOToIncidentModel converts a create/update DTO into the domain model.
// One function covers both since the fields overlap.
func DTOToIncidentModel(dto any) *models.Incident {
	switch v := dto.(type) {
	case CreateIncidentRequest:
		return &models.Incident{
			Type:         v.Type,
			Description:  v.Description,
			Latitude:     v.Latitude,
			Longitude:    v.Longitude,
			RadiusMeters: v.RadiusMeters,
		}
	case UpdateIncidentRequest:
		return &models.Incident{
			Type:         v.Type,
			Description:  v.Description,
			Latitude:     v.Latitude,
			Longitude:    v.Longitude,
			RadiusMeters: v.RadiusMeters,
			Status:       v.Status,
		}
	}
	return nil
}

func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:           model.ID,
		Type:         model.Type,
		Description:  model.Description,
		Latitude:     model.Latitude,
		Longitude:    model.Longitude,
		RadiusMeters: model.RadiusMeters,
		Status:       model.Status,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

func ModelToCameraResponse(model models.CameraNode) CameraResponse {
	return CameraResponse{
		ID:           model.ID,
		OwnerName:    model.OwnerName,
		Address:      model.Address,
		Latitude:     model.Latitude,
		Longitude:    model.Longitude,
		Contact:      model.Contact,
		HasFootage:   model.HasFootage,
		RegisteredAt: model.RegisteredAt,
		IsPrivate:    model.IsPrivate,
	}
}

func ModelsToCameraResponses(nodes []models.CameraNode) []CameraResponse {
	responses := make([]CameraResponse, len(nodes))
	for i, node := range nodes {
		responses[i] = ModelToCameraResponse(node)
	}
	return responses
}

func ModelToAccessRequestResponse(model *models.AccessRequest) *AccessRequestResponse {
	return &AccessRequestResponse{
		ID:           model.ID,
		CameraID:     model.CameraID,
		CreatedAt:    model.CreatedAt,
		IncidentTime: model.IncidentTime,
		Reason:       model.Reason,
		Status:       string(model.Status),
		VideoRef:     model.VideoRef,
	}
}

func ModelsToAccessRequestResponses(requests []*models.AccessRequest) []*AccessRequestResponse {
	responses := make([]*AccessRequestResponse, len(requests))
	for i, req := range requests {
		responses[i] = ModelToAccessRequestResponse(req)
	}
	return responses
}

func ModelToAlertResponse(model *models.CommunityAlert) *AlertResponse {
	return &AlertResponse{
		ID:        model.ID,
		Title:     model.Title,
		Message:   model.Message,
		Severity:  model.Severity,
		CreatedAt: model.CreatedAt,
	}
}

func ModelsToAlertResponses(alerts []*models.CommunityAlert) []*AlertResponse {
	responses := make([]*AlertResponse, len(alerts))
	for i, alert := range alerts {
		responses[i] = ModelToAlertResponse(alert)
	}
	return responses
}

// alertValuesToResponses adapts the by-value slice the map surface carries.
func alertValuesToResponses(alerts []models.CommunityAlert) []AlertResponse {
	responses := make([]AlertResponse, len(alerts))
	for i, alert := range alerts {
		responses[i] = *ModelToAlertResponse(&alert)
	}
	return responses
}

func incidentValuesToResponses(incidents []models.Incident) []IncidentResponse {
	responses := make([]IncidentResponse, len(incidents))
	for i, inc := range incidents {
		responses[i] = *ModelToIncidentResponse(&inc)
	}
	return responses
}

func DTOToDetections(dtos []DetectionDTO) []overlay.Detection {
	detections := make([]overlay.Detection, len(dtos))
	for i, d := range dtos {
		detections[i] = overlay.Detection{
			Class: d.Class,
			Score: d.Confidence,
			Box: overlay.Rect{
				X:      d.X,
				Y:      d.Y,
				Width:  d.Width,
				Height: d.Height,
			},
		}
	}
	return detections
}

func InstructionsToDTOs(instructions []overlay.Instruction) []InstructionDTO {
	dtos := make([]InstructionDTO, len(instructions))
	for i, ins := range instructions {
		dtos[i] = InstructionDTO{
			Class:      ins.Class,
			Confidence: ins.Score,
			X:          ins.Box.X,
			Y:          ins.Box.Y,
			Width:      ins.Box.Width,
			Height:     ins.Box.Height,
			LabelX:     ins.LabelX,
			LabelY:     ins.LabelY,
			LabelBelow: ins.LabelBelow,
		}
	}
	return dtos
}
