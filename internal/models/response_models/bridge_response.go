package response_models

import "innkeep/internal/models/db_models"

type IntegrationWithLogs struct {
	db_models.ICalIntegration
	Logs []db_models.ICalSyncLog `json:"logs"`
}

type IntegrationListResponse struct {
	Integrations []IntegrationWithLogs `json:"integrations"`
}

type UnassignedListResponse struct {
	Events    []db_models.ICalUnassignedEvent `json:"events"`
	RoomTypes []db_models.RoomType            `json:"roomTypes"`
	// keyed by room type id
	RoomsByType map[string][]db_models.Room `json:"roomsByType"`
}
