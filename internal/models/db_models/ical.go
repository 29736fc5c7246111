package db_models

import (
	"time"

	"github.com/google/uuid"
)

type ICalIntegration struct {
	BaseModel
	PropertyID uuid.UUID  `gorm:"type:uuid;index" json:"propertyId"`
	RoomTypeID uuid.UUID  `gorm:"type:uuid" json:"roomTypeId"`
	URL        string     `gorm:"column:url" json:"url"`
	IsActive   bool       `json:"isActive"`
	LastSyncAt *time.Time `json:"lastSyncAt,omitempty"`
}

func (ICalIntegration) TableName() string { return "ical_integrations" }

// ICalSyncLog is written by the external sync engine; this service only reads it.
type ICalSyncLog struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	IntegrationID uuid.UUID  `gorm:"type:uuid;index" json:"integrationId"`
	StartedAt     time.Time  `json:"startedAt"`
	FinishedAt    *time.Time `json:"finishedAt,omitempty"`
	Status        string     `json:"status"`
	AddedCount    int        `json:"addedCount"`
	UpdatedCount  int        `json:"updatedCount"`
	ConflictCount int        `json:"conflictCount"`
	ErrorMessage  *string    `json:"errorMessage,omitempty"`
}

func (ICalSyncLog) TableName() string { return "ical_sync_logs" }

type ICalUnassignedEvent struct {
	BaseModel
	PropertyID    uuid.UUID  `gorm:"type:uuid;index" json:"propertyId"`
	RoomTypeID    *uuid.UUID `gorm:"type:uuid" json:"roomTypeId,omitempty"`
	IntegrationID *uuid.UUID `gorm:"type:uuid" json:"integrationId,omitempty"`
	UID           string     `gorm:"column:uid" json:"uid"`
	Summary       *string    `json:"summary,omitempty"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       time.Time  `json:"endDate"`
	Resolved      bool       `json:"resolved"`
}

func (ICalUnassignedEvent) TableName() string { return "ical_unassigned_events" }
