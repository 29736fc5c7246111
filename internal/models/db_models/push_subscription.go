package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PushSubscription struct {
	BaseModel
	UserID    uuid.UUID      `gorm:"type:uuid;index" json:"userId"`
	Endpoint  string         `gorm:"uniqueIndex" json:"endpoint"`
	Keys      datatypes.JSON `json:"keys"`
	UserAgent *string        `json:"userAgent,omitempty"`
}

func (PushSubscription) TableName() string { return "push_subscriptions" }
