package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Property struct {
	BaseModel
	AccountID             uuid.UUID `gorm:"type:uuid;index" json:"accountId"`
	Name                  string    `json:"name"`
	CheckInTime           string    `json:"checkInTime"`
	CheckOutTime          string    `json:"checkOutTime"`
	AIHouseRules          *string   `gorm:"column:ai_house_rules" json:"aiHouseRules,omitempty"`
	RegulationDocumentURL *string   `gorm:"column:regulation_document_url" json:"regulationDocumentUrl,omitempty"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

func (Property) TableName() string { return "properties" }

type RoomType struct {
	BaseModel
	PropertyID uuid.UUID `gorm:"type:uuid;index" json:"propertyId"`
	Name       string    `json:"name"`
}

func (RoomType) TableName() string { return "room_types" }

type Room struct {
	BaseModel
	PropertyID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_rooms_property_name" json:"propertyId"`
	RoomTypeID uuid.UUID `gorm:"type:uuid;index" json:"roomTypeId"`
	Name       string    `gorm:"uniqueIndex:idx_rooms_property_name" json:"name"`
}

func (Room) TableName() string { return "rooms" }
