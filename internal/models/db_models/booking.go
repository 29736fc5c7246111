package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID         string     `gorm:"primaryKey" json:"id"`
	PropertyID uuid.UUID  `gorm:"type:uuid;index" json:"propertyId"`
	RoomID     *uuid.UUID `gorm:"type:uuid" json:"roomId,omitempty"`
	GuestName  *string    `json:"guestName,omitempty"`
	CheckIn    *time.Time `json:"checkIn,omitempty"`
	CheckOut   *time.Time `json:"checkOut,omitempty"`
	Source     string     `json:"source"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func (Booking) TableName() string { return "bookings" }

type BookingContact struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingID string    `gorm:"index"`
	Name      *string
	Email     *string
	Phone     *string
}

func (BookingContact) TableName() string { return "booking_contacts" }

type BookingCheckinValue struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingID string    `gorm:"index"`
	FieldKey  string
	Value     *string
}

func (BookingCheckinValue) TableName() string { return "booking_checkin_values" }

type BookingGuest struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingID      string    `gorm:"index"`
	FullName       string
	DocumentNumber *string
}

func (BookingGuest) TableName() string { return "booking_guests" }
