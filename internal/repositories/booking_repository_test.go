package repositories_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"innkeep/internal/models/db_models"
	"innkeep/internal/repositories"
	"innkeep/pkg/utils"
)

func seedBooking(t *testing.T, db *gorm.DB, id string) {
	t.Helper()
	name := "Ada"
	require.NoError(t, db.Create(&db_models.Booking{ID: id, PropertyID: uuid.New(), GuestName: &name, Source: "direct"}).Error)
	require.NoError(t, db.Create(&db_models.BookingContact{ID: uuid.New(), BookingID: id, Name: &name}).Error)
	require.NoError(t, db.Create(&db_models.BookingCheckinValue{ID: uuid.New(), BookingID: id, FieldKey: "nationality"}).Error)
	require.NoError(t, db.Create(&db_models.BookingGuest{ID: uuid.New(), BookingID: id, FullName: name}).Error)
}

func count(t *testing.T, db *gorm.DB, model interface{}, bookingColumn, id string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Where(bookingColumn+" = ?", id).Count(&n).Error)
	return n
}

func TestBookingDeleteCascade(t *testing.T) {
	db := newTestDB(t,
		&db_models.Booking{},
		&db_models.BookingContact{},
		&db_models.BookingCheckinValue{},
		&db_models.BookingGuest{},
	)
	seedBooking(t, db, "B1")
	seedBooking(t, db, "B2")

	repo := repositories.NewBookingRepository(db)
	require.NoError(t, repo.DeleteCascade(context.Background(), "B1"))

	assert.Zero(t, count(t, db, &db_models.Booking{}, "id", "B1"))
	assert.Zero(t, count(t, db, &db_models.BookingContact{}, "booking_id", "B1"))
	assert.Zero(t, count(t, db, &db_models.BookingCheckinValue{}, "booking_id", "B1"))
	assert.Zero(t, count(t, db, &db_models.BookingGuest{}, "booking_id", "B1"))

	// other bookings are untouched
	assert.Equal(t, int64(1), count(t, db, &db_models.Booking{}, "id", "B2"))
	assert.Equal(t, int64(1), count(t, db, &db_models.BookingGuest{}, "booking_id", "B2"))
}

func TestBookingDeleteUnknownID(t *testing.T) {
	db := newTestDB(t,
		&db_models.Booking{},
		&db_models.BookingContact{},
		&db_models.BookingCheckinValue{},
		&db_models.BookingGuest{},
	)

	err := repositories.NewBookingRepository(db).DeleteCascade(context.Background(), "missing")
	assert.ErrorIs(t, err, utils.ErrBookingNotFound)
}

func TestBookingDeleteRollsBackOnFailure(t *testing.T) {
	// booking_guests is missing, so the third child delete fails
	db := newTestDB(t,
		&db_models.Booking{},
		&db_models.BookingContact{},
		&db_models.BookingCheckinValue{},
	)
	require.NoError(t, db.Create(&db_models.Booking{ID: "B1", PropertyID: uuid.New(), Source: "direct"}).Error)
	require.NoError(t, db.Create(&db_models.BookingContact{ID: uuid.New(), BookingID: "B1"}).Error)

	err := repositories.NewBookingRepository(db).DeleteCascade(context.Background(), "B1")
	require.Error(t, err)

	assert.Equal(t, int64(1), count(t, db, &db_models.BookingContact{}, "booking_id", "B1"))
	assert.Equal(t, int64(1), count(t, db, &db_models.Booking{}, "id", "B1"))
}
