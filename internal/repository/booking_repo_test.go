package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Fenrir-OwO/hmsproject/internal/database"
	"github.com/Fenrir-OwO/hmsproject/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func seedRoom(t *testing.T, db *gorm.DB) *domain.Room {
	t.Helper()
	room := &domain.Room{
		RoomNumber:  "101",
		NumBeds:     2,
		RoomType:    domain.RoomStandardDouble,
		Price:       140,
		IsAvailable: true,
	}
	require.NoError(t, NewRoomRepository(db).Create(context.Background(), room))
	return room
}

func TestBookingRepository_CreateWithHold_SecondBookingLoses(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	room := seedRoom(t, db)

	rooms := NewRoomRepository(db)
	bookings := NewBookingRepository(db)

	first := &domain.RoomBooking{
		Reference:  "ref-1",
		RoomID:     room.ID,
		PersonID:   7,
		NumNights:  2,
		TotalPrice: 280,
	}
	require.NoError(t, bookings.CreateWithHold(ctx, first))

	held, err := rooms.GetByID(ctx, room.ID)
	require.NoError(t, err)
	assert.False(t, held.IsAvailable)

	second := &domain.RoomBooking{
		Reference:  "ref-2",
		RoomID:     room.ID,
		PersonID:   8,
		NumNights:  1,
		TotalPrice: 140,
	}
	err = bookings.CreateWithHold(ctx, second)
	assert.ErrorIs(t, err, ErrRoomUnavailable)

	// The losing request must not leave a booking row behind.
	mine, err := bookings.ListByPerson(ctx, 8)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestBookingRepository_DeleteWithRelease_RestoresAvailability(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	room := seedRoom(t, db)

	rooms := NewRoomRepository(db)
	bookings := NewBookingRepository(db)

	b := &domain.RoomBooking{
		Reference:  "ref-1",
		RoomID:     room.ID,
		PersonID:   7,
		NumNights:  2,
		TotalPrice: 280,
	}
	require.NoError(t, bookings.CreateWithHold(ctx, b))
	require.NoError(t, bookings.DeleteWithRelease(ctx, b.ID, room.ID))

	released, err := rooms.GetByID(ctx, room.ID)
	require.NoError(t, err)
	assert.True(t, released.IsAvailable)

	mine, err := bookings.ListByPerson(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, mine)

	// The freed room can be booked again.
	again := &domain.RoomBooking{
		Reference:  "ref-2",
		RoomID:     room.ID,
		PersonID:   8,
		NumNights:  1,
		TotalPrice: 140,
	}
	assert.NoError(t, bookings.CreateWithHold(ctx, again))
}
