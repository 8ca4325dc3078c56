package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingTotal(t *testing.T) {
	assert.Equal(t, 300.0, BookingTotal(100, 3))
	assert.Equal(t, 0.0, BookingTotal(100, 0))
	assert.Equal(t, 249.75, BookingTotal(83.25, 3))
}

func TestOrderTotal_TruncatesToInteger(t *testing.T) {
	assert.Equal(t, int64(36), OrderTotal(12, 3))
	// 12.50 * 3 = 37.50 -> stored as 37
	assert.Equal(t, int64(37), OrderTotal(12.50, 3))
	assert.Equal(t, int64(0), OrderTotal(0.99, 0))
}
