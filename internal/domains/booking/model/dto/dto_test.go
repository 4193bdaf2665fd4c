package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frigate/internal/domains/booking/model"
	"frigate/internal/domains/booking/model/dto"
	gModel "frigate/shared/model"
	"frigate/shared/timezone"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		RoomID:      "room-id",
		GuestName:   "Ailsa Craig",
		GuestEmail:  "ailsa@example.com",
		CheckIn:     "2025-05-01",
		CheckOut:    "2025-05-04",
		TotalAmount: 450,
	}

	booking, err := req.ToModel("BK-A1B2C3D4E", req.GuestEmail)

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID, "expected ID to be generated")
	assert.Equal(t, "BK-A1B2C3D4E", booking.BookingCode)
	assert.Equal(t, req.RoomID, booking.RoomID)
	assert.Equal(t, req.GuestName, booking.GuestName)
	assert.Equal(t, req.GuestEmail, booking.GuestEmail)
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), booking.CheckIn)
	assert.Equal(t, time.Date(2025, 5, 4, 0, 0, 0, 0, time.UTC), booking.CheckOut)
	assert.Equal(t, req.TotalAmount, booking.TotalAmount)
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Equal(t, model.PaymentStatusUnpaid, booking.PaymentStatus)
	assert.Empty(t, booking.PaymentID)
	assert.Equal(t, req.GuestEmail, booking.CreatedBy)
	assert.False(t, booking.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestCreateBookingRequest_ToModelInvalidDate(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{name: "bad check-in", checkIn: "01-05-2025", checkOut: "2025-05-04"},
		{name: "bad check-out", checkIn: "2025-05-01", checkOut: "tomorrow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateBookingRequest{
				RoomID:      "room-id",
				GuestName:   "Ailsa Craig",
				GuestEmail:  "ailsa@example.com",
				CheckIn:     tt.checkIn,
				CheckOut:    tt.checkOut,
				TotalAmount: 450,
			}

			_, err := req.ToModel("BK-A1B2C3D4E", req.GuestEmail)

			assert.Error(t, err)
		})
	}
}

func TestBookingResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	booking := model.Booking{
		ID:            "test-id",
		BookingCode:   "BK-A1B2C3D4E",
		RoomID:        "room-id",
		GuestName:     "Ailsa Craig",
		GuestEmail:    "ailsa@example.com",
		CheckIn:       time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2025, 5, 4, 0, 0, 0, 0, time.UTC),
		TotalAmount:   450,
		Status:        model.StatusConfirmed,
		PaymentStatus: model.PaymentStatusPaid,
		PaymentID:     "pay_123",
		RoomName:      "Deluxe Sea View",
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "ailsa@example.com",
			ModifiedBy: "ailsa@example.com",
		},
	}

	var response dto.BookingResponse
	response.FromModel(booking)

	assert.Equal(t, booking.ID, response.ID)
	assert.Equal(t, booking.BookingCode, response.BookingCode)
	assert.Equal(t, booking.RoomID, response.RoomID)
	assert.Equal(t, booking.RoomName, response.RoomName)
	assert.Equal(t, "2025-05-01", response.CheckIn)
	assert.Equal(t, "2025-05-04", response.CheckOut)
	assert.Equal(t, booking.TotalAmount, response.TotalAmount)
	assert.Equal(t, booking.Status, response.Status)
	assert.Equal(t, booking.PaymentStatus, response.PaymentStatus)
	assert.Equal(t, booking.PaymentID, response.PaymentID)
	assert.Equal(t, booking.CreatedBy, response.CreatedBy)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	models := []model.Booking{
		{ID: "one", BookingCode: "BK-AAAAAAAAA"},
		{ID: "two", BookingCode: "BK-BBBBBBBBB"},
		{ID: "three", BookingCode: "BK-CCCCCCCCC"},
	}

	var response dto.GetBookingsResponse
	response.FromModels(models, 7, 3)

	assert.Len(t, response.Bookings, 3)
	assert.Equal(t, 7, response.TotalData)
	assert.Equal(t, 3, response.TotalPage)
	assert.Equal(t, "BK-AAAAAAAAA", response.Bookings[0].BookingCode)
}
