package model

import (
	"crypto/rand"
	"fmt"
	"time"

	roomModel "frigate/internal/domains/room/model"
	"frigate/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldBookingCode   = "booking_code"
	FieldRoomID        = "room_id"
	FieldGuestName     = "guest_name"
	FieldGuestEmail    = "guest_email"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldTotalAmount   = "total_amount"
	FieldStatus        = "status"
	FieldPaymentStatus = "payment_status"
	FieldPaymentID     = "payment_id"
)

const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"

	PaymentStatusUnpaid = "UNPAID"
	PaymentStatusPaid   = "PAID"
)

const (
	codePrefix  = "BK-"
	codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength  = 9
)

type Booking struct {
	ID            string    `db:"id"`
	BookingCode   string    `db:"booking_code"`
	RoomID        string    `db:"room_id"`
	GuestName     string    `db:"guest_name"`
	GuestEmail    string    `db:"guest_email"`
	CheckIn       time.Time `db:"check_in"`
	CheckOut      time.Time `db:"check_out"`
	TotalAmount   float64   `db:"total_amount"`
	Status        string    `db:"status"`
	PaymentStatus string    `db:"payment_status"`
	PaymentID     string    `db:"payment_id"`
	RoomName      string    `db:"room_name" table:"rooms" column:"name"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return fmt.Sprintf("LEFT JOIN %s ON %s.%s = %s.%s",
		roomModel.TableName,
		roomModel.TableName, roomModel.FieldID,
		TableName, FieldRoomID,
	)
}

// NewBookingCode generates the guest-facing reference: "BK-" followed by nine
// uppercase alphanumerics. The code doubles as the payment receipt identifier.
func NewBookingCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate booking code: %w", err)
	}

	for i, b := range buf {
		buf[i] = codeCharset[int(b)%len(codeCharset)]
	}

	return codePrefix + string(buf), nil
}
