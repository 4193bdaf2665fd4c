package dto

import (
	"time"

	"github.com/google/uuid"

	"frigate/internal/domains/booking/model"
	"frigate/shared"
	gDto "frigate/shared/dto"
	gModel "frigate/shared/model"
	"frigate/shared/timezone"
)

type CreateBookingRequest struct {
	RoomID      string  `json:"room_id"      validate:"required"`
	GuestName   string  `json:"guest_name"   validate:"required,max=100"`
	GuestEmail  string  `json:"guest_email"  validate:"required,email,max=100"`
	CheckIn     string  `json:"check_in"     validate:"required"`
	CheckOut    string  `json:"check_out"    validate:"required"`
	TotalAmount float64 `json:"total_amount" validate:"required,gt=0"`
}

func (c *CreateBookingRequest) ToModel(code, user string) (model.Booking, error) {
	checkIn, err := time.Parse("2006-01-02", c.CheckIn)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := time.Parse("2006-01-02", c.CheckOut)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:            uuid.NewString(),
		BookingCode:   code,
		RoomID:        c.RoomID,
		GuestName:     c.GuestName,
		GuestEmail:    c.GuestEmail,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		TotalAmount:   c.TotalAmount,
		Status:        model.StatusPending,
		PaymentStatus: model.PaymentStatusUnpaid,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=PENDING CONFIRMED CANCELLED"`
}

type BookingResponse struct {
	ID            string  `json:"id"`
	BookingCode   string  `json:"booking_code"`
	RoomID        string  `json:"room_id"`
	RoomName      string  `json:"room_name,omitempty"`
	GuestName     string  `json:"guest_name"`
	GuestEmail    string  `json:"guest_email"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	TotalAmount   float64 `json:"total_amount"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	PaymentID     string  `json:"payment_id,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.BookingCode = model.BookingCode
	r.RoomID = model.RoomID
	r.RoomName = model.RoomName
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.CheckIn = model.CheckIn.Format("2006-01-02")
	r.CheckOut = model.CheckOut.Format("2006-01-02")
	r.TotalAmount = model.TotalAmount
	r.Status = model.Status
	r.PaymentStatus = model.PaymentStatus
	r.PaymentID = model.PaymentID
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type StatsResponse struct {
	TotalBookings  int               `json:"total_bookings"`
	Revenue        float64           `json:"revenue"`
	TotalRooms     int               `json:"total_rooms"`
	AvailableRooms int               `json:"available_rooms"`
	RecentBookings []BookingResponse `json:"recent_bookings"`
}
