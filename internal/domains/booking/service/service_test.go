package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frigate/config"
	kafkaMocks "frigate/infras/kafka/mocks"
	mailerMocks "frigate/infras/mailer/mocks"
	"frigate/infras/otel/mocks"
	bookingMocks "frigate/internal/domains/booking/mocks"
	"frigate/internal/domains/booking/model"
	"frigate/internal/domains/booking/model/dto"
	"frigate/internal/domains/booking/service"
	roomMocks "frigate/internal/domains/room/mocks"
	roomModel "frigate/internal/domains/room/model"
	cacheMocks "frigate/shared/cache/mocks"
	"frigate/shared/constant"
	gDto "frigate/shared/dto"
	"frigate/shared/failure"
)

type serviceMocks struct {
	repo     *bookingMocks.MockBooking
	roomRepo *roomMocks.MockRoom
	cache    *cacheMocks.MockRedisCache
	mailer   *mailerMocks.MockMailer
	events   *kafkaMocks.MockClient
}

func newService(t *testing.T) (service.Booking, serviceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := serviceMocks{
		repo:     bookingMocks.NewMockBooking(ctrl),
		roomRepo: roomMocks.NewMockRoom(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		mailer:   mailerMocks.NewMockMailer(ctrl),
		events:   kafkaMocks.NewMockClient(ctrl),
	}

	// Cache writes, emails, and events run on background goroutines; allow
	// them without requiring them so subtests never race with ctrl.Finish.
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.events.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.App.Name = "Islay Frigate Hotel"
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topic.BookingEvents = "booking-events"

	svc := service.New(m.repo, m.roomRepo, cfg, m.cache, mocks.NewOtel(), m.mailer, m.events)

	return svc, m
}

func TestBookingService_Create(t *testing.T) {
	room := roomModel.Room{ID: "room-id", Name: "Deluxe Sea View"}

	validReq := dto.CreateBookingRequest{
		RoomID:      "room-id",
		GuestName:   "Ailsa Craig",
		GuestEmail:  "ailsa@example.com",
		CheckIn:     "2025-05-01",
		CheckOut:    "2025-05-04",
		TotalAmount: 450,
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(m serviceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  validReq,
			setupMock: func(m serviceMocks) {
				m.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "room not found",
			req:  validReq,
			setupMock: func(m serviceMocks) {
				m.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "invalid date format",
			req: dto.CreateBookingRequest{
				RoomID:      "room-id",
				GuestName:   "Ailsa Craig",
				GuestEmail:  "ailsa@example.com",
				CheckIn:     "01/05/2025",
				CheckOut:    "2025-05-04",
				TotalAmount: 450,
			},
			setupMock: func(m serviceMocks) {
				m.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "repository error",
			req:  validReq,
			setupMock: func(m serviceMocks) {
				m.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Regexp(t, `^BK-[A-Z0-9]{9}$`, res.BookingCode)
			assert.Equal(t, model.StatusPending, res.Status)
			assert.Equal(t, model.PaymentStatusUnpaid, res.PaymentStatus)
			assert.Equal(t, room.Name, res.RoomName)
		})
	}
}

func TestBookingService_GuestLookup(t *testing.T) {
	booking := model.Booking{
		ID:          "test-id",
		BookingCode: "BK-A1B2C3D4E",
		GuestEmail:  "ailsa@example.com",
		CheckIn:     time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2025, 5, 4, 0, 0, 0, 0, time.UTC),
		Status:      model.StatusPending,
	}

	tests := []struct {
		name      string
		setupMock func(m serviceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "booking found",
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			wantErr: false,
		},
		{
			name: "code and email do not match",
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "repository error",
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			res, err := svc.GuestLookup(context.Background(), "BK-A1B2C3D4E", "ailsa@example.com")

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, booking.BookingCode, res.BookingCode)
		})
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	booking := model.Booking{
		ID:          "test-id",
		BookingCode: "BK-A1B2C3D4E",
		GuestName:   "Ailsa Craig",
		GuestEmail:  "ailsa@example.com",
		Status:      model.StatusPending,
	}

	tests := []struct {
		name      string
		setupMock func(m serviceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update",
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "repository error",
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
			res, err := svc.UpdateStatus(ctx, dto.UpdateStatusRequest{Status: model.StatusCancelled}, booking.ID)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, model.StatusCancelled, res.Status)
		})
	}
}

func TestBookingService_Stats(t *testing.T) {
	svc, m := newService(t)

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))
	m.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(12, nil)
	m.repo.EXPECT().
		SumTotalAmount(gomock.Any(), gomock.Any()).
		Return(1830.5, nil)
	m.roomRepo.EXPECT().
		Count(gomock.Any(), gDto.FilterGroup{}).
		Return(6, nil)
	m.roomRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(4, nil)
	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{{ID: "latest", BookingCode: "BK-AAAAAAAAA"}}, nil)

	res, err := svc.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 12, res.TotalBookings)
	assert.Equal(t, 1830.5, res.Revenue)
	assert.Equal(t, 6, res.TotalRooms)
	assert.Equal(t, 4, res.AvailableRooms)
	assert.Len(t, res.RecentBookings, 1)
}

func TestBookingService_GetAll(t *testing.T) {
	svc, m := newService(t)

	params := gDto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: gDto.SortDirDesc}

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)
	m.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)
	m.repo.EXPECT().
		GetAll(gomock.Any(), params, gomock.Any()).
		Return([]model.Booking{{ID: "one"}, {ID: "two"}}, nil)

	res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.Bookings, 2)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
}
