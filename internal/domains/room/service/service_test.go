package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frigate/config"
	"frigate/infras/otel/mocks"
	roomMocks "frigate/internal/domains/room/mocks"
	"frigate/internal/domains/room/model"
	"frigate/internal/domains/room/model/dto"
	"frigate/internal/domains/room/service"
	cacheMocks "frigate/shared/cache/mocks"
	"frigate/shared/constant"
	gDto "frigate/shared/dto"
	"frigate/shared/failure"
	gModel "frigate/shared/model"
)

type serviceMocks struct {
	repo  *roomMocks.MockRoom
	cache *cacheMocks.MockRedisCache
}

func newService(t *testing.T) (service.Room, serviceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := serviceMocks{
		repo:  roomMocks.NewMockRoom(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	// Cache writes and invalidation run on background goroutines; allow
	// them without requiring them so subtests never race with ctrl.Finish.
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func TestRoomService_Create(t *testing.T) {
	req := dto.CreateRoomRequest{
		Name:     "Frigate Bird - King Suite",
		Price:    180,
		Capacity: 2,
	}

	tests := []struct {
		name      string
		setupMock func(m serviceMocks)
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) error {
						assert.NotEmpty(t, room.ID)
						assert.Equal(t, req.Name, room.Name)
						assert.True(t, room.Available)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "repository error",
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("insert failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
			err := svc.Create(ctx, req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_Get(t *testing.T) {
	room := model.Room{
		ID:        "room-id",
		Name:      "Caledonia - Double Room",
		Price:     150,
		Capacity:  2,
		Amenities: pq.StringArray{"Garden View", "Double Bed"},
		Available: true,
		Metadata:  gModel.Metadata{CreatedBy: "seed"},
	}

	tests := []struct {
		name      string
		setupMock func(m serviceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "found",
			setupMock: func(m serviceMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
			},
			wantErr: false,
		},
		{
			name: "not found",
			setupMock: func(m serviceMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "repository error",
			setupMock: func(m serviceMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, errors.New("query failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			res, err := svc.Get(context.Background(), "room-id")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, room.ID, res.ID)
			assert.Equal(t, room.Name, res.Name)
			assert.True(t, res.Available)
		})
	}
}

func TestRoomService_GetAll(t *testing.T) {
	rooms := []model.Room{
		{ID: "room-1", Name: "Caledonia - Double Room"},
		{ID: "room-2", Name: "Destiny - Twin Room"},
	}

	svc, m := newService(t)

	// Both the list and count lookups miss the cache.
	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)
	m.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)
	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(rooms, nil)

	req := gDto.QueryParams{Page: 1, Limit: 10}
	res, err := svc.GetAll(context.Background(), req, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.Rooms, 2)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
}

func TestRoomService_Update(t *testing.T) {
	price := 165.0

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
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "room not found",
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "repository error",
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
			err := svc.Update(ctx, dto.UpdateRoomRequest{Price: &price}, "room-id")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestRoomService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m serviceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful delete",
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				m.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "room not found",
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			err := svc.Delete(context.Background(), "room-id")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}
