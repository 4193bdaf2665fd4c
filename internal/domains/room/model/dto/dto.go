package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"frigate/internal/domains/room/model"
	"frigate/shared"
	gDto "frigate/shared/dto"
	gModel "frigate/shared/model"
	"frigate/shared/timezone"
)

type CreateRoomRequest struct {
	Name        string   `json:"name"         validate:"required,max=100"`
	Description string   `json:"description"  validate:"omitempty,max=2000"`
	Price       float64  `json:"price"        validate:"required,gte=0"`
	Capacity    int      `json:"capacity"     validate:"required,min=1"`
	Amenities   []string `json:"amenities"    validate:"omitempty"`
	Images      []string `json:"images"       validate:"omitempty,dive,url"`
	Available   *bool    `json:"is_available" validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	available := true
	if c.Available != nil {
		available = *c.Available
	}

	return model.Room{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Price:       c.Price,
		Capacity:    c.Capacity,
		Amenities:   pq.StringArray(c.Amenities),
		Images:      pq.StringArray(c.Images),
		Available:   available,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Name        string         `db:"name"         json:"name"         validate:"omitempty,max=100"`
	Description string         `db:"description"  json:"description"  validate:"omitempty,max=2000"`
	Price       *float64       `db:"price"        json:"price"        validate:"omitempty,gte=0"`
	Capacity    *int           `db:"capacity"     json:"capacity"     validate:"omitempty,min=1"`
	Amenities   pq.StringArray `db:"amenities"    json:"amenities"    validate:"omitempty"`
	Images      pq.StringArray `db:"images"       json:"images"       validate:"omitempty,dive,url"`
	Available   *bool          `db:"is_available" json:"is_available" validate:"omitempty"`
}

type RoomResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Capacity    int      `json:"capacity"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
	Available   bool     `json:"is_available"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Price = model.Price
	r.Capacity = model.Capacity
	r.Amenities = model.Amenities
	r.Images = model.Images
	r.Available = model.Available
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
