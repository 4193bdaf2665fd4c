package model

import (
	"github.com/lib/pq"

	"frigate/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldCapacity    = "capacity"
	FieldAmenities   = "amenities"
	FieldImages      = "images"
	FieldAvailable   = "is_available"
)

type Room struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	Price       float64        `db:"price"`
	Capacity    int            `db:"capacity"`
	Amenities   pq.StringArray `db:"amenities"`
	Images      pq.StringArray `db:"images"`
	Available   bool           `db:"is_available"`
	model.Metadata
}
