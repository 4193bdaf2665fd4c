package main

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"frigate/config"
	"frigate/infras/otel"
	"frigate/infras/postgres"
	authModel "frigate/internal/domains/auth/model"
	authRepository "frigate/internal/domains/auth/repository"
	roomModel "frigate/internal/domains/room/model"
	roomRepository "frigate/internal/domains/room/repository"
	"frigate/shared/logger"
	gModel "frigate/shared/model"
	"frigate/shared/password"
	"frigate/shared/timezone"
)

const seededBy = "seed"

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	db := postgres.New(cfg)
	otl := otel.New(cfg)
	ctx := context.Background()

	rooms := roomRepository.New(db, otl)
	for _, room := range seedRooms() {
		if err := rooms.Insert(ctx, room); err != nil {
			log.Fatalf("seeding room %s: %v", room.Name, err)
		}
	}

	hashed, err := password.Hash("password123")
	if err != nil {
		log.Fatalf("hashing admin password: %v", err)
	}

	admins := authRepository.New(db, otl)
	if err := admins.Insert(ctx, authModel.Admin{
		ID:       uuid.NewString(),
		Username: "admin",
		Password: hashed,
		Metadata: metadata(),
	}); err != nil {
		log.Fatalf("seeding admin: %v", err)
	}

	log.Println("database seeded")
}

func metadata() gModel.Metadata {
	now := timezone.Now()

	return gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  seededBy,
		ModifiedBy: seededBy,
	}
}

func seedRooms() []roomModel.Room {
	return []roomModel.Room{
		{
			ID:          uuid.NewString(),
			Name:        "Frigate Bird - King Suite",
			Description: "Our premier king room offering breathtaking harbour views and a modern en-suite. Perfect for couples seeking a romantic getaway.",
			Price:       180,
			Capacity:    2,
			Amenities:   pq.StringArray{"Harbour View", "King Bed", "En-suite", "TV", "Tea/Coffee", "Hairdryer", "Desk"},
			Images:      pq.StringArray{"https://images.unsplash.com/photo-1590490360182-c33d57733427?auto=format&fit=crop&q=80"},
			Available:   true,
			Metadata:    metadata(),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Five Sisters - Family Room",
			Description: "Spacious family accommodation with a double bed and two singles. Enjoy stunning views of the harbour directly from your window.",
			Price:       240,
			Capacity:    4,
			Amenities:   pq.StringArray{"Harbour View", "Double Bed", "2 Single Beds", "En-suite", "TV", "Tea/Coffee", "Desk"},
			Images:      pq.StringArray{"https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?auto=format&fit=crop&q=80"},
			Available:   true,
			Metadata:    metadata(),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Caledonia - Double Room",
			Description: "A bright and cozy double room with an en-suite bathroom and peaceful garden views. Newly renovated for maximum comfort.",
			Price:       150,
			Capacity:    2,
			Amenities:   pq.StringArray{"Garden View", "Double Bed", "En-suite", "TV", "Tea/Coffee", "Hairdryer"},
			Images:      pq.StringArray{"https://images.unsplash.com/photo-1566073771259-6a8506099945?auto=format&fit=crop&q=80"},
			Available:   true,
			Metadata:    metadata(),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Nancy Glen - Single Room",
			Description: "A charming single room with harbour views. Features a private (separate) bathroom for your exclusive use.",
			Price:       110,
			Capacity:    1,
			Amenities:   pq.StringArray{"Harbour View", "Single Bed", "Private Separate Bathroom", "TV", "Tea/Coffee", "Desk"},
			Images:      pq.StringArray{"https://images.unsplash.com/photo-1505691938895-1758d7eaa511?auto=format&fit=crop&q=80"},
			Available:   true,
			Metadata:    metadata(),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Destiny - Twin Room",
			Description: "Bright twin room with garden views and access to a shared bathroom. Ideal for friends or family members.",
			Price:       130,
			Capacity:    2,
			Amenities:   pq.StringArray{"Garden View", "Twin Beds", "Shared Bathroom", "TV", "Tea/Coffee", "Desk"},
			Images:      pq.StringArray{"https://images.unsplash.com/photo-1554995207-c18c203602cb?auto=format&fit=crop&q=80"},
			Available:   true,
			Metadata:    metadata(),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Village Belle - Double Room",
			Description: "Enjoy classic sea views from this bright double room. Includes access to our well-maintained shared facilities.",
			Price:       140,
			Capacity:    2,
			Amenities:   pq.StringArray{"Sea View", "Double Bed", "Shared Bathroom", "TV", "Tea/Coffee", "Hairdryer"},
			Images:      pq.StringArray{"https://images.unsplash.com/photo-1595576508898-0ad5c879a061?auto=format&fit=crop&q=80"},
			Available:   true,
			Metadata:    metadata(),
		},
	}
}
