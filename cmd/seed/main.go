package main

import (
	"context"

	"github.com/Fenrir-OwO/hmsproject/internal/config"
	"github.com/Fenrir-OwO/hmsproject/internal/database"
	"github.com/Fenrir-OwO/hmsproject/internal/domain"
	"github.com/Fenrir-OwO/hmsproject/internal/repository"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a development database with a staff account, a guest account
// and a small catalog. Safe to re-run: it skips when rooms already
// exist.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	ctx := context.Background()

	roomRepo := repository.NewRoomRepository(db)
	existing, err := roomRepo.List(ctx, repository.RoomFilter{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to check rooms")
	}
	if len(existing) > 0 {
		log.Info().Int("rooms", len(existing)).Msg("database already seeded, nothing to do")
		return
	}

	personRepo := repository.NewPersonRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)

	admin := seedPerson(ctx, personRepo, "admin", "admin@hotel.local", "adminpass123", domain.RoleStaff)
	if err := employeeRepo.Create(ctx, &domain.Employee{
		PersonID:   admin.ID,
		EmployeeID: "EMP-001",
		Salary:     300000,
		JobTitle:   "Manager",
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to seed employee record")
	}
	seedPerson(ctx, personRepo, "guest", "guest@hotel.local", "guestpass123", domain.RoleGuest)

	rooms := []domain.Room{
		{RoomNumber: "101", NumBeds: 1, RoomType: domain.RoomStandardSingle, Price: 80, IsAvailable: true},
		{RoomNumber: "102", NumBeds: 1, RoomType: domain.RoomPremiumSingle, Price: 120, IsAvailable: true},
		{RoomNumber: "201", NumBeds: 2, RoomType: domain.RoomStandardDouble, Price: 140, IsAvailable: true},
		{RoomNumber: "202", NumBeds: 2, RoomType: domain.RoomPremiumDouble, Price: 190, IsAvailable: true},
		{RoomNumber: "301", NumBeds: 4, RoomType: domain.RoomLuxuryFamily, Price: 320, IsAvailable: true},
	}
	for i := range rooms {
		if err := roomRepo.Create(ctx, &rooms[i]); err != nil {
			log.Fatal().Err(err).Str("room", rooms[i].RoomNumber).Msg("failed to seed room")
		}
	}

	foods := []domain.Food{
		{ItemNumber: "F-001", Description: "Margherita pizza", Price: 12.5, FoodType: domain.FoodPizza},
		{ItemNumber: "F-002", Description: "Cheeseburger with fries", Price: 9.9, FoodType: domain.FoodBurger},
		{ItemNumber: "F-003", Description: "Penne arrabbiata", Price: 11, FoodType: domain.FoodPasta},
	}
	for i := range foods {
		if err := foodRepo.Create(ctx, &foods[i]); err != nil {
			log.Fatal().Err(err).Str("item", foods[i].ItemNumber).Msg("failed to seed food")
		}
	}

	services := []domain.Service{
		{ServiceID: "S-001", Description: "Kids playing zone, per hour", Price: 15, ServiceType: domain.ServiceKidsPlayingZone},
		{ServiceID: "S-002", Description: "Gym day pass", Price: 10, ServiceType: domain.ServiceGym},
		{ServiceID: "S-003", Description: "Swimming pool day pass", Price: 20, ServiceType: domain.ServiceSwimmingPool},
		{ServiceID: "S-004", Description: "Gaming zone, per hour", Price: 12, ServiceType: domain.ServiceGamingZone},
		{ServiceID: "S-005", Description: "Bicycle ride, half day", Price: 25, ServiceType: domain.ServiceBicycleRides},
		{ServiceID: "S-006", Description: "Tourist bus city tour", Price: 40, ServiceType: domain.ServiceTouristBus},
	}
	for i := range services {
		if err := serviceRepo.Create(ctx, &services[i]); err != nil {
			log.Fatal().Err(err).Str("service", services[i].ServiceID).Msg("failed to seed service")
		}
	}

	items := []domain.InventoryItem{
		{Name: "towels", Quantity: 120},
		{Name: "bed linen sets", Quantity: 80},
		{Name: "toiletry kits", Quantity: 200},
	}
	for i := range items {
		if err := inventoryRepo.Create(ctx, &items[i]); err != nil {
			log.Fatal().Err(err).Str("item", items[i].Name).Msg("failed to seed inventory item")
		}
	}

	log.Info().
		Int("rooms", len(rooms)).
		Int("foods", len(foods)).
		Int("services", len(services)).
		Int("inventory", len(items)).
		Msg("seed complete")
}

func seedPerson(ctx context.Context, repo *repository.PersonRepository, username, email, password string, role domain.PersonRole) *domain.Person {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}

	p := &domain.Person{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := repo.Create(ctx, p); err != nil {
		log.Fatal().Err(err).Str("username", username).Msg("failed to seed person")
	}
	return p
}
