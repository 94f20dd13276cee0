package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"ai-travelmate-be/internal/entity"
	"ai-travelmate-be/internal/repository/specification"
	"ai-travelmate-be/internal/repository/unitofwork"
	"ai-travelmate-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.StationRepository())
	assert.NotNil(t, uow.TransitRouteRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check Station Repository", func(t *testing.T) {
		count, err := uow.StationRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Station count: %d", count)
	})

	t.Run("Check Conversation Turn Repository", func(t *testing.T) {
		count, err := uow.ConversationTurnRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("ConversationTurn count: %d", count)
	})

	t.Run("Check Transactional Route Create", func(t *testing.T) {
		suffix := uuid.New().String()[:8]

		origin := &entity.Station{
			Id:   uuid.New(),
			Name: "Integration Origin " + suffix,
			City: "Mumbai",
			Kind: "railway_station",
		}
		destination := &entity.Station{
			Id:   uuid.New(),
			Name: "Integration Destination " + suffix,
			City: "Pune",
			Kind: "railway_station",
		}

		ctx := context.Background()
		err := uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		err = uow.StationRepository().Create(ctx, origin)
		assert.NoError(t, err)
		err = uow.StationRepository().Create(ctx, destination)
		assert.NoError(t, err)

		routeId := uuid.New()
		route := &entity.TransitRoute{
			Id:                   routeId,
			Name:                 "Integration Express " + suffix,
			Mode:                 "train",
			Operator:             "Integration Railway",
			OriginStationId:      origin.Id,
			DestinationStationId: destination.Id,
			OriginCity:           "Mumbai",
			DestinationCity:      "Pune",
			Price:                199,
			DurationMinutes:      180,
			DistanceKm:           192,
			Departures: []entity.RouteDeparture{
				{Id: uuid.New(), RouteId: routeId, DepartureTime: "08:15", ArrivalTime: "11:15", Platform: "2"},
			},
		}

		err = uow.TransitRouteRepository().Create(ctx, route)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		// The departure must come back with its parent.
		found, err := uow.TransitRouteRepository().FindOne(ctx, specification.ByID{ID: routeId})
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Len(t, found.Departures, 1)
		}

		t.Log("Successfully created Route with Departure in Transaction")
	})

	t.Run("Check Corridor Stat Upsert", func(t *testing.T) {
		ctx := context.Background()
		// Two increments must land on one row.
		now := time.Now()
		err := uow.CorridorStatRepository().IncrementSearch(ctx, "IntegrationCityA", "IntegrationCityB", "bus", now)
		assert.NoError(t, err)
		err = uow.CorridorStatRepository().IncrementSearch(ctx, "IntegrationCityA", "IntegrationCityB", "bus", now.Add(time.Minute))
		assert.NoError(t, err)

		stats, err := uow.CorridorStatRepository().FindAll(ctx,
			specification.Filter("origin_city", "IntegrationCityA"),
			specification.Filter("destination_city", "IntegrationCityB"),
		)
		assert.NoError(t, err)
		if assert.Len(t, stats, 1) {
			assert.GreaterOrEqual(t, stats[0].SearchCount, int64(2))
		}
	})
}
