package main

import (
	"log"
	"os"

	"ai-travelmate-be/internal/constant"
	"ai-travelmate-be/internal/model"
	"ai-travelmate-be/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding Transit Catalog...")

	stations := seedStations(db)
	seedRoutes(db, stations)

	log.Println("Catalog seeding completed!")

	log.Println("Seeding Service Alerts...")
	SeedServiceAlerts(db)
}

// seedStations ensures the station rows exist and returns them keyed by name.
func seedStations(db *gorm.DB) map[string]model.Station {
	stations := []model.Station{
		{Name: "Mumbai CSMT", City: "Mumbai", Kind: constant.StationKindRailwayStation},
		{Name: "Dadar Railway Station", City: "Mumbai", Kind: constant.StationKindRailwayStation},
		{Name: "Mumbai Central Bus Depot", City: "Mumbai", Kind: constant.StationKindBusTerminal},
		{Name: "Pune Junction", City: "Pune", Kind: constant.StationKindRailwayStation},
		{Name: "Shivajinagar Bus Stand", City: "Pune", Kind: constant.StationKindBusTerminal},
		{Name: "New Delhi Railway Station", City: "Delhi", Kind: constant.StationKindRailwayStation},
		{Name: "Kashmere Gate ISBT", City: "Delhi", Kind: constant.StationKindBusTerminal},
		{Name: "Jaipur Junction", City: "Jaipur", Kind: constant.StationKindRailwayStation},
		{Name: "Sindhi Camp Bus Stand", City: "Jaipur", Kind: constant.StationKindBusTerminal},
		{Name: "KSR Bengaluru City Junction", City: "Bengaluru", Kind: constant.StationKindRailwayStation},
		{Name: "Majestic Bus Station", City: "Bengaluru", Kind: constant.StationKindBusTerminal},
		{Name: "Chennai Central", City: "Chennai", Kind: constant.StationKindRailwayStation},
		{Name: "CMBT Chennai", City: "Chennai", Kind: constant.StationKindBusTerminal},
		{Name: "Madgaon Junction", City: "Goa", Kind: constant.StationKindRailwayStation},
		{Name: "Panaji Bus Stand", City: "Goa", Kind: constant.StationKindBusTerminal},
		{Name: "Ahmedabad Junction", City: "Ahmedabad", Kind: constant.StationKindRailwayStation},
		{Name: "Nashik Mahamarg Bus Stand", City: "Nashik", Kind: constant.StationKindBusTerminal},
	}

	byName := make(map[string]model.Station, len(stations))
	for _, s := range stations {
		var existing model.Station
		if err := db.Where("name = ?", s.Name).First(&existing).Error; err == nil {
			byName[s.Name] = existing
			continue
		}

		if err := db.Create(&s).Error; err != nil {
			log.Printf("Error creating station '%s': %v", s.Name, err)
			continue
		}
		log.Printf("Created station: %s (%s)", s.Name, s.City)
		byName[s.Name] = s
	}
	return byName
}

func seedRoutes(db *gorm.DB, stations map[string]model.Station) {
	daily := datatypes.JSON(nil) // null days means the service runs every day
	weekdays := datatypes.JSON([]byte(`["mon","tue","wed","thu","fri"]`))
	weekend := datatypes.JSON([]byte(`["sat","sun"]`))

	routes := []model.TransitRoute{
		{
			Name: "Deccan Express", Mode: "train", Operator: "Central Railway",
			OriginStationId: stations["Mumbai CSMT"].Id, DestinationStationId: stations["Pune Junction"].Id,
			OriginCity: "Mumbai", DestinationCity: "Pune",
			Price: 145, DurationMinutes: 195, DistanceKm: 192,
			Departures: []model.RouteDeparture{
				{DepartureTime: "07:00", ArrivalTime: "10:15", Platform: "5", Days: daily},
				{DepartureTime: "15:10", ArrivalTime: "18:25", Platform: "7", Days: daily},
			},
		},
		{
			Name: "Deccan Queen", Mode: "train", Operator: "Central Railway",
			OriginStationId: stations["Mumbai CSMT"].Id, DestinationStationId: stations["Pune Junction"].Id,
			OriginCity: "Mumbai", DestinationCity: "Pune",
			Price: 170, DurationMinutes: 185, DistanceKm: 192,
			Departures: []model.RouteDeparture{
				{DepartureTime: "17:10", ArrivalTime: "20:15", Platform: "8", Days: daily},
			},
		},
		{
			Name: "Mumbai-Pune Shivneri", Mode: "bus", Operator: "MSRTC",
			OriginStationId: stations["Mumbai Central Bus Depot"].Id, DestinationStationId: stations["Shivajinagar Bus Stand"].Id,
			OriginCity: "Mumbai", DestinationCity: "Pune",
			Price: 420, DurationMinutes: 210, DistanceKm: 148,
			Departures: []model.RouteDeparture{
				{DepartureTime: "06:30", ArrivalTime: "10:00", Days: daily},
				{DepartureTime: "09:00", ArrivalTime: "12:30", Days: daily},
				{DepartureTime: "13:30", ArrivalTime: "17:00", Days: daily},
				{DepartureTime: "18:00", ArrivalTime: "21:30", Days: daily},
			},
		},
		{
			Name: "Pune-Mumbai Shivneri", Mode: "bus", Operator: "MSRTC",
			OriginStationId: stations["Shivajinagar Bus Stand"].Id, DestinationStationId: stations["Mumbai Central Bus Depot"].Id,
			OriginCity: "Pune", DestinationCity: "Mumbai",
			Price: 420, DurationMinutes: 210, DistanceKm: 148,
			Departures: []model.RouteDeparture{
				{DepartureTime: "07:00", ArrivalTime: "10:30", Days: daily},
				{DepartureTime: "16:30", ArrivalTime: "20:00", Days: daily},
			},
		},
		{
			Name: "Ajmer Shatabdi", Mode: "train", Operator: "Northern Railway",
			OriginStationId: stations["New Delhi Railway Station"].Id, DestinationStationId: stations["Jaipur Junction"].Id,
			OriginCity: "Delhi", DestinationCity: "Jaipur",
			Price: 640, DurationMinutes: 265, DistanceKm: 309,
			Departures: []model.RouteDeparture{
				{DepartureTime: "06:10", ArrivalTime: "10:35", Platform: "3", Days: weekdays},
			},
		},
		{
			Name: "Delhi-Jaipur Volvo", Mode: "bus", Operator: "RSRTC",
			OriginStationId: stations["Kashmere Gate ISBT"].Id, DestinationStationId: stations["Sindhi Camp Bus Stand"].Id,
			OriginCity: "Delhi", DestinationCity: "Jaipur",
			Price: 550, DurationMinutes: 330, DistanceKm: 281,
			Departures: []model.RouteDeparture{
				{DepartureTime: "08:00", ArrivalTime: "13:30", Days: daily},
				{DepartureTime: "23:00", ArrivalTime: "04:30", Days: daily},
			},
		},
		{
			Name: "Shatabdi Express", Mode: "train", Operator: "Southern Railway",
			OriginStationId: stations["KSR Bengaluru City Junction"].Id, DestinationStationId: stations["Chennai Central"].Id,
			OriginCity: "Bengaluru", DestinationCity: "Chennai",
			Price: 820, DurationMinutes: 300, DistanceKm: 362,
			Departures: []model.RouteDeparture{
				{DepartureTime: "06:00", ArrivalTime: "11:00", Platform: "1", Days: daily},
				{DepartureTime: "17:30", ArrivalTime: "22:25", Platform: "2", Days: daily},
			},
		},
		{
			Name: "Bengaluru-Chennai AC Sleeper", Mode: "bus", Operator: "KSRTC",
			OriginStationId: stations["Majestic Bus Station"].Id, DestinationStationId: stations["CMBT Chennai"].Id,
			OriginCity: "Bengaluru", DestinationCity: "Chennai",
			Price: 750, DurationMinutes: 390, DistanceKm: 346,
			Departures: []model.RouteDeparture{
				{DepartureTime: "22:30", ArrivalTime: "05:00", Days: daily},
			},
		},
		{
			Name: "Konkan Kanya Express", Mode: "train", Operator: "Konkan Railway",
			OriginStationId: stations["Mumbai CSMT"].Id, DestinationStationId: stations["Madgaon Junction"].Id,
			OriginCity: "Mumbai", DestinationCity: "Goa",
			Price: 515, DurationMinutes: 720, DistanceKm: 581,
			Departures: []model.RouteDeparture{
				{DepartureTime: "23:05", ArrivalTime: "11:00", Platform: "9", Days: daily},
			},
		},
		{
			Name: "Mumbai-Goa Sleeper Coach", Mode: "bus", Operator: "Paulo Travels",
			OriginStationId: stations["Mumbai Central Bus Depot"].Id, DestinationStationId: stations["Panaji Bus Stand"].Id,
			OriginCity: "Mumbai", DestinationCity: "Goa",
			Price: 1100, DurationMinutes: 690, DistanceKm: 590,
			Departures: []model.RouteDeparture{
				{DepartureTime: "19:30", ArrivalTime: "07:00", Days: weekend},
				{DepartureTime: "21:00", ArrivalTime: "08:30", Days: daily},
			},
		},
		{
			Name: "Karnavati Express", Mode: "train", Operator: "Western Railway",
			OriginStationId: stations["Dadar Railway Station"].Id, DestinationStationId: stations["Ahmedabad Junction"].Id,
			OriginCity: "Mumbai", DestinationCity: "Ahmedabad",
			Price: 410, DurationMinutes: 470, DistanceKm: 493,
			Departures: []model.RouteDeparture{
				{DepartureTime: "13:40", ArrivalTime: "21:30", Platform: "4", Days: daily},
			},
		},
		{
			Name: "Pune-Nashik Semi-Luxury", Mode: "bus", Operator: "MSRTC",
			OriginStationId: stations["Shivajinagar Bus Stand"].Id, DestinationStationId: stations["Nashik Mahamarg Bus Stand"].Id,
			OriginCity: "Pune", DestinationCity: "Nashik",
			Price: 380, DurationMinutes: 300, DistanceKm: 210,
			Departures: []model.RouteDeparture{
				{DepartureTime: "07:30", ArrivalTime: "12:30", Days: daily},
				{DepartureTime: "14:00", ArrivalTime: "19:00", Days: daily},
			},
		},
	}

	for _, r := range routes {
		var existing model.TransitRoute
		if err := db.Where("name = ? AND origin_city = ? AND destination_city = ?", r.Name, r.OriginCity, r.DestinationCity).First(&existing).Error; err == nil {
			log.Printf("Route '%s' already exists, skipping...", r.Name)
			continue
		}

		if err := db.Create(&r).Error; err != nil {
			log.Printf("Error creating route '%s': %v", r.Name, err)
		} else {
			log.Printf("Created route: %s (%s %s-%s)", r.Name, r.Mode, r.OriginCity, r.DestinationCity)
		}
	}
}
