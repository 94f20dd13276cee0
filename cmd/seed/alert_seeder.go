package main

import (
	"log"
	"time"

	"ai-travelmate-be/internal/constant"
	"ai-travelmate-be/internal/model"

	"gorm.io/gorm"
)

// SeedServiceAlerts populates a few advisories so the alert endpoints have
// something to show on a fresh database.
func SeedServiceAlerts(db *gorm.DB) {
	in48h := time.Now().Add(48 * time.Hour)

	alerts := []model.ServiceAlert{
		{
			OriginCity:      "Mumbai",
			DestinationCity: "Pune",
			Mode:            "train",
			Severity:        constant.AlertSeverityWarning,
			Title:           "Speed restriction in Bhor Ghat",
			Message:         "Monsoon speed restrictions between Karjat and Lonavala. Expect 20-30 minutes of delay on all Pune-bound trains.",
			EffectiveFrom:   time.Now(),
			EffectiveTo:     &in48h,
		},
		{
			OriginCity:      "Delhi",
			DestinationCity: "Jaipur",
			Severity:        constant.AlertSeverityInfo,
			Title:           "NH48 resurfacing near Behror",
			Message:         "Single-lane traffic near Behror. Buses may arrive up to 20 minutes late.",
			EffectiveFrom:   time.Now(),
		},
		{
			// No corridor: applies to every traveller.
			Severity:      constant.AlertSeverityInfo,
			Title:         "Advance booking recommended",
			Message:       "Festival season demand is high this week. Book early for evening departures.",
			EffectiveFrom: time.Now(),
		},
	}

	for _, a := range alerts {
		var existing model.ServiceAlert
		if err := db.Where("title = ?", a.Title).First(&existing).Error; err == nil {
			continue
		}

		if err := db.Create(&a).Error; err != nil {
			log.Printf("Error seeding service alert '%s': %v", a.Title, err)
		}
	}
	log.Println("✅ Service alerts seeded successfully.")
}
