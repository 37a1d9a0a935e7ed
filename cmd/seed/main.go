package main

import (
	"fmt"
	"log"
	"time"

	"staybook/internal/blocks"
	"staybook/internal/pricing"
	"staybook/internal/resources"
	"staybook/internal/shared/config"
	"staybook/internal/shared/database"

	"github.com/google/uuid"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Staybook Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	// Delete in reverse dependency order
	tables := []string{
		"reservation_history",
		"reservations",
		"blocked_ranges",
		"seasonal_prices",
		"resources",
		"sections",
		"properties",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// Disable foreign key constraints temporarily
	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	// Re-enable foreign key constraints
	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	propertyID, err := s.SeedProperty()
	if err != nil {
		return fmt.Errorf("failed to seed property: %w", err)
	}

	sectionIDs, err := s.SeedSections(propertyID)
	if err != nil {
		return fmt.Errorf("failed to seed sections: %w", err)
	}

	resourceIDs, err := s.SeedResources(propertyID, sectionIDs)
	if err != nil {
		return fmt.Errorf("failed to seed resources: %w", err)
	}

	if err := s.SeedSeasonalPrices(propertyID, resourceIDs); err != nil {
		return fmt.Errorf("failed to seed seasonal prices: %w", err)
	}

	if err := s.SeedBlocks(propertyID, resourceIDs); err != nil {
		return fmt.Errorf("failed to seed blocks: %w", err)
	}

	return nil
}

// SeedProperty creates the demo property with restaurant hours on the
// property level so table resources inherit them.
func (s *Seeder) SeedProperty() (uuid.UUID, error) {
	property := resources.Property{
		Name:     "Harbor House Hotel & Bistro",
		Slug:     "harbor-house",
		Timezone: "Europe/Amsterdam",
		WeeklyHours: resources.WeeklyHours{
			"mon": {Closed: true},
			"tue": {Open: "12:00", Close: "22:00"},
			"wed": {Open: "12:00", Close: "22:00"},
			"thu": {Open: "12:00", Close: "22:00"},
			"fri": {Open: "12:00", Close: "23:30"},
			"sat": {Open: "12:00", Close: "23:30"},
			"sun": {Open: "12:00", Close: "21:00"},
		},
		IsActive: true,
	}
	if err := s.db.PostgreSQL.Create(&property).Error; err != nil {
		return uuid.Nil, err
	}
	fmt.Printf("  Created property: %s (%s)\n", property.Name, property.ID)
	return property.ID, nil
}

// SeedSections creates dining sections for the table resources.
func (s *Seeder) SeedSections(propertyID uuid.UUID) (map[string]uuid.UUID, error) {
	names := []string{"Main Room", "Terrace"}
	ids := make(map[string]uuid.UUID, len(names))

	for _, name := range names {
		section := resources.Section{
			PropertyID: propertyID,
			Name:       name,
		}
		if err := s.db.PostgreSQL.Create(&section).Error; err != nil {
			return nil, err
		}
		ids[name] = section.ID
		fmt.Printf("  Created section: %s\n", name)
	}
	return ids, nil
}

// SeedResources creates rooms for stays and tables for seatings.
func (s *Seeder) SeedResources(propertyID uuid.UUID, sectionIDs map[string]uuid.UUID) (map[string]uuid.UUID, error) {
	mainRoom := sectionIDs["Main Room"]
	terrace := sectionIDs["Terrace"]

	seedResources := []resources.Resource{
		{PropertyID: propertyID, Name: "Room 101", Kind: resources.KindRoom, Capacity: 2, BaseRate: 149, Currency: "EUR", IsActive: true},
		{PropertyID: propertyID, Name: "Room 102", Kind: resources.KindRoom, Capacity: 2, BaseRate: 149, Currency: "EUR", IsActive: true},
		{PropertyID: propertyID, Name: "Harbor Suite", Kind: resources.KindRoom, Capacity: 4, BaseRate: 289, Currency: "EUR", IsActive: true},
		{PropertyID: propertyID, SectionID: &mainRoom, Name: "Table 1", Kind: resources.KindTable, Capacity: 2, BaseRate: 0, Currency: "EUR", IsActive: true},
		{PropertyID: propertyID, SectionID: &mainRoom, Name: "Table 2", Kind: resources.KindTable, Capacity: 4, BaseRate: 0, Currency: "EUR", IsActive: true},
		{PropertyID: propertyID, SectionID: &terrace, Name: "Terrace 1", Kind: resources.KindTable, Capacity: 6, BaseRate: 0, Currency: "EUR", IsActive: true},
	}

	ids := make(map[string]uuid.UUID, len(seedResources))
	for i := range seedResources {
		if err := s.db.PostgreSQL.Create(&seedResources[i]).Error; err != nil {
			return nil, err
		}
		ids[seedResources[i].Name] = seedResources[i].ID
		fmt.Printf("  Created resource: %s (%s)\n", seedResources[i].Name, seedResources[i].Kind)
	}
	return ids, nil
}

// SeedSeasonalPrices creates a property-wide summer override plus a
// resource-scoped one for the suite.
func (s *Seeder) SeedSeasonalPrices(propertyID uuid.UUID, resourceIDs map[string]uuid.UUID) error {
	year := time.Now().Year()
	summerFrom := time.Date(year, time.July, 1, 0, 0, 0, 0, time.UTC)
	summerTo := time.Date(year, time.August, 31, 0, 0, 0, 0, time.UTC)
	suiteID := resourceIDs["Harbor Suite"]

	prices := []pricing.SeasonalPrice{
		{PropertyID: propertyID, Label: "Summer season", DateFrom: summerFrom, DateTo: summerTo, Amount: 189, Currency: "EUR"},
		{PropertyID: propertyID, ResourceID: &suiteID, Label: "Summer season suite", DateFrom: summerFrom, DateTo: summerTo, Amount: 349, Currency: "EUR"},
	}

	for i := range prices {
		if err := s.db.PostgreSQL.Create(&prices[i]).Error; err != nil {
			return err
		}
		fmt.Printf("  Created seasonal price: %s\n", prices[i].Label)
	}
	return nil
}

// SeedBlocks creates a property-wide holiday and a timed maintenance block.
func (s *Seeder) SeedBlocks(propertyID uuid.UUID, resourceIDs map[string]uuid.UUID) error {
	year := time.Now().Year()
	christmas := time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC)
	nextMonth := time.Now().UTC().AddDate(0, 1, 0).Truncate(24 * time.Hour)
	room101 := resourceIDs["Room 101"]
	start := "09:00"
	end := "13:00"

	seedBlocks := []blocks.Block{
		{PropertyID: propertyID, DateFrom: christmas, DateTo: christmas.AddDate(0, 0, 1), Kind: blocks.KindHoliday, Reason: "Christmas closure", CreatedBy: "seeder"},
		{PropertyID: propertyID, ResourceID: &room101, DateFrom: nextMonth, DateTo: nextMonth, StartTime: &start, EndTime: &end, Kind: blocks.KindMaintenance, Reason: "Boiler inspection", CreatedBy: "seeder"},
	}

	for i := range seedBlocks {
		if err := s.db.PostgreSQL.Create(&seedBlocks[i]).Error; err != nil {
			return err
		}
		fmt.Printf("  Created block: %s\n", seedBlocks[i].Reason)
	}
	return nil
}
