package service

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"acex_backend/internals/features/catalogs/lodging/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.LodgingModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// tabel minimal untuk cek referensi
	if err := db.Exec(`CREATE TABLE IF NOT EXISTS activities (
		activity_id INTEGER PRIMARY KEY AUTOINCREMENT,
		activity_lodging_id INTEGER
	)`).Error; err != nil {
		t.Fatalf("create activities table: %v", err)
	}
	return db
}

func seedLodging(t *testing.T, db *gorm.DB, name, city string) *model.LodgingModel {
	t.Helper()
	l := &model.LodgingModel{
		LodgingName:     name,
		LodgingCity:     &city,
		LodgingIsActive: true,
	}
	if err := db.Create(l).Error; err != nil {
		t.Fatalf("seed lodging: %v", err)
	}
	return l
}

func TestDeleteUnreferencedLodgingHardDeletes(t *testing.T) {
	db := newTestDB(t)
	svc := NewLodgingService(db)
	l := seedLodging(t, db, "Albergue Pirineos", "Jaca")

	outcome, err := svc.Delete(l.LodgingID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if outcome != OutcomeDeleted {
		t.Fatalf("outcome = %q, want %q", outcome, OutcomeDeleted)
	}

	var count int64
	db.Model(&model.LodgingModel{}).Where("lodging_id = ?", l.LodgingID).Count(&count)
	if count != 0 {
		t.Fatalf("expected row gone, found %d", count)
	}
}

func TestDeleteReferencedLodgingDeactivatesInstead(t *testing.T) {
	db := newTestDB(t)
	svc := NewLodgingService(db)
	l := seedLodging(t, db, "Hotel Sierra", "Granada")

	if err := db.Exec(`INSERT INTO activities (activity_lodging_id) VALUES (?)`, l.LodgingID).Error; err != nil {
		t.Fatalf("seed activity ref: %v", err)
	}

	outcome, err := svc.Delete(l.LodgingID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if outcome != OutcomeDeactivated {
		t.Fatalf("outcome = %q, want %q", outcome, OutcomeDeactivated)
	}

	var got model.LodgingModel
	if err := db.First(&got, "lodging_id = ?", l.LodgingID).Error; err != nil {
		t.Fatalf("row should survive: %v", err)
	}
	if got.LodgingIsActive {
		t.Fatal("lodging should be deactivated")
	}
}

func TestDeleteMissingLodgingReturnsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewLodgingService(db)

	if _, err := svc.Delete(99999); !errors.Is(err, ErrLodgingNotFound) {
		t.Fatalf("expected ErrLodgingNotFound, got %v", err)
	}
}

func TestCitiesReturnsDistinctActiveCities(t *testing.T) {
	db := newTestDB(t)
	svc := NewLodgingService(db)

	seedLodging(t, db, "Hotel A", "Sevilla")
	seedLodging(t, db, "Hotel B", "Sevilla")
	seedLodging(t, db, "Hotel C", "Cádiz")
	inactive := seedLodging(t, db, "Hotel D", "Huelva")
	db.Model(&model.LodgingModel{}).
		Where("lodging_id = ?", inactive.LodgingID).
		Update("lodging_is_active", false)

	cities, err := svc.Cities()
	if err != nil {
		t.Fatalf("Cities: %v", err)
	}
	if len(cities) != 2 {
		t.Fatalf("cities = %v, want [Cádiz Sevilla]", cities)
	}
	if cities[0] != "Cádiz" || cities[1] != "Sevilla" {
		t.Fatalf("cities = %v, want [Cádiz Sevilla]", cities)
	}
}
