package service

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"acex_backend/internals/features/catalogs/transport/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.TransportCompanyModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Exec(`CREATE TABLE IF NOT EXISTS activities (
		activity_id INTEGER PRIMARY KEY AUTOINCREMENT,
		activity_transport_company_id INTEGER
	)`).Error; err != nil {
		t.Fatalf("create activities table: %v", err)
	}
	return db
}

func TestDeleteUnreferencedCompanyHardDeletes(t *testing.T) {
	db := newTestDB(t)
	svc := NewTransportCompanyService(db)

	company := &model.TransportCompanyModel{TransportCompanyName: "Autocares Ruiz", TransportCompanyIsActive: true}
	if err := db.Create(company).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	outcome, err := svc.Delete(company.TransportCompanyID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if outcome != OutcomeDeleted {
		t.Fatalf("outcome = %q, want %q", outcome, OutcomeDeleted)
	}

	var count int64
	db.Model(&model.TransportCompanyModel{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected 0 rows, got %d", count)
	}
}

func TestDeleteReferencedCompanyDeactivates(t *testing.T) {
	db := newTestDB(t)
	svc := NewTransportCompanyService(db)

	company := &model.TransportCompanyModel{TransportCompanyName: "Buses del Sur", TransportCompanyIsActive: true}
	if err := db.Create(company).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := db.Exec(`INSERT INTO activities (activity_transport_company_id) VALUES (?)`, company.TransportCompanyID).Error; err != nil {
		t.Fatalf("seed activity ref: %v", err)
	}

	outcome, err := svc.Delete(company.TransportCompanyID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if outcome != OutcomeDeactivated {
		t.Fatalf("outcome = %q, want %q", outcome, OutcomeDeactivated)
	}

	var got model.TransportCompanyModel
	if err := db.First(&got, "transport_company_id = ?", company.TransportCompanyID).Error; err != nil {
		t.Fatalf("row should survive: %v", err)
	}
	if got.TransportCompanyIsActive {
		t.Fatal("company should be deactivated")
	}
}

func TestDeleteMissingCompanyReturnsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewTransportCompanyService(db)

	if _, err := svc.Delete(424242); !errors.Is(err, ErrTransportCompanyNotFound) {
		t.Fatalf("expected ErrTransportCompanyNotFound, got %v", err)
	}
}
