package service

import (
	"context"
	"io"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"acex_backend/internals/features/activities/activity/dto"
	"acex_backend/internals/features/activities/activity/model"
	"acex_backend/internals/helpers/field"
	"acex_backend/internals/helpers/storage"
)

type fakeBlob struct {
	deleted []string
}

func (f *fakeBlob) UploadImage(ctx context.Context, dir, filename string, r io.Reader) (*storage.UploadedImage, error) {
	return &storage.UploadedImage{URL: "http://blob/" + dir + "/" + filename}, nil
}

func (f *fakeBlob) UploadFile(ctx context.Context, dir, filename string, r io.Reader) (string, error) {
	return "http://blob/" + dir + "/" + filename, nil
}

func (f *fakeBlob) DeleteByPublicURL(ctx context.Context, url string) error {
	f.deleted = append(f.deleted, url)
	return nil
}

func (f *fakeBlob) Download(ctx context.Context, url string) ([]byte, string, error) {
	return nil, "", storage.ErrNotFound
}

func newTestService(t *testing.T) (*ActivityService, *fakeBlob) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&model.ActivityModel{},
		&model.ActivityLocationModel{},
		&model.ActivityParticipantTeacherModel{},
		&model.ActivityResponsibleTeacherModel{},
		&model.ActivityParticipantGroupModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// tabel tetangga secukupnya untuk join dan cascade
	for _, stmt := range []string{
		`CREATE TABLE locations (location_id INTEGER PRIMARY KEY AUTOINCREMENT, location_name TEXT, location_icon TEXT)`,
		`CREATE TABLE departments (department_id INTEGER PRIMARY KEY AUTOINCREMENT, department_name TEXT)`,
		`CREATE TABLE lodgings (lodging_id INTEGER PRIMARY KEY AUTOINCREMENT, lodging_name TEXT)`,
		`CREATE TABLE transport_companies (transport_company_id INTEGER PRIMARY KEY AUTOINCREMENT, transport_company_name TEXT)`,
		`CREATE TABLE activity_photos (activity_photo_id INTEGER PRIMARY KEY AUTOINCREMENT, activity_photo_activity_id INTEGER, activity_photo_url TEXT, activity_photo_thumb_url TEXT)`,
		`CREATE TABLE activity_contracts (contract_id INTEGER PRIMARY KEY AUTOINCREMENT, contract_activity_id INTEGER, contract_budget_document_url TEXT, contract_invoice_url TEXT)`,
		`CREATE TABLE activity_expenses (expense_id INTEGER PRIMARY KEY AUTOINCREMENT, expense_activity_id INTEGER)`,
	} {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create table: %v", err)
		}
	}
	blob := &fakeBlob{}
	return NewActivityService(db, blob), blob
}

func seedActivity(t *testing.T, svc *ActivityService, name string) *model.ActivityModel {
	t.Helper()
	activity, err := svc.Create(&dto.CreateActivityRequest{
		ActivityName:      name,
		ActivityStartDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("seed activity: %v", err)
	}
	return activity
}

func seedLocation(t *testing.T, svc *ActivityService, name string) int {
	t.Helper()
	if err := svc.DB.Exec(`INSERT INTO locations (location_name) VALUES (?)`, name).Error; err != nil {
		t.Fatalf("seed location: %v", err)
	}
	var id int
	svc.DB.Raw(`SELECT location_id FROM locations WHERE location_name = ?`, name).Scan(&id)
	return id
}

func TestCreateDefaultsToPendingWithEmptyLocations(t *testing.T) {
	svc, _ := newTestService(t)
	activity := seedActivity(t, svc, "Excursión Sierra Norte")

	if activity.ActivityStatus != model.StatusPending {
		t.Fatalf("status = %q, want pending", activity.ActivityStatus)
	}
	if activity.ActivityType != model.TypeExtracurricular {
		t.Fatalf("type = %q, want extracurricular", activity.ActivityType)
	}

	detail, err := svc.GetByID(activity.ActivityID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if detail == nil {
		t.Fatal("detail is nil")
	}
	if len(detail.Locations) != 0 {
		t.Fatalf("locations = %d, want 0", len(detail.Locations))
	}
}

func TestGetByIDMissingReturnsNil(t *testing.T) {
	svc, _ := newTestService(t)
	detail, err := svc.GetByID(9999)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if detail != nil {
		t.Fatalf("expected nil detail, got %+v", detail)
	}
}

func TestCreateRejectsUnknownStatus(t *testing.T) {
	svc, _ := newTestService(t)
	bad := "archived"
	_, err := svc.Create(&dto.CreateActivityRequest{
		ActivityName:      "X",
		ActivityStartDate: time.Now(),
		ActivityStatus:    &bad,
	})
	if err != ErrUnknownStatus {
		t.Fatalf("err = %v, want ErrUnknownStatus", err)
	}
}

func TestPartialUpdateLeavesAbsentFieldsUntouched(t *testing.T) {
	svc, _ := newTestService(t)
	desc := "Visita al museo"
	budget := 1500.0
	activity, err := svc.Create(&dto.CreateActivityRequest{
		ActivityName:            "Museo",
		ActivityDescription:     &desc,
		ActivityStartDate:       time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		ActivityEstimatedBudget: &budget,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	req := &dto.UpdateActivityRequest{
		ActivityName:            field.Set("Museo del Prado"),
		ActivityEstimatedBudget: field.Null[float64](),
	}
	updated, err := svc.Update(activity.ActivityID, req)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.ActivityName != "Museo del Prado" {
		t.Fatalf("name = %q", updated.ActivityName)
	}
	if updated.ActivityEstimatedBudget != nil {
		t.Fatal("null payload must clear estimated budget")
	}
	if updated.ActivityDescription == nil || *updated.ActivityDescription != desc {
		t.Fatal("absent field must stay untouched")
	}

	// null pada field wajib tidak menimpa nilai lama
	updated, err = svc.Update(activity.ActivityID, &dto.UpdateActivityRequest{
		ActivityName: field.Null[string](),
	})
	if err != nil {
		t.Fatalf("Update with null name: %v", err)
	}
	if updated.ActivityName != "Museo del Prado" {
		t.Fatalf("null name must not overwrite, got %q", updated.ActivityName)
	}
}

func TestUpdateReplacesResponsibleTeacher(t *testing.T) {
	svc, _ := newTestService(t)
	activity := seedActivity(t, svc, "Campamento")

	first := "7b3a1f0e-2c4d-4e5f-8a9b-0c1d2e3f4a5b"
	if _, err := svc.Update(activity.ActivityID, &dto.UpdateActivityRequest{
		ResponsibleTeacherID: field.Set(first),
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	second := "9d8c7b6a-5f4e-3d2c-1b0a-f9e8d7c6b5a4"
	if _, err := svc.Update(activity.ActivityID, &dto.UpdateActivityRequest{
		ResponsibleTeacherID: field.Set(second),
	}); err != nil {
		t.Fatalf("Update again: %v", err)
	}

	var rows []model.ActivityResponsibleTeacherModel
	svc.DB.Find(&rows)
	if len(rows) != 1 {
		t.Fatalf("responsible rows = %d, want 1", len(rows))
	}
	if rows[0].ActivityResponsibleTeacherTeacherID.String() != second {
		t.Fatalf("teacher = %s, want %s", rows[0].ActivityResponsibleTeacherTeacherID, second)
	}
	if !rows[0].ActivityResponsibleTeacherIsCoordinator {
		t.Fatal("responsible teacher must be coordinator")
	}
}

func TestAddLocationEnforcesSinglePrincipal(t *testing.T) {
	svc, _ := newTestService(t)
	activity := seedActivity(t, svc, "Senderismo")
	loc5 := seedLocation(t, svc, "Grazalema")
	loc6 := seedLocation(t, svc, "Ronda")

	ok, err := svc.AddLocation(activity.ActivityID, &dto.AddActivityLocationRequest{LocationID: loc5, IsPrincipal: true})
	if err != nil || !ok {
		t.Fatalf("AddLocation loc5: ok=%v err=%v", ok, err)
	}
	ok, err = svc.AddLocation(activity.ActivityID, &dto.AddActivityLocationRequest{LocationID: loc6, IsPrincipal: true, Order: 1})
	if err != nil || !ok {
		t.Fatalf("AddLocation loc6: ok=%v err=%v", ok, err)
	}

	rows, err := svc.GetLocations(activity.ActivityID)
	if err != nil {
		t.Fatalf("GetLocations: %v", err)
	}
	principals := 0
	for _, r := range rows {
		if r.ActivityLocationIsPrincipal {
			principals++
			if r.ActivityLocationLocationID != loc6 {
				t.Fatalf("principal = %d, want %d", r.ActivityLocationLocationID, loc6)
			}
		}
	}
	if principals != 1 {
		t.Fatalf("principals = %d, want exactly 1", principals)
	}
}

func TestAddLocationRejectsDuplicatePair(t *testing.T) {
	svc, _ := newTestService(t)
	activity := seedActivity(t, svc, "Teatro")
	loc := seedLocation(t, svc, "Teatro Lope de Vega")

	if ok, _ := svc.AddLocation(activity.ActivityID, &dto.AddActivityLocationRequest{LocationID: loc}); !ok {
		t.Fatal("first add should succeed")
	}
	if ok, _ := svc.AddLocation(activity.ActivityID, &dto.AddActivityLocationRequest{LocationID: loc}); ok {
		t.Fatal("duplicate pair must be rejected")
	}
	if ok, _ := svc.AddLocation(activity.ActivityID, &dto.AddActivityLocationRequest{LocationID: 9999}); ok {
		t.Fatal("unknown location must be rejected")
	}
}

func TestUpdateLocationPrincipalHandoff(t *testing.T) {
	svc, _ := newTestService(t)
	activity := seedActivity(t, svc, "Intercambio")
	locA := seedLocation(t, svc, "Lisboa")
	locB := seedLocation(t, svc, "Oporto")

	svc.AddLocation(activity.ActivityID, &dto.AddActivityLocationRequest{LocationID: locA, IsPrincipal: true})
	svc.AddLocation(activity.ActivityID, &dto.AddActivityLocationRequest{LocationID: locB})

	ok, err := svc.UpdateLocation(activity.ActivityID, locB, &dto.UpdateActivityLocationRequest{
		IsPrincipal: field.Set(true),
	})
	if err != nil || !ok {
		t.Fatalf("UpdateLocation: ok=%v err=%v", ok, err)
	}

	rows, _ := svc.GetLocations(activity.ActivityID)
	for _, r := range rows {
		want := r.ActivityLocationLocationID == locB
		if r.ActivityLocationIsPrincipal != want {
			t.Fatalf("location %d principal=%v, want %v", r.ActivityLocationLocationID, r.ActivityLocationIsPrincipal, want)
		}
	}
}

func TestAddLocationIconWritesSharedRow(t *testing.T) {
	svc, _ := newTestService(t)
	activity := seedActivity(t, svc, "Playa")
	loc := seedLocation(t, svc, "Bolonia")

	icon := "beach"
	if ok, err := svc.AddLocation(activity.ActivityID, &dto.AddActivityLocationRequest{LocationID: loc, Icon: &icon}); err != nil || !ok {
		t.Fatalf("AddLocation: ok=%v err=%v", ok, err)
	}

	var got string
	svc.DB.Raw(`SELECT location_icon FROM locations WHERE location_id = ?`, loc).Scan(&got)
	if got != "beach" {
		t.Fatalf("location_icon = %q, want beach", got)
	}
}

func TestReplaceParticipantTeachersSkipsBadUUIDs(t *testing.T) {
	svc, _ := newTestService(t)
	activity := seedActivity(t, svc, "Olimpiada")

	saved, err := svc.ReplaceParticipantTeachers(activity.ActivityID, []string{
		"7b3a1f0e-2c4d-4e5f-8a9b-0c1d2e3f4a5b",
		"no-es-un-uuid",
		"9d8c7b6a-5f4e-3d2c-1b0a-f9e8d7c6b5a4",
	})
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if saved != 2 {
		t.Fatalf("saved = %d, want 2", saved)
	}

	// daftar kosong mengosongkan seluruh peserta
	saved, err = svc.ReplaceParticipantTeachers(activity.ActivityID, nil)
	if err != nil {
		t.Fatalf("Replace empty: %v", err)
	}
	if saved != 0 {
		t.Fatalf("saved = %d, want 0", saved)
	}
	rows, _ := svc.GetParticipantTeachers(activity.ActivityID)
	if len(rows) != 0 {
		t.Fatalf("rows = %d, want 0", len(rows))
	}

	if _, err := svc.ReplaceParticipantTeachers(9999, nil); err != ErrActivityNotFound {
		t.Fatalf("err = %v, want ErrActivityNotFound", err)
	}
}

func TestReplaceParticipantGroupsKeepsCountOverride(t *testing.T) {
	svc, _ := newTestService(t)
	activity := seedActivity(t, svc, "Feria de ciencias")

	n := 24
	saved, err := svc.ReplaceParticipantGroups(activity.ActivityID, []dto.GroupAssignment{
		{GroupID: 1, ParticipantCount: &n},
		{GroupID: 2},
	})
	if err != nil || saved != 2 {
		t.Fatalf("Replace: saved=%d err=%v", saved, err)
	}

	rows, _ := svc.GetParticipantGroups(activity.ActivityID)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	for _, r := range rows {
		if r.ActivityParticipantGroupGroupID == 1 {
			if r.ActivityParticipantGroupParticipantCount == nil || *r.ActivityParticipantGroupParticipantCount != 24 {
				t.Fatalf("count override lost: %+v", r)
			}
		}
	}
}

func TestDeleteCascadesAndRemovesFiles(t *testing.T) {
	svc, blob := newTestService(t)
	activity := seedActivity(t, svc, "Granja escuela")
	loc := seedLocation(t, svc, "Granja")
	svc.AddLocation(activity.ActivityID, &dto.AddActivityLocationRequest{LocationID: loc})
	svc.ReplaceParticipantTeachers(activity.ActivityID, []string{"7b3a1f0e-2c4d-4e5f-8a9b-0c1d2e3f4a5b"})

	if err := svc.SetBrochure(context.Background(), activity.ActivityID, "http://blob/activities/1/folleto.pdf"); err != nil {
		t.Fatalf("SetBrochure: %v", err)
	}
	svc.DB.Exec(`INSERT INTO activity_photos (activity_photo_activity_id, activity_photo_url, activity_photo_thumb_url) VALUES (?, ?, ?)`,
		activity.ActivityID, "http://blob/activities/1/foto.webp", "http://blob/activities/1/foto_thumb.webp")
	svc.DB.Exec(`INSERT INTO activity_contracts (contract_activity_id, contract_budget_document_url) VALUES (?, ?)`,
		activity.ActivityID, "http://blob/activities/1/presupuesto.pdf")

	if err := svc.Delete(context.Background(), activity.ActivityID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if len(blob.deleted) != 4 {
		t.Fatalf("deleted files = %d (%v), want 4", len(blob.deleted), blob.deleted)
	}

	for _, table := range []string{"activities", "activity_locations", "activity_participant_teachers", "activity_photos", "activity_contracts"} {
		var count int64
		svc.DB.Table(table).Count(&count)
		if count != 0 {
			t.Fatalf("table %s still has %d rows", table, count)
		}
	}

	if err := svc.Delete(context.Background(), activity.ActivityID); err != ErrActivityNotFound {
		t.Fatalf("second delete err = %v, want ErrActivityNotFound", err)
	}
}

func TestSetBrochureDeletesOldFile(t *testing.T) {
	svc, blob := newTestService(t)
	activity := seedActivity(t, svc, "Concierto")

	svc.SetBrochure(context.Background(), activity.ActivityID, "http://blob/a/v1.pdf")
	svc.SetBrochure(context.Background(), activity.ActivityID, "http://blob/a/v2.pdf")

	if len(blob.deleted) != 1 || blob.deleted[0] != "http://blob/a/v1.pdf" {
		t.Fatalf("deleted = %v, want only old brochure", blob.deleted)
	}

	var url *string
	svc.DB.Raw(`SELECT activity_brochure_url FROM activities WHERE activity_id = ?`, activity.ActivityID).Scan(&url)
	if url == nil || *url != "http://blob/a/v2.pdf" {
		t.Fatalf("brochure url = %v", url)
	}
}
