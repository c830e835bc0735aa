package blooddonation

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ridwankhan/campusconnect/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm.Open() error = %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &DonorRecord{}, &BloodRequest{}); err != nil {
		t.Fatalf("AutoMigrate() error = %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{ID: uuid.New(), Email: email, UserName: "Test User", Role: "user"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user error = %v", err)
	}
	return user
}

func TestRegisterCreatesActiveRecord(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "donor@campus.edu")
	svc := NewDonorService(db)

	record, action, err := svc.Register(user.ID, "O+", "North Hall", "0171234567", nil)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if action != "created" {
		t.Fatalf("action = %q, want %q", action, "created")
	}
	if !record.IsActive {
		t.Fatal("record.IsActive = false, want true")
	}

	var stored models.User
	if err := db.First(&stored, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("load user error = %v", err)
	}
	if stored.PhoneNumber == nil || *stored.PhoneNumber != "0171234567" {
		t.Fatalf("phone backfill = %v, want 0171234567", stored.PhoneNumber)
	}
}

func TestRegisterConflictLeavesRecordUntouched(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "donor@campus.edu")
	svc := NewDonorService(db)

	if _, _, err := svc.Register(user.ID, "O+", "North Hall", "", nil); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	_, _, err := svc.Register(user.ID, "AB-", "South Hall", "", nil)
	if !errors.Is(err, ErrAlreadyActive) {
		t.Fatalf("second Register() error = %v, want ErrAlreadyActive", err)
	}

	var stored DonorRecord
	if err := db.Where("user_id = ?", user.ID).First(&stored).Error; err != nil {
		t.Fatalf("load record error = %v", err)
	}
	if stored.BloodGroup != "O+" || stored.Location != "North Hall" {
		t.Fatalf("record mutated on conflict: group=%q location=%q", stored.BloodGroup, stored.Location)
	}
}

func TestRegisterReactivatesInactiveRecord(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "donor@campus.edu")
	svc := NewDonorService(db)

	if _, _, err := svc.Register(user.ID, "O+", "North Hall", "", nil); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if _, err := svc.Toggle(user.ID); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}

	record, action, err := svc.Register(user.ID, "B+", "East Hall", "", nil)
	if err != nil {
		t.Fatalf("reactivating Register() error = %v", err)
	}
	if action != "reactivated" {
		t.Fatalf("action = %q, want %q", action, "reactivated")
	}
	if record.BloodGroup != "B+" || record.Location != "East Hall" || !record.IsActive {
		t.Fatalf("reactivated record = %+v", record)
	}

	var count int64
	db.Model(&DonorRecord{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 1 {
		t.Fatalf("record count = %d, want 1", count)
	}
}

func TestRegisterDoesNotOverwriteExistingPhone(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "donor@campus.edu")
	phone := "0100000000"
	if err := db.Model(&user).Update("phone_number", phone).Error; err != nil {
		t.Fatalf("seed phone error = %v", err)
	}
	svc := NewDonorService(db)

	if _, _, err := svc.Register(user.ID, "O+", "North Hall", "0999999999", nil); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	var stored models.User
	if err := db.First(&stored, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("load user error = %v", err)
	}
	if stored.PhoneNumber == nil || *stored.PhoneNumber != phone {
		t.Fatalf("phone = %v, want %q", stored.PhoneNumber, phone)
	}
}

func TestToggleFlipsActiveFlag(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "donor@campus.edu")
	svc := NewDonorService(db)

	if _, _, err := svc.Register(user.ID, "O+", "North Hall", "", nil); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	active, err := svc.Toggle(user.ID)
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if active {
		t.Fatal("first toggle: active = true, want false")
	}

	active, err = svc.Toggle(user.ID)
	if err != nil {
		t.Fatalf("second Toggle() error = %v", err)
	}
	if !active {
		t.Fatal("second toggle: active = false, want true")
	}
}

func TestToggleWithoutRecord(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "donor@campus.edu")
	svc := NewDonorService(db)

	if _, err := svc.Toggle(user.ID); !errors.Is(err, ErrDonorNotFound) {
		t.Fatalf("Toggle() error = %v, want ErrDonorNotFound", err)
	}
}

func TestListDonorsIncludesCallersInactiveRecord(t *testing.T) {
	db := openTestDB(t)
	caller := createTestUser(t, db, "caller@campus.edu")
	other := createTestUser(t, db, "other@campus.edu")
	svc := NewDonorService(db)

	if _, _, err := svc.Register(other.ID, "A+", "West Hall", "", nil); err != nil {
		t.Fatalf("Register(other) error = %v", err)
	}
	if _, _, err := svc.Register(caller.ID, "O-", "North Hall", "", nil); err != nil {
		t.Fatalf("Register(caller) error = %v", err)
	}
	if _, err := svc.Toggle(caller.ID); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}

	views, err := svc.ListDonors(caller.ID)
	if err != nil {
		t.Fatalf("ListDonors() error = %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("len(views) = %d, want 2", len(views))
	}

	foundOwn := false
	for _, v := range views {
		if v.Email == caller.Email {
			foundOwn = true
			if v.IsActive {
				t.Fatal("caller's record listed as active, want inactive")
			}
		}
	}
	if !foundOwn {
		t.Fatal("caller's inactive record missing from listing")
	}
}

func TestCreateRequestRejectsPastDeadline(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "requester@campus.edu")
	svc := NewRequestService(db)

	_, err := svc.CreateRequest(user.ID, "B+", "Medical Center", time.Now().Add(-time.Hour))
	if !errors.Is(err, ErrInvalidDeadline) {
		t.Fatalf("CreateRequest() error = %v, want ErrInvalidDeadline", err)
	}

	var count int64
	db.Model(&BloodRequest{}).Count(&count)
	if count != 0 {
		t.Fatalf("request count = %d, want 0", count)
	}
}

func TestCancelRequestGuardChain(t *testing.T) {
	db := openTestDB(t)
	owner := createTestUser(t, db, "owner@campus.edu")
	intruder := createTestUser(t, db, "intruder@campus.edu")
	svc := NewRequestService(db)

	view, err := svc.CreateRequest(owner.ID, "B+", "Medical Center", time.Now().Add(24*time.Hour))
	if err != nil {
		t.Fatalf("CreateRequest() error = %v", err)
	}

	// Missing row reports not-found even for a non-owner.
	if err := svc.CancelRequest(intruder.ID, uuid.New()); !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("cancel missing: error = %v, want ErrRequestNotFound", err)
	}

	if err := svc.CancelRequest(intruder.ID, view.RequestID); !errors.Is(err, ErrNotRequester) {
		t.Fatalf("cancel by non-owner: error = %v, want ErrNotRequester", err)
	}

	if err := svc.CancelRequest(owner.ID, view.RequestID); err != nil {
		t.Fatalf("cancel by owner: error = %v", err)
	}

	var count int64
	db.Model(&BloodRequest{}).Count(&count)
	if count != 0 {
		t.Fatalf("request count = %d, want 0", count)
	}
}
