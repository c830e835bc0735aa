package societies

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm.Open() error = %v", err)
	}
	if err := db.AutoMigrate(&Society{}, &Event{}); err != nil {
		t.Fatalf("AutoMigrate() error = %v", err)
	}
	return db
}

func createSociety(t *testing.T, svc *Service, adminEmail, name string) *Society {
	t.Helper()
	soc, err := svc.CreateSociety(adminEmail, &Society{Name: name, Category: "Cultural"})
	if err != nil {
		t.Fatalf("CreateSociety() error = %v", err)
	}
	return soc
}

func TestCreateSocietySeedsCreatorAsAdmin(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db)

	soc := createSociety(t, svc, "founder@campus.edu", "Drama Club")

	if !containsEmail(emailList(soc.Admins), "founder@campus.edu") {
		t.Fatalf("admins = %s, want founder included", soc.Admins)
	}
}

func TestCreateSocietyRejectsDuplicateName(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db)

	createSociety(t, svc, "founder@campus.edu", "Drama Club")

	_, err := svc.CreateSociety("other@campus.edu", &Society{Name: "drama club", Category: "Cultural"})
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("CreateSociety() error = %v, want ErrDuplicateName", err)
	}
}

func TestUpdateSocietyRequiresAdminEmail(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db)

	soc := createSociety(t, svc, "founder@campus.edu", "Drama Club")

	_, err := svc.UpdateSociety(soc.ID, "random@campus.edu", map[string]interface{}{"description": "nope"})
	if !errors.Is(err, ErrNotSocietyAdmin) {
		t.Fatalf("UpdateSociety() error = %v, want ErrNotSocietyAdmin", err)
	}

	if _, err := svc.UpdateSociety(soc.ID, "founder@campus.edu", map[string]interface{}{"description": "We act"}); err != nil {
		t.Fatalf("UpdateSociety() by admin error = %v", err)
	}
}

func TestToggleFollowFlipsMembership(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db)

	soc := createSociety(t, svc, "founder@campus.edu", "Drama Club")

	following, err := svc.ToggleFollow(soc.ID, "member@campus.edu")
	if err != nil {
		t.Fatalf("ToggleFollow() error = %v", err)
	}
	if !following {
		t.Fatal("first toggle: following = false, want true")
	}

	detail, err := svc.GetSociety(soc.ID, "member@campus.edu")
	if err != nil {
		t.Fatalf("GetSociety() error = %v", err)
	}
	if !detail.IsFollowing || detail.MemberCount != 1 {
		t.Fatalf("detail = following=%v count=%d, want true/1", detail.IsFollowing, detail.MemberCount)
	}

	following, err = svc.ToggleFollow(soc.ID, "member@campus.edu")
	if err != nil {
		t.Fatalf("second ToggleFollow() error = %v", err)
	}
	if following {
		t.Fatal("second toggle: following = true, want false")
	}
}

func TestEventRegistrationChecks(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db)

	soc := createSociety(t, svc, "founder@campus.edu", "Drama Club")
	future := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	ev, err := svc.CreateEvent(soc.ID, "founder@campus.edu", &Event{
		Title:                "Annual Play",
		Date:                 future,
		MaxParticipants:      1,
		RegistrationDeadline: future,
	})
	if err != nil {
		t.Fatalf("CreateEvent() error = %v", err)
	}

	if _, err := svc.RegisterForEvent(ev.ID, "first@campus.edu"); err != nil {
		t.Fatalf("first RegisterForEvent() error = %v", err)
	}

	if _, err := svc.RegisterForEvent(ev.ID, "first@campus.edu"); !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("duplicate registration error = %v, want ErrAlreadyRegistered", err)
	}

	if _, err := svc.RegisterForEvent(ev.ID, "second@campus.edu"); !errors.Is(err, ErrEventFull) {
		t.Fatalf("full event error = %v, want ErrEventFull", err)
	}
}

func TestEventRegistrationDeadlinePassed(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db)

	soc := createSociety(t, svc, "founder@campus.edu", "Drama Club")
	ev, err := svc.CreateEvent(soc.ID, "founder@campus.edu", &Event{
		Title:                "Annual Play",
		Date:                 time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		RegistrationDeadline: time.Now().AddDate(0, 0, -1).Format("2006-01-02"),
	})
	if err != nil {
		t.Fatalf("CreateEvent() error = %v", err)
	}

	if _, err := svc.RegisterForEvent(ev.ID, "late@campus.edu"); !errors.Is(err, ErrDeadlinePassed) {
		t.Fatalf("late registration error = %v, want ErrDeadlinePassed", err)
	}
}

func TestCreateEventRequiresSocietyAdmin(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db)

	soc := createSociety(t, svc, "founder@campus.edu", "Drama Club")

	_, err := svc.CreateEvent(soc.ID, "random@campus.edu", &Event{Title: "Rogue Event", Date: "2026-12-01"})
	if !errors.Is(err, ErrNotSocietyAdmin) {
		t.Fatalf("CreateEvent() error = %v, want ErrNotSocietyAdmin", err)
	}
}

func TestListEventsFilters(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db)

	soc := createSociety(t, svc, "founder@campus.edu", "Drama Club")
	other := createSociety(t, svc, "founder@campus.edu", "Chess Club")

	mustCreate := func(societyID uuid.UUID, title, category, date string) {
		t.Helper()
		if _, err := svc.CreateEvent(societyID, "founder@campus.edu", &Event{Title: title, Category: category, Date: date}); err != nil {
			t.Fatalf("CreateEvent(%s) error = %v", title, err)
		}
	}
	mustCreate(soc.ID, "Play", "Cultural", "2026-11-15")
	mustCreate(soc.ID, "Workshop", "Academic", "2026-12-01")
	mustCreate(other.ID, "Blitz Night", "Games", "2026-11-20")

	views, err := svc.ListEvents(EventFilter{SocietyID: soc.ID})
	if err != nil {
		t.Fatalf("ListEvents(society) error = %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("society filter: len = %d, want 2", len(views))
	}

	views, err = svc.ListEvents(EventFilter{Month: "2026-11"})
	if err != nil {
		t.Fatalf("ListEvents(month) error = %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("month filter: len = %d, want 2", len(views))
	}

	views, err = svc.ListEvents(EventFilter{Category: "Games"})
	if err != nil {
		t.Fatalf("ListEvents(category) error = %v", err)
	}
	if len(views) != 1 || views[0].SocietyName != "Chess Club" {
		t.Fatalf("category filter: views = %+v", views)
	}
}
