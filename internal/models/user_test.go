package models

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestSharedModelsMigrateOnSQLite(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm.Open() error = %v", err)
	}
	if err := db.AutoMigrate(&User{}, &SystemLog{}); err != nil {
		t.Fatalf("AutoMigrate() error = %v", err)
	}

	user := User{ID: uuid.New(), Email: "student@campus.edu", UserName: "Student", Role: "user"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user error = %v", err)
	}

	var stored User
	if err := db.First(&stored, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("load user error = %v", err)
	}
	if stored.ID != user.ID {
		t.Fatalf("stored ID = %s, want %s", stored.ID, user.ID)
	}
}

func TestHasPhoneNumber(t *testing.T) {
	empty := ""
	filled := "0171234567"
	cases := []struct {
		name  string
		phone *string
		want  bool
	}{
		{"nil", nil, false},
		{"empty", &empty, false},
		{"set", &filled, true},
	}
	for _, tc := range cases {
		u := User{PhoneNumber: tc.phone}
		if got := u.HasPhoneNumber(); got != tc.want {
			t.Fatalf("%s: HasPhoneNumber() = %v, want %v", tc.name, got, tc.want)
		}
	}
}
