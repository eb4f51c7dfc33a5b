package store

import (
	"testing"

	"github.com/google/uuid"
)

func testEmail(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8] + "@test.local"
}

func TestUserCreateAndFindByEmail(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	email := testEmail("create")
	t.Cleanup(func() { cleanUsers(t, db, email) })

	created, err := s.Create(email, "parola123", "Test Admin")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("Create should assign an ID")
	}
	if created.PasswordHash == "parola123" {
		t.Error("password must be stored hashed")
	}
	if created.TOTPEnabled {
		t.Error("new users start without 2FA")
	}

	found, err := s.FindByEmail(email)
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if found == nil || found.ID != created.ID {
		t.Fatalf("FindByEmail: got %+v", found)
	}
	if !found.Needs2FASetup() {
		t.Error("Needs2FASetup should be true before enrollment")
	}
}

func TestUserFindByEmailNotFound(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	found, err := s.FindByEmail("nobody@test.local")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if found != nil {
		t.Errorf("got %+v, want nil", found)
	}
}

func TestUserCheckPassword(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	email := testEmail("pw")
	t.Cleanup(func() { cleanUsers(t, db, email) })

	user, err := s.Create(email, "doğru-parola", "PW User")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if !s.CheckPassword(user, "doğru-parola") {
		t.Error("correct password rejected")
	}
	if s.CheckPassword(user, "yanlış") {
		t.Error("wrong password accepted")
	}
}

func TestUserTOTPLifecycle(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	email := testEmail("totp")
	t.Cleanup(func() { cleanUsers(t, db, email) })

	user, err := s.Create(email, "parola", "TOTP User")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.SetTOTPSecret(user.ID, "JBSWY3DPEHPK3PXP"); err != nil {
		t.Fatalf("SetTOTPSecret: %v", err)
	}
	if err := s.EnableTOTP(user.ID); err != nil {
		t.Fatalf("EnableTOTP: %v", err)
	}

	reloaded, err := s.FindByID(user.ID)
	if err != nil || reloaded == nil {
		t.Fatalf("FindByID: %v, %v", reloaded, err)
	}
	if reloaded.TOTPSecret == nil || *reloaded.TOTPSecret != "JBSWY3DPEHPK3PXP" {
		t.Errorf("totp secret not persisted: %+v", reloaded.TOTPSecret)
	}
	if !reloaded.TOTPEnabled {
		t.Error("totp not enabled after EnableTOTP")
	}
	if reloaded.Needs2FASetup() {
		t.Error("Needs2FASetup should be false after enrollment")
	}
}

func TestUserDelete(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	email := testEmail("del")
	t.Cleanup(func() { cleanUsers(t, db, email) })

	user, err := s.Create(email, "parola", "Del User")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.Delete(user.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	byID, err := s.FindByID(user.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	byEmail, err := s.FindByEmail(email)
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if byID != nil || byEmail != nil {
		t.Error("deleted user should not be findable")
	}
}
