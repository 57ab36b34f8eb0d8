package services

import (
	"errors"
	"testing"

	"github.com/Dayabrar/Eco-Eats/models"
)

func TestRegisterSeedsDefaultGoals(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db)

	user, err := auth.Register("jamie@example.com", "hunter2hunter2", "Jamie", 30, "female", "moderate")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Verified {
		t.Error("new account should start unverified")
	}
	if user.VerificationCode == "" {
		t.Error("no verification code assigned")
	}
	if user.Password == "hunter2hunter2" {
		t.Error("password stored in plaintext")
	}

	var goal models.NutritionGoal
	if err := db.Where("user_id = ?", user.ID).First(&goal).Error; err != nil {
		t.Fatalf("no default goal row: %v", err)
	}
	if goal.Calories != 2000 {
		t.Errorf("default calories target = %d, want 2000", goal.Calories)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db)

	if _, err := auth.Register("dup@example.com", "hunter2hunter2", "First", 0, "", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := auth.Register("dup@example.com", "hunter2hunter2", "Second", 0, "", ""); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("got %v, want ErrEmailTaken", err)
	}
}

func TestLoginFlow(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	auth := NewAuthService(db)

	user, err := auth.Register("sam@example.com", "hunter2hunter2", "Sam", 25, "male", "active")
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := auth.Login("sam@example.com", "hunter2hunter2"); !errors.Is(err, ErrNotVerified) {
		t.Errorf("unverified login: got %v, want ErrNotVerified", err)
	}
	if _, _, err := auth.Login("sam@example.com", "wrong-password"); !errors.Is(err, ErrInvalidCredential) {
		t.Errorf("bad password: got %v, want ErrInvalidCredential", err)
	}
	if _, _, err := auth.Login("nobody@example.com", "hunter2hunter2"); !errors.Is(err, ErrInvalidCredential) {
		t.Errorf("unknown email: got %v, want ErrInvalidCredential", err)
	}

	wrong := "000000"
	if user.VerificationCode == wrong {
		wrong = "000001"
	}
	if err := auth.Verify("sam@example.com", wrong); !errors.Is(err, ErrBadCode) {
		t.Errorf("wrong code: got %v, want ErrBadCode", err)
	}
	if err := auth.Verify("sam@example.com", user.VerificationCode); err != nil {
		t.Fatalf("verify: %v", err)
	}

	token, got, err := auth.Login("sam@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("verified login: %v", err)
	}
	if token == "" {
		t.Error("empty token")
	}
	if got.ID != user.ID {
		t.Errorf("logged in as %d, want %d", got.ID, user.ID)
	}
}
