package validate

import (
	"strings"
	"testing"

	"taskboard/models"
)

func TestCreateTaskTitleBoundary(t *testing.T) {
	if err := CreateTask(models.CreateTaskRequest{Title: "ab"}); err == nil {
		t.Fatal("expected two-character title to be rejected")
	}
	if err := CreateTask(models.CreateTaskRequest{Title: "abc"}); err != nil {
		t.Fatalf("expected three-character title to pass, got %v", err)
	}
	long := strings.Repeat("x", 101)
	if err := CreateTask(models.CreateTaskRequest{Title: long}); err == nil {
		t.Fatal("expected 101-character title to be rejected")
	}
}

func TestPasswordCharacterClasses(t *testing.T) {
	cases := []struct {
		password string
		ok       bool
	}{
		{"Abcdef1!", true},
		{"abcdef1!", false}, // no uppercase
		{"ABCDEF1!", false}, // no lowercase
		{"Abcdefg!", false}, // no digit
		{"Abcdefg1", false}, // no special
		{"Ab1!", false},     // too short
		{"", false},
	}
	for _, tc := range cases {
		err := Signup("Alice", "alice@example.com", tc.password)
		if tc.ok && err != nil {
			t.Errorf("password %q: expected ok, got %v", tc.password, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("password %q: expected rejection", tc.password)
		}
	}
}

func TestSignupName(t *testing.T) {
	if err := Signup("A", "a@example.com", "Abcdef1!"); err == nil {
		t.Fatal("expected one-character name to be rejected")
	}
	if err := Signup(strings.Repeat("n", 51), "a@example.com", "Abcdef1!"); err == nil {
		t.Fatal("expected 51-character name to be rejected")
	}
	if err := Signup("  Al  ", "a@example.com", "Abcdef1!"); err != nil {
		t.Fatalf("expected trimmed name to pass, got %v", err)
	}
}

func TestLoginEmail(t *testing.T) {
	if err := Login("", "secret"); err == nil {
		t.Fatal("expected missing email to be rejected")
	}
	if err := Login("not-an-email", "secret"); err == nil {
		t.Fatal("expected malformed email to be rejected")
	}
	if err := Login("user@x.com", ""); err == nil {
		t.Fatal("expected missing password to be rejected")
	}
	if err := Login("user@x.com", "anything"); err != nil {
		t.Fatalf("expected valid login form to pass, got %v", err)
	}
}

func TestFieldErrorsJoinIntoOneMessage(t *testing.T) {
	err := Signup("", "", "")
	if err == nil {
		t.Fatal("expected errors")
	}
	msg := err.Error()
	if !strings.Contains(msg, "Name is required") || !strings.Contains(msg, "Email is required") {
		t.Fatalf("expected joined field errors, got %q", msg)
	}
	if !strings.Contains(msg, ", ") {
		t.Fatalf("expected comma-joined message, got %q", msg)
	}
}

func TestUpdatePassword(t *testing.T) {
	if err := UpdatePassword("", "Abcdef1!", "Abcdef1!"); err == nil {
		t.Fatal("expected missing current password to be rejected")
	}
	if err := UpdatePassword("old", "Abcdef1!", "Different1!"); err == nil {
		t.Fatal("expected mismatched confirmation to be rejected")
	}
	if err := UpdatePassword("old", "Abcdef1!", "Abcdef1!"); err != nil {
		t.Fatalf("expected valid change to pass, got %v", err)
	}
}

func TestUpdateTaskOptionalFields(t *testing.T) {
	// Everything empty means "leave unchanged".
	if err := UpdateTask(models.UpdateTaskRequest{}); err != nil {
		t.Fatalf("expected empty update to pass, got %v", err)
	}
	if err := UpdateTask(models.UpdateTaskRequest{Status: "paused"}); err == nil {
		t.Fatal("expected unknown status to be rejected")
	}
	if err := UpdateTask(models.UpdateTaskRequest{Title: "ab"}); err == nil {
		t.Fatal("expected short title to be rejected when provided")
	}
}

func TestUpdateProfile(t *testing.T) {
	if err := UpdateProfile(models.UpdateProfileRequest{Avatar: "not a url"}); err == nil {
		t.Fatal("expected malformed avatar URL to be rejected")
	}
	if err := UpdateProfile(models.UpdateProfileRequest{Avatar: "https://example.com/a.png"}); err != nil {
		t.Fatalf("expected valid avatar URL to pass, got %v", err)
	}
	if err := UpdateProfile(models.UpdateProfileRequest{Bio: strings.Repeat("b", 201)}); err == nil {
		t.Fatal("expected long bio to be rejected")
	}
}
