// Package validate mirrors the remote API's input rules so forms can reject
// bad input before a round trip. The server remains the authority; these
// checks exist only to give immediate feedback.
package validate

import (
	"net/url"
	"regexp"
	"strings"

	"taskboard/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const passwordSpecials = `!@#$%^&*(),.?":{}|<>`

// FieldErrors collects per-field problems. Its message joins them the same
// way the API's validation envelope is rendered.
type FieldErrors []string

func (e FieldErrors) Error() string {
	return strings.Join(e, ", ")
}

// errOrNil avoids returning a non-nil error interface holding an empty slice.
func errOrNil(errs FieldErrors) error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Login checks the login form.
func Login(email, password string) error {
	var errs FieldErrors
	errs = append(errs, checkEmail(email)...)
	if password == "" {
		errs = append(errs, "Password is required")
	}
	return errOrNil(errs)
}

// Signup checks the signup form.
func Signup(name, email, password string) error {
	var errs FieldErrors
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		errs = append(errs, "Name is required")
	case len(name) < 2:
		errs = append(errs, "Name must be at least 2 characters")
	case len(name) > 50:
		errs = append(errs, "Name cannot exceed 50 characters")
	}
	errs = append(errs, checkEmail(email)...)
	errs = append(errs, checkPassword(password)...)
	return errOrNil(errs)
}

// CreateTask checks a new task before it is sent.
func CreateTask(req models.CreateTaskRequest) error {
	var errs FieldErrors
	title := strings.TrimSpace(req.Title)
	switch {
	case title == "":
		errs = append(errs, "Task title is required")
	case len(title) < 3:
		errs = append(errs, "Title must be at least 3 characters")
	case len(title) > 100:
		errs = append(errs, "Title cannot exceed 100 characters")
	}
	errs = append(errs, checkDescription(req.Description)...)
	errs = append(errs, checkStatus(req.Status)...)
	errs = append(errs, checkPriority(req.Priority)...)
	return errOrNil(errs)
}

// UpdateTask checks a task edit; empty fields mean "leave unchanged".
func UpdateTask(req models.UpdateTaskRequest) error {
	var errs FieldErrors
	if req.Title != "" {
		title := strings.TrimSpace(req.Title)
		if len(title) < 3 {
			errs = append(errs, "Title must be at least 3 characters")
		} else if len(title) > 100 {
			errs = append(errs, "Title cannot exceed 100 characters")
		}
	}
	errs = append(errs, checkDescription(req.Description)...)
	errs = append(errs, checkStatus(req.Status)...)
	errs = append(errs, checkPriority(req.Priority)...)
	return errOrNil(errs)
}

// UpdateProfile checks a profile edit.
func UpdateProfile(req models.UpdateProfileRequest) error {
	var errs FieldErrors
	if req.Name != "" {
		name := strings.TrimSpace(req.Name)
		if len(name) < 2 {
			errs = append(errs, "Name must be at least 2 characters")
		} else if len(name) > 50 {
			errs = append(errs, "Name cannot exceed 50 characters")
		}
	}
	if len(strings.TrimSpace(req.Bio)) > 200 {
		errs = append(errs, "Bio cannot exceed 200 characters")
	}
	if req.Avatar != "" {
		u, err := url.Parse(req.Avatar)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, "Please provide a valid URL")
		}
	}
	return errOrNil(errs)
}

// UpdatePassword checks a password change.
func UpdatePassword(current, next, confirm string) error {
	var errs FieldErrors
	if current == "" {
		errs = append(errs, "Current password is required")
	}
	errs = append(errs, checkPassword(next)...)
	if confirm == "" {
		errs = append(errs, "Please confirm your password")
	} else if next != confirm {
		errs = append(errs, "Passwords do not match")
	}
	return errOrNil(errs)
}

func checkEmail(email string) FieldErrors {
	email = strings.TrimSpace(email)
	if email == "" {
		return FieldErrors{"Email is required"}
	}
	if !emailPattern.MatchString(email) {
		return FieldErrors{"Please provide a valid email address"}
	}
	return nil
}

// checkPassword enforces the four character classes the server requires.
func checkPassword(password string) FieldErrors {
	if password == "" {
		return FieldErrors{"Password is required"}
	}
	var errs FieldErrors
	if len(password) < 6 {
		errs = append(errs, "Password must be at least 6 characters long")
	}
	if !strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		errs = append(errs, "Password must contain at least one uppercase letter")
	}
	if !strings.ContainsAny(password, "abcdefghijklmnopqrstuvwxyz") {
		errs = append(errs, "Password must contain at least one lowercase letter")
	}
	if !strings.ContainsAny(password, "0123456789") {
		errs = append(errs, "Password must contain at least one number")
	}
	if !strings.ContainsAny(password, passwordSpecials) {
		errs = append(errs, "Password must contain at least one special character")
	}
	return errs
}

func checkDescription(desc string) FieldErrors {
	if len(strings.TrimSpace(desc)) > 500 {
		return FieldErrors{"Description cannot exceed 500 characters"}
	}
	return nil
}

func checkStatus(status string) FieldErrors {
	switch status {
	case "", models.StatusPending, models.StatusInProgress, models.StatusCompleted:
		return nil
	}
	return FieldErrors{"Status must be pending, in-progress or completed"}
}

func checkPriority(priority string) FieldErrors {
	switch priority {
	case "", models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		return nil
	}
	return FieldErrors{"Priority must be low, medium or high"}
}
