// ================== internal/features/users/validator.go ==================
package users

import (
	"errors"
	"strings"

	"github.com/DexterPressley/calzone/internal/pkg/validator"
)

func ValidateRegister(req *RegisterRequest) error {
	if strings.TrimSpace(req.FirstName) == "" ||
		strings.TrimSpace(req.LastName) == "" ||
		strings.TrimSpace(req.Username) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		req.Password == "" {
		return errors.New("All fields are required (firstName, lastName, username, email, password)")
	}

	if !validator.IsValidUsername(strings.TrimSpace(req.Username)) {
		return errors.New("Username must be 3-20 characters (letters, numbers, _ or -)")
	}

	if !validator.IsValidEmail(strings.TrimSpace(req.Email)) {
		return errors.New("Email format is invalid")
	}

	if len(req.Password) < 6 {
		return errors.New("Password must be at least 6 characters")
	}

	return nil
}

func ValidateResetPassword(req *ResetPasswordRequest) error {
	if req.Token == "" {
		return errors.New("Reset token is required")
	}

	if req.NewPassword == "" || req.ConfirmPassword == "" {
		return errors.New("New password and confirmation are required")
	}

	if len(req.NewPassword) < 6 {
		return errors.New("Password must be at least 6 characters")
	}

	if req.NewPassword != req.ConfirmPassword {
		return errors.New("Passwords do not match")
	}

	return nil
}

func ValidateRolloverTime(req *RolloverTimeRequest) error {
	if req.DayRolloverTime == "" {
		return errors.New("dayRolloverTime is required")
	}

	if !validator.IsValidClock(req.DayRolloverTime) {
		return errors.New("dayRolloverTime must be in HH:MM format (24-hour)")
	}

	return nil
}
