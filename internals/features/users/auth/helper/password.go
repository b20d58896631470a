package helpers

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func isValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

func ValidateRegisterInput(userName, email, password string) error {
	if strings.TrimSpace(userName) == "" {
		return errors.New("user_name is required")
	}
	if !isValidEmail(strings.TrimSpace(email)) {
		return errors.New("email format is invalid")
	}
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

func ValidateLoginInput(identifier, password string) error {
	if strings.TrimSpace(identifier) == "" {
		return errors.New("identifier is required")
	}
	if password == "" {
		return errors.New("password is required")
	}
	return nil
}

func ValidateResetPassword(email, newPassword string) error {
	if !isValidEmail(strings.TrimSpace(email)) {
		return errors.New("email format is invalid")
	}
	if len(newPassword) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}
