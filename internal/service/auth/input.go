package auth

import (
	"fmt"
	"strings"

	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
)

const (
	minPasswordLength = 8
	maxUsernameLength = 64
)

// RegisterInput carries the data for creating a new account.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

func (in *RegisterInput) Validate() error {
	var errs []domain.FieldError

	if !strings.Contains(in.Email, "@") || strings.TrimSpace(in.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "must be a valid email address"})
	}
	if strings.TrimSpace(in.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "is required"})
	} else if len(in.Username) > maxUsernameLength {
		errs = append(errs, domain.FieldError{Field: "username", Message: fmt.Sprintf("must be at most %d characters", maxUsernameLength)})
	}
	if len(in.Password) < minPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: fmt.Sprintf("must be at least %d characters", minPasswordLength)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LoginInput carries email + password credentials.
type LoginInput struct {
	Email    string
	Password string
}

func (in *LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(in.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "is required"})
	}
	if in.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "is required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
