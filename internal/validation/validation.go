package validation

import (
	"fmt"
	"strings"

	"github.com/Estefano-cmd/impulsoApi/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	RegisterCustomValidations()
}

// ValidateStruct validates a struct using validation tags
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return err
	}
	return nil
}

// ValidateRoleType checks a role type against the known values
func ValidateRoleType(roleType string) error {
	if !models.RoleType(roleType).Valid() {
		return fmt.Errorf("invalid role_type %q", roleType)
	}
	return nil
}

// RegisterCustomValidations registers custom validation functions
func RegisterCustomValidations() {
	validate.RegisterValidation("role_type", func(fl validator.FieldLevel) bool {
		return ValidateRoleType(fl.Field().String()) == nil
	})
}

// Message flattens validator errors into a single readable line
func Message(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", fe.Field()))
		case "role_type":
			parts = append(parts, fmt.Sprintf("%s must be one of distributor, seller, office", fe.Field()))
		default:
			parts = append(parts, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}
