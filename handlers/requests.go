package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/stratus-hq/site/pricing"
)

// actionRequest is the route data of a control activation.
type actionRequest struct {
	Event string `params:"event" validate:"required,max=32"`
	Plan  string `params:"plan" validate:"omitempty,planid"`
}

func newValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.RegisterValidation("planid", func(fl validator.FieldLevel) bool {
		_, err := pricing.ParseID(fl.Field().String())
		return err == nil
	})
	if err != nil {
		return nil, fmt.Errorf("register planid validation: %w", err)
	}
	return v, nil
}

// bindAction reads and validates the action route parameters.
func (s *Site) bindAction(c *fiber.Ctx) (actionRequest, error) {
	var req actionRequest
	if err := c.ParamsParser(&req); err != nil {
		return req, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := s.validate.Struct(req); err != nil {
		return req, fiber.NewError(fiber.StatusBadRequest, validationMessage(err))
	}
	return req, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "planid":
			msgs = append(msgs, fmt.Sprintf("%q is not a plan", fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
