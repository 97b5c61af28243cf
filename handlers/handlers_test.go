package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratus-hq/site/pricing"
	"github.com/stratus-hq/site/ui"
)

func TestSignupURL(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		plan     pricing.PlanID
		expected string
	}{
		{
			name:     "relative path",
			base:     "/signup",
			plan:     pricing.PlanStarter,
			expected: "/signup?plan=starter",
		},
		{
			name:     "absolute with query",
			base:     "https://app.example.com/register?utm=site",
			plan:     pricing.PlanEnterprise,
			expected: "https://app.example.com/register?plan=enterprise&utm=site",
		},
		{
			name:     "existing plan is replaced",
			base:     "/signup?plan=old",
			plan:     pricing.PlanProfessional,
			expected: "/signup?plan=professional",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, signupURL(tt.base, tt.plan))
		})
	}
}

func TestDispatchError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "unknown event", err: fmt.Errorf("%w: x", ui.ErrUnknownEvent), code: fiber.StatusNotFound},
		{name: "unknown plan", err: fmt.Errorf("%w: x", pricing.ErrUnknownPlan), code: fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fe *fiber.Error
			require.True(t, errors.As(dispatchError(tt.err), &fe))
			assert.Equal(t, tt.code, fe.Code)
		})
	}

	other := errors.New("other")
	assert.Equal(t, other, dispatchError(other))
}

func TestValidator(t *testing.T) {
	v, err := newValidator()
	require.NoError(t, err)

	assert.NoError(t, v.Struct(actionRequest{Event: "back"}))
	assert.NoError(t, v.Struct(actionRequest{Event: "select-plan", Plan: "enterprise"}))

	err = v.Struct(actionRequest{Event: "select-plan", Plan: "gold"})
	require.Error(t, err)
	assert.Equal(t, `"gold" is not a plan`, validationMessage(err))

	err = v.Struct(actionRequest{})
	require.Error(t, err)
	assert.Equal(t, "event failed required", validationMessage(err))
}

func TestNavigate(t *testing.T) {
	app := fiber.New()
	app.Post("/go", func(c *fiber.Ctx) error {
		return navigate(c, c.Query("to"))
	})

	t.Run("plain request redirects", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/go?to=/pricing", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/pricing", resp.Header.Get("Location"))
	})

	t.Run("htmx request gets HX-Redirect", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/go?to=/about", nil)
		req.Header.Set("HX-Request", "true")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "/about", resp.Header.Get("HX-Redirect"))
	})

	t.Run("empty target falls back to root", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/go", nil))
		require.NoError(t, err)
		assert.Equal(t, "/", resp.Header.Get("Location"))
	})
}
