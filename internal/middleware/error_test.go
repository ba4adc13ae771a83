package middleware_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/Nishitha-lab/StudyStreak-AI/internal/domain"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/middleware"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorTestApp(err error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return err
	})
	return app
}

func TestErrorHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "not found",
			err:            domain.NewNotFoundError("quiz not found"),
			expectedStatus: fiber.StatusNotFound,
			expectedCode:   string(domain.CodeNotFound),
		},
		{
			name:           "validation",
			err:            domain.NewError(domain.CodeValidation, "bad input", nil),
			expectedStatus: fiber.StatusBadRequest,
			expectedCode:   string(domain.CodeValidation),
		},
		{
			name:           "unauthorized",
			err:            domain.NewUnauthorizedError("not logged in"),
			expectedStatus: fiber.StatusUnauthorized,
			expectedCode:   string(domain.CodeUnauthorized),
		},
		{
			name:           "permission denied",
			err:            domain.NewPermissionDeniedError("not your task"),
			expectedStatus: fiber.StatusForbidden,
			expectedCode:   string(domain.CodePermissionDenied),
		},
		{
			name:           "collaborator unavailable",
			err:            domain.NewCollaboratorError("generation failed", nil),
			expectedStatus: fiber.StatusServiceUnavailable,
			expectedCode:   string(domain.CodeCollaborator),
		},
		{
			name:           "malformed collaborator response",
			err:            domain.NewMalformedResponseError("no JSON found", "raw"),
			expectedStatus: fiber.StatusBadGateway,
			expectedCode:   string(domain.CodeMalformedResponse),
		},
		{
			name:           "invalid credentials sentinel",
			err:            service.ErrInvalidCredentials,
			expectedStatus: fiber.StatusUnauthorized,
			expectedCode:   string(domain.CodeUnauthorized),
		},
		{
			name:           "revoked token sentinel",
			err:            service.ErrTokenRevoked,
			expectedStatus: fiber.StatusUnauthorized,
			expectedCode:   string(domain.CodeUnauthorized),
		},
		{
			name:           "internal",
			err:            domain.NewInternalError("db exploded", nil),
			expectedStatus: fiber.StatusInternalServerError,
			expectedCode:   string(domain.CodeInternal),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newErrorTestApp(tt.err)

			resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			var body middleware.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.expectedCode, body.Code)
			assert.Equal(t, tt.expectedStatus, body.Status)
		})
	}
}

func TestErrorHandler_ValidationErrors(t *testing.T) {
	verrs := domain.ValidationErrors{
		domain.NewMissingFieldError("title"),
		domain.NewOutOfRangeError("num_questions", 50, 1, 20),
	}
	app := newErrorTestApp(verrs)

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body middleware.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, string(domain.CodeValidation), body.Code)
	assert.Len(t, body.Errors, 2)
}

func TestErrorHandler_FiberErrorPassthrough(t *testing.T) {
	app := newErrorTestApp(fiber.NewError(fiber.StatusBadRequest, "invalid request body"))

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
