package presenters

import (
	"Wanderpass-Backend/domain"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, handler fiber.Handler) (int, Response) {
	t.Helper()
	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed Response
	require.NoError(t, json.Unmarshal(body, &parsed))
	return resp.StatusCode, parsed
}

func TestSuccessResponse(t *testing.T) {
	status, parsed := doRequest(t, func(c *fiber.Ctx) error {
		return SuccessResponse(c, fiber.Map{"id": "abc"}, fiber.StatusCreated, "created")
	})

	assert.Equal(t, fiber.StatusCreated, status)
	assert.True(t, parsed.Status)
	assert.Equal(t, "created", parsed.Message)
}

func TestErrorResponseHidesInternalDetail(t *testing.T) {
	status, parsed := doRequest(t, func(c *fiber.Ctx) error {
		return ErrorResponse(c, fiber.StatusInternalServerError, "failed", errors.New("pq: connection refused"))
	})

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.False(t, parsed.Status)
	assert.Equal(t, domain.MessageInternalServerError, parsed.Error)
	assert.NotContains(t, parsed.Error, "pq:")
}

func TestErrorResponseInsufficientTokensPayload(t *testing.T) {
	status, parsed := doRequest(t, func(c *fiber.Ctx) error {
		err := &domain.InsufficientTokensError{Required: 50, Current: 10}
		return ErrorResponse(c, fiber.StatusBadRequest, "failed to unlock trip", err)
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	data, ok := parsed.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(50), data["required"])
	assert.Equal(t, float64(10), data["current"])
}
