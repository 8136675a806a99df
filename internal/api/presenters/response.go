package presenters

import (
	"Wanderpass-Backend/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	resp := Response{
		Status:  false,
		Message: message,
	}

	if statusCode == fiber.StatusInternalServerError {
		// Internal detail never leaks to the caller.
		resp.Error = domain.MessageInternalServerError
	} else if err != nil {
		resp.Error = err.Error()

		var insufficient *domain.InsufficientTokensError
		if errors.As(err, &insufficient) {
			resp.Data = fiber.Map{
				"required": insufficient.Required,
				"current":  insufficient.Current,
			}
		}
	}

	return c.Status(statusCode).JSON(resp)
}
