package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/stixsettings/stixsettings/internal/entitysetting"
)

// ErrorResponse is the JSON body of a failed request.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Context map[string]any `json:"context,omitempty"`
}

// SendError maps err to a status code and writes it as ErrorResponse.
// Unsupported entity types are client errors, everything else is logged
// and reported as an internal error.
func SendError(c *fiber.Ctx, err error) error {
	var unsupported *entitysetting.UnsupportedTypeError
	if errors.As(err, &unsupported) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   entitysetting.ErrUnsupportedType.Error(),
			Context: unsupported.Context(),
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(ErrorResponse{Error: fiberErr.Message})
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("request failed")

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "internal error"})
}
