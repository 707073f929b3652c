package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jcastro/llantera-api/internal/application/dto"
)

// internalError registra el error real en el log y responde un mensaje
// genérico: los detalles del driver no salen por la API.
func internalError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
