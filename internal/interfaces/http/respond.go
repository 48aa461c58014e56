package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/dto"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/result"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain"
)

// statusFor traduce la causa de un Err a código HTTP.
func statusFor(err error) int {
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrForeignKey), errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// sendList responde 200 con la lista; un fallo de lectura se proyecta a [].
func sendList[T any](c *fiber.Ctx, r result.Result[[]T]) error {
	return c.JSON(result.ToList(r))
}

// sendRow responde {data, error}. okStatus es 200 o 201.
func sendRow[T any](c *fiber.Ctx, okStatus int, r result.Result[*T]) error {
	out := result.ToRow(r)
	if out.Data == nil {
		status := statusFor(r.Err())
		if r.IsOk() {
			status = fiber.StatusInternalServerError
		}
		return c.Status(status).JSON(out)
	}
	return c.Status(okStatus).JSON(out)
}

// sendMutation responde {success, error}.
func sendMutation[T any](c *fiber.Ctx, r result.Result[T]) error {
	return c.Status(statusFor(r.Err())).JSON(result.ToMutation(r))
}

func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func invalidBody(c *fiber.Ctx) error {
	return badRequest(c, "INVALID_BODY", "cuerpo inválido")
}

// intID lee un id numérico de la ruta.
func intID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func invalidID(c *fiber.Ctx) error {
	return badRequest(c, "INVALID_ID", "id inválido")
}

// parseIDList interpreta "1,2,3". Entradas vacías se ignoran.
func parseIDList(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
