package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/domain"
	"github.com/jhoicas/stitchdesk/internal/domain/entity"
)

// errorStatus traduce la taxonomía de errores a status y código HTTP.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "INVALID_INPUT"
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusUnprocessableEntity, "VALIDATION"
	case errors.Is(err, domain.ErrCredentials):
		return fiber.StatusUnauthorized, "INVALID_CREDENTIALS"
	case errors.Is(err, domain.ErrSessionExpired):
		return fiber.StatusUnauthorized, "SESSION_EXPIRED"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, "CONFLICT"
	case errors.Is(err, domain.ErrNetwork):
		return fiber.StatusBadGateway, "NETWORK"
	case errors.Is(err, domain.ErrServer):
		return fiber.StatusBadGateway, "UPSTREAM"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

func writeError(c *fiber.Ctx, err error) error {
	status, code := errorStatus(err)
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: domain.Message(err)})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid JSON body"})
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{domain.ErrInvalidInput}, args...)...)
}

// paramID :id de la ruta, entero positivo.
func paramID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, invalid("id %q", c.Params("id"))
	}
	return id, nil
}

// optionalID query param numérico; vacío = sin filtro.
func optionalID(c *fiber.Ctx, key string) (*int64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, invalid("%s %q", key, raw)
	}
	return &id, nil
}

func queryDate(c *fiber.Ctx, key string) (entity.Date, error) {
	raw := c.Query(key)
	if raw == "" {
		return entity.Date{}, nil
	}
	d, err := entity.ParseDate(raw)
	if err != nil {
		return entity.Date{}, invalid("%s %q", key, raw)
	}
	return d, nil
}

// dateFilter lee mode/date/startDate/endDate partiendo del filtro vigente.
// Sin mode explícito se deduce de los campos presentes. Un mode sin fechas
// solo cambia de modo: los valores del modo anterior se descartan.
func dateFilter(c *fiber.Ctx, current dto.DateFilter) (dto.DateFilter, error) {
	hasDate := c.Query("date") != ""
	hasRange := c.Query("startDate") != "" || c.Query("endDate") != ""
	mode := dto.DateMode(c.Query("mode"))
	if mode == "" {
		switch {
		case hasDate:
			mode = dto.DateModeSingle
		case hasRange:
			mode = dto.DateModeRange
		default:
			return current, nil
		}
	}
	f := current
	f.SwitchMode(mode)
	switch mode {
	case dto.DateModeSingle:
		if !hasDate {
			return f, nil
		}
		d, err := queryDate(c, "date")
		if err != nil {
			return dto.DateFilter{}, err
		}
		f.Date = d
		return f, nil
	case dto.DateModeRange:
		if !hasRange {
			return f, nil
		}
		start, err := queryDate(c, "startDate")
		if err != nil {
			return dto.DateFilter{}, err
		}
		end, err := queryDate(c, "endDate")
		if err != nil {
			return dto.DateFilter{}, err
		}
		if !start.IsZero() && !end.IsZero() && end.Before(start.Time) {
			return dto.DateFilter{}, invalid("end date before start date")
		}
		f.StartDate, f.EndDate = start, end
		return f, nil
	default:
		return dto.DateFilter{}, invalid("date mode %q", mode)
	}
}

// hasQuery el request trae filtros; sin ellos la página se refresca con el
// filtro vigente de la vista.
func hasQuery(c *fiber.Ctx) bool {
	return len(c.Request().URI().QueryString()) > 0
}
