package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stitchdesk/internal/application/attendance"
	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/application/listview"
	"github.com/jhoicas/stitchdesk/internal/infrastructure/backend"
)

// AttendanceHandler asistencia diaria.
type AttendanceHandler struct {
	*pages
}

// newAttendanceHandler construye el handler.
func newAttendanceHandler(p *pages) *AttendanceHandler {
	return &AttendanceHandler{pages: p}
}

func (h *AttendanceHandler) bind(c *fiber.Ctx) (*attendance.UseCase, *listview.View[dto.AttendanceFilter, dto.AttendancePageDTO]) {
	conn := h.conn(c)
	uc := attendance.NewUseCase(backend.NewAttendanceRepository(conn), backend.NewUserRepository(conn))
	v := viewFor[dto.AttendanceFilter, dto.AttendancePageDTO](h.pages, c, "attendance", func() dto.AttendanceFilter {
		return dto.AttendanceFilter{Date: today()}
	})
	return uc, v
}

// List GET /admin/attendance?date=&userId=
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	uc, v := h.bind(c)
	return show(c, v, func() (dto.AttendanceFilter, error) {
		date, err := queryDate(c, "date")
		if err != nil {
			return dto.AttendanceFilter{}, err
		}
		if date.IsZero() {
			date = today()
		}
		userID, err := optionalID(c, "userId")
		return dto.AttendanceFilter{Date: date, UserID: userID}, err
	}, uc.Load)
}

// Create POST /admin/attendance
func (h *AttendanceHandler) Create(c *fiber.Ctx) error {
	var in dto.AttendanceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	uc, v := h.bind(c)
	return mutate(c, v, "Attendance recorded", func(ctx context.Context) error {
		return uc.Create(ctx, in)
	}, uc.Load, in)
}

// UpdateStatus PUT /admin/attendance/:id
func (h *AttendanceHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.AttendanceStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	uc, v := h.bind(c)
	return mutate(c, v, "Attendance updated", func(ctx context.Context) error {
		return uc.UpdateStatus(ctx, id, in)
	}, uc.Load, in)
}

// Delete DELETE /admin/attendance/:id?confirm=true
func (h *AttendanceHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	confirmed := c.QueryBool("confirm")
	uc, v := h.bind(c)
	return mutate(c, v, "Attendance deleted", func(ctx context.Context) error {
		return uc.Delete(ctx, id, confirmed)
	}, uc.Load, nil)
}
