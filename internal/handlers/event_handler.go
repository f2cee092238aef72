package handlers

import (
	"strconv"

	"campus-event-catalog/internal/middleware"
	"campus-event-catalog/internal/services"
	"campus-event-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// ListEvents returns the catalog, optionally filtered
// @Summary List events
// @Tags Events
// @Produce json
// @Param q query string false "Search in title and description"
// @Param date query string false "Calendar day (YYYY-MM-DD)"
// @Param theme query string false "Theme id"
// @Success 200 {object} utils.Response
// @Router /events [get]
func (h *Handler) ListEvents(c *fiber.Ctx) error {
	events, err := h.eventSvc.Query(c.UserContext(), services.EventQuery{
		Text:  c.Query("q"),
		Date:  c.Query("date"),
		Theme: c.Query("theme"),
	})
	if err != nil {
		return h.respondError(c, err)
	}

	return utils.SuccessWithMeta(c, events, &utils.Meta{Total: len(events)}, "Events retrieved successfully")
}

// UpcomingEvents returns the soonest upcoming events
// @Summary Upcoming events
// @Tags Events
// @Produce json
// @Param limit query int false "Maximum number of events" default(4)
// @Success 200 {object} utils.Response
// @Router /events/upcoming [get]
func (h *Handler) UpcomingEvents(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(h.cfg.UpcomingLimit)))
	if err != nil || limit <= 0 {
		limit = h.cfg.UpcomingLimit
	}

	events, err := h.eventSvc.Upcoming(c.UserContext(), limit)
	if err != nil {
		return h.respondError(c, err)
	}

	return utils.SuccessWithMeta(c, events, &utils.Meta{Total: len(events)}, "Upcoming events retrieved successfully")
}

// GetEvent returns event by ID
// @Summary Get event by ID
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /events/{id} [get]
func (h *Handler) GetEvent(c *fiber.Ctx) error {
	event, err := h.eventSvc.GetEvent(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.respondError(c, err)
	}

	return utils.Success(c, event, "Event retrieved successfully")
}

// GetEventQR returns a PNG QR code linking to the event
// @Summary Event share QR code
// @Tags Events
// @Produce png
// @Param id path string true "Event ID"
// @Param size query int false "Image size in pixels" default(256)
// @Success 200 {file} binary
// @Failure 404 {object} utils.Response
// @Router /events/{id}/qr [get]
func (h *Handler) GetEventQR(c *fiber.Ctx) error {
	event, err := h.eventSvc.GetEvent(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.respondError(c, err)
	}

	size, _ := strconv.Atoi(c.Query("size", strconv.Itoa(utils.DefaultQRSize)))
	png, err := utils.GenerateQRCodePNG(h.cfg.PublicBaseURL+"/events/"+event.ID, size)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// CreateEvent creates a new event
// @Summary Create event
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body services.CreateEventInput true "Event data"
// @Success 201 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Router /events [post]
func (h *Handler) CreateEvent(c *fiber.Ctx) error {
	user, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.Error(c, err.Error(), fiber.StatusUnauthorized)
	}

	var req services.CreateEventInput
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}

	event, err := h.eventSvc.CreateEvent(c.UserContext(), user, req)
	if err != nil {
		return h.respondError(c, err)
	}

	return utils.Success(c, event, "The event "+event.Title+" has been created successfully.", fiber.StatusCreated)
}
