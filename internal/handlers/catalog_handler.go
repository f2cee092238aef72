package handlers

import (
	"campus-event-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// ListThemes returns the five themes with their event counts
// @Summary List themes
// @Tags Themes
// @Produce json
// @Success 200 {object} utils.Response
// @Router /themes [get]
func (h *Handler) ListThemes(c *fiber.Ctx) error {
	themes, err := h.eventSvc.ThemeSummaries(c.UserContext())
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, themes, "Themes retrieved successfully")
}

// GetTheme returns a theme and its events
// @Summary Get theme
// @Tags Themes
// @Produce json
// @Param id path string true "Theme ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /themes/{id} [get]
func (h *Handler) GetTheme(c *fiber.Ctx) error {
	theme, err := h.eventSvc.GetTheme(c.Params("id"))
	if err != nil {
		return h.respondError(c, err)
	}

	events, err := h.eventSvc.ListByTheme(c.UserContext(), string(theme.ID))
	if err != nil {
		return h.respondError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"theme":  theme,
		"events": events,
	}, "Theme retrieved successfully")
}

func (h *Handler) ListVenues(c *fiber.Ctx) error {
	return utils.Success(c, h.eventSvc.Venues(), "Venues retrieved successfully")
}

func (h *Handler) ListSections(c *fiber.Ctx) error {
	return utils.Success(c, h.eventSvc.Sections(), "Sections retrieved successfully")
}

func (h *Handler) GetStatistics(c *fiber.Ctx) error {
	return utils.Success(c, h.eventSvc.Statistics(), "Statistics retrieved successfully")
}

// ExportCalendar serves the catalog as an iCalendar feed
// @Summary Calendar feed
// @Tags Calendar
// @Produce text/calendar
// @Success 200 {string} string
// @Router /calendar.ics [get]
func (h *Handler) ExportCalendar(c *fiber.Ctx) error {
	feed, err := h.eventSvc.ExportICS(c.UserContext(), h.cfg.InstitutionDomain)
	if err != nil {
		return h.respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	return c.SendString(feed)
}
