package handlers

import (
	"errors"

	"campus-event-catalog/internal/config"
	"campus-event-catalog/internal/middleware"
	"campus-event-catalog/internal/services"
	"campus-event-catalog/internal/utils"
	"campus-event-catalog/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	authSvc  *services.AuthService
	eventSvc *services.EventService
	cfg      *config.Config
}

func NewHandler(
	authSvc *services.AuthService,
	eventSvc *services.EventService,
	cfg *config.Config,
) *Handler {
	return &Handler{
		authSvc:  authSvc,
		eventSvc: eventSvc,
		cfg:      cfg,
	}
}

func (h *Handler) RegisterRoutes(router fiber.Router) {
	authed := []fiber.Handler{middleware.JWTMiddleware(h.cfg), h.RequireSession()}
	with := func(handlers ...fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, authed...), handlers...)
	}

	// Session
	router.Post("/auth/login", h.Login)
	router.Post("/auth/logout", with(h.Logout)...)
	router.Get("/profile", with(h.GetProfile)...)
	router.Put("/profile", with(h.UpdateProfile)...)

	// Reference data
	router.Get("/themes", h.ListThemes)
	router.Get("/themes/:id", h.GetTheme)
	router.Get("/venues", h.ListVenues)
	router.Get("/sections", h.ListSections)
	router.Get("/statistics", h.GetStatistics)
	router.Get("/calendar.ics", h.ExportCalendar)

	// Catalog
	router.Get("/events", h.ListEvents)
	router.Get("/events/upcoming", h.UpcomingEvents)
	router.Get("/events/:id", h.GetEvent)
	router.Get("/events/:id/qr", h.GetEventQR)
	router.Post("/events", with(middleware.StaffOnly, h.CreateEvent)...)
}

// ErrorHandler handles global errors
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	if code >= 500 {
		logger.For("http").WithError(err).WithField("path", c.Path()).Error("request failed")
	}

	return utils.Error(c, message, code)
}

// RequireSession resolves the session named by the token. A token whose
// session was logged out is rejected.
func (h *Handler) RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID, err := middleware.GetSessionIDFromContext(c)
		if err != nil {
			return utils.Error(c, "Authentication required", fiber.StatusUnauthorized)
		}

		user, err := h.authSvc.Session(sessionID).CurrentUser(c.UserContext())
		if err != nil {
			return h.respondError(c, err)
		}
		c.Locals(middleware.LocalCurrentUser, user)
		return c.Next()
	}
}

// respondError maps service errors onto status codes.
func (h *Handler) respondError(c *fiber.Ctx, err error) error {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		return utils.FieldError(c, ve.Field, ve.Message)
	case errors.Is(err, services.ErrNotAuthenticated):
		return utils.Error(c, "Authentication required", fiber.StatusUnauthorized)
	case errors.Is(err, services.ErrForbidden):
		return utils.Error(c, "You don't have permission to access this page", fiber.StatusForbidden)
	case errors.Is(err, services.ErrNotFound):
		return utils.Error(c, "Not found", fiber.StatusNotFound)
	}
	return err
}
