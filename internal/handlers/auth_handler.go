package handlers

import (
	"campus-event-catalog/internal/middleware"
	"campus-event-catalog/internal/services"
	"campus-event-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=100"`
	Section    *string `json:"section" validate:"omitempty,max=20"`
	Department *string `json:"department" validate:"omitempty,max=100"`
}

// Login handles user authentication
// @Summary User login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Router /auth/login [post]
func (h *Handler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := middleware.BindAndValidate(c, &req); err != nil {
		return h.respondError(c, err)
	}

	loginResp, err := h.authSvc.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return h.respondError(c, err)
	}

	return utils.Success(c, loginResp, "Welcome back, "+loginResp.User.Name+"!")
}

// Logout ends the current session
// @Summary User logout
// @Tags Auth
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Router /auth/logout [post]
func (h *Handler) Logout(c *fiber.Ctx) error {
	sessionID, err := middleware.GetSessionIDFromContext(c)
	if err != nil {
		return utils.Error(c, err.Error(), fiber.StatusUnauthorized)
	}

	if err := h.authSvc.Session(sessionID).Logout(c.UserContext()); err != nil {
		return err
	}

	return utils.Success(c, nil, "You have been successfully logged out")
}

// GetProfile returns current user profile
// @Summary Get user profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /profile [get]
func (h *Handler) GetProfile(c *fiber.Ctx) error {
	user, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.Error(c, err.Error(), fiber.StatusUnauthorized)
	}

	return utils.Success(c, fiber.Map{
		"user":     user,
		"is_staff": user.IsStaff(),
	}, "Profile retrieved successfully")
}

// UpdateProfile changes the signed-in user's name, section or department
// @Summary Update user profile
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Router /profile [put]
func (h *Handler) UpdateProfile(c *fiber.Ctx) error {
	sessionID, err := middleware.GetSessionIDFromContext(c)
	if err != nil {
		return utils.Error(c, err.Error(), fiber.StatusUnauthorized)
	}

	var req UpdateProfileRequest
	if err := middleware.BindAndValidate(c, &req); err != nil {
		return h.respondError(c, err)
	}

	user, err := h.authSvc.Session(sessionID).UpdateProfile(c.UserContext(), services.ProfilePatch{
		Name:       req.Name,
		Section:    req.Section,
		Department: req.Department,
	})
	if err != nil {
		return h.respondError(c, err)
	}

	return utils.Success(c, user, "Your profile has been successfully updated")
}
