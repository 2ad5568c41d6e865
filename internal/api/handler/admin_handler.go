package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plantops/identity-service/internal/core/ports"
)

// AdminHandler serves the admin-only surface: role reassignment and the
// guarded dashboard payload.
type AdminHandler struct {
	identity ports.IdentityService
}

func NewAdminHandler(identity ports.IdentityService) *AdminHandler {
	return &AdminHandler{identity: identity}
}

type assignRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type assignRoleResponse struct {
	Message string `json:"message"`
	Role    string `json:"role"`
}

// AssignRole overwrites the target user's role. The caller's admin privilege
// is re-checked against the store inside the service, so a stale admin token
// held by a demoted user is powerless here.
//
// @Summary      Reassign a user's role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string             true  "Target username"
// @Param        body      body      assignRoleRequest  true  "New role"
// @Success      200       {object}  assignRoleResponse
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Failure      422       {object}  map[string]string
// @Router       /admin/users/{username}/role [put]
func (h *AdminHandler) AssignRole(c echo.Context) error {
	caller, err := ctxUsername(c)
	if err != nil {
		return err
	}

	target := c.Param("username")
	if target == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing target username")
	}

	var req assignRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.identity.AssignRole(c.Request().Context(), caller, target, req.Role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, assignRoleResponse{
		Message: "role updated for " + updated.Username,
		Role:    updated.Role,
	})
}

// Dashboard returns the admin-only payload. Access is enforced by the RBAC
// middleware on the route; reaching this handler means the role check passed.
//
// @Summary      Admin dashboard
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "welcome to the admin dashboard, " + username,
	})
}
