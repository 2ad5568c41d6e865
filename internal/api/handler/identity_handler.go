package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plantops/identity-service/internal/core/ports"
)

// IdentityHandler serves token introspection. The token proves who the
// caller is; the role comes from the store so reassignments show up before
// old tokens expire.
type IdentityHandler struct {
	identity ports.IdentityService
}

func NewIdentityHandler(identity ports.IdentityService) *IdentityHandler {
	return &IdentityHandler{identity: identity}
}

type meResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Me returns the authenticated caller's identity and current role.
//
// @Summary      Who am I
// @Tags         identity
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /me [get]
func (h *IdentityHandler) Me(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	user, err := h.identity.Introspect(c.Request().Context(), username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, meResponse{Username: user.Username, Role: user.Role})
}
