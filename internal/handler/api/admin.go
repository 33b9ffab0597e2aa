package api

import (
	"net/http"

	reqdto "asset-factory/internal/handler/dto/request"
	resdto "asset-factory/internal/handler/dto/response"
	"asset-factory/internal/handler/httperr"
	"asset-factory/internal/usecase/commands"
	"asset-factory/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	cmds commands.AdminCommands
	q    queries.ProgramQueries
}

func NewAdminHandler(cmds commands.AdminCommands, q queries.ProgramQueries) *AdminHandler {
	return &AdminHandler{cmds: cmds, q: q}
}

// @Summary Create admin
// @Description Register an admin identity. The caller must be an admin past its cooldown, or the root authority.
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAdminRequest true "Admin request"
// @Success 201 {object} resdto.AdminResponse
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admins [post]
func (h *AdminHandler) Create(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.CreateAdminRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.CreateAdmin(c.Request.Context(), caller, req.Identity, req.Username); err != nil {
		httperr.AbortWithProgramError(c, err)
		return
	}
	view, err := h.q.GetAdmin(c.Request.Context(), req.Identity)
	if err != nil {
		httperr.AbortWithProgramError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAdminView(view))
}

// @Summary Get admin
// @Tags admins
// @Produce json
// @Param identity path string true "Admin identity (base58)"
// @Success 200 {object} resdto.AdminResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admins/{identity} [get]
func (h *AdminHandler) Get(c *gin.Context) {
	identity, ok := addressParam(c, "identity")
	if !ok {
		return
	}
	view, err := h.q.GetAdmin(c.Request.Context(), identity)
	if err != nil {
		httperr.AbortWithProgramError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAdminView(view))
}

// @Summary Remove admin
// @Description Close an admin record and refund its deposit to the root authority. Root authority only.
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param identity path string true "Admin identity (base58)"
// @Success 200 {object} resdto.RemoveAdminResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admins/{identity} [delete]
func (h *AdminHandler) Remove(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	identity, ok := addressParam(c, "identity")
	if !ok {
		return
	}
	refund, err := h.cmds.RemoveAdmin(c.Request.Context(), caller, identity)
	if err != nil {
		httperr.AbortWithProgramError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.RemoveAdminResponse{Identity: identity.String(), Refund: refund})
}
