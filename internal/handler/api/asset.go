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

type AssetHandler struct {
	cmds commands.AssetCommands
	q    queries.ProgramQueries
}

func NewAssetHandler(cmds commands.AssetCommands, q queries.ProgramQueries) *AssetHandler {
	return &AssetHandler{cmds: cmds, q: q}
}

// @Summary Create asset
// @Description Stage the asset record and mint behind reservation id. Admin only.
// @Tags assets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param owner path string true "Collection owner (base58)"
// @Param request body reqdto.CreateAssetRequest true "Asset request"
// @Success 201 {object} resdto.AssetResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /collections/{owner}/assets [post]
func (h *AssetHandler) Create(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	owner, ok := addressParam(c, "owner")
	if !ok {
		return
	}
	var req reqdto.CreateAssetRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.CreateAsset(c.Request.Context(), caller, req.ToInput(owner)); err != nil {
		httperr.AbortWithProgramError(c, err)
		return
	}
	view, err := h.q.GetAsset(c.Request.Context(), owner, req.ID)
	if err != nil {
		httperr.AbortWithProgramError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAssetView(view))
}

// @Summary Get asset
// @Tags assets
// @Produce json
// @Param owner path string true "Collection owner (base58)"
// @Param id path int true "Asset id"
// @Success 200 {object} resdto.AssetResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /collections/{owner}/assets/{id} [get]
func (h *AssetHandler) Get(c *gin.Context) {
	owner, ok := addressParam(c, "owner")
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	view, err := h.q.GetAsset(c.Request.Context(), owner, id)
	if err != nil {
		httperr.AbortWithProgramError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAssetView(view))
}

// @Summary Finalize asset
// @Description Deliver the asset token to the reservation buyer and burn the reservation token. Admin only.
// @Tags assets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param owner path string true "Collection owner (base58)"
// @Param id path int true "Asset id"
// @Param request body reqdto.FinalizeAssetRequest true "Buyer"
// @Success 200 {object} resdto.AssetResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /collections/{owner}/assets/{id}/finalize [post]
func (h *AssetHandler) Finalize(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	owner, ok := addressParam(c, "owner")
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req reqdto.FinalizeAssetRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.FinalizeAsset(c.Request.Context(), caller, owner, id, req.Buyer); err != nil {
		httperr.AbortWithProgramError(c, err)
		return
	}
	view, err := h.q.GetAsset(c.Request.Context(), owner, id)
	if err != nil {
		httperr.AbortWithProgramError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAssetView(view))
}
