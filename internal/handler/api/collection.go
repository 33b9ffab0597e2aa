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

type CollectionHandler struct {
	cmds commands.CollectionCommands
	q    queries.ProgramQueries
}

func NewCollectionHandler(cmds commands.CollectionCommands, q queries.ProgramQueries) *CollectionHandler {
	return &CollectionHandler{cmds: cmds, q: q}
}

// @Summary Create collection
// @Description Create the caller's collection. Price is given in whole currency units.
// @Tags collections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCollectionRequest true "Collection request"
// @Success 201 {object} resdto.CollectionResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /collections [post]
func (h *CollectionHandler) Create(c *gin.Context) {
	owner, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.CreateCollectionRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.CreateCollection(c.Request.Context(), owner, req.ToInput()); err != nil {
		httperr.AbortWithProgramError(c, err)
		return
	}
	view, err := h.q.GetCollection(c.Request.Context(), owner)
	if err != nil {
		httperr.AbortWithProgramError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCollectionView(view))
}

// @Summary Get collection
// @Tags collections
// @Produce json
// @Param owner path string true "Collection owner (base58)"
// @Success 200 {object} resdto.CollectionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /collections/{owner} [get]
func (h *CollectionHandler) Get(c *gin.Context) {
	owner, ok := addressParam(c, "owner")
	if !ok {
		return
	}
	view, err := h.q.GetCollection(c.Request.Context(), owner)
	if err != nil {
		httperr.AbortWithProgramError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCollectionView(view))
}

// @Summary Close collection
// @Description End the sale and cap max supply at the current total. Admin only.
// @Tags collections
// @Produce json
// @Security BearerAuth
// @Param owner path string true "Collection owner (base58)"
// @Success 200 {object} resdto.CollectionResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /collections/{owner}/close [post]
func (h *CollectionHandler) Close(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	owner, ok := addressParam(c, "owner")
	if !ok {
		return
	}
	if err := h.cmds.CloseCollection(c.Request.Context(), caller, owner); err != nil {
		httperr.AbortWithProgramError(c, err)
		return
	}
	view, err := h.q.GetCollection(c.Request.Context(), owner)
	if err != nil {
		httperr.AbortWithProgramError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCollectionView(view))
}
