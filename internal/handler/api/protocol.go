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

type ProtocolHandler struct {
	cmds commands.ProtocolCommands
	q    queries.ProgramQueries
}

func NewProtocolHandler(cmds commands.ProtocolCommands, q queries.ProgramQueries) *ProtocolHandler {
	return &ProtocolHandler{cmds: cmds, q: q}
}

// @Summary Initialize protocol
// @Description Create the singleton protocol record. Root authority only.
// @Tags protocol
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.ProtocolResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /protocol [post]
func (h *ProtocolHandler) Init(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	if err := h.cmds.InitProtocol(c.Request.Context(), caller); err != nil {
		httperr.AbortWithProgramError(c, err)
		return
	}
	h.respond(c, http.StatusCreated)
}

// @Summary Get protocol
// @Tags protocol
// @Produce json
// @Success 200 {object} resdto.ProtocolResponse
// @Failure 404 {object} httperr.Response
// @Router /protocol [get]
func (h *ProtocolHandler) Get(c *gin.Context) {
	h.respond(c, http.StatusOK)
}

// @Summary Set protocol lock
// @Description Lock or unlock every state-changing operation. Root authority only.
// @Tags protocol
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SetLockRequest true "Lock flag"
// @Success 200 {object} resdto.ProtocolResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /protocol/lock [put]
func (h *ProtocolHandler) SetLock(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.SetLockRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.SetLock(c.Request.Context(), caller, *req.Locked); err != nil {
		httperr.AbortWithProgramError(c, err)
		return
	}
	h.respond(c, http.StatusOK)
}

// @Summary Faucet
// @Description Credit native lamports to an address. Debug mode only.
// @Tags debug
// @Accept json
// @Produce json
// @Param request body reqdto.FaucetRequest true "Faucet request"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /faucet [post]
func (h *ProtocolHandler) Faucet(c *gin.Context) {
	var req reqdto.FaucetRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Faucet(c.Request.Context(), req.To, req.Lamports); err != nil {
		httperr.AbortWithProgramError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"to": req.To.String(), "lamports": req.Lamports})
}

func (h *ProtocolHandler) respond(c *gin.Context, status int) {
	view, err := h.q.GetProtocol(c.Request.Context())
	if err != nil {
		httperr.AbortWithProgramError(c, err)
		return
	}
	c.JSON(status, resdto.FromProtocolView(view))
}
