package api

import (
	"log/slog"
	"net/http"

	reqdto "asset-factory/internal/handler/dto/request"
	resdto "asset-factory/internal/handler/dto/response"
	"asset-factory/internal/handler/httperr"
	"asset-factory/internal/handler/middleware"
	"asset-factory/internal/usecase/commands"
	"asset-factory/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds       commands.ReservationCommands
	settlement commands.SettlementCommands
	q          queries.ProgramQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, settlement commands.SettlementCommands, q queries.ProgramQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, settlement: settlement, q: q}
}

// @Summary Create reservation
// @Description Issue reservation id under the collection. Admin only.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param owner path string true "Collection owner (base58)"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /collections/{owner}/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	owner, ok := addressParam(c, "owner")
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.CreateReservation(c.Request.Context(), caller, owner, req.ID, req.DisplayURI); err != nil {
		httperr.AbortWithProgramError(c, err)
		return
	}
	view, err := h.q.GetReservation(c.Request.Context(), owner, req.ID)
	if err != nil {
		httperr.AbortWithProgramError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param owner path string true "Collection owner (base58)"
// @Param id path int true "Reservation id"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /collections/{owner}/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	owner, ok := addressParam(c, "owner")
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	view, err := h.q.GetReservation(c.Request.Context(), owner, id)
	if err != nil {
		httperr.AbortWithProgramError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Purchase reservation
// @Description Settle the reservation to the caller, who pays the collection price.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param owner path string true "Collection owner (base58)"
// @Param id path int true "Reservation id"
// @Success 200 {object} resdto.SettlementResponse
// @Failure 402 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /collections/{owner}/reservations/{id}/purchase [post]
func (h *ReservationHandler) Purchase(c *gin.Context) {
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
	result, err := h.settlement.Purchase(c.Request.Context(), caller, owner, id)
	if err != nil {
		httperr.AbortWithProgramError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSettlementResult(result))
}

// @Summary Airdrop reservation
// @Description Settle the reservation to a buyer under a grant signed by the collection owner. The owner pays the airdrop fee.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param owner path string true "Collection owner (base58)"
// @Param id path int true "Reservation id"
// @Param request body reqdto.AirdropRequest true "Buyer and signed grant"
// @Success 200 {object} resdto.SettlementResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /collections/{owner}/reservations/{id}/airdrop [post]
func (h *ReservationHandler) Airdrop(c *gin.Context) {
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
	var req reqdto.AirdropRequest
	if !bindJSON(c, &req) {
		return
	}
	g, err := req.Grant.ToDomain()
	if err != nil {
		slog.Warn("Rejected undecodable grant signature", "request_id", middleware.GetRequestID(c), "error", err.Error())
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid grant signature encoding", nil)
		return
	}
	result, err := h.settlement.PurchaseDelegated(c.Request.Context(), caller, owner, id, req.Buyer, g)
	if err != nil {
		httperr.AbortWithProgramError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSettlementResult(result))
}
