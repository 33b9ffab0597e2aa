package api

import (
	"net/http"

	resdto "asset-factory/internal/handler/dto/response"
	"asset-factory/internal/handler/httperr"
	"asset-factory/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	q queries.LedgerQueries
}

func NewAccountHandler(q queries.LedgerQueries) *AccountHandler {
	return &AccountHandler{q: q}
}

// @Summary Native balance
// @Tags accounts
// @Produce json
// @Param address path string true "Account address (base58)"
// @Success 200 {object} resdto.BalanceResponse
// @Failure 400 {object} httperr.Response
// @Router /accounts/{address} [get]
func (h *AccountHandler) Balance(c *gin.Context) {
	addr, ok := addressParam(c, "address")
	if !ok {
		return
	}
	view, err := h.q.Balance(c.Request.Context(), addr)
	if err != nil {
		httperr.AbortWithProgramError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBalanceView(view))
}

// @Summary Token balance
// @Tags accounts
// @Produce json
// @Param address path string true "Owner address (base58)"
// @Param mint path string true "Mint address (base58)"
// @Success 200 {object} resdto.TokenBalanceResponse
// @Failure 400 {object} httperr.Response
// @Router /accounts/{address}/tokens/{mint} [get]
func (h *AccountHandler) TokenBalance(c *gin.Context) {
	owner, ok := addressParam(c, "address")
	if !ok {
		return
	}
	mint, ok := addressParam(c, "mint")
	if !ok {
		return
	}
	view, err := h.q.TokenBalance(c.Request.Context(), owner, mint)
	if err != nil {
		httperr.AbortWithProgramError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTokenBalanceView(view))
}
