package api

import (
	"net/http"
	"strconv"

	"asset-factory/internal/handler/httperr"
	"asset-factory/internal/handler/middleware"
	"asset-factory/internal/pkg/address"

	"github.com/gin-gonic/gin"
)

func callerOrAbort(c *gin.Context) (address.Address, bool) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return address.Zero, false
	}
	return caller, true
}

func addressParam(c *gin.Context, name string) (address.Address, bool) {
	addr, err := address.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return address.Zero, false
	}
	return addr, true
}

func idParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return false
	}
	return true
}
