//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"asset-factory/internal/handler/httperr"
	"asset-factory/internal/pkg/errs"
	"asset-factory/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		code *errs.ProgramError
		want int
	}{
		{errs.ErrUnauthorized, http.StatusForbidden},
		{errs.ErrUnauthorizedAdmin, http.StatusForbidden},
		{errs.ErrAuthorityMismatch, http.StatusForbidden},
		{errs.ErrNotFound, http.StatusNotFound},
		{errs.ErrAccountMissing, http.StatusNotFound},
		{errs.ErrInvalidArgument, http.StatusBadRequest},
		{errs.ErrInstructionsNotCorrect, http.StatusBadRequest},
		{errs.ErrRecipientMismatch, http.StatusBadRequest},
		{errs.ErrInsufficientFunds, http.StatusPaymentRequired},
		{errs.ErrInsufficientTokens, http.StatusPaymentRequired},
		{errs.ErrBalanceMismatch, http.StatusInternalServerError},
		{errs.ErrProtocolLocked, http.StatusConflict},
		{errs.ErrGrantReplayed, http.StatusConflict},
		{errs.ErrSoldOut, http.StatusConflict},
		{errs.ErrAuthorityRevoked, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.code.Code, func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.StatusOf(tt.code))
		})
	}
}

func TestAbortWithProgramError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	var fail error
	router.GET("/", func(c *gin.Context) { httperr.AbortWithProgramError(c, fail) })

	fail = errs.Reject(errs.ErrSoldOut, "collection %s", "abc")
	rec := httptest.PerformRequest(t, router, http.MethodGet, "/", nil, "")
	httptest.AssertProgramError(t, rec, http.StatusConflict, "SoldOut")
	assert.Contains(t, rec.Body.String(), `"category":"buying"`)

	fail = errors.New("connection reset")
	rec = httptest.PerformRequest(t, router, http.MethodGet, "/", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	assert.NotContains(t, rec.Body.String(), "connection reset")
}
