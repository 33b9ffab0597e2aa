package httperr

import (
	"errors"
	"net/http"

	"asset-factory/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type CodeDetail struct {
	Code     string `json:"code"`
	Category string `json:"category"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithProgramError answers with the status of the program error carried by err.
// Errors without a code are reported as 500 and their message is not exposed.
func AbortWithProgramError(c *gin.Context, err error) {
	code, ok := errs.CodeOf(err)
	if !ok {
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	AbortWithError(c, StatusOf(code), err, code.Message, CodeDetail{
		Code:     code.Code,
		Category: string(code.Category),
	})
}

func StatusOf(code *errs.ProgramError) int {
	switch code {
	case errs.ErrUnauthorized, errs.ErrUnauthorizedAdmin, errs.ErrAuthorityMismatch:
		return http.StatusForbidden
	case errs.ErrNotFound, errs.ErrAccountMissing:
		return http.StatusNotFound
	case errs.ErrInvalidArgument, errs.ErrInstructionsNotCorrect, errs.ErrRecipientMismatch:
		return http.StatusBadRequest
	case errs.ErrInsufficientFunds, errs.ErrInsufficientTokens:
		return http.StatusPaymentRequired
	case errs.ErrBalanceMismatch:
		return http.StatusInternalServerError
	}
	switch code.Category {
	case errs.CategoryBuying, errs.CategoryProtocol, errs.CategoryLedger:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
