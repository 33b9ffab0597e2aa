//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"asset-factory/internal/handler/api"
	resdto "asset-factory/internal/handler/dto/response"
	"asset-factory/internal/pkg/address"
	"asset-factory/internal/pkg/errs"
	"asset-factory/internal/usecase/queries"
	"asset-factory/tests/common/authtest"
	"asset-factory/tests/common/builder"
	"asset-factory/tests/common/httptest"
	commandsmock "asset-factory/tests/mock/commands"
	queriesmock "asset-factory/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProtocolHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockProtocolCommands
	mockQueries  *queriesmock.MockProgramQueries
	mockLedger   *queriesmock.MockLedgerQueries
	root         address.Address
}

func (s *ProtocolHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockProtocolCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockProgramQueries(s.mockCtrl)
	s.mockLedger = queriesmock.NewMockLedgerQueries(s.mockCtrl)
	protocol := api.NewProtocolHandler(s.mockCommands, s.mockQueries)
	accounts := api.NewAccountHandler(s.mockLedger)
	s.root = builder.Addr("root")

	auth := authtest.StubAuth(s.root)
	s.router.GET("/protocol", protocol.Get)
	s.router.POST("/protocol", auth, protocol.Init)
	s.router.PUT("/protocol/lock", auth, protocol.SetLock)
	s.router.POST("/faucet", protocol.Faucet)
	s.router.GET("/accounts/:address", accounts.Balance)
	s.router.GET("/accounts/:address/tokens/:mint", accounts.TokenBalance)
}

func (s *ProtocolHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProtocolHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProtocolHandlerTestSuite))
}

func (s *ProtocolHandlerTestSuite) TestInit() {
	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().InitProtocol(gomock.Any(), s.root).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetProtocol(gomock.Any()).
			Return(&queries.ProtocolView{Address: address.Protocol().String()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/protocol", nil, "bearer-token")

		var body resdto.ProtocolResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(address.Protocol().String(), body.Address)
		s.False(body.Locked)
	})

	s.Run("error: second init", func() {
		s.mockCommands.EXPECT().InitProtocol(gomock.Any(), s.root).Return(errs.ErrAlreadyInitialized).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/protocol", nil, "bearer-token")
		httptest.AssertProgramError(s.T(), rec, http.StatusConflict, "AlreadyInitialized")
	})
}

func (s *ProtocolHandlerTestSuite) TestSetLock() {
	s.Run("success: unlock is an explicit false", func() {
		s.mockCommands.EXPECT().SetLock(gomock.Any(), s.root, false).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetProtocol(gomock.Any()).Return(&queries.ProtocolView{Locked: false}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/protocol/lock", map[string]any{"locked": false}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: locked is required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/protocol/lock", map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/protocol/lock", httptest.RawBody(`{"locked":`), "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: non-root caller", func() {
		s.mockCommands.EXPECT().SetLock(gomock.Any(), s.root, true).Return(errs.ErrUnauthorized).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/protocol/lock", map[string]any{"locked": true}, "bearer-token")
		httptest.AssertProgramError(s.T(), rec, http.StatusForbidden, "Unauthorized")
	})
}

func (s *ProtocolHandlerTestSuite) TestGet() {
	s.mockQueries.EXPECT().GetProtocol(gomock.Any()).Return(nil, errs.Reject(errs.ErrNotFound, "protocol is not initialized")).Times(1)
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protocol", nil, "")
	httptest.AssertProgramError(s.T(), rec, http.StatusNotFound, "NotFound")
}

func (s *ProtocolHandlerTestSuite) TestFaucet() {
	to := builder.Addr("wallet")
	s.mockCommands.EXPECT().Faucet(gomock.Any(), to, uint64(5_000)).Return(nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/faucet", map[string]any{"to": to.String(), "lamports": 5_000}, "")

	var body map[string]any
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(to.String(), body["to"])
}

func (s *ProtocolHandlerTestSuite) TestBalances() {
	owner := builder.Addr("wallet")
	mint := builder.Addr("mint")

	s.Run("lamports", func() {
		s.mockLedger.EXPECT().Balance(gomock.Any(), owner).
			Return(&queries.BalanceView{Address: owner.String(), Lamports: 1_500_000_000, Units: "1.5"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/accounts/"+owner.String(), nil, "")

		var body resdto.BalanceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("1.5", body.Units)
	})

	s.Run("tokens", func() {
		s.mockLedger.EXPECT().TokenBalance(gomock.Any(), owner, mint).
			Return(&queries.TokenBalanceView{Owner: owner.String(), Mint: mint.String(), TokenAccount: address.TokenAccount(owner, mint).String(), Amount: 1}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/accounts/"+owner.String()+"/tokens/"+mint.String(), nil, "")

		var body resdto.TokenBalanceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(uint64(1), body.Amount)
	})

	s.Run("invalid mint", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/accounts/"+owner.String()+"/tokens/zzz", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid mint")
	})
}
