//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"asset-factory/internal/domain/asset"
	"asset-factory/internal/handler/api"
	reqdto "asset-factory/internal/handler/dto/request"
	resdto "asset-factory/internal/handler/dto/response"
	"asset-factory/internal/pkg/address"
	"asset-factory/internal/pkg/errs"
	"asset-factory/internal/usecase/commands"
	"asset-factory/internal/usecase/queries"
	"asset-factory/tests/common/authtest"
	"asset-factory/tests/common/builder"
	"asset-factory/tests/common/httptest"
	"asset-factory/tests/common/testutil"
	commandsmock "asset-factory/tests/mock/commands"
	queriesmock "asset-factory/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AssetHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAssetCommands
	mockQueries  *queriesmock.MockProgramQueries
	caller       address.Address
	owner        address.Address
	base         string
}

func (s *AssetHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAssetCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockProgramQueries(s.mockCtrl)
	handler := api.NewAssetHandler(s.mockCommands, s.mockQueries)
	s.caller = builder.Addr("ops")
	s.owner = builder.Addr("owner")
	s.base = "/collections/" + s.owner.String() + "/assets"

	auth := authtest.StubAuth(s.caller)
	s.router.POST("/collections/:owner/assets", auth, handler.Create)
	s.router.GET("/collections/:owner/assets/:id", handler.Get)
	s.router.POST("/collections/:owner/assets/:id/finalize", auth, handler.Finalize)
}

func (s *AssetHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAssetHandlerSuite(t *testing.T) {
	suite.Run(t, new(AssetHandlerTestSuite))
}

func (s *AssetHandlerTestSuite) view(id uint64) *queries.AssetView {
	addr := address.Asset(address.Collection(s.owner), id)
	return &queries.AssetView{
		Address:    addr.String(),
		ID:         id,
		Collection: address.Collection(s.owner).String(),
		Name:       "Genesis #1",
		URI:        "https://assets.example/1.json",
		Attributes: []queries.AttributeView{{Key: "eyes", Value: "laser"}},
		Price:      1_000_000_000,
		Rank:       0,
		CreatedAt:  time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Status:     "reserved",
		Mint:       queries.MintView{Address: address.Mint(addr).String()},
	}
}

func (s *AssetHandlerTestSuite) TestCreate() {
	reqBody := reqdto.CreateAssetRequest{
		ID:         1,
		Name:       "Genesis #1",
		URI:        "https://assets.example/1.json",
		Attributes: []reqdto.AttributeRequest{{Key: "eyes", Value: "laser"}},
	}

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().CreateAsset(gomock.Any(), s.caller, commands.CreateAssetInput{
			Owner:      s.owner,
			ID:         1,
			Name:       "Genesis #1",
			URI:        "https://assets.example/1.json",
			Attributes: []asset.Attribute{{Key: "eyes", Value: "laser"}},
		}).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetAsset(gomock.Any(), s.owner, uint64(1)).Return(s.view(1), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.base, reqBody, "bearer-token")

		var body resdto.AssetResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("reserved", body.Status)
		s.Require().Len(body.Attributes, 1)
		s.Equal("laser", body.Attributes[0].Value)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "missing uri", mutate: testutil.Field("uri", nil)},
			{name: "attribute without key", mutate: testutil.Field("attributes", []map[string]any{{"value": "x"}})},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.base, testutil.DtoMap(s.T(), reqBody, tc.mutate), "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: long uri is rejected by the program", func() {
		long := testutil.DtoMap(s.T(), reqBody, testutil.Field("uri", strings.Repeat("u", asset.MaxURILength+1)))
		s.mockCommands.EXPECT().CreateAsset(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errs.RejectCause(errs.ErrInvalidArgument, asset.ErrURITooLong)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.base, long, "bearer-token")
		httptest.AssertProgramError(s.T(), rec, http.StatusBadRequest, "InvalidArgument")
	})
}

func (s *AssetHandlerTestSuite) TestFinalize() {
	buyer := builder.Addr("buyer")
	url := s.base + "/1/finalize"
	reqBody := reqdto.FinalizeAssetRequest{Buyer: buyer}

	s.Run("success: returns the completed asset", func() {
		done := s.view(1)
		b := buyer.String()
		completedAt := done.CreatedAt.Add(time.Hour)
		done.Status, done.Buyer, done.CompletedAt = "completed", &b, &completedAt
		s.mockCommands.EXPECT().FinalizeAsset(gomock.Any(), s.caller, s.owner, uint64(1), buyer).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetAsset(gomock.Any(), s.owner, uint64(1)).Return(done, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.AssetResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("completed", body.Status)
		s.Require().NotNil(body.Buyer)
		s.Equal(b, *body.Buyer)
		s.Require().NotNil(body.CompletedAt)
		s.Equal(completedAt.Unix(), *body.CompletedAt)
	})

	s.Run("error: maps rejections", func() {
		cases := []struct {
			err    error
			status int
			code   string
		}{
			{err: errs.ErrNotSettled, status: http.StatusConflict, code: "NotSettled"},
			{err: errs.ErrAssetCompleted, status: http.StatusConflict, code: "AssetCompleted"},
			{err: errs.ErrBalanceMismatch, status: http.StatusInternalServerError, code: "BalanceMismatch"},
			{err: errs.ErrNotFound, status: http.StatusNotFound, code: "NotFound"},
		}
		for _, tc := range cases {
			s.Run(tc.code, func() {
				s.mockCommands.EXPECT().FinalizeAsset(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertProgramError(s.T(), rec, tc.status, tc.code)
			})
		}
	})

	s.Run("error: 400 Bad Request without buyer", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
