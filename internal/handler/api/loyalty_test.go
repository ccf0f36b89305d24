//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"reddog/internal/domain/loyalty"
	"reddog/internal/handler/api"
	reddogloyalty "reddog/internal/loyalty"
	"reddog/tests/common/builder"
	"reddog/tests/common/httptest"
	loyaltymock "reddog/tests/mock/loyalty"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LoyaltyHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockLedger *loyaltymock.MockLedger
	handler    *api.LoyaltyHandler
}

func (s *LoyaltyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockLedger = loyaltymock.NewMockLedger(s.mockCtrl)
	s.handler = api.NewLoyaltyHandler(s.mockLedger)

	s.router.POST("/orders", s.handler.AwardPoints)
}

func (s *LoyaltyHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLoyaltyHandlerSuite(t *testing.T) {
	suite.Run(t, new(LoyaltyHandlerTestSuite))
}

func (s *LoyaltyHandlerTestSuite) TestAwardPoints() {
	summary := builder.NewOrderSummaryBuilder().WithOrderTotal("12.40").Build()

	s.Run("returns the committed account state", func() {
		committed := loyalty.LoyaltySummary{
			FirstName:    "Ada",
			LastName:     "Lovelace",
			LoyaltyID:    "42",
			PointsEarned: 124,
			PointTotal:   224,
		}
		s.mockLedger.EXPECT().Update(gomock.Any(), gomock.Any()).Return(committed, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders", summary)

		var got loyalty.LoyaltySummary
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal(committed, got)
	})

	s.Run("malformed body is rejected", func() {
		w := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/orders", []byte(`{"loyaltyId"`))

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("exhausted write retries map to conflict", func() {
		s.mockLedger.EXPECT().Update(gomock.Any(), gomock.Any()).Return(loyalty.LoyaltySummary{}, reddogloyalty.ErrConflictRetriesExhausted)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders", summary)

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "contended")
	})
}
