//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"reddog/internal/domain/order"
	"reddog/internal/handler/api"
	"reddog/internal/makeline"
	"reddog/internal/pkg/clock"
	"reddog/tests/common/builder"
	"reddog/tests/common/httptest"
	makelinemock "reddog/tests/mock/makeline"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MakeLineHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockProcessor *makelinemock.MockQueueProcessor
	clock         *clock.MockClock
	handler       *api.MakeLineHandler
}

func (s *MakeLineHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockProcessor = makelinemock.NewMockQueueProcessor(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.handler = api.NewMakeLineHandler(s.mockProcessor, s.clock)

	s.router.POST("/orders", s.handler.AddOrder)
	s.router.GET("/orders/:storeId", s.handler.GetOrders)
	s.router.DELETE("/orders/:storeId/:orderId", s.handler.CompleteOrder)
}

func (s *MakeLineHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMakeLineHandlerSuite(t *testing.T) {
	suite.Run(t, new(MakeLineHandlerTestSuite))
}

func (s *MakeLineHandlerTestSuite) TestAddOrder() {
	summary := builder.NewOrderSummaryBuilder().Build()

	s.Run("queues the order", func() {
		s.mockProcessor.EXPECT().AddOrder(gomock.Any(), gomock.Any()).Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders", summary)

		var got order.OrderSummary
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &got)
		s.Equal(summary.OrderID, got.OrderID)
	})

	s.Run("malformed body is rejected", func() {
		w := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/orders", []byte(`{"orderId":`))

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("exhausted write retries map to conflict", func() {
		s.mockProcessor.EXPECT().AddOrder(gomock.Any(), gomock.Any()).Return(makeline.ErrConflictRetriesExhausted)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders", summary)

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "contended")
	})
}

func (s *MakeLineHandlerTestSuite) TestGetOrders() {
	s.Run("returns the store queue", func() {
		queued := []order.OrderSummary{
			builder.NewOrderSummaryBuilder().Build(),
			builder.NewOrderSummaryBuilder().Build(),
		}
		s.mockProcessor.EXPECT().GetOrders(gomock.Any(), "Redmond").Return(queued, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/Redmond", nil)

		var got []order.OrderSummary
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Len(got, 2)
	})

	s.Run("empty queue is an empty list", func() {
		s.mockProcessor.EXPECT().GetOrders(gomock.Any(), "Seattle").Return([]order.OrderSummary{}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/Seattle", nil)

		var got []order.OrderSummary
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Empty(got)
	})
}

func (s *MakeLineHandlerTestSuite) TestCompleteOrder() {
	orderID := uuid.New()

	s.Run("completes with the handler clock's timestamp", func() {
		s.mockProcessor.EXPECT().
			CompleteOrder(gomock.Any(), "Redmond", orderID, s.clock.Now().UTC()).
			Return(true, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/orders/Redmond/"+orderID.String(), nil)

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("unknown order still returns 200", func() {
		s.mockProcessor.EXPECT().
			CompleteOrder(gomock.Any(), "Redmond", orderID, gomock.Any()).
			Return(false, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/orders/Redmond/"+orderID.String(), nil)

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("invalid order id is rejected", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/orders/Redmond/not-a-uuid", nil)

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid order id")
	})

	s.Run("publish failure maps to bad gateway", func() {
		s.mockProcessor.EXPECT().
			CompleteOrder(gomock.Any(), "Redmond", orderID, gomock.Any()).
			Return(false, makeline.ErrPublishFailed)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/orders/Redmond/"+orderID.String(), nil)

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadGateway, "publish")
	})
}
