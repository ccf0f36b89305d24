//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"reddog/internal/handler/api"
	"reddog/internal/pkg/errs"
	"reddog/tests/common/httptest"
	workermock "reddog/tests/mock/worker"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WorkerHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockWorker *workermock.MockWorker
	handler    *api.WorkerHandler
}

func (s *WorkerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockWorker = workermock.NewMockWorker(s.mockCtrl)
	s.handler = api.NewWorkerHandler(s.mockWorker)

	s.router.POST("/orders", s.handler.TriggerPass)
}

func (s *WorkerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWorkerHandlerSuite(t *testing.T) {
	suite.Run(t, new(WorkerHandlerTestSuite))
}

func (s *WorkerHandlerTestSuite) TestTriggerPass() {
	s.Run("runs a drain pass", func() {
		s.mockWorker.EXPECT().RunOnce(gomock.Any()).Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders", nil)

		s.Equal(http.StatusAccepted, w.Code)
	})

	s.Run("pass failure is an internal error", func() {
		s.mockWorker.EXPECT().RunOnce(gomock.Any()).Return(errs.New("make line unreachable"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders", nil)

		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Internal server error")
	})
}
