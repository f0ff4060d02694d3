package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"money-monitor/internal/models"
	"money-monitor/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type InsightHandlerTestSuite struct {
	suite.Suite
	echo        *echo.Echo
	ctrl        *gomock.Controller
	mockStore   *service_mocks.MockStoreServiceInterface
	mockInsight *service_mocks.MockInsightServiceInterface
	handler     *InsightHandler
}

func TestInsightHandlerSuite(t *testing.T) {
	suite.Run(t, new(InsightHandlerTestSuite))
}

func (s *InsightHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.ctrl = gomock.NewController(s.T())
	s.mockStore = service_mocks.NewMockStoreServiceInterface(s.ctrl)
	s.mockInsight = service_mocks.NewMockInsightServiceInterface(s.ctrl)
	s.handler = NewInsightHandler(s.mockStore, s.mockInsight)
}

func (s *InsightHandlerTestSuite) TestGetInsight() {
	snapshot := []models.Transaction{{Comment: "saved up"}}

	s.mockStore.EXPECT().Snapshot().Return(snapshot, nil)
	s.mockInsight.EXPECT().
		GenerateInsight(gomock.Any(), snapshot).
		Return("Keep up the great work!")

	req := httptest.NewRequest(http.MethodGet, "/api/insight", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.GetInsight(c))
	s.Equal(http.StatusOK, rec.Code)

	var response map[string]string
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("Keep up the great work!", response["insight"])
}
