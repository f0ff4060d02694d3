package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"money-monitor/internal/models"
	"money-monitor/internal/services"
	"money-monitor/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type DevHandlerTestSuite struct {
	suite.Suite
	echo          *echo.Echo
	ctrl          *gomock.Controller
	mockStore     *service_mocks.MockStoreServiceInterface
	mockGenerator *service_mocks.MockSeedGeneratorInterface
	handler       *DevHandler
}

func TestDevHandlerSuite(t *testing.T) {
	suite.Run(t, new(DevHandlerTestSuite))
}

func (s *DevHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.ctrl = gomock.NewController(s.T())
	s.mockStore = service_mocks.NewMockStoreServiceInterface(s.ctrl)
	s.mockGenerator = service_mocks.NewMockSeedGeneratorInterface(s.ctrl)
	s.handler = NewDevHandler(s.mockStore, s.mockGenerator)
}

func (s *DevHandlerTestSuite) TestSeedDemoData_DefaultCount() {
	generated := []models.Transaction{{Comment: "a"}, {Comment: "b"}}

	s.mockGenerator.EXPECT().GenerateTransactions(defaultSeedCount).Return(generated)
	s.mockStore.EXPECT().Add(gomock.Any()).Return(nil).Times(len(generated))

	req := httptest.NewRequest(http.MethodPost, "/api/dev/seed", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.SeedDemoData(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "demo data seeded")
}

func (s *DevHandlerTestSuite) TestSeedDemoData_CustomCount() {
	generated := []models.Transaction{{Comment: "only"}}

	s.mockGenerator.EXPECT().GenerateTransactions(5).Return(generated)
	s.mockStore.EXPECT().Add(gomock.Any()).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/dev/seed?count=5", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.SeedDemoData(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *DevHandlerTestSuite) TestSeedDemoData_SharedViewReadOnly() {
	generated := []models.Transaction{{Comment: "blocked"}}

	s.mockGenerator.EXPECT().GenerateTransactions(defaultSeedCount).Return(generated)
	s.mockStore.EXPECT().Add(gomock.Any()).Return(services.ErrReadOnlyView)

	req := httptest.NewRequest(http.MethodPost, "/api/dev/seed", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.SeedDemoData(c))
	s.Equal(http.StatusForbidden, rec.Code)
	s.Contains(rec.Body.String(), "SHARE_003")
}
