package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"money-monitor/internal/dto"
	"money-monitor/internal/models"
	"money-monitor/internal/services"
	"money-monitor/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type BackupHandlerTestSuite struct {
	suite.Suite
	echo      *echo.Echo
	ctrl      *gomock.Controller
	mockStore *service_mocks.MockStoreServiceInterface
	handler   *BackupHandler
}

func TestBackupHandlerSuite(t *testing.T) {
	suite.Run(t, new(BackupHandlerTestSuite))
}

func (s *BackupHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.mockStore = service_mocks.NewMockStoreServiceInterface(s.ctrl)
	s.handler = NewBackupHandler(s.mockStore)
}

func (s *BackupHandlerTestSuite) TestExportBackup() {
	snapshot := []models.Transaction{{Comment: "keep me"}}
	categories := []models.Category{{Name: "Food"}, {Name: "Pet"}}

	s.mockStore.EXPECT().Snapshot().Return(snapshot, nil)
	s.mockStore.EXPECT().Categories().Return(categories, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/backup", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.ExportBackup(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderContentDisposition), "money-monitor-backup.json")

	var payload dto.BackupPayload
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &payload))
	s.Len(payload.Transactions, 1)
	s.Equal([]string{"Food", "Pet"}, payload.Categories)
}

func (s *BackupHandlerTestSuite) TestImportBackup_ExportShape() {
	body := `{"transactions":[{"id":"` + "00000000-0000-0000-0000-000000000001" + `","date":"2026-08-15","amount":"10","type":"Deposit","account":"Checking","category":"Chores","comment":"lawn"}],"categories":["Pet"]}`

	s.mockStore.EXPECT().ReplaceAll(gomock.Any(), []string{"Pet"}).DoAndReturn(
		func(transactions []models.Transaction, categories []string) error {
			s.Require().Len(transactions, 1)
			s.Equal("lawn", transactions[0].Comment)
			return nil
		})

	req := httptest.NewRequest(http.MethodPost, "/api/backup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.ImportBackup(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "backup imported")
}

func (s *BackupHandlerTestSuite) TestImportBackup_BareArray() {
	body := `[{"id":"00000000-0000-0000-0000-000000000002","date":"2026-08-15","amount":"5","type":"Withdrawal","account":"Savings","category":"Games","comment":"arcade"}]`

	s.mockStore.EXPECT().ReplaceAll(gomock.Any(), gomock.Nil()).DoAndReturn(
		func(transactions []models.Transaction, categories []string) error {
			s.Require().Len(transactions, 1)
			s.Equal("arcade", transactions[0].Comment)
			return nil
		})

	req := httptest.NewRequest(http.MethodPost, "/api/backup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.ImportBackup(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *BackupHandlerTestSuite) TestImportBackup_MalformedJSON() {
	req := httptest.NewRequest(http.MethodPost, "/api/backup", strings.NewReader(`{not json`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.ImportBackup(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "IMPORT_001")
}

func (s *BackupHandlerTestSuite) TestImportBackup_BadRecord() {
	body := `[{"date":"2026-08-15","amount":"0","type":"Deposit","account":"Checking","category":"Chores","comment":"zero"}]`

	s.mockStore.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("record 0: %w", models.ErrInvalidAmount))

	req := httptest.NewRequest(http.MethodPost, "/api/backup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.ImportBackup(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "IMPORT_002")
}

func (s *BackupHandlerTestSuite) TestImportBackup_SharedViewReadOnly() {
	body := `[]`

	s.mockStore.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(services.ErrReadOnlyView)

	req := httptest.NewRequest(http.MethodPost, "/api/backup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.ImportBackup(c))
	s.Equal(http.StatusForbidden, rec.Code)
	s.Contains(rec.Body.String(), "SHARE_003")
}
