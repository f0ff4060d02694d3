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

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	echo       *echo.Echo
	ctrl       *gomock.Controller
	mockStore  *service_mocks.MockStoreServiceInterface
	mockLedger *service_mocks.MockLedgerServiceInterface
	handler    *TransactionHandler
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.mockStore = service_mocks.NewMockStoreServiceInterface(s.ctrl)
	s.mockLedger = service_mocks.NewMockLedgerServiceInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.mockStore, s.mockLedger)
}

func (s *TransactionHandlerTestSuite) newTransaction(comment string) models.Transaction {
	return models.Transaction{
		ID:       uuid.New(),
		Date:     "2026-08-15",
		Amount:   decimal.NewFromFloat(10.00),
		Type:     models.TransactionTypeDeposit,
		Account:  models.AccountChecking,
		Category: "Allowance",
		Comment:  comment,
	}
}

func (s *TransactionHandlerTestSuite) TestListTransactions() {
	snapshot := []models.Transaction{
		s.newTransaction("older"),
		s.newTransaction("newer"),
	}
	filtered := []models.Transaction{snapshot[1], snapshot[0]}

	s.mockStore.EXPECT().Snapshot().Return(snapshot, nil)
	s.mockLedger.EXPECT().
		FilterAndSort(snapshot, models.LedgerFilters{Search: "", Type: "", Account: ""}).
		Return(filtered)
	s.mockStore.EXPECT().IsSharedView().Return(false)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.LedgerResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(2, response.Total)
	s.False(response.ReadOnly)
	s.Equal("newer", response.Transactions[0].Comment)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_FiltersPassedThrough() {
	s.mockStore.EXPECT().Snapshot().Return([]models.Transaction{}, nil)
	s.mockLedger.EXPECT().
		FilterAndSort(gomock.Any(), models.LedgerFilters{Search: "pizza", Type: models.TransactionTypeWithdrawal, Account: models.AccountChecking}).
		Return([]models.Transaction{})
	s.mockStore.EXPECT().IsSharedView().Return(false)

	url := fmt.Sprintf("/api/transactions?search=pizza&type=%s&account=%s", models.TransactionTypeWithdrawal, models.AccountChecking)
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction() {
	body := `{"date":"2026-08-15","amount":12.50,"type":"Deposit","account":"Checking","category":"Chores","comment":"mowed the lawn"}`

	s.mockStore.EXPECT().Add(gomock.Any()).DoAndReturn(func(txn *models.Transaction) error {
		s.Equal("12.5", txn.Amount.String())
		s.Equal(models.TransactionTypeDeposit, txn.Type)
		s.Equal("mowed the lawn", txn.Comment)
		return nil
	})

	req := httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_InvalidType() {
	body := `{"date":"2026-08-15","amount":12.50,"type":"Transfer","account":"Checking","category":"Chores","comment":"nope"}`

	req := httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.CreateTransaction(c)
	s.Error(err, "validator should reject unknown transaction types")
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_ZeroAmount() {
	body := `{"date":"2026-08-15","amount":0,"type":"Deposit","account":"Checking","category":"Chores","comment":"free money"}`

	req := httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.CreateTransaction(c)
	s.Error(err, "zero amounts are rejected before reaching the store")
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_SharedViewReadOnly() {
	body := fmt.Sprintf(`{"date":"2026-08-15","amount":5,"type":"Withdrawal","account":"Savings","category":"Games","comment":"%s"}`, gofakeit.HipsterWord())

	s.mockStore.EXPECT().Add(gomock.Any()).Return(services.ErrReadOnlyView)

	req := httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusForbidden, rec.Code)
	s.Contains(rec.Body.String(), "SHARE_003")
}

func (s *TransactionHandlerTestSuite) TestUpdateTransaction() {
	id := uuid.New()
	body := `{"date":"2026-08-16","amount":20,"type":"Withdrawal","account":"Checking","category":"Food","comment":"groceries"}`

	s.mockStore.EXPECT().Update(gomock.Any()).DoAndReturn(func(txn *models.Transaction) error {
		s.Equal(id, txn.ID)
		s.Equal("groceries", txn.Comment)
		return nil
	})

	req := httptest.NewRequest(http.MethodPut, "/api/transactions/"+id.String(), strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.UpdateTransaction(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestUpdateTransaction_InvalidID() {
	req := httptest.NewRequest(http.MethodPut, "/api/transactions/not-a-uuid", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	s.NoError(s.handler.UpdateTransaction(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "TRANSACTION_004")
}

func (s *TransactionHandlerTestSuite) TestDeleteTransaction() {
	id := uuid.New()

	s.mockStore.EXPECT().Remove(id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/transactions/"+id.String(), nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.DeleteTransaction(c))
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestDeleteTransaction_InvalidID() {
	req := httptest.NewRequest(http.MethodDelete, "/api/transactions/nope", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("nope")

	s.NoError(s.handler.DeleteTransaction(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "TRANSACTION_004")
}

func (s *TransactionHandlerTestSuite) TestDeleteTransaction_SharedViewReadOnly() {
	id := uuid.New()

	s.mockStore.EXPECT().Remove(id).Return(services.ErrReadOnlyView)

	req := httptest.NewRequest(http.MethodDelete, "/api/transactions/"+id.String(), nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.DeleteTransaction(c))
	s.Equal(http.StatusForbidden, rec.Code)
	s.Contains(rec.Body.String(), "SHARE_003")
}
