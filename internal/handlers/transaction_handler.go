package handlers

import (
	"errors"
	"net/http"

	"money-monitor/internal/dto"
	apperrors "money-monitor/internal/errors"
	"money-monitor/internal/models"
	"money-monitor/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	store  services.StoreServiceInterface
	ledger services.LedgerServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	store services.StoreServiceInterface,
	ledger services.LedgerServiceInterface,
) *TransactionHandler {
	return &TransactionHandler{
		store:  store,
		ledger: ledger,
	}
}

// ListTransactions returns the ledger view over the active snapshot
// @Summary List transactions
// @Description Retrieve the filtered, date-sorted ledger over the active snapshot
// @Tags Transactions
// @Produce json
// @Param search query string false "Case-insensitive match on comment or category"
// @Param type query string false "Filter by type" Enums(all, Deposit, Withdrawal)
// @Param account query string false "Filter by account" Enums(all, Checking, Savings)
// @Success 200 {object} dto.LedgerResponse "Filtered ledger"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	var query dto.LedgerQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("invalid query parameters"))
	}

	snapshot, err := h.store.Snapshot()
	if err != nil {
		return SendSystemError(c, err)
	}

	filtered := h.ledger.FilterAndSort(snapshot, models.LedgerFilters{
		Search:  query.Search,
		Type:    query.Type,
		Account: query.Account,
	})

	return c.JSON(http.StatusOK, dto.LedgerResponse{
		Transactions: filtered,
		Total:        len(filtered),
		ReadOnly:     h.store.IsSharedView(),
	})
}

// CreateTransaction adds a transaction to the collection
// @Summary Add transaction
// @Description Validate and append a deposit or withdrawal
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction payload"
// @Success 201 {object} models.Transaction "Created transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload"
// @Failure 403 {object} errors.ErrorResponse "SHARE_003 - Shared view is read only"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	transaction := req.ToModel()
	if err := h.store.Add(transaction); err != nil {
		return h.mapStoreError(c, err)
	}

	return c.JSON(http.StatusCreated, transaction)
}

// UpdateTransaction replaces the transaction with the given id
// @Summary Update transaction
// @Description Replace a transaction's fields; an unknown id is inserted
// @Tags Transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Param request body dto.UpdateTransactionRequest true "Transaction payload"
// @Success 200 {object} models.Transaction "Updated transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload or TRANSACTION_004 - Invalid id"
// @Failure 403 {object} errors.ErrorResponse "SHARE_003 - Shared view is read only"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apperrors.TransactionInvalidID)
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	transaction := req.ToModel()
	transaction.ID = id
	if err := h.store.Update(transaction); err != nil {
		return h.mapStoreError(c, err)
	}

	return c.JSON(http.StatusOK, transaction)
}

// DeleteTransaction removes the transaction with the given id
// @Summary Remove transaction
// @Description Delete by id; deleting an absent id succeeds
// @Tags Transactions
// @Param id path string true "Transaction ID (UUID)"
// @Success 204 "Removed"
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_004 - Invalid id"
// @Failure 403 {object} errors.ErrorResponse "SHARE_003 - Shared view is read only"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apperrors.TransactionInvalidID)
	}

	if err := h.store.Remove(id); err != nil {
		return h.mapStoreError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// mapStoreError translates store sentinel errors into API error codes
func (h *TransactionHandler) mapStoreError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrReadOnlyView):
		return SendError(c, apperrors.ShareReadOnlyView)
	case errors.Is(err, models.ErrInvalidTransactionType):
		return SendError(c, apperrors.TransactionInvalidType)
	case errors.Is(err, models.ErrInvalidAmount):
		return SendError(c, apperrors.TransactionInvalidAmount)
	case errors.Is(err, models.ErrInvalidDate):
		return SendError(c, apperrors.ValidationInvalidDate)
	case errors.Is(err, models.ErrInvalidAccount),
		errors.Is(err, models.ErrCommentRequired):
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}
