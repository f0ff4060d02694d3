package handlers

import (
	"errors"
	"io"
	"net/http"

	"money-monitor/internal/dto"
	apperrors "money-monitor/internal/errors"
	"money-monitor/internal/models"
	"money-monitor/internal/services"

	"github.com/labstack/echo/v4"
)

// BackupHandler exports and imports the full dataset
type BackupHandler struct {
	store services.StoreServiceInterface
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(store services.StoreServiceInterface) *BackupHandler {
	return &BackupHandler{store: store}
}

// ExportBackup downloads the full dataset as JSON
// @Summary Export backup
// @Description Full dataset as a JSON download
// @Tags Backup
// @Produce json
// @Success 200 {object} dto.BackupPayload "Exported dataset"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/backup [get]
func (h *BackupHandler) ExportBackup(c echo.Context) error {
	snapshot, err := h.store.Snapshot()
	if err != nil {
		return SendSystemError(c, err)
	}

	categories, err := h.store.Categories()
	if err != nil {
		return SendSystemError(c, err)
	}

	names := make([]string, len(categories))
	for i := range categories {
		names[i] = categories[i].Name
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="money-monitor-backup.json"`)
	return c.JSON(http.StatusOK, dto.BackupPayload{
		Transactions: snapshot,
		Categories:   names,
	})
}

// ImportBackup replaces the dataset from an uploaded backup
// @Summary Import backup
// @Description Replace the collection wholesale; accepts the export shape or a bare transaction array
// @Tags Backup
// @Accept json
// @Produce json
// @Success 200 {object} handlers.SuccessResponse "Import applied"
// @Failure 403 {object} errors.ErrorResponse "SHARE_003 - Shared view is read only"
// @Failure 422 {object} errors.ErrorResponse "IMPORT_001 - Malformed payload or IMPORT_002 - Bad record"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/backup [post]
func (h *BackupHandler) ImportBackup(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return SendError(c, apperrors.ImportMalformed)
	}

	payload, err := dto.ParseBackup(body)
	if err != nil {
		return SendError(c, apperrors.ImportMalformed)
	}

	if err := h.store.ReplaceAll(payload.Transactions, payload.Categories); err != nil {
		if errors.Is(err, services.ErrReadOnlyView) {
			return SendError(c, apperrors.ShareReadOnlyView)
		}
		if isRecordError(err) {
			// A malformed record aborted the import with nothing persisted.
			return SendError(c, apperrors.ImportBadRecord, apperrors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "backup imported",
		Meta: map[string]int{
			"transactions": len(payload.Transactions),
			"categories":   len(payload.Categories),
		},
	})
}

// isRecordError reports whether the import failed on record validation
// rather than on storage.
func isRecordError(err error) bool {
	return errors.Is(err, models.ErrInvalidTransactionType) ||
		errors.Is(err, models.ErrInvalidAccount) ||
		errors.Is(err, models.ErrInvalidAmount) ||
		errors.Is(err, models.ErrInvalidDate) ||
		errors.Is(err, models.ErrCommentRequired)
}
