package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"money-monitor/internal/dto"
	apperrors "money-monitor/internal/errors"
	"money-monitor/internal/services"

	"github.com/labstack/echo/v4"
)

// ShareHandler mints share tokens and toggles the shared read-only view
type ShareHandler struct {
	store    services.StoreServiceInterface
	codec    services.ShareCodecInterface
	baseURL  string
	maxShare int
}

// NewShareHandler creates a new share handler
func NewShareHandler(
	store services.StoreServiceInterface,
	codec services.ShareCodecInterface,
	baseURL string,
	maxShare int,
) *ShareHandler {
	return &ShareHandler{
		store:    store,
		codec:    codec,
		baseURL:  baseURL,
		maxShare: maxShare,
	}
}

// MintShare encodes the current collection into a share token
// @Summary Mint share token
// @Description Encode the most recent transactions into a URL-safe token
// @Tags Share
// @Produce json
// @Success 200 {object} dto.ShareResponse "Share token and URL"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/share [get]
func (h *ShareHandler) MintShare(c echo.Context) error {
	snapshot, err := h.store.Snapshot()
	if err != nil {
		return SendSystemError(c, err)
	}

	token, err := h.codec.Encode(snapshot, h.maxShare)
	if err != nil {
		return SendSystemError(c, err)
	}

	count := len(snapshot)
	if count > h.maxShare {
		count = h.maxShare
	}

	return c.JSON(http.StatusOK, dto.ShareResponse{
		Token: token,
		URL:   fmt.Sprintf("%s/?share=%s", h.baseURL, token),
		Count: count,
	})
}

// EnterSharedView activates the read-only shared view
// @Summary Enter shared view
// @Description Swap the active snapshot for the token's records; the store becomes read only
// @Tags Share
// @Accept json
// @Produce json
// @Param request body dto.EnterSharedViewRequest true "Share token"
// @Success 200 {object} dto.SharedViewStatusResponse "Shared view active"
// @Failure 400 {object} errors.ErrorResponse "SHARE_002 - Token is malformed"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/share/enter [post]
func (h *ShareHandler) EnterSharedView(c echo.Context) error {
	var req dto.EnterSharedViewRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ShareTokenMissing)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.store.EnterSharedView(req.Token); err != nil {
		if errors.Is(err, services.ErrMalformedShareToken) {
			return SendError(c, apperrors.ShareTokenInvalid)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SharedViewStatusResponse{ReadOnly: true})
}

// ExitSharedView restores the persisted collection
// @Summary Exit shared view
// @Tags Share
// @Produce json
// @Success 200 {object} dto.SharedViewStatusResponse "Back in normal mode"
// @Failure 409 {object} errors.ErrorResponse "SHARE_004 - Not in shared view"
// @Router /api/share/exit [post]
func (h *ShareHandler) ExitSharedView(c echo.Context) error {
	if !h.store.IsSharedView() {
		return SendError(c, apperrors.ShareNotInShared)
	}

	h.store.ExitSharedView()

	return c.JSON(http.StatusOK, dto.SharedViewStatusResponse{ReadOnly: false})
}
