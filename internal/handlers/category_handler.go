package handlers

import (
	"errors"
	"net/http"

	"money-monitor/internal/dto"
	apperrors "money-monitor/internal/errors"
	"money-monitor/internal/repositories"
	"money-monitor/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler manages the quick-pick category list
type CategoryHandler struct {
	store services.StoreServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(store services.StoreServiceInterface) *CategoryHandler {
	return &CategoryHandler{store: store}
}

// ListCategories returns the quick-pick labels in creation order
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {object} dto.CategoriesResponse "Category labels"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.store.Categories()
	if err != nil {
		return SendSystemError(c, err)
	}

	names := make([]string, len(categories))
	for i := range categories {
		names[i] = categories[i].Name
	}

	return c.JSON(http.StatusOK, dto.CategoriesResponse{Categories: names})
}

// CreateCategory adds a label to the quick-pick list
// @Summary Add category
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category payload"
// @Success 201 {object} dto.CreateCategoryRequest "Created category"
// @Failure 400 {object} errors.ErrorResponse "CATEGORY_002 - Name missing"
// @Failure 403 {object} errors.ErrorResponse "SHARE_003 - Shared view is read only"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/categories [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.CategoryNameMissing)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.store.AddCategory(req.Name); err != nil {
		if errors.Is(err, services.ErrReadOnlyView) {
			return SendError(c, apperrors.ShareReadOnlyView)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, req)
}

// DeleteCategory removes a label from the quick-pick list
// @Summary Remove category
// @Description Transactions already using the label are untouched
// @Tags Categories
// @Param name path string true "Category name"
// @Success 204 "Removed"
// @Failure 403 {object} errors.ErrorResponse "SHARE_003 - Shared view is read only"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/categories/{name} [delete]
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return SendError(c, apperrors.CategoryNameMissing)
	}

	if err := h.store.RemoveCategory(name); err != nil {
		switch {
		case errors.Is(err, services.ErrReadOnlyView):
			return SendError(c, apperrors.ShareReadOnlyView)
		case errors.Is(err, repositories.ErrCategoryNotFound):
			return SendError(c, apperrors.CategoryNotFound)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.NoContent(http.StatusNoContent)
}
