package handlers

import (
	"errors"
	"net/http"

	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/adapter/http/mapper"
	"taskhub/internal/adapter/http/validation"
	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
	"taskhub/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const categoryDeletedMessage = "Category deleted successfully"

type CategoryHandler struct {
	categoryService ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	validation.RegisterValidators()
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) Probe(c *gin.Context) {
	probe(c, "Categories module is working")
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), userID, domain.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		h.respondCategoryError(c, err, apierrors.MsgFailCreateCategory)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCategoryItem(category))
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var query dto.CategoryListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, err)
		return
	}

	list, err := h.categoryService.ListCategories(c.Request.Context(), userID, domain.CategoryFilter{
		Search:    query.Search,
		SortBy:    domain.CategorySortField(query.SortBy),
		SortOrder: domain.SortOrder(query.SortOrder),
		Page:      domain.PageQuery{Page: query.Page, Limit: query.Limit},
	})
	if err != nil {
		zap.L().Error("failed to list categories", zap.String("user_id", userID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailListCategories)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryListResponse(list))
}

func (h *CategoryHandler) GetCategoryStats(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	stats, err := h.categoryService.GetCategoryStats(c.Request.Context(), userID)
	if err != nil {
		zap.L().Error("failed to compute category stats", zap.String("user_id", userID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailCategoryStats)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryStatsResponse(stats))
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	categoryID, ok := pathID(c, "id")
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategory(c.Request.Context(), categoryID, userID)
	if err != nil {
		h.respondCategoryError(c, err, apierrors.MsgFailListCategories)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryItem(category))
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	categoryID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), categoryID, userID, domain.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		h.respondCategoryError(c, err, apierrors.MsgFailUpdateCategory)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryItem(category))
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	categoryID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), categoryID, userID); err != nil {
		h.respondCategoryError(c, err, apierrors.MsgFailDeleteCategory)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteCategoryResponse{
		Message:    categoryDeletedMessage,
		CategoryID: categoryID,
	})
}

func (h *CategoryHandler) respondCategoryError(c *gin.Context, err error, failMsgKey string) {
	switch {
	case errors.Is(err, domain.ErrCategoryNotFound):
		respondError(c, http.StatusNotFound, apierrors.MsgCategoryNotFound)
	case errors.Is(err, domain.ErrCategoryAlreadyExists):
		respondError(c, http.StatusConflict, apierrors.MsgCategoryAlreadyExists)
	case errors.Is(err, domain.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidPayload)
	default:
		zap.L().Error("category request failed", zap.String("path", c.FullPath()), zap.Error(err))
		respondError(c, http.StatusInternalServerError, failMsgKey)
	}
}
