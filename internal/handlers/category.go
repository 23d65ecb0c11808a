package handlers

import (
	"net/http"

	"github.com/Alexis-Monk/triviaapi-U/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	triviaService *services.TriviaService
}

func NewCategoryHandler(triviaService *services.TriviaService) *CategoryHandler {
	return &CategoryHandler{triviaService: triviaService}
}

type CategoriesResponse struct {
	Success    bool            `json:"success"`
	Categories map[uint]string `json:"categories"`
}

type CategoryQuestionsResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
	CurrentCategory string     `json:"current_category"`
}

// ListCategories godoc
// @Summary      List every category as an id to type map
// @Tags         categories
// @Produce      json
// @Success      200 {object} CategoriesResponse
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	types, err := h.triviaService.CategoryTypes(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{Success: true, Categories: types})
}

// ListCategoryQuestions godoc
// @Summary      List the questions of one category
// @Tags         categories
// @Produce      json
// @Param        id path int true "Category ID"
// @Success      200 {object} CategoryQuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Router       /categories/{id}/questions [get]
func (h *CategoryHandler) ListCategoryQuestions(c *gin.Context) {
	categoryID, ok := parseID(c, "id")
	if !ok {
		abortWithError(c, http.StatusNotFound)
		return
	}

	ctx := c.Request.Context()
	category, err := h.triviaService.GetCategory(ctx, categoryID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	questions, err := h.triviaService.FindQuestionsByCategory(ctx, category.ID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Success:         true,
		Questions:       orEmpty(questions),
		TotalQuestions:  len(questions),
		CurrentCategory: category.Type,
	})
}
