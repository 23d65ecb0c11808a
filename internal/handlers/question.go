package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Alexis-Monk/triviaapi-U/internal/services"

	"github.com/gin-gonic/gin"
)

const QuestionsPerPage = 10

type QuestionHandler struct {
	triviaService *services.TriviaService
}

func NewQuestionHandler(triviaService *services.TriviaService) *QuestionHandler {
	return &QuestionHandler{triviaService: triviaService}
}

type CreateQuestionRequest struct {
	Question   string  `json:"question" binding:"required"`
	Answer     string  `json:"answer" binding:"required"`
	Category   FlexInt `json:"category" binding:"required,min=1"`
	Difficulty FlexInt `json:"difficulty" binding:"required"`
}

type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm" binding:"required"`
}

type QuestionsPageResponse struct {
	Success         bool            `json:"success"`
	Questions       []Question      `json:"questions"`
	TotalQuestions  int             `json:"total_questions"`
	CurrentCategory *string         `json:"current_category"`
	Categories      map[uint]string `json:"categories"`
}

type SearchQuestionsResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
	CurrentCategory *string    `json:"current_category"`
}

type CreatedResponse struct {
	Success bool `json:"success"`
	Created uint `json:"created"`
}

type DeletedResponse struct {
	Success bool `json:"success"`
	Deleted uint `json:"deleted"`
}

// paginate returns the 1-based page of questions. Pages outside the list are empty.
func paginate(questions []Question, page int) []Question {
	pages := (len(questions) + QuestionsPerPage - 1) / QuestionsPerPage
	if page < 1 || page > pages {
		return []Question{}
	}
	start := (page - 1) * QuestionsPerPage
	end := min(start+QuestionsPerPage, len(questions))
	return questions[start:end]
}

// parsePage falls back to the first page for non-numeric input. Integers too
// large for int address a page past the end.
func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err == nil {
		return page
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return 1
}

func orEmpty(questions []Question) []Question {
	if questions == nil {
		return []Question{}
	}
	return questions
}

// ListQuestions godoc
// @Summary      List questions, ten per page
// @Tags         questions
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} QuestionsPageResponse
// @Router       /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page := parsePage(c.DefaultQuery("page", "1"))

	ctx := c.Request.Context()
	questions, err := h.triviaService.ListQuestions(ctx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	types, err := h.triviaService.CategoryTypes(ctx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, QuestionsPageResponse{
		Success:        true,
		Questions:      paginate(questions, page),
		TotalQuestions: len(questions),
		Categories:     types,
	})
}

// CreateQuestion godoc
// @Summary      Add a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body CreateQuestionRequest true "Question data"
// @Success      200 {object} CreatedResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	question, err := h.triviaService.CreateQuestion(c.Request.Context(), services.QuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		CategoryID: uint(req.Category),
		Difficulty: int(req.Difficulty),
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, CreatedResponse{Success: true, Created: question.ID})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} DeletedResponse
// @Failure      404 {object} ErrorResponse
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, ok := parseID(c, "id")
	if !ok {
		abortWithError(c, http.StatusNotFound)
		return
	}

	if err := h.triviaService.DeleteQuestion(c.Request.Context(), questionID); err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, DeletedResponse{Success: true, Deleted: questionID})
}

// SearchQuestions godoc
// @Summary      Find questions containing a term, ignoring case
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body SearchQuestionsRequest true "Search term"
// @Success      200 {object} SearchQuestionsResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/search [post]
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	questions, err := h.triviaService.SearchQuestions(c.Request.Context(), req.SearchTerm)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SearchQuestionsResponse{
		Success:        true,
		Questions:      orEmpty(questions),
		TotalQuestions: len(questions),
	})
}
