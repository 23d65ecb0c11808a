package handlers

import (
	"net/http"

	"github.com/Alexis-Monk/triviaapi-U/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

type QuizCategory struct {
	ID   *FlexInt `json:"id" binding:"required"`
	Type string   `json:"type"`
}

type NextQuestionRequest struct {
	PreviousQuestions []uint        `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category" binding:"required"`
}

type NextQuestionResponse struct {
	Success  bool      `json:"success"`
	Question *Question `json:"question"`
}

// NextQuestion godoc
// @Summary      Draw a random question that has not been played yet
// @Description  Category id 0 draws from every category. A null question ends the round.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body NextQuestionRequest true "Quiz state"
// @Success      200 {object} NextQuestionResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /quizzes [post]
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req NextQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	categoryID := int64(*req.QuizCategory.ID)
	if categoryID < 0 {
		abortWithError(c, http.StatusNotFound)
		return
	}

	question, err := h.quizService.NextQuestion(c.Request.Context(), uint(categoryID), req.PreviousQuestions)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, NextQuestionResponse{Success: true, Question: question})
}
