package handlers

import (
	"net/http"

	"github.com/Alexis-Monk/triviaapi-U/internal/middleware"
	"github.com/Alexis-Monk/triviaapi-U/internal/services"

	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	AllowOrigins []string
	AccessLog    bool
}

// NewRouter registers the trivia endpoints on a fresh gin engine.
func NewRouter(cfg RouterConfig, triviaService *services.TriviaService, quizService *services.QuizService) *gin.Engine {
	categoryHandler := NewCategoryHandler(triviaService)
	questionHandler := NewQuestionHandler(triviaService)
	quizHandler := NewQuizHandler(quizService)

	r := gin.New()
	r.HandleMethodNotAllowed = true
	if cfg.AccessLog {
		r.Use(gin.Logger())
	}
	r.Use(middleware.Recovery())
	r.Use(middleware.CORSHeaders(cfg.AllowOrigins))
	r.Use(middleware.CORS(cfg.AllowOrigins))

	r.NoRoute(func(c *gin.Context) {
		abortWithError(c, http.StatusNotFound)
	})
	r.NoMethod(func(c *gin.Context) {
		abortWithError(c, http.StatusMethodNotAllowed)
	})

	categories := r.Group("/categories")
	{
		categories.GET("", categoryHandler.ListCategories)
		categories.GET("/:id/questions", categoryHandler.ListCategoryQuestions)
	}

	questions := r.Group("/questions")
	{
		questions.GET("", questionHandler.ListQuestions)
		questions.POST("", questionHandler.CreateQuestion)
		questions.POST("/search", questionHandler.SearchQuestions)
		questions.DELETE("/:id", questionHandler.DeleteQuestion)
	}

	r.POST("/quizzes", quizHandler.NextQuestion)

	return r
}
