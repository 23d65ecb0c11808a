package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Alexis-Monk/triviaapi-U/internal/models"
	"github.com/Alexis-Monk/triviaapi-U/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Question{}))

	triviaService := services.NewTriviaService(db)
	router := NewRouter(RouterConfig{AllowOrigins: []string{"*"}}, triviaService, services.NewQuizService(triviaService))
	return &testEnv{db: db, router: router}
}

func (e *testEnv) addCategory(t *testing.T, name string) uint {
	t.Helper()
	c := models.Category{Type: name}
	require.NoError(t, e.db.Create(&c).Error)
	return c.ID
}

func (e *testEnv) addQuestion(t *testing.T, text string, categoryID uint) uint {
	t.Helper()
	q := models.Question{Question: text, Answer: "answer", CategoryID: categoryID, Difficulty: 1}
	require.NoError(t, e.db.Create(&q).Error)
	return q.ID
}

// addQuestions inserts n numbered questions into the category.
func (e *testEnv) addQuestions(t *testing.T, n int, categoryID uint) {
	t.Helper()
	for i := 1; i <= n; i++ {
		e.addQuestion(t, fmt.Sprintf("Question %d?", i), categoryID)
	}
}

func (e *testEnv) countQuestions(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(&models.Question{}).Count(&n).Error)
	return n
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func requireErrorEnvelope(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
	resp := decode[ErrorResponse](t, w)
	require.False(t, resp.Success)
	require.Equal(t, status, resp.Error)
	require.Equal(t, http.StatusText(status), resp.Message)
}

func questionIDs(questions []Question) []uint {
	ids := make([]uint, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	return ids
}
