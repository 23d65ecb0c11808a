package handlers

import (
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/Alexis-Monk/triviaapi-U/internal/middleware"
	"github.com/Alexis-Monk/triviaapi-U/internal/models"
	"github.com/Alexis-Monk/triviaapi-U/internal/services"

	"github.com/gin-gonic/gin"
)

// Type aliases so swag can resolve models in annotations.
type ErrorResponse = middleware.ErrorResponse
type Question = models.Question

func abortWithError(c *gin.Context, status int) {
	middleware.AbortWithError(c, status)
}

// abortWithServiceError maps service errors onto the error envelope.
// Persistence failures on writes are reported as 422.
func abortWithServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		abortWithError(c, http.StatusNotFound)
	case errors.Is(err, services.ErrPersistence):
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		abortWithError(c, http.StatusUnprocessableEntity)
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		abortWithError(c, http.StatusInternalServerError)
	}
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// FlexInt accepts a JSON number or a string holding one. The quiz front end
// posts select-box values as strings. Values must fit in an int32; an empty
// string is not a number.
type FlexInt int64

func (n *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}

	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
			return fmt.Errorf("invalid integer %s", string(b))
		}
		v = int64(f)
	}
	*n = FlexInt(v)
	return nil
}
