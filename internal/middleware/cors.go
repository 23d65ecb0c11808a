package middleware

import (
	"slices"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	AllowHeaders = []string{"Content-Type", "Authorization"}
	AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE"}
)

// CORS answers preflight requests and sets Access-Control-Allow-Origin.
// A "*" entry in origins allows every origin.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: append(slices.Clone(AllowMethods), "OPTIONS"),
		AllowHeaders: AllowHeaders,
	}
	if allowsAllOrigins(origins) {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

// CORSHeaders advertises the allowed headers and methods on every response,
// not only on preflights. With every origin allowed it also sends
// Access-Control-Allow-Origin: * when the request carries no Origin.
func CORSHeaders(origins []string) gin.HandlerFunc {
	headers := strings.Join(AllowHeaders, ", ")
	methods := strings.Join(AllowMethods, ", ")
	anyOrigin := allowsAllOrigins(origins)
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Headers", headers)
		c.Header("Access-Control-Allow-Methods", methods)
		if anyOrigin {
			c.Header("Access-Control-Allow-Origin", "*")
		}
		c.Next()
	}
}

func allowsAllOrigins(origins []string) bool {
	return len(origins) == 0 || slices.Contains(origins, "*")
}
