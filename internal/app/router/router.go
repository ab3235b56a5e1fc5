// Package router assembles the HTTP route table.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	reportinghandler "reporting_backend/internal/feature/reporting/transport/handler"
	tokenhandler "reporting_backend/internal/feature/token/transport/handler"
	jwtmw "reporting_backend/internal/platform/jwt"
	"reporting_backend/internal/shared/ratelimiter"
)

// tokenRequestsPerMinute caps issuance attempts to slow credential guessing.
const tokenRequestsPerMinute = 30

// NewRouter wires the handlers into the route table.
func NewRouter(tokenH *tokenhandler.TokenHandler, reportingH *reportinghandler.ReportingHandler,
	jwtCfg jwtmw.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", health)
	// トークン発行（総当たり対策のレートリミット付き）
	limiter := ratelimiter.NewRateLimiter(tokenRequestsPerMinute, time.Minute)
	r.POST("/token", limiter.Middleware(), tokenH.Issue)

	// 認証必須のルート
	reporting := r.Group("/reporting")
	reporting.Use(jwtmw.AuthRequired(jwtCfg))
	{
		reporting.GET("/user-summary", reportingH.UserSummary)
		reporting.GET("/top-products", reportingH.TopProducts)
		reporting.GET("/export-csv", reportingH.ExportCSV)
	}

	return r
}

func health(c *gin.Context) {
	// キャッシュされないように明示
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case "HEAD":
		c.Status(200)
	case "OPTIONS":
		c.Status(204)
	default:
		c.JSON(200, gin.H{"status": "ok"})
	}
}
