// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"reporting_backend/internal/feature/reporting/adapters"
	"reporting_backend/internal/feature/reporting/usecase"
	"reporting_backend/internal/platform/cache"
)

// NewReportRepository creates the report repository. If Redis is available,
// the repository is wrapped with a read-through cache that expires at the
// next UTC day boundary. Otherwise the store is queried directly.
func NewReportRepository(rdb *redis.Client, db *gorm.DB) usecase.ReportRepository {
	repo := adapters.NewReportMySQL(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingReportRepository(rdb, cache.TimeUntilNextMidnightUTC(), repo, "reports")
}
