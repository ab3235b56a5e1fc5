package main

import (
	"log"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"reporting_backend/internal/app/di"
	"reporting_backend/internal/app/router"
	reportinghandler "reporting_backend/internal/feature/reporting/transport/handler"
	reportingusecase "reporting_backend/internal/feature/reporting/usecase"
	tokenadapters "reporting_backend/internal/feature/token/adapters"
	tokenhandler "reporting_backend/internal/feature/token/transport/handler"
	tokenusecase "reporting_backend/internal/feature/token/usecase"
	infradb "reporting_backend/internal/platform/db"
	jwtmw "reporting_backend/internal/platform/jwt"
	infraredis "reporting_backend/internal/platform/redis"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// 署名キーがなければ起動時に失敗させる（リクエスト毎のエラーにしない）
	jwtCfg := jwtmw.LoadConfig()
	if err := jwtCfg.Validate(); err != nil {
		log.Fatalf("invalid token configuration: %v", err)
	}

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	reportRepo := di.NewReportRepository(rdb, db)
	credentialRepo := tokenadapters.NewCredentialMySQL(db)

	// Usecase
	reportingUC := reportingusecase.NewReportingUsecase(reportRepo)
	tokenUC := tokenusecase.NewTokenUsecase(credentialRepo, jwtmw.NewIssuer(jwtCfg))

	// Handler
	reportingH := reportinghandler.NewReportingHandler(reportingUC)
	tokenH := tokenhandler.NewTokenHandler(tokenUC)

	// ルータ生成
	router := router.NewRouter(tokenH, reportingH, jwtCfg)

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
