package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jluoherm/HuffmanCoding/internal/config"
	"github.com/jluoherm/HuffmanCoding/internal/handler"
	"github.com/jluoherm/HuffmanCoding/internal/repo"
	"github.com/jluoherm/HuffmanCoding/internal/router"
	"github.com/jluoherm/HuffmanCoding/internal/service"
	"github.com/jluoherm/HuffmanCoding/pkg/logger"
)

func main() {
	// 설정/로거 초기화
	cfg := config.Load()
	logg := logger.New("server")

	// 저장소 선택: DATABASE_URL 이 있으면 PostgreSQL, 없으면 메모리
	sessionRepo := repo.NewSessionRepoInMemory()
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		pool, err := repo.Open(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
		if err != nil {
			cancel()
			log.Fatal(err)
		}
		defer pool.Close()
		if err := repo.Migrate(ctx, pool); err != nil {
			cancel()
			log.Fatal(err)
		}
		cancel()
		sessionRepo = repo.NewSessionRepoPostgres(pool)
		logg.Infof("using postgres session store")
	} else {
		logg.Warnf("DATABASE_URL not set, sessions are kept in memory")
	}

	// 의존성 생성
	codecSvc := service.NewCodecService(sessionRepo, logg, cfg.MaxInputRunes)
	sessionH := handler.NewSessionHandler(codecSvc)

	// Gin 라우터 생성 및 라우팅 구성
	r := gin.Default()
	router.Register(r, router.Dependencies{
		SessionHandler: sessionH,
	})

	addr := ":" + cfg.Port
	log.Printf("starting server at %s\n", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
