package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jluoherm/HuffmanCoding/internal/handler"
)

type Dependencies struct {
	SessionHandler *handler.SessionHandler
}

func Register(r *gin.Engine, d Dependencies) {
	// 공용 라우트
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// v1 그룹
	v1 := r.Group("/api/v1")
	{
		sessions := v1.Group("/sessions")
		{
			sessions.POST("", d.SessionHandler.Create)
			sessions.GET("", d.SessionHandler.List)
			sessions.GET("/:id", d.SessionHandler.GetByID)
			sessions.POST("/:id/decode", d.SessionHandler.Decode)
		}
	}
}
