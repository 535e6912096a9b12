package rest

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/socialscribe/internal/common"
	"github.com/dmitrijs2005/socialscribe/internal/logging"
	"github.com/dmitrijs2005/socialscribe/internal/server/models"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func newRouter(opts Options, posts PostService, logger logging.Logger) *gin.Engine {
	router := gin.New()

	router.Use(RequestIDMiddleware())
	router.Use(LoggingMiddleware(logger))
	router.Use(MetricsMiddleware(opts.Metrics))
	router.Use(RecoveryMiddleware(logger))
	router.Use(CORSMiddleware(opts.AllowedOrigins))

	h := &handlers{posts: posts, logger: logger}

	prefix := "/" + strings.Trim(opts.APIPrefix, "/")

	router.GET("/", healthHandler)
	if prefix != "/" {
		router.GET(prefix, healthHandler)
	}

	if opts.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	api := router.Group(prefix)
	api.POST("/generate", ValidateBriefMiddleware(), h.generate)
	api.GET("/posts", h.list)

	post := api.Group("/posts/:id", ValidateIDParam("id"))
	post.GET("", h.get)
	post.PUT("", h.update)
	post.DELETE("", h.delete)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, envelope{
			Message: fmt.Sprintf("Route %s %s not found", c.Request.Method, c.Request.URL.RequestURI()),
		})
	})

	return router
}

func healthHandler(c *gin.Context) {
	platforms := make([]gin.H, 0, len(models.Platforms))
	for _, p := range models.Platforms {
		platforms = append(platforms, gin.H{"name": p, "maxLength": models.PlatformLimits[p]})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "SocialScribe API is running",
		"service":   common.ServiceName,
		"version":   common.Version,
		"platforms": platforms,
		"tones":     models.Tones,
		"timestamp": time.Now().UTC(),
	})
}
