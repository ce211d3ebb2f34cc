package router

import (
	"net/http"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"

	"portal-calma/internal/analytics"
	"portal-calma/internal/config"
	"portal-calma/internal/handlers"
	"portal-calma/internal/models"
	"portal-calma/internal/repository"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func rateLimitErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Try again later."})
}

func Setup(log *zap.Logger, templates *models.TemplateSet) *gin.Engine {
	// Set up a new Gin router, add recovery middleware and request logging.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	store := cookie.NewStore([]byte(config.Conf.Server.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true in production
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400 * 7,
	})
	router.Use(sessions.Sessions("calma_session", store))

	// --- Now that sessions are initialized, other middleware can use them ---
	router.Use(CSRFProtection())
	router.Use(UserLoaderMiddleware(log))

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			c.Abort()
			return
		}
	})

	// Handlers and routes
	collector := analytics.NewCollector(repository.Store{}, log)

	authHandler := handlers.NewAuthHandler(log)
	questionnaireHandler := handlers.NewQuestionnaireHandler(log, templates)
	responseHandler := handlers.NewResponseHandler(log)
	metricsHandler := handlers.NewMetricsHandler(log, collector)
	dashboardHandler := handlers.NewDashboardHandler(log, collector)
	reportHandler := handlers.NewReportHandler(log, collector)
	userHandler := handlers.NewUserHandler(log)

	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 5,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: rateLimitErrorHandler,
		KeyFunc:      keyFunc,
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/login", limiter, authHandler.Login)
	router.POST("/register", limiter, authHandler.Register)
	router.POST("/logout", authHandler.Logout)

	api := router.Group("/api")
	api.Use(AuthRequired())
	{
		questionnaireRoutes := api.Group("/questionnaires")
		{
			questionnaireRoutes.GET("", questionnaireHandler.List)
			questionnaireRoutes.POST("", questionnaireHandler.Create)
			questionnaireRoutes.POST("/from-template/:name", questionnaireHandler.CreateFromTemplate)
			questionnaireRoutes.PATCH("/:id/status", questionnaireHandler.UpdateStatus)
			questionnaireRoutes.DELETE("/:id", questionnaireHandler.Delete)
			questionnaireRoutes.POST("/:id/responses", responseHandler.Submit)
			questionnaireRoutes.GET("/:id/stats", metricsHandler.GetDetailedStats)
		}

		api.GET("/metrics", metricsHandler.GetMetrics)
		api.GET("/metrics/departments", metricsHandler.GetDepartmentMetrics)
		api.GET("/dashboard/charts", dashboardHandler.GetCharts)
		api.GET("/reports/snapshots", reportHandler.GetSnapshots)
		api.POST("/reports/snapshots", reportHandler.CreateSnapshot)

		profileRoutes := api.Group("/profile")
		{
			profileRoutes.GET("", userHandler.Profile)
			profileRoutes.POST("/update-info", userHandler.UpdateInfo)
			profileRoutes.POST("/update-password", userHandler.UpdatePassword)
			profileRoutes.POST("/delete", userHandler.DeleteAccount)
		}
	}

	return router
}
