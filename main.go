package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	utils.LoadEnv()

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
		"REFRESH_TOKEN_EXPIRATION_TIME",
		"GCS_BUCKET_NAME",
		"PORT",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
	utils.InitMongoClient()
}

// initRedis wires the Redis-backed services. All three are optional: with no
// REDIS_URL the app runs without session caching, token blacklisting or
// dashboard caching.
func initRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Println("REDIS_URL not set, running without Redis")
		return
	}

	sessionCache, err := services.NewSessionCache(redisURL)
	if err != nil {
		log.Fatalf("Failed to initialize session cache: %v", err)
	}
	services.GlobalSessionCache = sessionCache

	blacklist, err := services.NewTokenBlacklist(redisURL)
	if err != nil {
		log.Fatalf("Failed to initialize token blacklist: %v", err)
	}
	services.TokenBlacklist = blacklist

	ttl := utils.GetEnvAsDuration("DASHBOARD_CACHE_TTL", 5*time.Minute)
	dashboardCache, err := services.NewDashboardCache(redisURL, ttl)
	if err != nil {
		log.Fatalf("Failed to initialize dashboard cache: %v", err)
	}
	services.GlobalDashboardCache = dashboardCache
}

func setupRouter(pdfStorage services.PDFStorage) *gin.Engine {
	router := gin.New()

	if utils.GetEnvAsBool("ENABLE_REQUEST_LOGGING", true) {
		router.Use(gin.Logger())
	}
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestSizeLimiter(handler.MaxPDFSize + 1<<20))

	// Repositories
	userRepo := repository.GetUserRepo(utils.MongoClient)
	sessionRepo := repository.GetSessionRepo(utils.MongoClient)
	subjectsRepo := repository.GetSubjectsRepo(utils.MongoClient)
	topicsRepo := repository.GetTopicsRepo(utils.MongoClient)
	subtopicsRepo := repository.GetSubtopicsRepo(utils.MongoClient)
	notesRepo := repository.GetNotesRepo(utils.MongoClient)
	pdfsRepo := repository.GetPDFsRepo(utils.MongoClient)

	// Services
	userService := &usecase.UserService{Users: userRepo}
	hierarchyService := &usecase.HierarchyService{
		Subjects:  subjectsRepo,
		Topics:    topicsRepo,
		Subtopics: subtopicsRepo,
		Notes:     notesRepo,
		PDFs:      pdfsRepo,
	}
	notesService := &usecase.NotesService{Notes: notesRepo, Topics: topicsRepo}
	pdfService := &usecase.PDFService{PDFs: pdfsRepo, Topics: topicsRepo, Storage: pdfStorage}
	dashboardService := &usecase.DashboardService{
		Subjects: subjectsRepo,
		Topics:   topicsRepo,
		Notes:    notesRepo,
		PDFs:     pdfsRepo,
	}

	router.GET("/health", handler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", func(c *gin.Context) {
				handler.RegistrationHandler(c, userService)
			})
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, userService, sessionRepo)
			})
		}
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		user := protected.Group("/user")
		{
			user.POST("/logout", func(c *gin.Context) {
				handler.LogoutHandler(c, sessionRepo)
			})
		}

		sessions := protected.Group("/sessions")
		{
			sessions.GET("/active", func(c *gin.Context) {
				handler.GetActiveSessionsHandler(c, sessionRepo)
			})
			sessions.POST("/logout-all", func(c *gin.Context) {
				handler.LogoutAllSessionsHandler(c, sessionRepo)
			})
		}

		subjects := protected.Group("/subjects")
		{
			subjects.GET("", func(c *gin.Context) {
				handler.ListSubjectsHandler(c, hierarchyService)
			})
			subjects.POST("", func(c *gin.Context) {
				handler.CreateSubjectHandler(c, hierarchyService)
			})
			subjects.PUT("/:id", func(c *gin.Context) {
				handler.RenameSubjectHandler(c, hierarchyService)
			})
			subjects.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteSubjectHandler(c, hierarchyService)
			})
			subjects.GET("/:id/topics", func(c *gin.Context) {
				handler.ListTopicsHandler(c, hierarchyService)
			})
			subjects.POST("/:id/topics", func(c *gin.Context) {
				handler.CreateTopicHandler(c, hierarchyService)
			})
		}

		topics := protected.Group("/topics")
		{
			topics.PUT("/:id", func(c *gin.Context) {
				handler.RenameTopicHandler(c, hierarchyService)
			})
			topics.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteTopicHandler(c, hierarchyService)
			})
			topics.GET("/:id/subtopics", func(c *gin.Context) {
				handler.ListSubtopicsHandler(c, hierarchyService)
			})
			topics.POST("/:id/subtopics", func(c *gin.Context) {
				handler.CreateSubtopicHandler(c, hierarchyService)
			})
		}

		notes := protected.Group("/notes")
		{
			notes.GET("", func(c *gin.Context) {
				handler.GetNoteHandler(c, notesService)
			})
			notes.PUT("", func(c *gin.Context) {
				handler.SaveNoteHandler(c, notesService)
			})
		}

		pdfs := protected.Group("/pdfs")
		{
			pdfs.GET("", func(c *gin.Context) {
				handler.ListPDFsHandler(c, pdfService)
			})
			pdfs.POST("", func(c *gin.Context) {
				handler.UploadPDFHandler(c, pdfService)
			})
		}

		protected.GET("/dashboard", func(c *gin.Context) {
			handler.DashboardHandler(c, dashboardService)
		})
	}

	return router
}

func main() {
	initRedis()

	if err := repository.SetupIndexes(utils.MongoClient.Database(os.Getenv("MONGO_DB"))); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	pdfStorage, err := services.NewGCSPDFStorage()
	if err != nil {
		log.Fatalf("Failed to initialize PDF storage: %v", err)
	}

	router := setupRouter(pdfStorage)

	port := utils.GetEnvAsString("PORT", "8080")
	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
