package server

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/placementhub/placement-mentor-hub/internal/config"
	"github.com/placementhub/placement-mentor-hub/internal/handler"
	"github.com/placementhub/placement-mentor-hub/internal/middleware"
	"github.com/placementhub/placement-mentor-hub/internal/repository"
	"github.com/placementhub/placement-mentor-hub/internal/service"
	"github.com/placementhub/placement-mentor-hub/pkg/ats"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Server {
	userRepo := repository.NewUserRepository(db)
	trainerRepo := repository.NewTrainerRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	relationRepo := repository.NewRelationRepository(db)
	doubtRepo := repository.NewDoubtRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	focusRepo := repository.NewFocusRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	resumeRepo := repository.NewResumeRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	badgeRepo := repository.NewBadgeRepository(db)
	leaderboardRepo := repository.NewLeaderboardRepository(db)

	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTokenTTL)
	authHandler := handler.NewAuthHandler(authSvc)

	profileSvc := service.NewProfileService(userRepo, trainerRepo, studentRepo)
	profileHandler := handler.NewProfileHandler(profileSvc)

	relationSvc := service.NewRelationService(relationRepo, trainerRepo, studentRepo, userRepo)
	relationHandler := handler.NewRelationHandler(relationSvc)

	doubtSvc := service.NewDoubtService(doubtRepo, relationRepo, redisClient)
	doubtHandler := handler.NewDoubtHandler(doubtSvc, redisClient)

	badgeSvc := service.NewBadgeService(badgeRepo)
	leaderboardSvc := service.NewLeaderboardService(leaderboardRepo, redisClient)

	progressSvc := service.NewProgressService(progressRepo, studentRepo, badgeSvc, leaderboardSvc)
	progressHandler := handler.NewProgressHandler(progressSvc)

	focusSvc := service.NewFocusService(focusRepo, studentRepo)
	projectSvc := service.NewProjectService(projectRepo, studentRepo)
	projectHandler := handler.NewProjectHandler(projectSvc, focusSvc)

	careerSvc := service.NewCareerService(resumeRepo, applicationRepo, studentRepo, ats.NewKeywordScorer())
	careerHandler := handler.NewCareerHandler(careerSvc)

	statHandler := handler.NewStatHandler(badgeSvc, leaderboardSvc, studentRepo)
	adminHandler := handler.NewAdminHandler(userRepo, studentRepo)

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(userRepo, cfg.JWTSecret)

	api := router.Group("/api")

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		// Profile routes
		protected.GET("/profile/me", profileHandler.GetMe)
		protected.POST("/profile/trainer", profileHandler.CreateTrainer)
		protected.POST("/profile/student", profileHandler.CreateStudent)
		protected.GET("/trainers", profileHandler.ListTrainers)

		// Relation routes
		protected.POST("/relations", relationHandler.Create)
		protected.GET("/relations", relationHandler.List)
		protected.POST("/relations/:id/close", relationHandler.Close)
		protected.POST("/relations/:id/rate", relationHandler.Rate)
		protected.GET("/relations/:id/doubts", doubtHandler.ListByRelation)

		// Doubt routes
		protected.POST("/doubts", doubtHandler.Create)
		protected.GET("/doubts/ws", doubtHandler.HandleWebSocket)

		// Leaderboard is visible to every authenticated role
		protected.GET("/leaderboard", statHandler.GetLeaderboard)
	}

	// Student-only routes
	student := protected.Group("")
	student.Use(authMiddleware.RequireStudent())
	{
		// Progress routes
		student.POST("/progress", progressHandler.Record)
		student.GET("/progress", progressHandler.List)
		student.PUT("/students/stats", progressHandler.UpdateStats)
		student.GET("/students/stats", statHandler.GetStudentStats)

		// Focus sessions
		student.POST("/focus/start", projectHandler.StartFocus)
		student.POST("/focus/:id/end", projectHandler.EndFocus)
		student.GET("/focus", projectHandler.ListFocus)

		// Project routes
		student.POST("/projects", projectHandler.Create)
		student.GET("/projects", projectHandler.List)
		student.POST("/projects/:id/logs", projectHandler.AddLog)
		student.GET("/projects/:id/logs", projectHandler.ListLogs)

		// Career routes
		student.POST("/resumes", careerHandler.CreateResume)
		student.GET("/resumes", careerHandler.ListResumes)
		student.POST("/resumes/:id/scan", careerHandler.ScanResume)
		student.GET("/resumes/:id/scans", careerHandler.ListScans)
		student.POST("/applications", careerHandler.CreateApplication)
		student.GET("/applications", careerHandler.ListApplications)
		student.PUT("/applications/:id/status", careerHandler.UpdateApplicationStatus)

		// Gamification routes
		student.GET("/badges", statHandler.ListBadges)
	}

	// Admin-only routes
	admin := protected.Group("/admin")
	admin.Use(authMiddleware.RequireAdmin())
	{
		admin.GET("/students", adminHandler.ListStudents)
		admin.GET("/users/count", adminHandler.CountUsers)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
