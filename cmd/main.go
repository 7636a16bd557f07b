package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/nkritika/prepforge/config"
	"github.com/nkritika/prepforge/database"
	_ "github.com/nkritika/prepforge/docs" // Swagger docs - auto-generated
	"github.com/nkritika/prepforge/internal/controller"
	adminctrl "github.com/nkritika/prepforge/internal/controller/admin"
	userctrl "github.com/nkritika/prepforge/internal/controller/user"
	"github.com/nkritika/prepforge/internal/logger"
	"github.com/nkritika/prepforge/internal/middleware"
	"github.com/nkritika/prepforge/internal/model"
	"github.com/nkritika/prepforge/internal/repository"
	"github.com/nkritika/prepforge/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title PrepForge API
// @version 1.0
// @description Exam preparation platform: catalog, question bank, scoring and leaderboard.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewCategoryRepository,
			repository.NewSubCategoryRepository,
			repository.NewTestRepository,
			repository.NewQuestionRepository,
			repository.NewResultRepository,
			repository.NewUserRepository,
		),

		fx.Provide(
			service.NewCatalogService,
			service.NewQuestionService,
			service.NewAssemblyService,
			service.NewScoringService,
			service.NewLeaderboardService,
			service.NewGeneratorService,
			service.NewAuthService,
		),

		fx.Provide(
			controller.NewAuthController,
			adminctrl.NewCatalogController,
			adminctrl.NewQuestionController,
			userctrl.NewTestController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(SeedAdmin),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authSvc service.AuthService,
	authCtrl *controller.AuthController,
	catalogCtrl *adminctrl.CatalogController,
	questionCtrl *adminctrl.QuestionController,
	testCtrl *userctrl.TestController,
) {
	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)

		api.GET("/catalog", testCtrl.ListCategories)
		api.GET("/catalog/:category_id/subcategories", testCtrl.ListSubCategories)
		api.GET("/subcategories/:subcat_id/tests", testCtrl.ListTests)
		api.GET("/catalog/tests/:test_id", testCtrl.AssembleTest)
		api.GET("/tests/:test_id/rank", testCtrl.Rank)

		authed := api.Group("")
		authed.Use(middleware.RequireAuth(authSvc))
		authed.POST("/tests/:test_id/submit", testCtrl.Submit)
		authed.GET("/tests/:test_id/results", testCtrl.MyResults)
	}

	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(middleware.RequireAuth(authSvc), middleware.RequireAdmin())
	{
		adminAPI.POST("/categories", catalogCtrl.CreateCategory)
		adminAPI.DELETE("/categories/:id", catalogCtrl.DeleteCategory)
		adminAPI.POST("/subcategories", catalogCtrl.CreateSubCategory)
		adminAPI.DELETE("/subcategories/:id", catalogCtrl.DeleteSubCategory)
		adminAPI.POST("/tests", catalogCtrl.CreateTest)
		adminAPI.DELETE("/tests/:id", catalogCtrl.DeleteTest)

		adminAPI.POST("/tests/:id/questions", questionCtrl.AddQuestion)
		adminAPI.GET("/tests/:id/questions", questionCtrl.ListQuestions)
		adminAPI.POST("/questions", questionCtrl.BulkAdd)
		adminAPI.POST("/tests/:id/questions/import", questionCtrl.ImportCSV)
		adminAPI.POST("/tests/:id/generate", questionCtrl.Generate)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("PrepForge API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.SubCategory{},
		&model.Test{},
		&model.Question{},
		&model.Result{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed")
	return nil
}

func SeedAdmin(cfg *config.Config, authSvc service.AuthService) error {
	return authSvc.EnsureAdmin(cfg.Auth.AdminUsername, cfg.Auth.AdminPassword)
}
