package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kidlearn_backend/internal/config"
	"kidlearn_backend/internal/controller"
	"kidlearn_backend/internal/repository"
	"kidlearn_backend/internal/service"
	"kidlearn_backend/internal/store"
	"kidlearn_backend/pkg/database"
	"kidlearn_backend/pkg/logger"
	"kidlearn_backend/pkg/monitoring"
	"kidlearn_backend/pkg/security"
	"kidlearn_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
	Store  store.Store

	configCallbacks []func(*config.Config)
}

type repositories struct {
	user        *repository.UserRepository
	course      *repository.CourseRepository
	rating      *repository.RatingRepository
	enrollment  *repository.EnrollmentRepository
	achievement *repository.AchievementRepository
}

type services struct {
	auth        *service.AuthService
	user        *service.UserService
	course      *service.CourseService
	progress    *service.ProgressService
	rating      *service.RatingService
	activity    *service.ActivityService
	achievement *service.AchievementService
	dashboard   *service.DashboardService
	storage     *service.StorageService
}

type controllers struct {
	auth        *controller.AuthController
	user        *controller.UserController
	course      *controller.CourseController
	progress    *controller.ProgressController
	rating      *controller.RatingController
	activity    *controller.ActivityController
	achievement *controller.AchievementController
	dashboard   *controller.DashboardController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig fans a reloaded config out to registered callbacks.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		course:      repository.NewCourseRepository(db),
		rating:      repository.NewRatingRepository(db),
		enrollment:  repository.NewEnrollmentRepository(db),
		achievement: repository.NewAchievementRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, kv store.Store) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.activity = service.NewActivityService(kv)
	s.auth = service.NewAuthService(repos.user, s.activity, cfg)
	s.user = service.NewUserService(repos.user)
	s.course = service.NewCourseService(repos.course)
	s.progress = service.NewProgressService(kv, repos.enrollment, s.activity)
	s.rating = service.NewRatingService(repos.rating, repos.course, s.progress)
	s.achievement = service.NewAchievementService(repos.achievement, repos.enrollment)
	s.dashboard = service.NewDashboardService(repos.user, repos.course, repos.enrollment, s.achievement, s.activity)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, kv store.Store) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		user:        controller.NewUserController(s.user, s.storage),
		course:      controller.NewCourseController(s.course),
		progress:    controller.NewProgressController(s.progress, s.course, s.auth),
		rating:      controller.NewRatingController(s.rating),
		activity:    controller.NewActivityController(s.activity),
		achievement: controller.NewAchievementController(s.achievement, s.auth),
		dashboard:   controller.NewDashboardController(s.dashboard, s.auth),
		health:      controller.NewHealthController(db, kv),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}
	kv := store.NewRedisStore(rdb)

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
		Store:  kv,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, kv)
	controllers := app.initControllers(services, db, kv)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("kidlearn-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Log.Info("Server exiting")
}
