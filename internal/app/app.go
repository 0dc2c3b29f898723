package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lingo_edu_backend/internal/config"
	"lingo_edu_backend/internal/controller"
	"lingo_edu_backend/internal/repository"
	"lingo_edu_backend/internal/service"
	"lingo_edu_backend/pkg/database"
	"lingo_edu_backend/pkg/logger"
	"lingo_edu_backend/pkg/monitoring"
	"lingo_edu_backend/pkg/security"
	"lingo_edu_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	module     *repository.ModuleRepository
	lesson     *repository.LessonRepository
	video      *repository.VideoRepository
	userLesson *repository.UserLessonRepository
	userModule *repository.UserModuleRepository
	challenge  *repository.ChallengeRepository
}

type services struct {
	auth       *service.AuthService
	storage    *service.StorageService
	user       *service.UserService
	streak     *service.StreakService
	progress   *service.ProgressService
	mission    *service.MissionService
	home       *service.HomeService
	module     *service.ModuleService
	lesson     *service.LessonService
	dictionary *service.DictionaryService
}

type controllers struct {
	auth       *controller.AuthController
	profile    *controller.ProfileController
	home       *controller.HomeController
	mission    *controller.MissionController
	module     *controller.ModuleController
	lesson     *controller.LessonController
	dictionary *controller.DictionaryController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ReloadConfig 配置热更新入口，由 configwatcher 回调
func (a *App) ReloadConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Config reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		module:     repository.NewModuleRepository(db),
		lesson:     repository.NewLessonRepository(db),
		video:      repository.NewVideoRepository(db),
		userLesson: repository.NewUserLessonRepository(db),
		userModule: repository.NewUserModuleRepository(db),
		challenge:  repository.NewChallengeRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, s.storage)

	s.streak = service.NewStreakService(repos.challenge)
	s.progress = service.NewProgressService(repos.userLesson, repos.userModule, repos.video, cfg.Progress.DisplayMax)
	s.mission = service.NewMissionService(repos.challenge)
	s.home = service.NewHomeService(repos.user, s.streak, s.progress)

	s.module = service.NewModuleService(repos.user, repos.module, repos.lesson, repos.video, s.progress)
	s.lesson = service.NewLessonService(db, repos.lesson, repos.video, repos.userLesson, s.mission)
	s.dictionary = service.NewDictionaryService(repos.video, rdb)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		profile:    controller.NewProfileController(s.user),
		home:       controller.NewHomeController(s.home),
		mission:    controller.NewMissionController(s.mission),
		module:     controller.NewModuleController(s.module),
		lesson:     controller.NewLessonController(s.lesson),
		dictionary: controller.NewDictionaryController(s.dictionary),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("lingo-edu-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
