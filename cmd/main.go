package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"travelplan-frontend/internal/config"
	"travelplan-frontend/internal/gateway"
	"travelplan-frontend/internal/handler"
	"travelplan-frontend/internal/middleware"
	"travelplan-frontend/internal/notify"
	"travelplan-frontend/internal/service"
	"travelplan-frontend/internal/storage"
	"travelplan-frontend/pkg/logger"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "./configs/config.yaml", "配置文件路径")
	flag.Parse()

	// 先加载 .env，再读配置文件
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	// 初始化快照存储
	store := newStore(cfg)
	if err := store.Init(); err != nil {
		logger.Fatalf("存储初始化失败: %v", err)
	}
	defer store.Close()

	// 通知队列与请求网关
	sink := notify.NewSink(cfg.Notify.TTL)
	gw := gateway.NewClient(cfg, sink)
	if cfg.API.Mock {
		logger.Info("MOCK模式已开启，不会请求真实后端")
	}

	formService := service.NewFormService(gw, store)
	planService := service.NewPlanService(gw, store)
	pageHandler := handler.NewPageHandler(formService, planService, sink)

	router := setupRouter(cfg, pageHandler)

	server := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:        router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		logger.Infof("服务器启动在端口 %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("服务器启动失败: %v", err)
		}
	}()

	// 等待信号优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("服务器正在关闭...")
	if err := server.Close(); err != nil {
		logger.Errorf("服务器关闭失败: %v", err)
	}
	logger.Info("服务器已关闭")
}

func newStore(cfg *config.Config) storage.Store {
	if cfg.Storage.Type == "disk" {
		return storage.NewDiskStore(cfg.Storage.DataDir)
	}
	return storage.NewMemoryStore()
}

func setupRouter(cfg *config.Config, pageHandler *handler.PageHandler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// 中间件
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// CORS配置
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           time.Duration(cfg.CORS.MaxAge) * time.Second,
	}
	router.Use(cors.New(corsConfig))

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
		router.Use(limiter.Limit())
	}

	router.LoadHTMLGlob("web/template/*.html")
	router.Static("/static", "./web/static")

	// 页面路由
	router.GET("/", pageHandler.RequirementPage)
	router.POST("/submit", pageHandler.Submit)
	router.GET("/plan", pageHandler.PlanPage)
	router.POST("/plan/adjust", pageHandler.AdjustPlan)

	// 健康检查
	router.GET("/health", pageHandler.Health)

	return router
}
