package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adventistcho-art/ESG-Archive/config"
	"github.com/adventistcho-art/ESG-Archive/internal/api/handler"
	"github.com/adventistcho-art/ESG-Archive/internal/api/router"
	"github.com/adventistcho-art/ESG-Archive/internal/repository"
	"github.com/adventistcho-art/ESG-Archive/internal/service"
	"github.com/adventistcho-art/ESG-Archive/pkg/database"
	"github.com/adventistcho-art/ESG-Archive/pkg/jwt"
	applogger "github.com/adventistcho-art/ESG-Archive/pkg/logger"
	"github.com/adventistcho-art/ESG-Archive/pkg/metrics"
	"github.com/adventistcho-art/ESG-Archive/pkg/redis"
	"github.com/adventistcho-art/ESG-Archive/pkg/storage"
	"github.com/adventistcho-art/ESG-Archive/pkg/validate"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径（默认查找 ./config/config.yaml）")
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 连接数据库
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}
	logger.Info("数据库连接成功")

	// 3.1 执行数据库迁移
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}

	// 4. 连接 Redis（可选：连接失败时降级运行，不中断启动）
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis 连接失败，Token 黑名单与限流将不可用", zap.Error(err))
		rdb = nil
	}

	// 5. 上传存储后端（启动时选定一次）
	store, err := storage.New(&cfg.Upload, logger)
	if err != nil {
		logger.Fatal("初始化上传存储失败", zap.Error(err))
	}

	// 6. 指标、校验翻译、JWT
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(cfg.Metrics.Namespace)
	}
	if err := validate.Setup(); err != nil {
		logger.Warn("注册校验错误翻译失败，将使用默认消息", zap.Error(err))
	}
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 7. 依赖注入: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, store, m, logger)
	h := handler.NewHandler(svc)

	// 8. 初始化路由
	engine := router.Setup(router.Deps{
		Config:  cfg,
		Handler: h,
		JWT:     jwtMgr,
		Redis:   rdb,
		Store:   store,
		Metrics: m,
		Logger:  logger,
	})

	// 9. 启动 HTTP 服务器（优雅关闭）
	// 上传大文件耗时较长，写超时放宽到 60s
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 10. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	// 关闭数据库连接
	if err := sqlDB.Close(); err != nil {
		logger.Error("关闭数据库连接失败", zap.Error(err))
	}

	// 关闭 Redis 连接
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("服务器已关闭")
}
