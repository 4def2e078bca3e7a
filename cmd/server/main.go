package main

import (
	"flag"
	"fmt"
	"os"
	"syscall"

	"github.com/admin-nexus/internal/app"
	"github.com/admin-nexus/internal/config"
	"github.com/admin-nexus/internal/logger"
	"github.com/admin-nexus/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"
	ansiCyan  = "\033[36m"
)

func main() {
	// 解析命令行参数
	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "启动模式: all (默认), api, worker")
	flag.Parse()

	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()
	stdLog := logger.StdLogger()

	printStartupBanner(cfg)

	if !app.ValidMode(mode) {
		stdLog.Fatalf("未知启动模式: %s", mode)
	}
	if cfg.Auth.JWTSecret == "" {
		stdLog.Printf("警告: 未配置 auth.jwt_secret，携带令牌的请求将被拒绝，用户自动注册不可用")
	}

	// 初始化数据库
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("数据库初始化失败: %v", err)
	}

	// 自动迁移数据库表
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("数据库迁移失败: %v", err)
	}

	// 初始化默认奖励
	if err := models.InitDefaultRewards(); err != nil {
		stdLog.Printf("警告: 初始化默认奖励失败: %v", err)
	}

	// 设置 Gin 模式
	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

func printStartupBanner(cfg *config.Config) {
	fmt.Println(ansiCyan + ansiBold + "Nexus Admin API" + ansiReset)
	fmt.Printf(ansiDim+"version=%s env=%s port=%s"+ansiReset+"\n", cfg.Server.Version, cfg.Server.Env, cfg.Server.Port)
}
