// @title           Hostel Complaint Service API
// @version         1.0
// @description     Residents raise and track complaints, administrators assign them to staff and close them

// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the Bearer prefix
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ajju-1209/hostel-management/internal/app/routes"
	"github.com/ajju-1209/hostel-management/internal/domain/services"
	"github.com/ajju-1209/hostel-management/internal/infrastructure/config"
	"github.com/ajju-1209/hostel-management/internal/infrastructure/database"
	Logger "github.com/ajju-1209/hostel-management/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 加载.env文件，失败时继续使用已有的环境变量
	envErr := godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 初始化日志配置
	if err := Logger.SetupLogger(cfg.LogLevel, cfg.LogFormat, "hostel-complaint-service"); err != nil {
		fmt.Printf("初始化日志配置失败: %v\n", err)
		os.Exit(1)
	}
	defer Logger.Sync()

	if envErr != nil {
		Logger.Warning("无法加载.env文件: %v", envErr)
	} else {
		Logger.Info("成功加载.env文件")
	}

	if cfg.EnvType == "SERVER" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建数据库连接池
	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		Logger.Error("无法创建数据库连接池: %v", err)
		os.Exit(1)
	}
	defer pool.Close()
	db := pool.GetDB()

	if err := database.Migrate(db, cfg.DBMigrationMode); err != nil {
		Logger.Error("数据库迁移失败: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()
	created, err := services.NewUserService(db).EnsureAdminExists(ctx, cfg.DefaultAdminEmail, cfg.DefaultAdminPassword)
	if err != nil {
		Logger.Warning("默认管理员未创建: %v", err)
	} else if created {
		Logger.Info("已创建默认管理员: %s", cfg.DefaultAdminEmail)
	}

	r := routes.SetupRouter(db, cfg)

	printSystemInfo(pool)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		Logger.Info("服务器启动在: http://%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			Logger.Error("启动服务器失败: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	Logger.Info("正在关闭服务器...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		Logger.Error("服务器关闭失败: %v", err)
	}
}

// printSystemInfo 打印数据库连接池信息
func printSystemInfo(pool *database.ConnectionPool) {
	stats, err := pool.Stats()
	if err != nil {
		Logger.Warning("无法获取连接池状态: %v", err)
		return
	}
	Logger.Info("数据库连接池状态: %v", stats)
}
