package main

import (
	"fmt"

	"github.com/ajju-1209/hostel-management/internal/domain/services"
	"github.com/ajju-1209/hostel-management/internal/infrastructure/config"
	"github.com/ajju-1209/hostel-management/internal/infrastructure/database"
	Logger "github.com/ajju-1209/hostel-management/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// adminApp 子命令共享的数据库连接和服务
type adminApp struct {
	pool       *database.ConnectionPool
	db         *gorm.DB
	users      services.InterfaceUserService
	complaints services.InterfaceComplaintService
}

// newRootCmd 创建管理命令，子命令运行前连接数据库
func newRootCmd() (*cobra.Command, *adminApp) {
	app := &adminApp{}

	root := &cobra.Command{
		Use:           "admin",
		Short:         "Operator commands for the hostel complaint service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.open()
		},
	}

	root.AddCommand(
		newAddUserCmd(app),
		newAddDescriptionCmd(app),
		newListDescriptionsCmd(app),
	)
	return root, app
}

// execute 运行命令并在结束后关闭数据库
func execute(root *cobra.Command, app *adminApp) error {
	defer app.close()
	return root.Execute()
}

func (a *adminApp) open() error {
	envErr := godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := Logger.SetupLogger(cfg.LogLevel, cfg.LogFormat, "hostel-admin"); err != nil {
		return err
	}
	if envErr != nil {
		Logger.Warning("无法加载.env文件: %v", envErr)
	}

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	a.pool = pool
	a.db = pool.GetDB()
	if err := database.Migrate(a.db, "auto"); err != nil {
		return err
	}

	a.users = services.NewUserService(a.db)
	a.complaints = services.NewComplaintService(a.db, services.NewOTPService(cfg))
	return nil
}

func (a *adminApp) close() {
	if a.pool == nil {
		return
	}
	if err := a.pool.Close(); err != nil {
		Logger.Warning("关闭数据库连接失败: %v", err)
	}
	Logger.Sync()
}
