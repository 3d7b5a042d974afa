package container

import (
	"sync"

	"github.com/ajju-1209/hostel-management/internal/domain/services"
	"github.com/ajju-1209/hostel-management/internal/infrastructure/config"

	"gorm.io/gorm"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	// 基础服务
	jwtService services.InterfaceJWTService
	otpService services.InterfaceOTPService

	// 业务服务
	userService      services.InterfaceUserService
	complaintService services.InterfaceComplaintService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.jwtService = services.NewJWTService(c.config, c.db)
	c.otpService = services.NewOTPService(c.config)

	c.userService = services.NewUserService(c.db)
	c.complaintService = services.NewComplaintService(c.db, c.otpService)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "otp":
		return c.otpService
	case "user":
		return c.userService
	case "complaint":
		return c.complaintService
	default:
		return nil
	}
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// JWT 返回认证服务
func (c *ServiceContainer) JWT() services.InterfaceJWTService {
	return c.GetService("jwt").(services.InterfaceJWTService)
}

// Users 返回用户服务
func (c *ServiceContainer) Users() services.InterfaceUserService {
	return c.GetService("user").(services.InterfaceUserService)
}

// Complaints 返回投诉服务
func (c *ServiceContainer) Complaints() services.InterfaceComplaintService {
	return c.GetService("complaint").(services.InterfaceComplaintService)
}
