package routes

import (
	_ "github.com/ajju-1209/hostel-management/docs"
	"github.com/ajju-1209/hostel-management/internal/app/controllers"
	"github.com/ajju-1209/hostel-management/internal/app/middleware"
	"github.com/ajju-1209/hostel-management/internal/domain/services/container"
	"github.com/ajju-1209/hostel-management/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	return NewRouter(container.NewServiceContainer(db, cfg))
}

// NewRouter 使用已有的服务容器构建路由
func NewRouter(serviceContainer *container.ServiceContainer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api, container)
	// 注册投诉路由
	registerComplaintRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 健康检查路由
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "status"))

	// 认证路由
	auth := api.Group("/auth")
	auth.POST("/login", controllers.HandleJWTFunc(container, "login"))
}

// registerComplaintRoutes 注册投诉路由
func registerComplaintRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	complaints := api.Group("/complaints")

	// 住户路由，管理员和物业人员同样可以访问
	resident := complaints.Group("")
	resident.Use(middleware.AuthenticateResident(container.JWT()))
	{
		resident.GET("/descriptions", controllers.HandleComplaintFunc(container, "getStandardDescriptions"))
		resident.POST("/create", controllers.HandleComplaintFunc(container, "createComplaint"))
		resident.POST("/delete/:id", controllers.HandleComplaintFunc(container, "deleteComplaint"))
		resident.DELETE("/delete/:id", controllers.HandleComplaintFunc(container, "deleteComplaint"))
		resident.GET("/getByIssue", controllers.HandleComplaintFunc(container, "getForResident"))
		resident.POST("/resident/update", controllers.HandleComplaintFunc(container, "updateResident"))
	}

	// 管理员路由
	admin := complaints.Group("/admin")
	admin.Use(middleware.AuthenticateAdmin(container.JWT()))
	{
		admin.GET("/get", controllers.HandleComplaintFunc(container, "getForAdmin"))
		admin.POST("/update", controllers.HandleComplaintFunc(container, "updateAdmin"))
	}
}
