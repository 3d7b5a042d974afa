package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/ajju-1209/hostel-management/internal/domain/services/container"
	"github.com/ajju-1209/hostel-management/internal/error/code"
	"github.com/ajju-1209/hostel-management/internal/error/response"
	"github.com/ajju-1209/hostel-management/internal/infrastructure/database"
	Logger "github.com/ajju-1209/hostel-management/pkg/logger"
)

// HealthCheckController 健康检查控制器
type HealthCheckController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthCheckController 创建健康检查控制器实例
func NewHealthCheckController(ctx *gin.Context, container *container.ServiceContainer) *HealthCheckController {
	return &HealthCheckController{Ctx: ctx, Container: container}
}

// HandleHealthFunc 返回健康检查处理函数
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthCheckController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// Ping 健康检查端点
// @Summary      Ping
// @Tags         Health
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /ping [get]
func (h *HealthCheckController) Ping() {
	response.Success(h.Ctx, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// Status 检查数据库连接
// @Summary      Database health
// @Tags         Health
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /health [get]
func (h *HealthCheckController) Status() {
	if err := database.Ping(h.Ctx.Request.Context(), h.Container.GetDB()); err != nil {
		Logger.Error("database health check failed: %v", err)
		response.FailWithMessage(h.Ctx, code.ErrDatabase, "database unavailable", gin.H{"status": "unhealthy"})
		return
	}
	response.Success(h.Ctx, gin.H{
		"status":   "healthy",
		"database": "up",
	})
}
