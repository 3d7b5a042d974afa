package middleware

import (
	"strings"

	"github.com/ajju-1209/hostel-management/internal/domain/models"
	"github.com/ajju-1209/hostel-management/internal/domain/services"
	"github.com/ajju-1209/hostel-management/internal/error/response"

	"github.com/gin-gonic/gin"
)

// callerKey gin 上下文中保存请求发起人的键
const callerKey = "caller"

// extractToken 从授权头中提取token
func extractToken(authHeader string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(authHeader), " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

// authenticate 验证令牌，roles 为空时任何有效角色都可访问
func authenticate(jwtService services.InterfaceJWTService, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		tokenString, ok := extractToken(authHeader)
		if !ok {
			response.Unauthorized(c, "Authorization header format must be Bearer {token}")
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		if len(roles) > 0 && !hasRole(claims.Role, roles) {
			response.Forbidden(c, "Insufficient permissions: requires "+strings.Join(roles, " or ")+" role")
			c.Abort()
			return
		}

		c.Set(callerKey, models.Caller{Email: claims.Email, Role: claims.Role})
		c.Next()
	}
}

// AuthenticateResident 验证住户接口权限，管理员和物业人员也可以访问
func AuthenticateResident(jwtService services.InterfaceJWTService) gin.HandlerFunc {
	return authenticate(jwtService)
}

// AuthenticateAdmin 验证管理员权限
func AuthenticateAdmin(jwtService services.InterfaceJWTService) gin.HandlerFunc {
	return authenticate(jwtService, models.RoleAdmin)
}

// CallerFrom 取出认证中间件写入的请求发起人
func CallerFrom(c *gin.Context) (models.Caller, bool) {
	v, ok := c.Get(callerKey)
	if !ok {
		return models.Caller{}, false
	}
	caller, ok := v.(models.Caller)
	return caller, ok
}

func hasRole(role string, roles []string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
