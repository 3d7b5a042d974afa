package models

// Caller 是经过认证的请求发起人，由认证中间件生成并显式传入服务层
type Caller struct {
	Email string
	Role  string
}
