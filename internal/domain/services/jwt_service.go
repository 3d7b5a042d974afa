package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ajju-1209/hostel-management/internal/domain/models"
	"github.com/ajju-1209/hostel-management/internal/infrastructure/config"
	"github.com/ajju-1209/hostel-management/utils"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// 令牌有效期
const tokenTTL = 24 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
)

// InterfaceJWTService 定义JWT服务接口
type InterfaceJWTService interface {
	GenerateToken(email, role string) (string, error)
	ValidateToken(tokenString string) (*JWTClaims, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// LoginResult 表示登录结果
type LoginResult struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	Role      string    `json:"userRole"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// JWTClaims 定义JWT令牌的声明结构
type JWTClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService 提供JWT相关服务
type JWTService struct {
	secretKey string
	issuer    string
	DB        *gorm.DB
	now       func() time.Time
}

// NewJWTService 创建一个新的JWT服务
func NewJWTService(cfg *config.Config, db *gorm.DB) InterfaceJWTService {
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "hostel-complaint-service",
		DB:        db,
		now:       time.Now,
	}
}

// GenerateToken 生成JWT令牌
func (s *JWTService) GenerateToken(email, role string) (string, error) {
	now := s.now()
	claims := &JWTClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken 验证JWT令牌并返回声明
func (s *JWTService) ValidateToken(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// 验证签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Email == "" || !models.IsValidRole(claims.Role) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Login 使用邮箱和密码登录
func (s *JWTService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user.Email, user.UserRole)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:     token,
		Email:     user.Email,
		Role:      user.UserRole,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		ExpiresAt: s.now().Add(tokenTTL),
	}, nil
}
