package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ajju-1209/hostel-management/internal/domain/models"
	"github.com/ajju-1209/hostel-management/utils"

	"gorm.io/gorm"
)

var (
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidUser       = errors.New("invalid user data")
)

// InterfaceUserService defines the user service interface
type InterfaceUserService interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	EnsureAdminExists(ctx context.Context, email, password string) (bool, error)
}

// UserService 管理住户、物业人员和管理员账户
type UserService struct {
	DB *gorm.DB
}

// NewUserService 创建一个新的用户服务
func NewUserService(db *gorm.DB) InterfaceUserService {
	return &UserService{DB: db}
}

// CreateUser 创建用户，密码以bcrypt哈希保存
func (s *UserService) CreateUser(ctx context.Context, user *models.User, password string) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if user.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidUser)
	}
	if user.UserRole == "" {
		user.UserRole = models.RoleResident
	}
	if !models.IsValidRole(user.UserRole) {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidUser, user.UserRole)
	}

	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrUserAlreadyExists
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUser, err)
	}
	user.Password = hashed
	return s.DB.WithContext(ctx).Create(user).Error
}

// GetUserByEmail 根据邮箱获取用户
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// EnsureAdminExists 系统中没有管理员时创建默认管理员，返回是否新建
func (s *UserService) EnsureAdminExists(ctx context.Context, email, password string) (bool, error) {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.User{}).Where("user_role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	if password == "" {
		return false, errors.New("DEFAULT_ADMIN_PASSWORD is required to create the default admin")
	}

	admin := &models.User{
		Email:     email,
		FirstName: "System",
		LastName:  "Admin",
		UserRole:  models.RoleAdmin,
	}
	if err := s.CreateUser(ctx, admin, password); err != nil {
		return false, err
	}
	return true, nil
}
