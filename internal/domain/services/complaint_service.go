package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ajju-1209/hostel-management/internal/domain/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrComplaintNotFound    = errors.New("No complaint found")
	ErrInvalidComplaintData = errors.New("Invalid Data")
	ErrUnsupportedStatus    = errors.New("unsupported complaint status")
	ErrTransitionNotAllowed = errors.New("complaint status transition not allowed")
	ErrAssigneeRequired     = errors.New("assignedTo is required when assigning a complaint")
	ErrAssigneeNotFound     = errors.New("assignedTo must be an existing staff member")
)

// 重新生成OTP的最大次数，避免与上一次相同
const maxOTPAttempts = 5

// CreateComplaintInput 住户创建投诉的输入
type CreateComplaintInput struct {
	ComplaintType       string
	IssueType           string
	DescriptionStandard *uint
	DescriptionCustom   string
}

// AdminUpdateInput 管理员更新投诉状态的输入
type AdminUpdateInput struct {
	ID         string
	Status     string
	AssignedTo string
}

// ResidentUpdateInput 住户修改投诉内容的输入
type ResidentUpdateInput struct {
	ID                  string
	IssueType           string
	ComplaintType       string
	DescriptionStandard *uint
	DescriptionCustom   string
}

// InterfaceComplaintService defines the complaint service interface
type InterfaceComplaintService interface {
	CreateComplaint(ctx context.Context, caller models.Caller, in CreateComplaintInput) (*models.Complaint, error)
	DeferComplaint(ctx context.Context, id string) (*models.Complaint, error)
	GetForResident(ctx context.Context, filter ComplaintFilter) ([]models.Complaint, error)
	GetForAdmin(ctx context.Context, filter ComplaintFilter) ([]models.Complaint, error)
	UpdateByAdmin(ctx context.Context, caller models.Caller, in AdminUpdateInput) (*models.Complaint, error)
	UpdateByResident(ctx context.Context, in ResidentUpdateInput) (*models.Complaint, error)
	ListStandardDescriptions(ctx context.Context, issueType string) ([]models.StandardDescription, error)
	CreateStandardDescription(ctx context.Context, issueType, description string) (*models.StandardDescription, error)
}

// ComplaintService 提供投诉相关的服务
type ComplaintService struct {
	DB  *gorm.DB
	OTP InterfaceOTPService
	Now func() time.Time
}

// NewComplaintService 创建一个新的投诉服务
func NewComplaintService(db *gorm.DB, otp InterfaceOTPService) *ComplaintService {
	return &ComplaintService{
		DB:  db,
		OTP: otp,
		Now: time.Now,
	}
}

// 1 CreateComplaint 创建新投诉，只保存与类型匹配的描述字段
func (s *ComplaintService) CreateComplaint(ctx context.Context, caller models.Caller, in CreateComplaintInput) (*models.Complaint, error) {
	complaintType, err := models.ParseComplaintType(in.ComplaintType)
	if err != nil {
		return nil, invalidData("complaintType must be standard or custom")
	}
	issueType := strings.TrimSpace(in.IssueType)
	if issueType == "" {
		return nil, invalidData("issueType is required")
	}
	if caller.Email == "" {
		return nil, invalidData("caller identity is missing")
	}

	complaint := &models.Complaint{
		CreatedBy:     caller.Email,
		CreatedOnDate: s.Now(),
		ComplaintType: complaintType,
		IssueType:     issueType,
		Status:        models.ComplaintStatusPending,
	}
	if err := s.applyDescription(ctx, complaint, complaintType, in.DescriptionStandard, in.DescriptionCustom); err != nil {
		return nil, err
	}

	result := s.DB.WithContext(ctx).Omit(clause.Associations).Create(complaint)
	if result.Error != nil {
		return nil, fmt.Errorf("create complaint: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrInvalidComplaintData
	}
	return complaint, nil
}

// 2 DeferComplaint 软删除：状态改为 deferred 并持久化
func (s *ComplaintService) DeferComplaint(ctx context.Context, id string) (*models.Complaint, error) {
	complaint, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch complaint.Status {
	case models.ComplaintStatusDeferred:
		return complaint, nil
	case models.ComplaintStatusSolved:
		return nil, fmt.Errorf("%w: complaint is already solved", ErrTransitionNotAllowed)
	}

	complaint.Status = models.ComplaintStatusDeferred
	if err := s.save(ctx, complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

// 3 GetForResident 按条件返回原始投诉记录
func (s *ComplaintService) GetForResident(ctx context.Context, filter ComplaintFilter) ([]models.Complaint, error) {
	complaints := make([]models.Complaint, 0)
	query := filter.Apply(s.DB.WithContext(ctx).Model(&models.Complaint{}))
	if err := query.Order("created_on_date DESC").Find(&complaints).Error; err != nil {
		return nil, fmt.Errorf("find complaints: %w", err)
	}
	return complaints, nil
}

// 4 GetForAdmin 按条件返回投诉，并展开创建人、被指派人和标准描述
func (s *ComplaintService) GetForAdmin(ctx context.Context, filter ComplaintFilter) ([]models.Complaint, error) {
	complaints := make([]models.Complaint, 0)
	query := filter.Apply(s.DB.WithContext(ctx).Model(&models.Complaint{})).
		Preload("ComplaintCreatorInfo", selectProfile).
		Preload("AssignedPersonInfo", selectProfile).
		Preload("StandardComplaintDescriptionInfo", selectDescription)
	if err := query.Order("created_on_date DESC").Find(&complaints).Error; err != nil {
		return nil, fmt.Errorf("find complaints: %w", err)
	}

	for i := range complaints {
		dropStaleDescription(&complaints[i])
	}
	return complaints, nil
}

// 5 UpdateByAdmin 管理员指派或结案
func (s *ComplaintService) UpdateByAdmin(ctx context.Context, caller models.Caller, in AdminUpdateInput) (*models.Complaint, error) {
	target, err := models.ParseComplaintStatus(in.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedStatus, in.Status)
	}
	if target != models.ComplaintStatusAssigned && target != models.ComplaintStatusSolved {
		return nil, fmt.Errorf("%w: %q cannot be set by an administrator", ErrUnsupportedStatus, target)
	}
	assignee := strings.ToLower(strings.TrimSpace(in.AssignedTo))
	if target == models.ComplaintStatusAssigned && assignee == "" {
		return nil, ErrAssigneeRequired
	}

	complaint, err := s.findByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	switch target {
	case models.ComplaintStatusAssigned:
		if complaint.Status.IsClosed() {
			return nil, fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, complaint.Status, target)
		}
		if err := s.checkAssignee(ctx, assignee); err != nil {
			return nil, err
		}
		otp, err := s.freshOTP(complaint.OTPAssigned)
		if err != nil {
			return nil, err
		}
		now := s.Now()
		assignedBy := caller.Email
		complaint.Status = target
		complaint.AssignedTo = &assignee
		complaint.AssignedBy = &assignedBy
		complaint.AssignedOnDate = &now
		complaint.OTPAssigned = &otp
		if err := s.save(ctx, complaint); err != nil {
			return nil, err
		}
		return s.reload(ctx, complaint.ID, func(db *gorm.DB) *gorm.DB {
			return db.Preload("AssignedPersonInfo", selectProfile)
		})

	default: // solved
		if complaint.Status != models.ComplaintStatusAssigned {
			return nil, fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, complaint.Status, target)
		}
		complaint.Status = target
		if err := s.save(ctx, complaint); err != nil {
			return nil, err
		}
		return complaint, nil
	}
}

// 6 UpdateByResident 住户修改问题类型和描述，另一个描述字段保持不变
func (s *ComplaintService) UpdateByResident(ctx context.Context, in ResidentUpdateInput) (*models.Complaint, error) {
	complaintType, err := models.ParseComplaintType(in.ComplaintType)
	if err != nil {
		return nil, invalidData("complaintType must be standard or custom")
	}
	issueType := strings.TrimSpace(in.IssueType)
	if issueType == "" {
		return nil, invalidData("issueType is required")
	}

	complaint, err := s.findByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if complaint.Status.IsClosed() {
		return nil, fmt.Errorf("%w: complaint is %s", ErrTransitionNotAllowed, complaint.Status)
	}

	complaint.IssueType = issueType
	complaint.ComplaintType = complaintType
	if err := s.applyDescription(ctx, complaint, complaintType, in.DescriptionStandard, in.DescriptionCustom); err != nil {
		return nil, err
	}
	if err := s.save(ctx, complaint); err != nil {
		return nil, err
	}

	updated, err := s.reload(ctx, complaint.ID, func(db *gorm.DB) *gorm.DB {
		return db.Preload("StandardComplaintDescriptionInfo", selectDescription)
	})
	if err != nil {
		return nil, err
	}
	dropStaleDescription(updated)
	return updated, nil
}

// 7 ListStandardDescriptions 获取预定义描述，issueType 为空时返回全部
func (s *ComplaintService) ListStandardDescriptions(ctx context.Context, issueType string) ([]models.StandardDescription, error) {
	descriptions := make([]models.StandardDescription, 0)
	query := s.DB.WithContext(ctx).Model(&models.StandardDescription{})
	if issueType = strings.TrimSpace(issueType); issueType != "" {
		query = query.Where("issue_type = ?", issueType)
	}
	if err := query.Order("id").Find(&descriptions).Error; err != nil {
		return nil, fmt.Errorf("find standard descriptions: %w", err)
	}
	return descriptions, nil
}

// 8 CreateStandardDescription 新增预定义描述
func (s *ComplaintService) CreateStandardDescription(ctx context.Context, issueType, description string) (*models.StandardDescription, error) {
	issueType = strings.TrimSpace(issueType)
	description = strings.TrimSpace(description)
	if issueType == "" || description == "" {
		return nil, invalidData("issueType and description are required")
	}

	d := &models.StandardDescription{IssueType: issueType, Description: description}
	if err := s.DB.WithContext(ctx).Create(d).Error; err != nil {
		return nil, fmt.Errorf("create standard description: %w", err)
	}
	return d, nil
}

// applyDescription 只覆盖与类型匹配的描述字段
func (s *ComplaintService) applyDescription(ctx context.Context, c *models.Complaint, t models.ComplaintType, standard *uint, custom string) error {
	switch t {
	case models.ComplaintTypeStandard:
		if standard == nil || *standard == 0 {
			return invalidData("descriptionStandard is required for standard complaints")
		}
		var count int64
		if err := s.DB.WithContext(ctx).Model(&models.StandardDescription{}).Where("id = ?", *standard).Count(&count).Error; err != nil {
			return fmt.Errorf("check standard description: %w", err)
		}
		if count == 0 {
			return invalidData("descriptionStandard does not exist")
		}
		id := *standard
		c.DescriptionStandard = &id
	case models.ComplaintTypeCustom:
		custom = strings.TrimSpace(custom)
		if custom == "" {
			return invalidData("descriptionCustom is required for custom complaints")
		}
		c.DescriptionCustom = &custom
	}
	return nil
}

// checkAssignee 被指派人必须是已存在的物业人员
func (s *ComplaintService) checkAssignee(ctx context.Context, email string) error {
	var count int64
	err := s.DB.WithContext(ctx).Model(&models.User{}).
		Where("email = ? AND user_role = ?", email, models.RoleStaff).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("check assignee: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("%w: %q", ErrAssigneeNotFound, email)
	}
	return nil
}

func (s *ComplaintService) findByID(ctx context.Context, id string) (*models.Complaint, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrComplaintNotFound
	}

	var complaint models.Complaint
	if err := s.DB.WithContext(ctx).First(&complaint, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, fmt.Errorf("find complaint %s: %w", id, err)
	}
	return &complaint, nil
}

func (s *ComplaintService) reload(ctx context.Context, id string, scope func(*gorm.DB) *gorm.DB) (*models.Complaint, error) {
	var complaint models.Complaint
	err := scope(s.DB.WithContext(ctx)).First(&complaint, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, fmt.Errorf("reload complaint %s: %w", id, err)
	}
	return &complaint, nil
}

func (s *ComplaintService) save(ctx context.Context, c *models.Complaint) error {
	if err := s.DB.WithContext(ctx).Omit(clause.Associations).Save(c).Error; err != nil {
		return fmt.Errorf("save complaint %s: %w", c.ID, err)
	}
	return nil
}

// freshOTP 生成与上一次不同的验证码
func (s *ComplaintService) freshOTP(previous *string) (string, error) {
	for i := 0; i < maxOTPAttempts; i++ {
		otp, err := s.OTP.GenerateOTP()
		if err != nil {
			return "", fmt.Errorf("generate otp: %w", err)
		}
		if previous == nil || otp != *previous {
			return otp, nil
		}
	}
	return "", errors.New("generate otp: could not produce a new code")
}

func selectProfile(db *gorm.DB) *gorm.DB {
	return db.Select(models.ProfileColumns)
}

func selectDescription(db *gorm.DB) *gorm.DB {
	return db.Select("id", "description")
}

// dropStaleDescription custom 类型的投诉可能仍引用旧的标准描述，不对外展开
func dropStaleDescription(c *models.Complaint) {
	if c.ComplaintType != models.ComplaintTypeStandard {
		c.StandardComplaintDescriptionInfo = nil
	}
}

func invalidData(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidComplaintData, reason)
}
