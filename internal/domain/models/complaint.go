package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComplaintType 投诉描述类型
type ComplaintType string

const (
	ComplaintTypeStandard ComplaintType = "standard"
	ComplaintTypeCustom   ComplaintType = "custom"
)

// ComplaintStatus 投诉处理状态
type ComplaintStatus string

const (
	ComplaintStatusPending  ComplaintStatus = "pending"
	ComplaintStatusAssigned ComplaintStatus = "assigned"
	ComplaintStatusSolved   ComplaintStatus = "solved"
	ComplaintStatusDeferred ComplaintStatus = "deferred"
)

var (
	ErrUnknownComplaintType   = errors.New("unknown complaint type")
	ErrUnknownComplaintStatus = errors.New("unknown complaint status")
)

// ParseComplaintType 只接受 standard / custom
func ParseComplaintType(s string) (ComplaintType, error) {
	switch t := ComplaintType(s); t {
	case ComplaintTypeStandard, ComplaintTypeCustom:
		return t, nil
	}
	return "", ErrUnknownComplaintType
}

// ParseComplaintStatus 只接受四种已定义状态
func ParseComplaintStatus(s string) (ComplaintStatus, error) {
	switch st := ComplaintStatus(s); st {
	case ComplaintStatusPending, ComplaintStatusAssigned, ComplaintStatusSolved, ComplaintStatusDeferred:
		return st, nil
	}
	return "", ErrUnknownComplaintStatus
}

// IsClosed solved 与 deferred 之后不再允许任何流转
func (s ComplaintStatus) IsClosed() bool {
	return s == ComplaintStatusSolved || s == ComplaintStatusDeferred
}

// Complaint represents a complaint raised by a resident
type Complaint struct {
	ID                  string          `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedBy           string          `gorm:"type:varchar(100);not null;index" json:"createdBy"`
	CreatedOnDate       time.Time       `json:"createdOnDate"`
	ComplaintType       ComplaintType   `gorm:"type:varchar(20);not null" json:"complaintType"`
	IssueType           string          `gorm:"type:varchar(50);not null;index" json:"issueType"`
	DescriptionStandard *uint           `json:"descriptionStandard,omitempty"`           // standard 类型时使用
	DescriptionCustom   *string         `gorm:"type:text" json:"descriptionCustom,omitempty"` // custom 类型时使用
	Status              ComplaintStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	AssignedTo          *string         `gorm:"type:varchar(100)" json:"assignedTo,omitempty"`
	AssignedBy          *string         `gorm:"type:varchar(100)" json:"assignedBy,omitempty"`
	AssignedOnDate      *time.Time      `json:"assignedOnDate,omitempty"`
	OTPAssigned         *string         `gorm:"column:otp_assigned;type:varchar(10)" json:"-"` // 只在管理员视图中返回
	UpdatedAt           time.Time       `json:"updatedAt"`

	// Relations - 只在查询时展开
	ComplaintCreatorInfo             *User                `gorm:"foreignKey:CreatedBy;references:Email" json:"complaintCreatorInfo,omitempty"`
	AssignedPersonInfo               *User                `gorm:"foreignKey:AssignedTo;references:Email" json:"assignedPersonInfo,omitempty"`
	StandardComplaintDescriptionInfo *StandardDescription `gorm:"foreignKey:DescriptionStandard" json:"standardComplaintDescriptionInfo,omitempty"`
}

// BeforeCreate 在创建前生成UUID主键
func (c *Complaint) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
