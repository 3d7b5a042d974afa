package models

import "time"

// 用户角色
const (
	RoleResident = "resident"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
)

// ProfileColumns 展开用户信息时查询的列，email 同时是关联键
var ProfileColumns = []string{"email", "first_name", "last_name", "phone_number", "address", "user_role"}

// User represents a resident, a staff member or an administrator of the hostel
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id,omitempty"`
	Email       string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	FirstName   string    `gorm:"type:varchar(50)" json:"firstName"`
	LastName    string    `gorm:"type:varchar(50)" json:"lastName"`
	PhoneNumber string    `gorm:"type:varchar(20)" json:"phoneNumber"`
	Address     string    `gorm:"type:varchar(200)" json:"address"`
	UserRole    string    `gorm:"type:varchar(20);default:'resident'" json:"userRole"`
	Password    string    `gorm:"type:varchar(100);not null" json:"-"` // 不在JSON中暴露密码
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// IsValidRole 判断角色是否合法
func IsValidRole(role string) bool {
	switch role {
	case RoleResident, RoleStaff, RoleAdmin:
		return true
	}
	return false
}
