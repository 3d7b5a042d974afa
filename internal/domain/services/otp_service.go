package services

import (
	"github.com/ajju-1209/hostel-management/internal/infrastructure/config"
	"github.com/ajju-1209/hostel-management/utils"
)

const defaultOTPLength = 6

// InterfaceOTPService defines the one-time code generator
type InterfaceOTPService interface {
	GenerateOTP() (string, error)
}

// OTPService 生成指派时交给住户的一次性数字验证码
type OTPService struct {
	Length int
}

// NewOTPService 创建一个新的OTP服务
func NewOTPService(cfg *config.Config) InterfaceOTPService {
	length := defaultOTPLength
	if cfg != nil && cfg.OTPLength > 0 {
		length = cfg.OTPLength
	}
	return &OTPService{Length: length}
}

// GenerateOTP 生成一个新的验证码
func (s *OTPService) GenerateOTP() (string, error) {
	return utils.RandomDigits(s.Length)
}
