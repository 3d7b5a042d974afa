package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:          "success",
	ErrUnknown:          "unknown error",
	ErrBind:             "invalid request parameters",
	ErrValidation:       "request validation failed",
	ErrTokenInvalid:     "invalid authentication token",
	ErrPermissionDenied: "insufficient permissions",

	// 用户相关错误码
	ErrUserNotFound:          "user not found",
	ErrUserPasswordIncorrect: "invalid email or password",

	// 数据库相关错误码
	ErrDatabase:       "database error",
	ErrRecordNotFound: "record not found",

	// 投诉相关错误码
	ErrComplaintNotFound:          "No complaint found",
	ErrComplaintInvalidData:       "Invalid Data",
	ErrComplaintUnsupportedStatus: "unsupported complaint status",
	ErrComplaintTransition:        "complaint status transition not allowed",
	ErrComplaintAssigneeRequired:  "assignedTo is required when assigning a complaint",
	ErrComplaintAssigneeNotFound:  "assignedTo must be an existing staff member",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:          StatusOK,
	ErrUnknown:          StatusInternalServerError,
	ErrBind:             StatusBadRequest,
	ErrValidation:       StatusBadRequest,
	ErrTokenInvalid:     StatusUnauthorized,
	ErrPermissionDenied: StatusForbidden,

	// 用户相关错误码
	ErrUserNotFound:          StatusNotFound,
	ErrUserPasswordIncorrect: StatusUnauthorized,

	// 数据库相关错误码
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,

	// 投诉相关错误码
	ErrComplaintNotFound:          StatusNotFound,
	ErrComplaintInvalidData:       StatusBadRequest,
	ErrComplaintUnsupportedStatus: StatusBadRequest,
	ErrComplaintTransition:        StatusBadRequest,
	ErrComplaintAssigneeRequired:  StatusBadRequest,
	ErrComplaintAssigneeNotFound:  StatusBadRequest,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "unknown error"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
