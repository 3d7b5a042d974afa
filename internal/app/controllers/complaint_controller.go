package controllers

import (
	"errors"
	"time"

	"github.com/ajju-1209/hostel-management/internal/app/middleware"
	"github.com/ajju-1209/hostel-management/internal/domain/models"
	"github.com/ajju-1209/hostel-management/internal/domain/services"
	"github.com/ajju-1209/hostel-management/internal/domain/services/container"
	"github.com/ajju-1209/hostel-management/internal/error/code"
	"github.com/ajju-1209/hostel-management/internal/error/response"
	Logger "github.com/ajju-1209/hostel-management/pkg/logger"

	"github.com/gin-gonic/gin"
)

// InterfaceComplaintController 定义投诉控制器接口
type InterfaceComplaintController interface {
	CreateComplaint()
	DeleteComplaint()
	GetForResident()
	GetForAdmin()
	UpdateAdmin()
	UpdateResident()
	GetStandardDescriptions()
}

// ComplaintController 处理投诉相关的请求
type ComplaintController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewComplaintController 创建一个新的投诉控制器
func NewComplaintController(ctx *gin.Context, container *container.ServiceContainer) *ComplaintController {
	return &ComplaintController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateComplaintRequest 表示创建投诉请求
type CreateComplaintRequest struct {
	ComplaintType       string `json:"complaintType" binding:"required" example:"custom"`
	IssueType           string `json:"issueType" binding:"required" example:"plumbing"`
	DescriptionStandard *uint  `json:"descriptionStandard,omitempty" example:"1"`
	DescriptionCustom   string `json:"descriptionCustom,omitempty" example:"leak"`
}

// AdminUpdateRequest 表示管理员更新请求
type AdminUpdateRequest struct {
	ID         string `json:"id" binding:"required"`
	Status     string `json:"status" binding:"required" example:"assigned"`
	AssignedTo string `json:"assignedTo,omitempty" example:"staff@x.com"`
}

// ResidentUpdateRequest 表示住户更新请求
type ResidentUpdateRequest struct {
	ID                  string `json:"id" binding:"required"`
	IssueType           string `json:"issueType" binding:"required"`
	ComplaintType       string `json:"complaintType" binding:"required"`
	DescriptionStandard *uint  `json:"descriptionStandard,omitempty"`
	DescriptionCustom   string `json:"descriptionCustom,omitempty"`
}

// ComplaintView 创建成功后返回的投诉
type ComplaintView struct {
	ID                  string                 `json:"id"`
	CreatedBy           string                 `json:"createdBy"`
	CreatedOnDate       time.Time              `json:"createdOnDate"`
	ComplaintType       models.ComplaintType   `json:"complaintType"`
	IssueType           string                 `json:"issueType"`
	DescriptionStandard *uint                  `json:"descriptionStandard,omitempty"`
	DescriptionCustom   *string                `json:"descriptionCustom,omitempty"`
	Status              models.ComplaintStatus `json:"status"`
}

// AdminComplaintView 管理员查看的投诉，包含展开的关联信息
type AdminComplaintView struct {
	ID                               string                      `json:"id"`
	CreatedBy                        string                      `json:"createdBy"`
	ComplaintCreatorInfo             *models.User                `json:"complaintCreatorInfo,omitempty"`
	CreatedOnDate                    time.Time                   `json:"createdOnDate"`
	ComplaintType                    models.ComplaintType        `json:"complaintType"`
	IssueType                        string                      `json:"issueType"`
	AssignedTo                       *string                     `json:"assignedTo,omitempty"`
	AssignedPersonInfo               *models.User                `json:"assignedPersonInfo,omitempty"`
	AssignedBy                       *string                     `json:"assignedBy,omitempty"`
	AssignedOnDate                   *time.Time                  `json:"assignedOnDate,omitempty"`
	Status                           models.ComplaintStatus      `json:"status"`
	DescriptionStandard              *uint                       `json:"descriptionStandard,omitempty"`
	DescriptionCustom                *string                     `json:"descriptionCustom,omitempty"`
	OTPAssigned                      *string                     `json:"otpAssigned,omitempty"`
	StandardComplaintDescriptionInfo *models.StandardDescription `json:"standardComplaintDescriptionInfo,omitempty"`
}

// AssignedView 指派后的返回
type AssignedView struct {
	Status             models.ComplaintStatus `json:"status"`
	AssignedPersonInfo *models.User           `json:"assignedPersonInfo,omitempty"`
	AssignedBy         *string                `json:"assignedBy,omitempty"`
}

// SolvedView 结案后的返回
type SolvedView struct {
	Status models.ComplaintStatus `json:"status"`
}

// ResidentUpdateView 住户修改后的返回
type ResidentUpdateView struct {
	IssueType                        string                      `json:"issueType"`
	ComplaintType                    models.ComplaintType        `json:"complaintType"`
	DescriptionCustom                *string                     `json:"descriptionCustom,omitempty"`
	DescriptionStandard              *uint                       `json:"descriptionStandard,omitempty"`
	StandardComplaintDescriptionInfo *models.StandardDescription `json:"standardComplaintDescriptionInfo,omitempty"`
}

// HandleComplaintFunc 返回一个处理投诉请求的Gin处理函数
func HandleComplaintFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewComplaintController(ctx, container)

		switch method {
		case "createComplaint":
			controller.CreateComplaint()
		case "deleteComplaint":
			controller.DeleteComplaint()
		case "getForResident":
			controller.GetForResident()
		case "getForAdmin":
			controller.GetForAdmin()
		case "updateAdmin":
			controller.UpdateAdmin()
		case "updateResident":
			controller.UpdateResident()
		case "getStandardDescriptions":
			controller.GetStandardDescriptions()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// CreateComplaint 创建投诉
// @Summary      Create complaint
// @Tags         Complaint
// @Accept       json
// @Produce      json
// @Param        request body CreateComplaintRequest true "complaint"
// @Security     BearerAuth
// @Success      201  {object}  response.Response{data=ComplaintView}
// @Failure      400  {object}  response.Response
// @Router       /complaints/create [post]
func (c *ComplaintController) CreateComplaint() {
	caller, ok := middleware.CallerFrom(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx, "")
		return
	}

	var req CreateComplaintRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrComplaintInvalidData, nil)
		return
	}

	complaint, err := c.Container.Complaints().CreateComplaint(c.Ctx.Request.Context(), caller, services.CreateComplaintInput{
		ComplaintType:       req.ComplaintType,
		IssueType:           req.IssueType,
		DescriptionStandard: req.DescriptionStandard,
		DescriptionCustom:   req.DescriptionCustom,
	})
	if err != nil {
		c.fail(err)
		return
	}

	Logger.Info("complaint %s created by %s", complaint.ID, caller.Email)
	response.Created(c.Ctx, ComplaintView{
		ID:                  complaint.ID,
		CreatedBy:           complaint.CreatedBy,
		CreatedOnDate:       complaint.CreatedOnDate,
		ComplaintType:       complaint.ComplaintType,
		IssueType:           complaint.IssueType,
		DescriptionStandard: complaint.DescriptionStandard,
		DescriptionCustom:   complaint.DescriptionCustom,
		Status:              complaint.Status,
	})
}

// DeleteComplaint 撤销投诉，状态改为 deferred
// @Summary      Withdraw complaint
// @Tags         Complaint
// @Produce      json
// @Param        id path string true "complaint id"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /complaints/delete/{id} [delete]
// @Router       /complaints/delete/{id} [post]
func (c *ComplaintController) DeleteComplaint() {
	id := c.Ctx.Param("id")

	complaint, err := c.Container.Complaints().DeferComplaint(c.Ctx.Request.Context(), id)
	if err != nil {
		c.fail(err)
		return
	}

	response.SuccessWithMessage(c.Ctx, "Complaint Deleted", gin.H{
		"id":     complaint.ID,
		"status": complaint.Status,
	})
}

// GetForResident 住户按条件查询投诉
// @Summary      List complaints
// @Tags         Complaint
// @Produce      json
// @Param        issueType query []string false "issue types"
// @Param        status query []string false "statuses"
// @Security     BearerAuth
// @Success      201  {object}  response.Response{data=[]models.Complaint}
// @Failure      400  {object}  response.Response
// @Router       /complaints/getByIssue [get]
func (c *ComplaintController) GetForResident() {
	filter, ok := c.filter()
	if !ok {
		return
	}

	complaints, err := c.Container.Complaints().GetForResident(c.Ctx.Request.Context(), filter)
	if err != nil {
		c.fail(err)
		return
	}

	response.Created(c.Ctx, complaints)
}

// GetForAdmin 管理员按条件查询投诉
// @Summary      List complaints with expansions
// @Tags         Complaint
// @Produce      json
// @Param        issueType query []string false "issue types"
// @Param        status query []string false "statuses"
// @Security     BearerAuth
// @Success      201  {object}  response.Response{data=[]AdminComplaintView}
// @Failure      400  {object}  response.Response
// @Router       /complaints/admin/get [get]
func (c *ComplaintController) GetForAdmin() {
	filter, ok := c.filter()
	if !ok {
		return
	}

	complaints, err := c.Container.Complaints().GetForAdmin(c.Ctx.Request.Context(), filter)
	if err != nil {
		c.fail(err)
		return
	}

	views := make([]AdminComplaintView, 0, len(complaints))
	for i := range complaints {
		views = append(views, adminView(&complaints[i]))
	}
	response.Created(c.Ctx, views)
}

// UpdateAdmin 管理员指派或结案
// @Summary      Assign or solve complaint
// @Tags         Complaint
// @Accept       json
// @Produce      json
// @Param        request body AdminUpdateRequest true "update"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /complaints/admin/update [post]
func (c *ComplaintController) UpdateAdmin() {
	caller, ok := middleware.CallerFrom(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx, "")
		return
	}

	var req AdminUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrComplaintInvalidData, nil)
		return
	}

	complaint, err := c.Container.Complaints().UpdateByAdmin(c.Ctx.Request.Context(), caller, services.AdminUpdateInput{
		ID:         req.ID,
		Status:     req.Status,
		AssignedTo: req.AssignedTo,
	})
	if err != nil {
		c.fail(err)
		return
	}

	if complaint.Status == models.ComplaintStatusAssigned {
		Logger.Info("complaint %s assigned to %s by %s", complaint.ID, req.AssignedTo, caller.Email)
		response.Success(c.Ctx, AssignedView{
			Status:             complaint.Status,
			AssignedPersonInfo: complaint.AssignedPersonInfo,
			AssignedBy:         complaint.AssignedBy,
		})
		return
	}
	response.Success(c.Ctx, SolvedView{Status: complaint.Status})
}

// UpdateResident 住户修改投诉
// @Summary      Edit complaint
// @Tags         Complaint
// @Accept       json
// @Produce      json
// @Param        request body ResidentUpdateRequest true "update"
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=ResidentUpdateView}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /complaints/resident/update [post]
func (c *ComplaintController) UpdateResident() {
	var req ResidentUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrComplaintInvalidData, nil)
		return
	}

	complaint, err := c.Container.Complaints().UpdateByResident(c.Ctx.Request.Context(), services.ResidentUpdateInput{
		ID:                  req.ID,
		IssueType:           req.IssueType,
		ComplaintType:       req.ComplaintType,
		DescriptionStandard: req.DescriptionStandard,
		DescriptionCustom:   req.DescriptionCustom,
	})
	if err != nil {
		c.fail(err)
		return
	}

	response.Success(c.Ctx, ResidentUpdateView{
		IssueType:                        complaint.IssueType,
		ComplaintType:                    complaint.ComplaintType,
		DescriptionCustom:                complaint.DescriptionCustom,
		DescriptionStandard:              complaint.DescriptionStandard,
		StandardComplaintDescriptionInfo: complaint.StandardComplaintDescriptionInfo,
	})
}

// GetStandardDescriptions 获取预定义的投诉描述
// @Summary      List standard descriptions
// @Tags         Complaint
// @Produce      json
// @Param        issueType query string false "issue type"
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]models.StandardDescription}
// @Router       /complaints/descriptions [get]
func (c *ComplaintController) GetStandardDescriptions() {
	descriptions, err := c.Container.Complaints().ListStandardDescriptions(c.Ctx.Request.Context(), c.Ctx.Query("issueType"))
	if err != nil {
		c.fail(err)
		return
	}
	response.Success(c.Ctx, descriptions)
}

// filter 读取 issueType / status 查询参数，支持 key=a&key=b 和 key[]=a 两种写法
func (c *ComplaintController) filter() (services.ComplaintFilter, bool) {
	filter, err := services.NewComplaintFilter(c.queryList("issueType"), c.queryList("status"))
	if err != nil {
		c.fail(err)
		return services.ComplaintFilter{}, false
	}
	return filter, true
}

func (c *ComplaintController) queryList(key string) []string {
	return append(c.Ctx.QueryArray(key), c.Ctx.QueryArray(key+"[]")...)
}

// fail 把服务层错误转换为响应
func (c *ComplaintController) fail(err error) {
	switch {
	case errors.Is(err, services.ErrComplaintNotFound):
		response.Fail(c.Ctx, code.ErrComplaintNotFound, nil)
	case errors.Is(err, services.ErrInvalidComplaintData):
		response.FailWithMessage(c.Ctx, code.ErrComplaintInvalidData, code.GetMessage(code.ErrComplaintInvalidData), gin.H{"reason": err.Error()})
	case errors.Is(err, services.ErrUnsupportedStatus):
		response.FailWithMessage(c.Ctx, code.ErrComplaintUnsupportedStatus, err.Error(), nil)
	case errors.Is(err, services.ErrTransitionNotAllowed):
		response.FailWithMessage(c.Ctx, code.ErrComplaintTransition, err.Error(), nil)
	case errors.Is(err, services.ErrAssigneeRequired):
		response.Fail(c.Ctx, code.ErrComplaintAssigneeRequired, nil)
	case errors.Is(err, services.ErrAssigneeNotFound):
		response.FailWithMessage(c.Ctx, code.ErrComplaintAssigneeNotFound, err.Error(), nil)
	default:
		Logger.Error("complaint request %s %s failed: %v", c.Ctx.Request.Method, c.Ctx.FullPath(), err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
	}
}

func adminView(complaint *models.Complaint) AdminComplaintView {
	return AdminComplaintView{
		ID:                               complaint.ID,
		CreatedBy:                        complaint.CreatedBy,
		ComplaintCreatorInfo:             complaint.ComplaintCreatorInfo,
		CreatedOnDate:                    complaint.CreatedOnDate,
		ComplaintType:                    complaint.ComplaintType,
		IssueType:                        complaint.IssueType,
		AssignedTo:                       complaint.AssignedTo,
		AssignedPersonInfo:               complaint.AssignedPersonInfo,
		AssignedBy:                       complaint.AssignedBy,
		AssignedOnDate:                   complaint.AssignedOnDate,
		Status:                           complaint.Status,
		DescriptionStandard:              complaint.DescriptionStandard,
		DescriptionCustom:                complaint.DescriptionCustom,
		OTPAssigned:                      complaint.OTPAssigned,
		StandardComplaintDescriptionInfo: complaint.StandardComplaintDescriptionInfo,
	}
}
