package dto

// ── 提醒模块 DTO ──

// 提醒类型
const (
	AlertTypeWindowOpen    = "assessment_window_open"    // e-Fólio 提交窗口开放
	AlertTypeWindowClosing = "assessment_window_closing" // e-Fólio 提交窗口截止
	AlertTypeExam          = "exam"                      // 期末考试
	AlertTypeResit         = "resit"                     // 补考
	AlertTypeStudyBlock    = "study_block"               // 学习计划块开始
	AlertTypeCalendarEvent = "calendar_event"            // 校历事件
)

// AlertItem 单条提醒
// DaysLeft：进行中的校历事件为距结束天数，其余为距目标日期天数
type AlertItem struct {
	Type        string `json:"type"`
	CourseID    string `json:"course_id,omitempty"`
	CourseCode  string `json:"course_code,omitempty"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	Date        string `json:"date"` // YYYY-MM-DD
	DaysLeft    int    `json:"days_left"`
	Ongoing     bool   `json:"ongoing"`
	Category    string `json:"category,omitempty"` // 校历事件分类
	Link        string `json:"link,omitempty"`     // 校历事件对应的门户页面
	Icon        string `json:"icon,omitempty"`
}

// AlertListResponse 提醒列表响应
type AlertListResponse struct {
	List  []AlertItem `json:"list"`
	Today string      `json:"today"` // 计算基准日 YYYY-MM-DD
}

// [自证通过] internal/dto/alert.go
