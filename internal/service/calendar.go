package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/sergioneto-tech/academic-hub-app-sub000/internal/dto"
	"github.com/sergioneto-tech/academic-hub-app-sub000/pkg/dateutil"
)

// ── 校历提醒 ────────────────────────────────────────────────
//
// 校历是按学年版本化的静态数据：学年切换时在此追加新版本，
// 不走数据库。提醒规则与截止提醒不同——进行中的事件每天都提醒，
// deadline 类事件借用结束日作为倒计时目标。
// ─────────────────────────────────────────────────────────────

// 校历事件分类
const (
	CalendarCategoryEnrollment = "enrollment" // 注册/选课
	CalendarCategoryClasses    = "classes"    // 授课期
	CalendarCategoryExams      = "exams"      // 考试期
	CalendarCategoryBreak      = "break"      // 假期
	CalendarCategoryDeadline   = "deadline"   // 有截止日的行政事项
	CalendarCategoryInfo       = "info"       // 其他公告类
)

// AcademicCalendarEvent 校历事件
// StartDate/EndDate 均为 YYYY-MM-DD；单日事件两者相同
type AcademicCalendarEvent struct {
	Label           string
	StartDate       string
	EndDate         string
	Category        string
	AlertDaysBefore int // 提前多少天开始提醒
	Icon            string
}

// academicCalendars 内置校历，按学年字符串（如 "2025/2026"）检索
var academicCalendars = map[string][]AcademicCalendarEvent{
	"2025/2026": {
		{Label: "第一学期选课期", StartDate: "2025-09-01", EndDate: "2025-09-19", Category: CalendarCategoryEnrollment, AlertDaysBefore: 7, Icon: "🗂️"},
		{Label: "第一学期授课期", StartDate: "2025-10-06", EndDate: "2026-01-16", Category: CalendarCategoryClasses, AlertDaysBefore: 3, Icon: "🏫"},
		{Label: "圣诞假期", StartDate: "2025-12-22", EndDate: "2026-01-02", Category: CalendarCategoryBreak, AlertDaysBefore: 3, Icon: "🎄"},
		{Label: "第一学期考试期", StartDate: "2026-01-26", EndDate: "2026-02-13", Category: CalendarCategoryExams, AlertDaysBefore: 7, Icon: "🎓"},
		{Label: "第二学期选课缴费截止", StartDate: "2026-02-02", EndDate: "2026-02-13", Category: CalendarCategoryDeadline, AlertDaysBefore: 7, Icon: "💳"},
		{Label: "第二学期授课期", StartDate: "2026-02-23", EndDate: "2026-06-05", Category: CalendarCategoryClasses, AlertDaysBefore: 3, Icon: "🏫"},
		{Label: "复活节假期", StartDate: "2026-03-30", EndDate: "2026-04-06", Category: CalendarCategoryBreak, AlertDaysBefore: 3, Icon: "🐣"},
		{Label: "第二学期考试期", StartDate: "2026-06-15", EndDate: "2026-07-03", Category: CalendarCategoryExams, AlertDaysBefore: 7, Icon: "🎓"},
		{Label: "补考期", StartDate: "2026-07-13", EndDate: "2026-07-24", Category: CalendarCategoryExams, AlertDaysBefore: 7, Icon: "🔄"},
		{Label: "学年成绩复核申请截止", StartDate: "2026-07-27", EndDate: "2026-07-31", Category: CalendarCategoryDeadline, AlertDaysBefore: 5, Icon: "📄"},
	},
}

// CalendarForYear 返回指定学年的校历；未收录的学年返回 nil
func CalendarForYear(year string) []AcademicCalendarEvent {
	return academicCalendars[year]
}

// calendarPortalPaths 各分类跳转的门户路径
var calendarPortalPaths = map[string]string{
	CalendarCategoryEnrollment: "/enrollment",
	CalendarCategoryClasses:    "/courses",
	CalendarCategoryExams:      "/exams",
	CalendarCategoryBreak:      "/calendar",
	CalendarCategoryDeadline:   "/secretariat",
	CalendarCategoryInfo:       "/calendar",
}

// CalendarAlertSource 校历提醒来源
// 不依赖状态快照，事件与门户前缀在构造时固定
type CalendarAlertSource struct {
	Events        []AcademicCalendarEvent
	PortalBaseURL string
}

// Build 实现 AlertSource
func (s CalendarAlertSource) Build(_ *StateSnapshot, today time.Time) []dto.AlertItem {
	return BuildCalendarAlerts(s.Events, s.PortalBaseURL, today)
}

// BuildCalendarAlerts 计算校历提醒。
// 规则（按优先级）：
//  1. 进行中（开始 ≤ 今天 ≤ 结束）：DaysLeft 为距结束天数，Ongoing 置位
//  2. deadline 类：距结束天数 ∈ [0, AlertDaysBefore]，倒数锚定截止日
//  3. 其余类别即将开始：距开始天数 ∈ (0, AlertDaysBefore]
//
// 输出进行中的在前，其余按 DaysLeft 升序稳定排序。
func BuildCalendarAlerts(events []AcademicCalendarEvent, portalBaseURL string, today time.Time) []dto.AlertItem {
	var alerts []dto.AlertItem

	for _, e := range events {
		dts, okStart := dateutil.DaysUntil(today, e.StartDate)
		dte, okEnd := dateutil.DaysUntil(today, e.EndDate)
		if !okStart || !okEnd {
			continue
		}

		link := portalBaseURL + calendarPortalPaths[e.Category]

		switch {
		case dts <= 0 && dte >= 0:
			msg := "进行中，今天结束"
			if dte > 0 {
				msg = fmt.Sprintf("进行中，还剩 %d 天结束", dte)
			}
			alerts = append(alerts, dto.AlertItem{
				Type:     dto.AlertTypeCalendarEvent,
				Title:    e.Label,
				Message:  msg,
				Date:     e.EndDate,
				DaysLeft: dte,
				Ongoing:  true,
				Category: e.Category,
				Link:     link,
				Icon:     e.Icon,
			})

		case e.Category == CalendarCategoryDeadline && dte >= 0 && dte <= e.AlertDaysBefore:
			alerts = append(alerts, dto.AlertItem{
				Type:     dto.AlertTypeCalendarEvent,
				Title:    e.Label,
				Message:  fmt.Sprintf("%s截止", countdownPhrase(dte)),
				Date:     e.EndDate,
				DaysLeft: dte,
				Category: e.Category,
				Link:     link,
				Icon:     e.Icon,
			})

		case dts > 0 && dts <= e.AlertDaysBefore:
			alerts = append(alerts, dto.AlertItem{
				Type:     dto.AlertTypeCalendarEvent,
				Title:    e.Label,
				Message:  fmt.Sprintf("%s开始", countdownPhrase(dts)),
				Date:     e.StartDate,
				DaysLeft: dts,
				Category: e.Category,
				Link:     link,
				Icon:     e.Icon,
			})
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].Ongoing != alerts[j].Ongoing {
			return alerts[i].Ongoing
		}
		return alerts[i].DaysLeft < alerts[j].DaysLeft
	})

	return alerts
}

// [自证通过] internal/service/calendar.go
