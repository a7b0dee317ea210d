package service

import (
	"testing"
	"time"

	"github.com/sergioneto-tech/academic-hub-app-sub000/internal/dto"
	"github.com/sergioneto-tech/academic-hub-app-sub000/internal/model"
)

func strPtr(s string) *string { return &s }

// testToday 统一的测试基准日：2026-01-10（周六）
func testToday() time.Time {
	return time.Date(2026, 1, 10, 15, 30, 0, 0, time.Local)
}

func activeCourse(id, code string) model.Course {
	return model.Course{CourseID: id, Code: code, Name: code + " 课程", IsActive: true}
}

func TestBuildDeadlineAlerts_EfolioWindows(t *testing.T) {
	snap := &StateSnapshot{
		Courses: []model.Course{activeCourse("c1", "21093")},
		Assessments: []model.Assessment{
			{CourseID: "c1", Type: model.AssessmentTypeEfolio, Name: "e-Fólio A",
				StartDate: strPtr("2026-01-11"), EndDate: strPtr("2026-01-18")},
		},
	}

	alerts := BuildDeadlineAlerts(snap, testToday())
	if len(alerts) != 1 {
		t.Fatalf("期望 1 条提醒, 得到 %d", len(alerts))
	}
	if alerts[0].Type != dto.AlertTypeWindowOpen {
		t.Errorf("期望窗口开放提醒, 得到 %s", alerts[0].Type)
	}
	if alerts[0].DaysLeft != 1 {
		t.Errorf("期望 DaysLeft=1, 得到 %d", alerts[0].DaysLeft)
	}
	if alerts[0].Message != "e-Fólio A 提交窗口明天开放" {
		t.Errorf("措辞不符: %s", alerts[0].Message)
	}
}

func TestBuildDeadlineAlerts_ClosingToday(t *testing.T) {
	snap := &StateSnapshot{
		Courses: []model.Course{activeCourse("c1", "21093")},
		Assessments: []model.Assessment{
			{CourseID: "c1", Type: model.AssessmentTypeEfolio, Name: "e-Fólio B",
				StartDate: strPtr("2026-01-03"), EndDate: strPtr("2026-01-10")},
		},
	}

	alerts := BuildDeadlineAlerts(snap, testToday())
	if len(alerts) != 1 {
		t.Fatalf("期望 1 条提醒, 得到 %d", len(alerts))
	}
	if alerts[0].Type != dto.AlertTypeWindowClosing || alerts[0].DaysLeft != 0 {
		t.Errorf("期望今天截止的关闭提醒, 得到 %+v", alerts[0])
	}
}

func TestBuildDeadlineAlerts_ExamWindows(t *testing.T) {
	cases := []struct {
		date string
		want int // 期望提醒条数
	}{
		{"2026-01-10", 1}, // 今天
		{"2026-01-11", 1}, // 明天
		{"2026-01-12", 0}, // 2 天后不在窗口内
		{"2026-01-17", 1}, // 恰好 7 天
		{"2026-01-16", 0}, // 6 天后不提醒
		{"2026-01-09", 0}, // 已过期
	}

	for _, c := range cases {
		snap := &StateSnapshot{
			Courses: []model.Course{activeCourse("c1", "21093")},
			Assessments: []model.Assessment{
				{CourseID: "c1", Type: model.AssessmentTypeExam, Name: "期末考试", Date: strPtr(c.date)},
			},
		}
		alerts := BuildDeadlineAlerts(snap, testToday())
		if len(alerts) != c.want {
			t.Errorf("考试日期 %s: 期望 %d 条提醒, 得到 %d", c.date, c.want, len(alerts))
		}
	}
}

func TestBuildDeadlineAlerts_ResitType(t *testing.T) {
	snap := &StateSnapshot{
		Courses: []model.Course{activeCourse("c1", "21093")},
		Assessments: []model.Assessment{
			{CourseID: "c1", Type: model.AssessmentTypeResit, Name: "补考", Date: strPtr("2026-01-17")},
		},
	}

	alerts := BuildDeadlineAlerts(snap, testToday())
	if len(alerts) != 1 || alerts[0].Type != dto.AlertTypeResit {
		t.Fatalf("期望 1 条补考提醒, 得到 %+v", alerts)
	}
	if alerts[0].Message != "补考7 天后举行" {
		t.Errorf("措辞不符: %s", alerts[0].Message)
	}
}

func TestBuildDeadlineAlerts_StudyBlocks(t *testing.T) {
	snap := &StateSnapshot{
		Courses: []model.Course{activeCourse("c1", "21093")},
		StudyBlocks: []model.StudyBlock{
			{CourseID: "c1", Title: "阅读第 3 章", Status: model.StudyBlockStatusTodo, StartDate: strPtr("2026-01-13")},
			{CourseID: "c1", Title: "已完成的复习", Status: model.StudyBlockStatusDone, StartDate: strPtr("2026-01-13")},
			{CourseID: "c1", Title: "太远的计划", Status: model.StudyBlockStatusTodo, StartDate: strPtr("2026-01-14")},
		},
	}

	alerts := BuildDeadlineAlerts(snap, testToday())
	if len(alerts) != 1 {
		t.Fatalf("期望仅 1 条学习计划提醒, 得到 %d", len(alerts))
	}
	if alerts[0].Type != dto.AlertTypeStudyBlock || alerts[0].DaysLeft != 3 {
		t.Errorf("提醒内容不符: %+v", alerts[0])
	}
}

func TestBuildDeadlineAlerts_SkipsInactiveAndCompleted(t *testing.T) {
	inactive := model.Course{CourseID: "c2", Code: "21094"}
	completed := model.Course{CourseID: "c3", Code: "21095", IsCompleted: true}

	snap := &StateSnapshot{
		Courses: []model.Course{inactive, completed},
		Assessments: []model.Assessment{
			{CourseID: "c2", Type: model.AssessmentTypeExam, Name: "期末考试", Date: strPtr("2026-01-10")},
			{CourseID: "c3", Type: model.AssessmentTypeExam, Name: "期末考试", Date: strPtr("2026-01-10")},
		},
	}

	if alerts := BuildDeadlineAlerts(snap, testToday()); len(alerts) != 0 {
		t.Errorf("非进行中课程不应产生提醒, 得到 %d 条", len(alerts))
	}
}

func TestBuildDeadlineAlerts_MalformedDatesSkipped(t *testing.T) {
	snap := &StateSnapshot{
		Courses: []model.Course{activeCourse("c1", "21093")},
		Assessments: []model.Assessment{
			{CourseID: "c1", Type: model.AssessmentTypeEfolio, Name: "e-Fólio A",
				StartDate: strPtr("10/01/2026"), EndDate: strPtr("not-a-date")},
			{CourseID: "c1", Type: model.AssessmentTypeExam, Name: "期末考试"}, // 无日期
		},
		StudyBlocks: []model.StudyBlock{
			{CourseID: "c1", Title: "无日期计划", Status: model.StudyBlockStatusTodo},
		},
	}

	if alerts := BuildDeadlineAlerts(snap, testToday()); len(alerts) != 0 {
		t.Errorf("非法/缺失日期应静默跳过, 得到 %d 条提醒", len(alerts))
	}
}

func TestBuildDeadlineAlerts_SortedByDaysLeft(t *testing.T) {
	snap := &StateSnapshot{
		Courses: []model.Course{activeCourse("c1", "21093"), activeCourse("c2", "21094")},
		Assessments: []model.Assessment{
			{CourseID: "c1", Type: model.AssessmentTypeExam, Name: "期末考试", Date: strPtr("2026-01-17")},
			{CourseID: "c2", Type: model.AssessmentTypeEfolio, Name: "e-Fólio A", EndDate: strPtr("2026-01-10")},
			{CourseID: "c1", Type: model.AssessmentTypeEfolio, Name: "e-Fólio B", StartDate: strPtr("2026-01-11")},
		},
	}

	alerts := BuildDeadlineAlerts(snap, testToday())
	if len(alerts) != 3 {
		t.Fatalf("期望 3 条提醒, 得到 %d", len(alerts))
	}
	for i := 1; i < len(alerts); i++ {
		if alerts[i-1].DaysLeft > alerts[i].DaysLeft {
			t.Fatalf("排序错误: 位置 %d DaysLeft=%d 在 %d 之前", i, alerts[i].DaysLeft, alerts[i-1].DaysLeft)
		}
	}
}

func TestBuildDeadlineAlerts_StableTieOrder(t *testing.T) {
	snap := &StateSnapshot{
		Courses: []model.Course{activeCourse("c1", "21093")},
		Assessments: []model.Assessment{
			{CourseID: "c1", Type: model.AssessmentTypeEfolio, Name: "e-Fólio A", StartDate: strPtr("2026-01-10")},
			{CourseID: "c1", Type: model.AssessmentTypeEfolio, Name: "e-Fólio B", StartDate: strPtr("2026-01-10")},
		},
	}

	alerts := BuildDeadlineAlerts(snap, testToday())
	if len(alerts) != 2 {
		t.Fatalf("期望 2 条提醒, 得到 %d", len(alerts))
	}
	if alerts[0].Title != "21093 · e-Fólio A" || alerts[1].Title != "21093 · e-Fólio B" {
		t.Errorf("同 DaysLeft 应保持输入顺序: %s, %s", alerts[0].Title, alerts[1].Title)
	}
}

func TestMergeAlerts_OngoingFirstThenDaysLeft(t *testing.T) {
	a := []dto.AlertItem{
		{Title: "A", DaysLeft: 5},
		{Title: "B", DaysLeft: 1},
	}
	b := []dto.AlertItem{
		{Title: "C", DaysLeft: 30, Ongoing: true},
		{Title: "D", DaysLeft: 0},
	}

	merged := MergeAlerts(a, b)
	want := []string{"C", "D", "B", "A"}
	for i, title := range want {
		if merged[i].Title != title {
			t.Fatalf("合并排序错误: 位置 %d 期望 %s, 得到 %s", i, title, merged[i].Title)
		}
	}
}

func TestCountdownPhrase(t *testing.T) {
	cases := []struct {
		days int
		want string
	}{
		{0, "今天"},
		{1, "明天"},
		{7, "7 天后"},
	}
	for _, c := range cases {
		if got := countdownPhrase(c.days); got != c.want {
			t.Errorf("countdownPhrase(%d) = %s, 期望 %s", c.days, got, c.want)
		}
	}
}

// [自证通过] internal/service/alert_builder_test.go
