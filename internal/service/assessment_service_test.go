package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/sergioneto-tech/academic-hub-app-sub000/internal/dto"
	"github.com/sergioneto-tech/academic-hub-app-sub000/internal/model"
)

func setupTestAssessmentService() (AssessmentService, *mockCourseRepo, *mockAssessmentRepo, *mockRulesRepo) {
	repo, _, courseRepo, assessmentRepo, rulesRepo, _ := newTestRepo()
	svc := NewAssessmentService(repo, zap.NewNop())
	return svc, courseRepo, assessmentRepo, rulesRepo
}

func seedAssessment(assessmentRepo *mockAssessmentRepo, id, courseID, aType string, maxGrade float64) *model.Assessment {
	a := &model.Assessment{
		AssessmentID: id,
		CourseID:     courseID,
		Type:         aType,
		Name:         "e-Fólio A",
		MaxGrade:     maxGrade,
	}
	assessmentRepo.assessments = append(assessmentRepo.assessments, a)
	return a
}

// ── SetGrade 测试 ──

func TestSetGrade_CommaDecimal(t *testing.T) {
	svc, courseRepo, assessmentRepo, rulesRepo := setupTestAssessmentService()
	seedCourse(courseRepo, rulesRepo, "c1", true, false)
	seedAssessment(assessmentRepo, "a1", "c1", model.AssessmentTypeEfolio, model.MaxGradeEfolio)

	result, err := svc.SetGrade(context.Background(), testUserID, "a1", &dto.SetGradeRequest{Grade: "1,5"})
	if err != nil {
		t.Fatalf("SetGrade 应接受逗号小数: %v", err)
	}
	if result.Grade == nil || *result.Grade != 1.5 {
		t.Errorf("期望成绩 1.5, 实际 %v", result.Grade)
	}
}

func TestSetGrade_BoundaryValues(t *testing.T) {
	svc, courseRepo, assessmentRepo, rulesRepo := setupTestAssessmentService()
	seedCourse(courseRepo, rulesRepo, "c1", true, false)
	seedAssessment(assessmentRepo, "a1", "c1", model.AssessmentTypeEfolio, model.MaxGradeEfolio)

	// 上下边界恰好合法
	for _, grade := range []string{"0", "2.0"} {
		if _, err := svc.SetGrade(context.Background(), testUserID, "a1", &dto.SetGradeRequest{Grade: grade}); err != nil {
			t.Errorf("边界成绩 %s 应合法: %v", grade, err)
		}
	}

	if _, err := svc.SetGrade(context.Background(), testUserID, "a1", &dto.SetGradeRequest{Grade: "2.1"}); !errors.Is(err, ErrGradeOutOfRange) {
		t.Errorf("超过上限应返回 ErrGradeOutOfRange, 实际: %v", err)
	}
	if _, err := svc.SetGrade(context.Background(), testUserID, "a1", &dto.SetGradeRequest{Grade: "-0.5"}); !errors.Is(err, ErrGradeOutOfRange) {
		t.Errorf("负数应返回 ErrGradeOutOfRange, 实际: %v", err)
	}
}

func TestSetGrade_Unparseable(t *testing.T) {
	svc, courseRepo, assessmentRepo, rulesRepo := setupTestAssessmentService()
	seedCourse(courseRepo, rulesRepo, "c1", true, false)
	seedAssessment(assessmentRepo, "a1", "c1", model.AssessmentTypeEfolio, model.MaxGradeEfolio)

	_, err := svc.SetGrade(context.Background(), testUserID, "a1", &dto.SetGradeRequest{Grade: "abc"})
	if !errors.Is(err, ErrInvalidGrade) {
		t.Errorf("期望 ErrInvalidGrade, 实际: %v", err)
	}
}

func TestSetGrade_CrossUserBlocked(t *testing.T) {
	svc, courseRepo, assessmentRepo, rulesRepo := setupTestAssessmentService()
	course := seedCourse(courseRepo, rulesRepo, "c1", true, false)
	course.UserID = "someone-else"
	seedAssessment(assessmentRepo, "a1", "c1", model.AssessmentTypeEfolio, model.MaxGradeEfolio)

	_, err := svc.SetGrade(context.Background(), testUserID, "a1", &dto.SetGradeRequest{Grade: "1.0"})
	if !errors.Is(err, ErrAssessmentNotFound) {
		t.Errorf("他人课程的评估项应视同不存在, 实际: %v", err)
	}
}

// ── ClearGrade 测试 ──

func TestClearGrade(t *testing.T) {
	svc, courseRepo, assessmentRepo, rulesRepo := setupTestAssessmentService()
	seedCourse(courseRepo, rulesRepo, "c1", true, false)
	a := seedAssessment(assessmentRepo, "a1", "c1", model.AssessmentTypeEfolio, model.MaxGradeEfolio)
	grade := 1.2
	a.Grade = &grade

	result, err := svc.ClearGrade(context.Background(), testUserID, "a1")
	if err != nil {
		t.Fatalf("ClearGrade 应成功: %v", err)
	}
	if result.Grade != nil {
		t.Errorf("清除后成绩应为空, 实际 %v", result.Grade)
	}
}

// ── UpdateDates 测试 ──

func TestUpdateDates_ValidAndClear(t *testing.T) {
	svc, courseRepo, assessmentRepo, rulesRepo := setupTestAssessmentService()
	seedCourse(courseRepo, rulesRepo, "c1", true, false)
	seedAssessment(assessmentRepo, "a1", "c1", model.AssessmentTypeEfolio, model.MaxGradeEfolio)

	start, end := "2026-03-10", "2026-03-17"
	result, err := svc.UpdateDates(context.Background(), testUserID, "a1", &dto.UpdateAssessmentDatesRequest{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		t.Fatalf("UpdateDates 应成功: %v", err)
	}
	if result.StartDate != "2026-03-10" || result.EndDate != "2026-03-17" {
		t.Errorf("日期未正确更新: %+v", result)
	}

	// 空字符串清除日期
	empty := ""
	result, err = svc.UpdateDates(context.Background(), testUserID, "a1", &dto.UpdateAssessmentDatesRequest{
		StartDate: &empty,
	})
	if err != nil {
		t.Fatalf("清除日期应成功: %v", err)
	}
	if result.StartDate != "" {
		t.Errorf("StartDate 应已清除, 实际 %s", result.StartDate)
	}
	if result.EndDate != "2026-03-17" {
		t.Errorf("未触及的 EndDate 应保留, 实际 %s", result.EndDate)
	}
}

func TestUpdateDates_RejectsMalformed(t *testing.T) {
	svc, courseRepo, assessmentRepo, rulesRepo := setupTestAssessmentService()
	seedCourse(courseRepo, rulesRepo, "c1", true, false)
	seedAssessment(assessmentRepo, "a1", "c1", model.AssessmentTypeExam, model.MaxGradeExam)

	bad := "17/03/2026"
	_, err := svc.UpdateDates(context.Background(), testUserID, "a1", &dto.UpdateAssessmentDatesRequest{Date: &bad})
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("期望 ErrInvalidDate, 实际: %v", err)
	}
}

// ── ListByCourse 测试 ──

func TestAssessmentListByCourse(t *testing.T) {
	svc, courseRepo, assessmentRepo, rulesRepo := setupTestAssessmentService()
	seedCourse(courseRepo, rulesRepo, "c1", true, false)
	seedAssessment(assessmentRepo, "a1", "c1", model.AssessmentTypeEfolio, model.MaxGradeEfolio)
	seedAssessment(assessmentRepo, "a2", "c1", model.AssessmentTypeExam, model.MaxGradeExam)
	seedAssessment(assessmentRepo, "a3", "other-course", model.AssessmentTypeEfolio, model.MaxGradeEfolio)

	result, err := svc.ListByCourse(context.Background(), testUserID, "c1")
	if err != nil {
		t.Fatalf("ListByCourse 应成功: %v", err)
	}
	if len(result) != 2 {
		t.Errorf("期望 2 个评估项, 实际 %d", len(result))
	}
}

// [自证通过] internal/service/assessment_service_test.go
