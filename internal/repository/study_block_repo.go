package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sergioneto-tech/academic-hub-app-sub000/internal/model"
)

// StudyBlockRepository 学习计划块数据访问接口
type StudyBlockRepository interface {
	Create(ctx context.Context, block *model.StudyBlock) error
	GetByID(ctx context.Context, userID, id string) (*model.StudyBlock, error)
	List(ctx context.Context, userID string) ([]model.StudyBlock, error)
	ListByCourse(ctx context.Context, userID, courseID string) ([]model.StudyBlock, error)
	Update(ctx context.Context, block *model.StudyBlock) error
	Delete(ctx context.Context, userID, id string, deletedBy string) error
	DeleteByCourse(ctx context.Context, courseID string, deletedBy string) error
}

type studyBlockRepo struct {
	db *gorm.DB
}

// NewStudyBlockRepo 创建 StudyBlockRepository 实例
func NewStudyBlockRepo(db *gorm.DB) StudyBlockRepository {
	return &studyBlockRepo{db: db}
}

func (r *studyBlockRepo) Create(ctx context.Context, block *model.StudyBlock) error {
	return r.db.WithContext(ctx).Create(block).Error
}

func (r *studyBlockRepo) GetByID(ctx context.Context, userID, id string) (*model.StudyBlock, error) {
	var block model.StudyBlock
	err := r.db.WithContext(ctx).
		Where("study_block_id = ? AND user_id = ?", id, userID).
		First(&block).Error
	if err != nil {
		return nil, err
	}
	return &block, nil
}

func (r *studyBlockRepo) List(ctx context.Context, userID string) ([]model.StudyBlock, error) {
	var blocks []model.StudyBlock
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date ASC NULLS LAST, created_at ASC").
		Find(&blocks).Error
	return blocks, err
}

func (r *studyBlockRepo) ListByCourse(ctx context.Context, userID, courseID string) ([]model.StudyBlock, error) {
	var blocks []model.StudyBlock
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Order("start_date ASC NULLS LAST, created_at ASC").
		Find(&blocks).Error
	return blocks, err
}

func (r *studyBlockRepo) Update(ctx context.Context, block *model.StudyBlock) error {
	return r.db.WithContext(ctx).Save(block).Error
}

func (r *studyBlockRepo) Delete(ctx context.Context, userID, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.StudyBlock{}).
		Where("study_block_id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}

// DeleteByCourse 软删除课程下全部学习计划块（随课程删除级联）
func (r *studyBlockRepo) DeleteByCourse(ctx context.Context, courseID string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.StudyBlock{}).
		Where("course_id = ?", courseID).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}

// [自证通过] internal/repository/study_block_repo.go
