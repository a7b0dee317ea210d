package model

// 学习计划块状态
const (
	StudyBlockStatusTodo       = "todo"
	StudyBlockStatusInProgress = "in_progress"
	StudyBlockStatusDone       = "done"
)

// StudyBlock 学习计划块表 — 对应 study_blocks
// 纯个人规划数据，仅参与截止提醒，不参与成绩计算。
type StudyBlock struct {
	StudyBlockID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"study_block_id"`
	UserID       string  `gorm:"type:uuid;not null;index"                       json:"user_id"`
	CourseID     string  `gorm:"type:uuid;not null;index"                       json:"course_id"`
	Title        string  `gorm:"type:varchar(200);not null"                     json:"title"`
	Category     string  `gorm:"type:varchar(20);not null;default:'other'"      json:"category"` // reading | exercises | revision | assessment_prep | other
	StartDate    *string `gorm:"type:varchar(10)"                               json:"start_date,omitempty"`
	EndDate      *string `gorm:"type:varchar(10)"                               json:"end_date,omitempty"`
	Status       string  `gorm:"type:varchar(20);not null;default:'todo'"       json:"status"` // todo | in_progress | done
	Notes        string  `gorm:"type:text"                                      json:"notes,omitempty"`
	SoftDeleteModel
}

// TableName 指定表名
func (StudyBlock) TableName() string { return "study_blocks" }

// [自证通过] internal/model/study_block.go
