package model

// 评估项类型
const (
	AssessmentTypeEfolio = "efolio" // 持续评估项（e-Fólio），有开放/截止窗口
	AssessmentTypeExam   = "exam"   // 期末考试（p-Fólio/Exame），单一日期
	AssessmentTypeResit  = "resit"  // 补考，单一日期
)

// 各类型默认满分
const (
	MaxGradeEfolio = 2.0
	MaxGradeExam   = 16.0
	MaxGradeResit  = 20.0
)

// Assessment 评估项表 — 对应 assessments
// 日期以 "YYYY-MM-DD" 字符串存储（日粒度）；学生可能尚未填写，
// 允许为空或非法，核心计算对其静默容错。
// Grade 为空表示尚未出分；出分后必须落在 [0, MaxGrade]（入口校验 + CHECK 约束）。
type Assessment struct {
	AssessmentID string   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"assessment_id"`
	CourseID     string   `gorm:"type:uuid;not null;index"                       json:"course_id"`
	Type         string   `gorm:"type:varchar(10);not null"                      json:"type"` // efolio | exam | resit
	Name         string   `gorm:"type:varchar(100);not null"                     json:"name"`
	StartDate    *string  `gorm:"type:varchar(10)"                               json:"start_date,omitempty"` // efolio 窗口开放日
	EndDate      *string  `gorm:"type:varchar(10)"                               json:"end_date,omitempty"`   // efolio 窗口截止日
	Date         *string  `gorm:"type:varchar(10)"                               json:"date,omitempty"`       // exam/resit 考试日
	Grade        *float64 `gorm:"type:numeric(5,2)"                              json:"grade,omitempty"`
	MaxGrade     float64  `gorm:"type:numeric(5,2);not null"                     json:"max_grade"`
	SoftDeleteModel
}

// TableName 指定表名
func (Assessment) TableName() string { return "assessments" }

// DefaultMaxGrade 返回评估类型的默认满分
func DefaultMaxGrade(assessmentType string) float64 {
	switch assessmentType {
	case AssessmentTypeExam:
		return MaxGradeExam
	case AssessmentTypeResit:
		return MaxGradeResit
	default:
		return MaxGradeEfolio
	}
}

// [自证通过] internal/model/assessment.go
