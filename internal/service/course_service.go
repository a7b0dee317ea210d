package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sergioneto-tech/academic-hub-app-sub000/internal/dto"
	"github.com/sergioneto-tech/academic-hub-app-sub000/internal/model"
	"github.com/sergioneto-tech/academic-hub-app-sub000/internal/repository"
)

// ── 课程模块业务错误 ──

var (
	ErrCourseNotFound         = errors.New("课程不存在")
	ErrCourseAlreadyActive    = errors.New("课程已在进行中")
	ErrCourseAlreadyCompleted = errors.New("课程已完成, 不能激活")
	ErrCourseNotCompleted     = errors.New("课程尚未完成")
	ErrCourseNotGradable      = errors.New("最终成绩尚不可计算, 不能完成课程")
)

// CourseService 课程业务接口
// 状态与成绩测算每次读取时从评估数据重新推导，绝不落库
type CourseService interface {
	Create(ctx context.Context, userID string, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	List(ctx context.Context, userID string) ([]dto.CourseResponse, error)
	Get(ctx context.Context, userID, courseID string) (*dto.CourseResponse, error)
	Update(ctx context.Context, userID, courseID string, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error)
	Delete(ctx context.Context, userID, courseID string) error
	Activate(ctx context.Context, userID, courseID string) (*dto.CourseResponse, error)
	Complete(ctx context.Context, userID, courseID string) (*dto.CourseResponse, error)
	Reopen(ctx context.Context, userID, courseID string) (*dto.CourseResponse, error)
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *courseService) Create(ctx context.Context, userID string, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	course := &model.Course{
		UserID:         userID,
		Code:           req.Code,
		Name:           req.Name,
		CurriculumYear: req.CurriculumYear,
		Semester:       req.Semester,
	}

	var rules *model.CourseRules
	err := s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.Course.Create(ctx, course); err != nil {
			s.logger.Error("创建课程失败", zap.Error(err))
			return err
		}

		// 规则随课程创建, 使用默认阈值
		rules = model.DefaultCourseRules(course.CourseID)
		if err := txRepo.Rules.Create(ctx, rules); err != nil {
			s.logger.Error("创建课程规则失败", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toCourseResponse(course, nil, rules)
	return &resp, nil
}

// ────────────────────── List / Get ──────────────────────

func (s *courseService) List(ctx context.Context, userID string) ([]dto.CourseResponse, error) {
	courses, err := s.repo.Course.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return []dto.CourseResponse{}, nil
	}

	courseIDs := make([]string, len(courses))
	for i := range courses {
		courseIDs[i] = courses[i].CourseID
	}

	// 批量取评估与规则, 避免按课程逐条查询
	assessments, err := s.repo.Assessment.ListByCourses(ctx, courseIDs)
	if err != nil {
		return nil, err
	}
	rulesList, err := s.repo.Rules.ListByCourses(ctx, courseIDs)
	if err != nil {
		return nil, err
	}

	assessmentsByCourse := make(map[string][]model.Assessment)
	for _, a := range assessments {
		assessmentsByCourse[a.CourseID] = append(assessmentsByCourse[a.CourseID], a)
	}
	rulesByCourse := make(map[string]*model.CourseRules)
	for i := range rulesList {
		rulesByCourse[rulesList[i].CourseID] = &rulesList[i]
	}

	result := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		result = append(result, toCourseResponse(
			&courses[i],
			assessmentsByCourse[courses[i].CourseID],
			rulesByCourse[courses[i].CourseID],
		))
	}
	return result, nil
}

func (s *courseService) Get(ctx context.Context, userID, courseID string) (*dto.CourseResponse, error) {
	course, assessments, rules, err := s.loadCourseState(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	resp := toCourseResponse(course, assessments, rules)
	return &resp, nil
}

// loadCourseState 取课程及派生计算所需的评估与规则
func (s *courseService) loadCourseState(ctx context.Context, userID, courseID string) (*model.Course, []model.Assessment, *model.CourseRules, error) {
	course, err := s.repo.Course.GetByID(ctx, userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, ErrCourseNotFound
		}
		return nil, nil, nil, err
	}
	assessments, err := s.repo.Assessment.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, nil, nil, err
	}
	rules, err := s.repo.Rules.GetByCourse(ctx, courseID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, nil, err
	}
	return course, assessments, rules, nil
}

// ────────────────────── Update / Delete ──────────────────────

func (s *courseService) Update(ctx context.Context, userID, courseID string, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	course, assessments, rules, err := s.loadCourseState(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	if req.Code != nil {
		course.Code = *req.Code
	}
	if req.Name != nil {
		course.Name = *req.Name
	}
	if req.CurriculumYear != nil {
		course.CurriculumYear = *req.CurriculumYear
	}
	if req.Semester != nil {
		course.Semester = *req.Semester
	}
	course.UpdatedBy = &userID

	if err := s.repo.Course.Update(ctx, course); err != nil {
		s.logger.Error("更新课程失败", zap.Error(err))
		return nil, err
	}

	resp := toCourseResponse(course, assessments, rules)
	return &resp, nil
}

// Delete 删除课程并级联清理评估、规则与学习计划块
func (s *courseService) Delete(ctx context.Context, userID, courseID string) error {
	if _, err := s.repo.Course.GetByID(ctx, userID, courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		return err
	}

	return s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.Assessment.DeleteByCourse(ctx, courseID, userID); err != nil {
			return err
		}
		if err := txRepo.StudyBlock.DeleteByCourse(ctx, courseID, userID); err != nil {
			return err
		}
		if err := txRepo.Rules.DeleteByCourse(ctx, courseID); err != nil {
			return err
		}
		return txRepo.Course.Delete(ctx, userID, courseID, userID)
	})
}

// ────────────────────── 状态转换 ──────────────────────

// Activate 激活课程并按策略模板铺设默认评估项。
// 已完成的课程必须先重开才能激活（课程永不同时处于进行中与已完成）。
func (s *courseService) Activate(ctx context.Context, userID, courseID string) (*dto.CourseResponse, error) {
	course, assessments, rules, err := s.loadCourseState(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if course.IsCompleted {
		return nil, ErrCourseAlreadyCompleted
	}
	if course.IsActive {
		return nil, ErrCourseAlreadyActive
	}

	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		// 首次激活时铺设默认模板; 重复激活（重开后）保留已有评估
		if len(assessments) == 0 {
			assessments = defaultAssessmentTemplate(courseID)
			if err := txRepo.Assessment.BatchCreate(ctx, assessments); err != nil {
				s.logger.Error("铺设默认评估模板失败", zap.Error(err))
				return err
			}
		}

		course.IsActive = true
		course.UpdatedBy = &userID
		return txRepo.Course.UpdateGuarded(ctx, course)
	})
	if err != nil {
		return nil, err
	}

	resp := toCourseResponse(course, assessments, rules)
	return &resp, nil
}

// Complete 完成课程。要求最终成绩已可计算（考试已评分）。
func (s *courseService) Complete(ctx context.Context, userID, courseID string) (*dto.CourseResponse, error) {
	course, assessments, rules, err := s.loadCourseState(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if course.IsCompleted {
		return nil, ErrCourseAlreadyCompleted
	}

	eval := EvaluateCourse(assessments, rules)
	if eval.FinalGrade == nil {
		return nil, ErrCourseNotGradable
	}

	now := time.Now()
	course.IsActive = false
	course.IsCompleted = true
	course.CompletedAt = &now
	course.UpdatedBy = &userID

	if err := s.repo.Course.UpdateGuarded(ctx, course); err != nil {
		return nil, err
	}

	resp := toCourseResponse(course, assessments, rules)
	return &resp, nil
}

// Reopen 重开已完成的课程（成绩复核、补考等场景）
func (s *courseService) Reopen(ctx context.Context, userID, courseID string) (*dto.CourseResponse, error) {
	course, assessments, rules, err := s.loadCourseState(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if !course.IsCompleted {
		return nil, ErrCourseNotCompleted
	}

	course.IsCompleted = false
	course.IsActive = true
	course.CompletedAt = nil
	course.UpdatedBy = &userID

	if err := s.repo.Course.UpdateGuarded(ctx, course); err != nil {
		return nil, err
	}

	resp := toCourseResponse(course, assessments, rules)
	return &resp, nil
}

// defaultAssessmentTemplate 激活课程时铺设的策略默认评估项
func defaultAssessmentTemplate(courseID string) []model.Assessment {
	return []model.Assessment{
		{CourseID: courseID, Type: model.AssessmentTypeEfolio, Name: "e-Fólio A", MaxGrade: model.MaxGradeEfolio},
		{CourseID: courseID, Type: model.AssessmentTypeEfolio, Name: "e-Fólio B", MaxGrade: model.MaxGradeEfolio},
		{CourseID: courseID, Type: model.AssessmentTypeExam, Name: "p-Fólio", MaxGrade: model.MaxGradeExam},
		{CourseID: courseID, Type: model.AssessmentTypeResit, Name: "Exame de Recurso", MaxGrade: model.MaxGradeResit},
	}
}

// toCourseResponse 组装课程响应, 状态与测算即时推导
func toCourseResponse(course *model.Course, assessments []model.Assessment, rules *model.CourseRules) dto.CourseResponse {
	eval := EvaluateCourse(assessments, rules)
	status := ClassifyStatus(assessments, rules, course.IsCompleted)

	resp := dto.CourseResponse{
		ID:             course.CourseID,
		Code:           course.Code,
		Name:           course.Name,
		CurriculumYear: course.CurriculumYear,
		Semester:       course.Semester,
		IsActive:       course.IsActive,
		IsCompleted:    course.IsCompleted,
		Status:         string(status),
		Evaluation: dto.EvaluationResponse{
			TotalContinuous: eval.TotalContinuous,
			ExamScore:       eval.ExamScore,
			FinalGrade:      eval.FinalGrade,
		},
		CreatedAt: course.CreatedAt.Format(time.RFC3339),
		UpdatedAt: course.UpdatedAt.Format(time.RFC3339),
	}
	if course.CompletedAt != nil {
		resp.CompletedAt = course.CompletedAt.Format(time.RFC3339)
	}
	return resp
}

// [自证通过] internal/service/course_service.go
