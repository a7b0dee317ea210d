package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/sergioneto-tech/academic-hub-app-sub000/internal/model"
	pkgerrors "github.com/sergioneto-tech/academic-hub-app-sub000/pkg/errors"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%d", m.seq)
	}
	user.CreatedAt = time.Now()
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	user.UpdatedAt = time.Now()
	m.users[user.UserID] = user
	return nil
}

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	courses map[string]*model.Course
	seq     int
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[string]*model.Course)}
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	if course.CourseID == "" {
		m.seq++
		course.CourseID = fmt.Sprintf("course-%d", m.seq)
	}
	if course.Version == 0 {
		course.Version = 1
	}
	course.CreatedAt = time.Now()
	m.courses[course.CourseID] = course
	return nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, userID, id string) (*model.Course, error) {
	if c, ok := m.courses[id]; ok && c.UserID == userID {
		copied := *c
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) List(_ context.Context, userID string) ([]model.Course, error) {
	var result []model.Course
	for _, c := range m.courses {
		if c.UserID == userID {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (m *mockCourseRepo) Update(_ context.Context, course *model.Course) error {
	course.UpdatedAt = time.Now()
	m.courses[course.CourseID] = course
	return nil
}

func (m *mockCourseRepo) UpdateGuarded(_ context.Context, course *model.Course) error {
	stored, ok := m.courses[course.CourseID]
	if !ok || stored.Version != course.Version {
		return pkgerrors.ErrOptimisticLock
	}
	course.Version++
	course.UpdatedAt = time.Now()
	m.courses[course.CourseID] = course
	return nil
}

func (m *mockCourseRepo) Delete(_ context.Context, userID, id string, _ string) error {
	if c, ok := m.courses[id]; ok && c.UserID == userID {
		delete(m.courses, id)
	}
	return nil
}

// ── Mock AssessmentRepository ──

type mockAssessmentRepo struct {
	assessments []*model.Assessment
	seq         int
}

func newMockAssessmentRepo() *mockAssessmentRepo {
	return &mockAssessmentRepo{}
}

func (m *mockAssessmentRepo) Create(_ context.Context, assessment *model.Assessment) error {
	if assessment.AssessmentID == "" {
		m.seq++
		assessment.AssessmentID = fmt.Sprintf("assessment-%d", m.seq)
	}
	m.assessments = append(m.assessments, assessment)
	return nil
}

func (m *mockAssessmentRepo) BatchCreate(ctx context.Context, assessments []model.Assessment) error {
	for i := range assessments {
		if err := m.Create(ctx, &assessments[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockAssessmentRepo) GetByID(_ context.Context, id string) (*model.Assessment, error) {
	for _, a := range m.assessments {
		if a.AssessmentID == id {
			copied := *a
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssessmentRepo) ListByCourse(_ context.Context, courseID string) ([]model.Assessment, error) {
	var result []model.Assessment
	for _, a := range m.assessments {
		if a.CourseID == courseID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAssessmentRepo) ListByCourses(_ context.Context, courseIDs []string) ([]model.Assessment, error) {
	wanted := make(map[string]bool, len(courseIDs))
	for _, id := range courseIDs {
		wanted[id] = true
	}
	var result []model.Assessment
	for _, a := range m.assessments {
		if wanted[a.CourseID] {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAssessmentRepo) Update(_ context.Context, assessment *model.Assessment) error {
	for i, a := range m.assessments {
		if a.AssessmentID == assessment.AssessmentID {
			m.assessments[i] = assessment
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockAssessmentRepo) DeleteByCourse(_ context.Context, courseID string, _ string) error {
	var remaining []*model.Assessment
	for _, a := range m.assessments {
		if a.CourseID != courseID {
			remaining = append(remaining, a)
		}
	}
	m.assessments = remaining
	return nil
}

// ── Mock RulesRepository ──

type mockRulesRepo struct {
	rules map[string]*model.CourseRules
}

func newMockRulesRepo() *mockRulesRepo {
	return &mockRulesRepo{rules: make(map[string]*model.CourseRules)}
}

func (m *mockRulesRepo) Create(_ context.Context, rules *model.CourseRules) error {
	m.rules[rules.CourseID] = rules
	return nil
}

func (m *mockRulesRepo) GetByCourse(_ context.Context, courseID string) (*model.CourseRules, error) {
	if r, ok := m.rules[courseID]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRulesRepo) ListByCourses(_ context.Context, courseIDs []string) ([]model.CourseRules, error) {
	var result []model.CourseRules
	for _, id := range courseIDs {
		if r, ok := m.rules[id]; ok {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockRulesRepo) Update(_ context.Context, rules *model.CourseRules) error {
	m.rules[rules.CourseID] = rules
	return nil
}

func (m *mockRulesRepo) DeleteByCourse(_ context.Context, courseID string) error {
	delete(m.rules, courseID)
	return nil
}

// ── Mock StudyBlockRepository ──

type mockStudyBlockRepo struct {
	blocks []*model.StudyBlock
	seq    int
}

func newMockStudyBlockRepo() *mockStudyBlockRepo {
	return &mockStudyBlockRepo{}
}

func (m *mockStudyBlockRepo) Create(_ context.Context, block *model.StudyBlock) error {
	if block.StudyBlockID == "" {
		m.seq++
		block.StudyBlockID = fmt.Sprintf("block-%d", m.seq)
	}
	m.blocks = append(m.blocks, block)
	return nil
}

func (m *mockStudyBlockRepo) GetByID(_ context.Context, userID, id string) (*model.StudyBlock, error) {
	for _, b := range m.blocks {
		if b.StudyBlockID == id && b.UserID == userID {
			copied := *b
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudyBlockRepo) List(_ context.Context, userID string) ([]model.StudyBlock, error) {
	var result []model.StudyBlock
	for _, b := range m.blocks {
		if b.UserID == userID {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (m *mockStudyBlockRepo) ListByCourse(_ context.Context, userID, courseID string) ([]model.StudyBlock, error) {
	var result []model.StudyBlock
	for _, b := range m.blocks {
		if b.UserID == userID && b.CourseID == courseID {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (m *mockStudyBlockRepo) Update(_ context.Context, block *model.StudyBlock) error {
	for i, b := range m.blocks {
		if b.StudyBlockID == block.StudyBlockID {
			m.blocks[i] = block
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockStudyBlockRepo) Delete(_ context.Context, userID, id string, _ string) error {
	var remaining []*model.StudyBlock
	for _, b := range m.blocks {
		if b.StudyBlockID == id && b.UserID == userID {
			continue
		}
		remaining = append(remaining, b)
	}
	m.blocks = remaining
	return nil
}

func (m *mockStudyBlockRepo) DeleteByCourse(_ context.Context, courseID string, _ string) error {
	var remaining []*model.StudyBlock
	for _, b := range m.blocks {
		if b.CourseID != courseID {
			remaining = append(remaining, b)
		}
	}
	m.blocks = remaining
	return nil
}

// [自证通过] internal/service/mock_repos_test.go
