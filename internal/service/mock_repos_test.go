package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/adventistcho-art/ESG-Archive/internal/model"
	"github.com/adventistcho-art/ESG-Archive/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // key: user_id
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%03d", m.seq)
	}
	if user.Role == "" {
		user.Role = model.RoleUser
	}
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

// ── Mock ProjectRepository ──

type mockProjectRepo struct {
	projects map[string]*model.EsgProject
	users    *mockUserRepo
	results  *mockResultRepo
	seq      int
	clock    time.Time
}

func newMockProjectRepo(users *mockUserRepo, results *mockResultRepo) *mockProjectRepo {
	return &mockProjectRepo{
		projects: make(map[string]*model.EsgProject),
		users:    users,
		results:  results,
		clock:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *mockProjectRepo) Create(_ context.Context, p *model.EsgProject) error {
	if p.ProjectID == "" {
		m.seq++
		p.ProjectID = fmt.Sprintf("proj-%03d", m.seq)
	}
	// 模拟 BeforeCreate 与 autoCreateTime
	_ = p.BeforeCreate(nil)
	m.clock = m.clock.Add(time.Second)
	p.CreatedAt = m.clock
	p.UpdatedAt = m.clock
	stored := *p
	m.projects[p.ProjectID] = &stored
	return nil
}

// GetByID 返回副本并带出关联，行为与 GORM Preload 一致
func (m *mockProjectRepo) GetByID(_ context.Context, id string) (*model.EsgProject, error) {
	p, ok := m.projects[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m.withAssociations(p), nil
}

func (m *mockProjectRepo) withAssociations(p *model.EsgProject) *model.EsgProject {
	cp := *p
	cp.User = nil
	cp.Result = nil
	if u, ok := m.users.users[p.UserID]; ok {
		cp.User = u
	}
	if r, ok := m.results.results[p.ProjectID]; ok {
		cp.Result = r
	}
	return &cp
}

func (m *mockProjectRepo) List(_ context.Context, q repository.ProjectQuery) ([]model.EsgProject, error) {
	out := make([]model.EsgProject, 0)
	for _, p := range m.projects {
		if q.PublishedOnly && !p.IsPublished {
			continue
		}
		if q.Year != nil && p.Year != *q.Year {
			continue
		}
		if q.Category != nil && p.Category != *q.Category {
			continue
		}
		if q.DeptNameContains != "" && !strings.Contains(p.DeptName, q.DeptNameContains) {
			continue
		}
		if q.OwnerID != "" && p.UserID != q.OwnerID {
			continue
		}
		out = append(out, *m.withAssociations(p))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *mockProjectRepo) Update(_ context.Context, p *model.EsgProject) error {
	if _, ok := m.projects[p.ProjectID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.clock = m.clock.Add(time.Second)
	p.UpdatedAt = m.clock
	stored := *p
	stored.User = nil
	stored.Result = nil
	m.projects[p.ProjectID] = &stored
	return nil
}

func (m *mockProjectRepo) Delete(_ context.Context, id string) error {
	delete(m.projects, id)
	delete(m.results.results, id)
	return nil
}

func (m *mockProjectRepo) PublishedYears(_ context.Context) ([]int, error) {
	seen := make(map[int]bool)
	years := make([]int, 0)
	for _, p := range m.projects {
		if p.IsPublished && !seen[p.Year] {
			seen[p.Year] = true
			years = append(years, p.Year)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years, nil
}

func (m *mockProjectRepo) Stats(_ context.Context) (*repository.ProjectStats, error) {
	stats := &repository.ProjectStats{ByCategory: make(map[model.Category]int64)}
	for _, p := range m.projects {
		stats.Total++
		if p.IsPublished {
			stats.Published++
		}
		stats.ByCategory[p.Category]++
	}
	return stats, nil
}

// ── Mock ResultRepository ──

type mockResultRepo struct {
	results map[string]*model.ProjectResult // key: project_id
	seq     int
}

func newMockResultRepo() *mockResultRepo {
	return &mockResultRepo{results: make(map[string]*model.ProjectResult)}
}

func (m *mockResultRepo) Create(_ context.Context, r *model.ProjectResult) error {
	if _, ok := m.results[r.ProjectID]; ok {
		return gorm.ErrDuplicatedKey
	}
	if r.ResultID == "" {
		m.seq++
		r.ResultID = fmt.Sprintf("result-%03d", m.seq)
	}
	_ = r.BeforeCreate(nil)
	m.results[r.ProjectID] = r
	return nil
}

func (m *mockResultRepo) GetByProjectID(_ context.Context, projectID string) (*model.ProjectResult, error) {
	if r, ok := m.results[projectID]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockResultRepo) Update(_ context.Context, r *model.ProjectResult) error {
	if _, ok := m.results[r.ProjectID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.results[r.ProjectID] = r
	return nil
}

// ── Mock PlanRepository ──

type mockPlanRepo struct {
	plans map[string]*model.EsgPlan
	seq   int
}

func newMockPlanRepo() *mockPlanRepo {
	return &mockPlanRepo{plans: make(map[string]*model.EsgPlan)}
}

func (m *mockPlanRepo) Create(_ context.Context, p *model.EsgPlan) error {
	if p.PlanID == "" {
		m.seq++
		p.PlanID = fmt.Sprintf("plan-%03d", m.seq)
	}
	_ = p.BeforeCreate(nil)
	m.plans[p.PlanID] = p
	return nil
}

func (m *mockPlanRepo) GetByID(_ context.Context, id string) (*model.EsgPlan, error) {
	if p, ok := m.plans[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPlanRepo) List(_ context.Context, q repository.PlanQuery) ([]model.EsgPlan, error) {
	out := make([]model.EsgPlan, 0)
	for _, p := range m.plans {
		if q.Year != nil && p.Year != *q.Year {
			continue
		}
		if q.Category != nil && p.Category != *q.Category {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].Category < out[j].Category
	})
	return out, nil
}

func (m *mockPlanRepo) Update(_ context.Context, p *model.EsgPlan) error {
	if _, ok := m.plans[p.PlanID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.plans[p.PlanID] = p
	return nil
}

func (m *mockPlanRepo) Delete(_ context.Context, id string) error {
	delete(m.plans, id)
	return nil
}

func (m *mockPlanRepo) Years(_ context.Context) ([]int, error) {
	seen := make(map[int]bool)
	years := make([]int, 0)
	for _, p := range m.plans {
		if !seen[p.Year] {
			seen[p.Year] = true
			years = append(years, p.Year)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years, nil
}

// ── Mock WhitePaperRepository ──

type mockWhitePaperRepo struct {
	papers map[int]*model.EsgWhitePaper // key: year
}

func newMockWhitePaperRepo() *mockWhitePaperRepo {
	return &mockWhitePaperRepo{papers: make(map[int]*model.EsgWhitePaper)}
}

func (m *mockWhitePaperRepo) Create(_ context.Context, w *model.EsgWhitePaper) error {
	if _, ok := m.papers[w.Year]; ok {
		return gorm.ErrDuplicatedKey
	}
	_ = w.BeforeCreate(nil)
	m.papers[w.Year] = w
	return nil
}

func (m *mockWhitePaperRepo) GetByYear(_ context.Context, year int) (*model.EsgWhitePaper, error) {
	if w, ok := m.papers[year]; ok {
		return w, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockWhitePaperRepo) List(_ context.Context) ([]model.EsgWhitePaper, error) {
	out := make([]model.EsgWhitePaper, 0, len(m.papers))
	for _, w := range m.papers {
		out = append(out, *w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year > out[j].Year })
	return out, nil
}

func (m *mockWhitePaperRepo) Years(_ context.Context) ([]int, error) {
	years := make([]int, 0, len(m.papers))
	for y := range m.papers {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years, nil
}

// ── 测试辅助 ──

// mockRepos 聚合所有 mock，便于测试直接操作底层数据
type mockRepos struct {
	users       *mockUserRepo
	projects    *mockProjectRepo
	results     *mockResultRepo
	plans       *mockPlanRepo
	whitePapers *mockWhitePaperRepo
}

func newMockRepository() (*repository.Repository, *mockRepos) {
	users := newMockUserRepo()
	results := newMockResultRepo()
	return newMockRepositoryFrom(&mockRepos{
		users:       users,
		projects:    newMockProjectRepo(users, results),
		results:     results,
		plans:       newMockPlanRepo(),
		whitePapers: newMockWhitePaperRepo(),
	})
}

// newMockRepositoryFrom 复用已有 mock，使多个 Service 共享同一份数据
func newMockRepositoryFrom(m *mockRepos) (*repository.Repository, *mockRepos) {
	return &repository.Repository{
		User:       m.users,
		Project:    m.projects,
		Result:     m.results,
		Plan:       m.plans,
		WhitePaper: m.whitePapers,
	}, m
}
