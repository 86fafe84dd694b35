package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/adventistcho-art/ESG-Archive/internal/dto"
	"github.com/adventistcho-art/ESG-Archive/internal/model"
	"github.com/adventistcho-art/ESG-Archive/internal/policy"
	"github.com/adventistcho-art/ESG-Archive/internal/repository"
	pkgerrors "github.com/adventistcho-art/ESG-Archive/pkg/errors"
)

// ── 项目模块业务错误 ──

var (
	ErrProjectNotFound  = pkgerrors.New(pkgerrors.ErrNotFound, "项目不存在")
	ErrInvalidCategory  = pkgerrors.New(pkgerrors.ErrValidation, "category 必须是 ENVIRONMENT、SOCIAL 或 GOVERNANCE")
	ErrInvalidBudget    = pkgerrors.New(pkgerrors.ErrValidation, "budget 须在 0 到 9999999999999.99 之间")
	ErrProjectForbidden = pkgerrors.New(pkgerrors.ErrForbidden, "无权操作该项目")
)

// ProjectService ESG 项目业务接口
type ProjectService interface {
	Create(ctx context.Context, req *dto.CreateProjectRequest, actor *policy.Actor) (*dto.ProjectResponse, error)
	// ListPublic 仅返回已公开项目
	ListPublic(ctx context.Context, filter *dto.ProjectFilter) ([]dto.ProjectResponse, error)
	// ListForActor 管理员返回全部项目，普通用户只返回自己的项目
	ListForActor(ctx context.Context, actor *policy.Actor) ([]dto.ProjectResponse, error)
	// GetByID 未公开项目仅所有者与管理员可见，其余调用方得到 NotFound
	GetByID(ctx context.Context, id string, actor *policy.Actor) (*dto.ProjectResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateProjectRequest, actor *policy.Actor) (*dto.ProjectResponse, error)
	Delete(ctx context.Context, id string, actor *policy.Actor) error
	Years(ctx context.Context) ([]int, error)
	Stats(ctx context.Context) (*dto.ProjectStatsResponse, error)
}

type projectService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewProjectService 创建 ProjectService 实例
func NewProjectService(repo *repository.Repository, logger *zap.Logger) ProjectService {
	return &projectService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *projectService) Create(ctx context.Context, req *dto.CreateProjectRequest, actor *policy.Actor) (*dto.ProjectResponse, error) {
	if actor == nil {
		return nil, ErrProjectForbidden
	}
	if err := validateProjectFields(req.DeptName, req.Title, req.Task, req.Qualitative); err != nil {
		return nil, err
	}
	category := model.Category(req.Category)
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}
	budget, err := normalizeAmount(req.Budget, ErrInvalidBudget)
	if err != nil {
		return nil, err
	}

	p := &model.EsgProject{
		Year:           req.Year,
		DeptName:       req.DeptName,
		Title:          req.Title,
		Category:       category,
		Task:           req.Task,
		Thumbnail:      optionalText(req.Thumbnail),
		OneLineSummary: optionalText(req.OneLineSummary),
		Quantitative:   optionalText(req.Quantitative),
		Qualitative:    req.Qualitative,
		Budget:         budget,
		Shortcoming:    optionalText(req.Shortcoming),
		Improvement:    optionalText(req.Improvement),
		Images:         stringList(req.Images),
		Documents:      stringList(req.Documents),
		UserID:         actor.UserID,
	}
	if req.IsPublished != nil {
		p.IsPublished = *req.IsPublished
	}

	if err := s.repo.Project.Create(ctx, p); err != nil {
		s.logger.Error("创建项目失败", zap.String("user_id", actor.UserID), zap.Error(err))
		return nil, err
	}

	// 重新加载以带出所有者信息
	created, err := s.load(ctx, p.ProjectID)
	if err != nil {
		return nil, err
	}
	return toProjectResponse(created), nil
}

// ────────────────────── List ──────────────────────

func (s *projectService) ListPublic(ctx context.Context, filter *dto.ProjectFilter) ([]dto.ProjectResponse, error) {
	q := repository.ProjectQuery{PublishedOnly: true}
	if filter != nil {
		q.Year = filter.Year
		if filter.Category != "" {
			c := model.Category(filter.Category)
			if !c.Valid() {
				return nil, ErrInvalidCategory
			}
			q.Category = &c
		}
		q.DeptNameContains = strings.TrimSpace(filter.DeptName)
	}

	projects, err := s.repo.Project.List(ctx, q)
	if err != nil {
		s.logger.Error("查询公开项目失败", zap.Error(err))
		return nil, err
	}
	return toProjectResponses(projects), nil
}

func (s *projectService) ListForActor(ctx context.Context, actor *policy.Actor) ([]dto.ProjectResponse, error) {
	scope := policy.ScopeForList(actor)
	q := repository.ProjectQuery{}
	if !scope.All {
		q.OwnerID = scope.OwnerID
	}

	projects, err := s.repo.Project.List(ctx, q)
	if err != nil {
		s.logger.Error("查询管理列表失败", zap.Error(err))
		return nil, err
	}
	return toProjectResponses(projects), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *projectService) GetByID(ctx context.Context, id string, actor *policy.Actor) (*dto.ProjectResponse, error) {
	p, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanRead(p, actor) {
		return nil, ErrProjectNotFound
	}
	return toProjectResponse(p), nil
}

// ────────────────────── Update ──────────────────────

func (s *projectService) Update(ctx context.Context, id string, req *dto.UpdateProjectRequest, actor *policy.Actor) (*dto.ProjectResponse, error) {
	p, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.RequireWrite(p, actor); err != nil {
		return nil, err
	}

	if err := applyProjectPatch(p, req); err != nil {
		return nil, err
	}

	if err := s.repo.Project.Update(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		s.logger.Error("更新项目失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toProjectResponse(p), nil
}

// applyProjectPatch 仅合并请求中出现的字段
func applyProjectPatch(p *model.EsgProject, req *dto.UpdateProjectRequest) error {
	if req.Year != nil {
		p.Year = *req.Year
	}
	if req.DeptName != nil {
		if isBlank(*req.DeptName) {
			return requiredField("deptName")
		}
		p.DeptName = *req.DeptName
	}
	if req.Title != nil {
		if isBlank(*req.Title) {
			return requiredField("title")
		}
		p.Title = *req.Title
	}
	if req.Category != nil {
		c := model.Category(*req.Category)
		if !c.Valid() {
			return ErrInvalidCategory
		}
		p.Category = c
	}
	if req.Task != nil {
		if isBlank(*req.Task) {
			return requiredField("task")
		}
		p.Task = *req.Task
	}
	if req.Qualitative != nil {
		if isBlank(*req.Qualitative) {
			return requiredField("qualitative")
		}
		p.Qualitative = *req.Qualitative
	}
	if req.Budget != nil {
		budget, err := normalizeAmount(req.Budget, ErrInvalidBudget)
		if err != nil {
			return err
		}
		p.Budget = budget
	}

	// 可选文本：传入空串表示清空
	if req.Thumbnail != nil {
		p.Thumbnail = optionalText(req.Thumbnail)
	}
	if req.OneLineSummary != nil {
		p.OneLineSummary = optionalText(req.OneLineSummary)
	}
	if req.Quantitative != nil {
		p.Quantitative = optionalText(req.Quantitative)
	}
	if req.Shortcoming != nil {
		p.Shortcoming = optionalText(req.Shortcoming)
	}
	if req.Improvement != nil {
		p.Improvement = optionalText(req.Improvement)
	}

	if req.Images != nil {
		p.Images = stringList(*req.Images)
	}
	if req.Documents != nil {
		p.Documents = stringList(*req.Documents)
	}
	if req.IsPublished != nil {
		p.IsPublished = *req.IsPublished
	}
	return nil
}

// ────────────────────── Delete ──────────────────────

func (s *projectService) Delete(ctx context.Context, id string, actor *policy.Actor) error {
	p, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.RequireDelete(p, actor); err != nil {
		return err
	}

	if err := s.repo.Project.Delete(ctx, id); err != nil {
		s.logger.Error("删除项目失败", zap.String("id", id), zap.Error(err))
		return err
	}
	s.logger.Info("项目已删除", zap.String("id", id), zap.String("by", actor.UserID))
	return nil
}

// ────────────────────── Years / Stats ──────────────────────

func (s *projectService) Years(ctx context.Context) ([]int, error) {
	years, err := s.repo.Project.PublishedYears(ctx)
	if err != nil {
		s.logger.Error("查询年份失败", zap.Error(err))
		return nil, err
	}
	return years, nil
}

func (s *projectService) Stats(ctx context.Context) (*dto.ProjectStatsResponse, error) {
	stats, err := s.repo.Project.Stats(ctx)
	if err != nil {
		s.logger.Error("查询项目统计失败", zap.Error(err))
		return nil, err
	}

	byCategory := make(map[string]int64, len(model.Categories))
	for _, c := range model.Categories {
		byCategory[string(c)] = stats.ByCategory[c]
	}
	return &dto.ProjectStatsResponse{
		Total:      stats.Total,
		Published:  stats.Published,
		ByCategory: byCategory,
	}, nil
}

// ── 内部辅助 ──

// load 按 ID 加载项目，不区分公开状态
func (s *projectService) load(ctx context.Context, id string) (*model.EsgProject, error) {
	p, err := s.repo.Project.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		s.logger.Error("查询项目失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return p, nil
}

// maxAmount NUMERIC(15,2) 列可容纳的最大金额
const maxAmount = 9999999999999.99

// normalizeAmount 校验金额范围，并按列精度四舍五入到两位小数，使返回值与落库值一致
func normalizeAmount(v *float64, errInvalid error) (*float64, error) {
	if v == nil {
		return nil, nil
	}
	if math.IsNaN(*v) || *v < 0 || *v > maxAmount {
		return nil, errInvalid
	}
	rounded := math.Round(*v*100) / 100
	return &rounded, nil
}

func validateProjectFields(deptName, title, task, qualitative string) error {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"deptName", deptName},
		{"title", title},
		{"task", task},
		{"qualitative", qualitative},
	} {
		if isBlank(f.value) {
			return requiredField(f.name)
		}
	}
	return nil
}

func requiredField(name string) error {
	return pkgerrors.New(pkgerrors.ErrValidation, name+" 不能为空")
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// optionalText 空串与缺省等价，统一存为 NULL
func optionalText(s *string) *string {
	if s == nil || isBlank(*s) {
		return nil
	}
	v := *s
	return &v
}

// stringList 复制字符串列表，nil 视为空列表
func stringList(urls []string) datatypes.JSONSlice[string] {
	out := make(datatypes.JSONSlice[string], 0, len(urls))
	return append(out, urls...)
}

func toProjectResponse(p *model.EsgProject) *dto.ProjectResponse {
	resp := &dto.ProjectResponse{
		ID:             p.ProjectID,
		Year:           p.Year,
		DeptName:       p.DeptName,
		Title:          p.Title,
		Category:       string(p.Category),
		Task:           p.Task,
		Thumbnail:      p.Thumbnail,
		OneLineSummary: p.OneLineSummary,
		Quantitative:   p.Quantitative,
		Qualitative:    p.Qualitative,
		Budget:         p.Budget,
		Shortcoming:    p.Shortcoming,
		Improvement:    p.Improvement,
		Images:         []string(stringList(p.Images)),
		Documents:      []string(stringList(p.Documents)),
		IsPublished:    p.IsPublished,
		UserID:         p.UserID,
		HasResult:      p.Result != nil,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.User != nil {
		u := toUserResponse(p.User)
		resp.User = &u
	}
	return resp
}

func toProjectResponses(projects []model.EsgProject) []dto.ProjectResponse {
	result := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		result = append(result, *toProjectResponse(&projects[i]))
	}
	return result
}
