package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/adventistcho-art/ESG-Archive/internal/dto"
	"github.com/adventistcho-art/ESG-Archive/internal/model"
	"github.com/adventistcho-art/ESG-Archive/internal/policy"
	"github.com/adventistcho-art/ESG-Archive/internal/repository"
	pkgerrors "github.com/adventistcho-art/ESG-Archive/pkg/errors"
)

// ── 白皮书业务错误 ──

var (
	ErrWhitePaperNotFound = pkgerrors.New(pkgerrors.ErrNotFound, "该年度白皮书不存在")
	ErrWhitePaperExists   = pkgerrors.New(pkgerrors.ErrConflict, "该年度白皮书已发布")
	ErrNoPublishedProject = pkgerrors.New(pkgerrors.ErrBadRequest, "该年度没有已公开的项目")
)

// 自动生成的亮点条数上限
const maxGeneratedHighlights = 6

// WhitePaperService 年度白皮书业务接口
type WhitePaperService interface {
	List(ctx context.Context) ([]model.EsgWhitePaper, error)
	Years(ctx context.Context) ([]int, error)
	GetByYear(ctx context.Context, year int) (*model.EsgWhitePaper, error)
	// Compile 汇编某年度已公开项目生成白皮书，每年仅一份
	Compile(ctx context.Context, year int, req *dto.CompileWhitePaperRequest, actor *policy.Actor) (*model.EsgWhitePaper, error)
}

type whitePaperService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewWhitePaperService 创建 WhitePaperService 实例
func NewWhitePaperService(repo *repository.Repository, logger *zap.Logger) WhitePaperService {
	return &whitePaperService{repo: repo, logger: logger, now: time.Now}
}

// ────────────────────── 查询 ──────────────────────

func (s *whitePaperService) List(ctx context.Context) ([]model.EsgWhitePaper, error) {
	papers, err := s.repo.WhitePaper.List(ctx)
	if err != nil {
		s.logger.Error("查询白皮书列表失败", zap.Error(err))
		return nil, err
	}
	return papers, nil
}

func (s *whitePaperService) Years(ctx context.Context) ([]int, error) {
	years, err := s.repo.WhitePaper.Years(ctx)
	if err != nil {
		s.logger.Error("查询白皮书年份失败", zap.Error(err))
		return nil, err
	}
	return years, nil
}

func (s *whitePaperService) GetByYear(ctx context.Context, year int) (*model.EsgWhitePaper, error) {
	paper, err := s.repo.WhitePaper.GetByYear(ctx, year)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWhitePaperNotFound
		}
		s.logger.Error("查询白皮书失败", zap.Int("year", year), zap.Error(err))
		return nil, err
	}
	return paper, nil
}

// ═══════════════════════════════════════════════════════════
// Compile — 汇编年度白皮书
// ═══════════════════════════════════════════════════════════
//
// 分类汇总口径：
//   - totalProjects：该分类已公开项目数
//   - totalBudget：预算之和（未填视为 0）
//   - completedProjects：已提交成果报告的项目数
//   - highlights：项目一句话摘要（缺省时取标题）
//   - keyResults：项目定量成果文本

func (s *whitePaperService) Compile(ctx context.Context, year int, req *dto.CompileWhitePaperRequest, actor *policy.Actor) (*model.EsgWhitePaper, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}

	// 1. 每年仅一份
	if _, err := s.repo.WhitePaper.GetByYear(ctx, year); err == nil {
		return nil, ErrWhitePaperExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询白皮书失败", zap.Int("year", year), zap.Error(err))
		return nil, err
	}

	// 2. 取该年度已公开项目
	projects, err := s.repo.Project.List(ctx, repository.ProjectQuery{PublishedOnly: true, Year: &year})
	if err != nil {
		s.logger.Error("查询年度项目失败", zap.Int("year", year), zap.Error(err))
		return nil, err
	}
	if len(projects) == 0 {
		return nil, ErrNoPublishedProject
	}

	// 3. 分类汇总
	summaries := summarize(projects)
	var totalBudget float64
	for _, c := range model.Categories {
		totalBudget += summaries[c].TotalBudget
	}

	paper := &model.EsgWhitePaper{
		Year:               year,
		Title:              strings.TrimSpace(req.Title),
		Overview:           strings.TrimSpace(req.Overview),
		Highlights:         stringList(req.Highlights),
		TotalBudget:        totalBudget,
		TotalProjects:      len(projects),
		EnvironmentSummary: datatypes.NewJSONType(summaries[model.CategoryEnvironment]),
		SocialSummary:      datatypes.NewJSONType(summaries[model.CategorySocial]),
		GovernanceSummary:  datatypes.NewJSONType(summaries[model.CategoryGovernance]),
		PublishedAt:        s.now(),
	}
	if paper.Title == "" {
		paper.Title = fmt.Sprintf("%d ESG 경영 백서", year)
	}
	if paper.Overview == "" {
		paper.Overview = fmt.Sprintf("%d년 환경·사회·거버넌스 영역에서 총 %d개 프로젝트를 추진하였습니다.", year, len(projects))
	}
	if len(paper.Highlights) == 0 {
		paper.Highlights = generatedHighlights(summaries)
	}

	// 4. 持久化，并发汇编由唯一索引兜底
	if err := s.repo.WhitePaper.Create(ctx, paper); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrWhitePaperExists
		}
		s.logger.Error("创建白皮书失败", zap.Int("year", year), zap.Error(err))
		return nil, err
	}

	s.logger.Info("白皮书已发布", zap.Int("year", year), zap.Int("projects", len(projects)))
	return paper, nil
}

// summarize 按分类汇总项目；三个分类总是存在
func summarize(projects []model.EsgProject) map[model.Category]model.CategorySummary {
	out := make(map[model.Category]model.CategorySummary, len(model.Categories))
	for _, c := range model.Categories {
		out[c] = model.CategorySummary{Highlights: []string{}, KeyResults: []string{}}
	}

	for i := range projects {
		p := &projects[i]
		sum := out[p.Category]
		sum.TotalProjects++
		if p.Budget != nil {
			sum.TotalBudget += *p.Budget
		}
		if p.Result != nil {
			sum.CompletedProjects++
		}
		if p.OneLineSummary != nil {
			sum.Highlights = append(sum.Highlights, *p.OneLineSummary)
		} else {
			sum.Highlights = append(sum.Highlights, p.Title)
		}
		if p.Quantitative != nil {
			sum.KeyResults = append(sum.KeyResults, *p.Quantitative)
		}
		out[p.Category] = sum
	}
	return out
}

// generatedHighlights 轮流从各分类取亮点
func generatedHighlights(summaries map[model.Category]model.CategorySummary) datatypes.JSONSlice[string] {
	out := make(datatypes.JSONSlice[string], 0, maxGeneratedHighlights)
	for i := 0; len(out) < maxGeneratedHighlights; i++ {
		added := false
		for _, c := range model.Categories {
			hs := summaries[c].Highlights
			if i < len(hs) && len(out) < maxGeneratedHighlights {
				out = append(out, hs[i])
				added = true
			}
		}
		if !added {
			break
		}
	}
	return out
}
