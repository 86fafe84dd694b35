package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/adventistcho-art/ESG-Archive/internal/dto"
	"github.com/adventistcho-art/ESG-Archive/internal/model"
	"github.com/adventistcho-art/ESG-Archive/internal/policy"
	"github.com/adventistcho-art/ESG-Archive/internal/repository"
	pkgerrors "github.com/adventistcho-art/ESG-Archive/pkg/errors"
)

// ── 成果报告业务错误 ──

var (
	ErrResultNotFound      = pkgerrors.New(pkgerrors.ErrNotFound, "成果报告不存在")
	ErrResultExists        = pkgerrors.New(pkgerrors.ErrConflict, "该项目已提交成果报告")
	ErrInvalidBudgetUsed   = pkgerrors.New(pkgerrors.ErrValidation, "budgetUsed 须在 0 到 9999999999999.99 之间")
	ErrCompletedAtRequired = pkgerrors.New(pkgerrors.ErrValidation, "completedAt 不能为空")
)

// ResultService 项目成果报告业务接口
// 读取遵循项目的可见性规则，写入需要对项目有修改权限
type ResultService interface {
	Get(ctx context.Context, projectID string, actor *policy.Actor) (*model.ProjectResult, error)
	Create(ctx context.Context, projectID string, req *dto.CreateResultRequest, actor *policy.Actor) (*model.ProjectResult, error)
	Update(ctx context.Context, projectID string, req *dto.UpdateResultRequest, actor *policy.Actor) (*model.ProjectResult, error)
}

type resultService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewResultService 创建 ResultService 实例
func NewResultService(repo *repository.Repository, logger *zap.Logger) ResultService {
	return &resultService{repo: repo, logger: logger}
}

// ────────────────────── Get ──────────────────────

func (s *resultService) Get(ctx context.Context, projectID string, actor *policy.Actor) (*model.ProjectResult, error) {
	p, err := s.loadProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !policy.CanRead(p, actor) {
		return nil, ErrProjectNotFound
	}
	return s.loadResult(ctx, projectID)
}

// ────────────────────── Create ──────────────────────

func (s *resultService) Create(ctx context.Context, projectID string, req *dto.CreateResultRequest, actor *policy.Actor) (*model.ProjectResult, error) {
	p, err := s.loadProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := policy.RequireWrite(p, actor); err != nil {
		return nil, err
	}

	for _, f := range []struct {
		name  string
		value string
	}{
		{"summary", req.Summary},
		{"achievement", req.Achievement},
		{"qualitativeResult", req.QualitativeResult},
	} {
		if isBlank(f.value) {
			return nil, requiredField(f.name)
		}
	}
	if req.CompletedAt.IsZero() {
		return nil, ErrCompletedAtRequired
	}
	budgetUsed, err := normalizeAmount(req.BudgetUsed, ErrInvalidBudgetUsed)
	if err != nil {
		return nil, err
	}
	if p.Result != nil {
		return nil, ErrResultExists
	}

	result := &model.ProjectResult{
		ProjectID:          projectID,
		Summary:            req.Summary,
		Achievement:        req.Achievement,
		QuantitativeResult: optionalText(req.QuantitativeResult),
		QualitativeResult:  req.QualitativeResult,
		BudgetUsed:         budgetUsed,
		Issues:             optionalText(req.Issues),
		NextSteps:          optionalText(req.NextSteps),
		Images:             stringList(req.Images),
		Documents:          stringList(req.Documents),
		CompletedAt:        req.CompletedAt,
	}
	if err := s.repo.Result.Create(ctx, result); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrResultExists
		}
		s.logger.Error("创建成果报告失败", zap.String("project_id", projectID), zap.Error(err))
		return nil, err
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *resultService) Update(ctx context.Context, projectID string, req *dto.UpdateResultRequest, actor *policy.Actor) (*model.ProjectResult, error) {
	p, err := s.loadProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := policy.RequireWrite(p, actor); err != nil {
		return nil, err
	}

	result, err := s.loadResult(ctx, projectID)
	if err != nil {
		return nil, err
	}

	for _, f := range []struct {
		name  string
		value *string
		dst   *string
	}{
		{"summary", req.Summary, &result.Summary},
		{"achievement", req.Achievement, &result.Achievement},
		{"qualitativeResult", req.QualitativeResult, &result.QualitativeResult},
	} {
		if f.value == nil {
			continue
		}
		if isBlank(*f.value) {
			return nil, requiredField(f.name)
		}
		*f.dst = *f.value
	}
	if req.QuantitativeResult != nil {
		result.QuantitativeResult = optionalText(req.QuantitativeResult)
	}
	if req.Issues != nil {
		result.Issues = optionalText(req.Issues)
	}
	if req.NextSteps != nil {
		result.NextSteps = optionalText(req.NextSteps)
	}
	if req.BudgetUsed != nil {
		budgetUsed, err := normalizeAmount(req.BudgetUsed, ErrInvalidBudgetUsed)
		if err != nil {
			return nil, err
		}
		result.BudgetUsed = budgetUsed
	}
	if req.Images != nil {
		result.Images = stringList(*req.Images)
	}
	if req.Documents != nil {
		result.Documents = stringList(*req.Documents)
	}
	if req.CompletedAt != nil {
		if req.CompletedAt.IsZero() {
			return nil, ErrCompletedAtRequired
		}
		result.CompletedAt = *req.CompletedAt
	}

	if err := s.repo.Result.Update(ctx, result); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResultNotFound
		}
		s.logger.Error("更新成果报告失败", zap.String("project_id", projectID), zap.Error(err))
		return nil, err
	}
	return result, nil
}

// ── 内部辅助 ──

func (s *resultService) loadProject(ctx context.Context, projectID string) (*model.EsgProject, error) {
	p, err := s.repo.Project.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		s.logger.Error("查询项目失败", zap.String("id", projectID), zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (s *resultService) loadResult(ctx context.Context, projectID string) (*model.ProjectResult, error) {
	result, err := s.repo.Result.GetByProjectID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResultNotFound
		}
		s.logger.Error("查询成果报告失败", zap.String("project_id", projectID), zap.Error(err))
		return nil, err
	}
	return result, nil
}
