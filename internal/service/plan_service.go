package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/adventistcho-art/ESG-Archive/internal/dto"
	"github.com/adventistcho-art/ESG-Archive/internal/model"
	"github.com/adventistcho-art/ESG-Archive/internal/policy"
	"github.com/adventistcho-art/ESG-Archive/internal/repository"
	pkgerrors "github.com/adventistcho-art/ESG-Archive/pkg/errors"
)

// ── 年度计划业务错误 ──

var (
	ErrPlanNotFound      = pkgerrors.New(pkgerrors.ErrNotFound, "计划不存在")
	ErrInvalidPlanStatus = pkgerrors.New(pkgerrors.ErrValidation, "status 取值无效")
)

// PlanService 年度 ESG 计划业务接口
// 公开只读；写操作仅管理员
type PlanService interface {
	List(ctx context.Context, filter *dto.PlanFilter) ([]model.EsgPlan, error)
	Years(ctx context.Context) ([]int, error)
	GetByID(ctx context.Context, id string) (*model.EsgPlan, error)
	Create(ctx context.Context, req *dto.CreatePlanRequest, actor *policy.Actor) (*model.EsgPlan, error)
	Update(ctx context.Context, id string, req *dto.UpdatePlanRequest, actor *policy.Actor) (*model.EsgPlan, error)
	Delete(ctx context.Context, id string, actor *policy.Actor) error
}

type planService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPlanService 创建 PlanService 实例
func NewPlanService(repo *repository.Repository, logger *zap.Logger) PlanService {
	return &planService{repo: repo, logger: logger}
}

// ────────────────────── 查询 ──────────────────────

func (s *planService) List(ctx context.Context, filter *dto.PlanFilter) ([]model.EsgPlan, error) {
	q := repository.PlanQuery{}
	if filter != nil {
		q.Year = filter.Year
		if filter.Category != "" {
			c := model.Category(filter.Category)
			if !c.Valid() {
				return nil, ErrInvalidCategory
			}
			q.Category = &c
		}
	}

	plans, err := s.repo.Plan.List(ctx, q)
	if err != nil {
		s.logger.Error("查询计划列表失败", zap.Error(err))
		return nil, err
	}
	return plans, nil
}

func (s *planService) Years(ctx context.Context) ([]int, error) {
	years, err := s.repo.Plan.Years(ctx)
	if err != nil {
		s.logger.Error("查询计划年份失败", zap.Error(err))
		return nil, err
	}
	return years, nil
}

func (s *planService) GetByID(ctx context.Context, id string) (*model.EsgPlan, error) {
	plan, err := s.repo.Plan.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		s.logger.Error("查询计划失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return plan, nil
}

// ────────────────────── Create ──────────────────────

func (s *planService) Create(ctx context.Context, req *dto.CreatePlanRequest, actor *policy.Actor) (*model.EsgPlan, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}
	for _, f := range []struct {
		name  string
		value string
	}{
		{"title", req.Title},
		{"deptName", req.DeptName},
		{"task", req.Task},
	} {
		if isBlank(f.value) {
			return nil, requiredField(f.name)
		}
	}
	category := model.Category(req.Category)
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}
	status := model.PlanPlanned
	if req.Status != "" {
		status = model.PlanStatus(req.Status)
		if !status.Valid() {
			return nil, ErrInvalidPlanStatus
		}
	}
	budget, err := normalizeAmount(req.Budget, ErrInvalidBudget)
	if err != nil {
		return nil, err
	}

	plan := &model.EsgPlan{
		Year:        req.Year,
		Category:    category,
		Title:       req.Title,
		Description: req.Description,
		DeptName:    req.DeptName,
		Task:        req.Task,
		Goals:       stringList(req.Goals),
		KpiTargets:  toKpiTargets(req.KpiTargets),
		Budget:      budget,
		Timeline:    req.Timeline,
		Status:      status,
	}
	if err := s.repo.Plan.Create(ctx, plan); err != nil {
		s.logger.Error("创建计划失败", zap.Error(err))
		return nil, err
	}
	return plan, nil
}

// ────────────────────── Update ──────────────────────

func (s *planService) Update(ctx context.Context, id string, req *dto.UpdatePlanRequest, actor *policy.Actor) (*model.EsgPlan, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}
	plan, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Year != nil {
		plan.Year = *req.Year
	}
	if req.Category != nil {
		c := model.Category(*req.Category)
		if !c.Valid() {
			return nil, ErrInvalidCategory
		}
		plan.Category = c
	}
	for _, f := range []struct {
		name  string
		value *string
		dst   *string
	}{
		{"title", req.Title, &plan.Title},
		{"deptName", req.DeptName, &plan.DeptName},
		{"task", req.Task, &plan.Task},
	} {
		if f.value == nil {
			continue
		}
		if isBlank(*f.value) {
			return nil, requiredField(f.name)
		}
		*f.dst = *f.value
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.Timeline != nil {
		plan.Timeline = *req.Timeline
	}
	if req.Goals != nil {
		plan.Goals = stringList(*req.Goals)
	}
	if req.KpiTargets != nil {
		plan.KpiTargets = toKpiTargets(*req.KpiTargets)
	}
	if req.Budget != nil {
		budget, err := normalizeAmount(req.Budget, ErrInvalidBudget)
		if err != nil {
			return nil, err
		}
		plan.Budget = budget
	}
	if req.Status != nil {
		st := model.PlanStatus(*req.Status)
		if !st.Valid() {
			return nil, ErrInvalidPlanStatus
		}
		plan.Status = st
	}

	if err := s.repo.Plan.Update(ctx, plan); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		s.logger.Error("更新计划失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return plan, nil
}

// ────────────────────── Delete ──────────────────────

func (s *planService) Delete(ctx context.Context, id string, actor *policy.Actor) error {
	if err := policy.RequireAdmin(actor); err != nil {
		return err
	}
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Plan.Delete(ctx, id); err != nil {
		s.logger.Error("删除计划失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func toKpiTargets(in []dto.KpiTargetInput) datatypes.JSONSlice[model.KpiTarget] {
	out := make(datatypes.JSONSlice[model.KpiTarget], 0, len(in))
	for _, k := range in {
		out = append(out, model.KpiTarget{Name: k.Name, Target: k.Target, Unit: k.Unit})
	}
	return out
}
