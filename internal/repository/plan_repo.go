package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/adventistcho-art/ESG-Archive/internal/model"
)

// PlanQuery 年度计划列表查询条件
type PlanQuery struct {
	Year     *int
	Category *model.Category
}

// PlanRepository 年度 ESG 计划数据访问接口
type PlanRepository interface {
	Create(ctx context.Context, plan *model.EsgPlan) error
	GetByID(ctx context.Context, id string) (*model.EsgPlan, error)
	List(ctx context.Context, q PlanQuery) ([]model.EsgPlan, error)
	Update(ctx context.Context, plan *model.EsgPlan) error
	Delete(ctx context.Context, id string) error
	Years(ctx context.Context) ([]int, error)
}

type planRepo struct {
	db *gorm.DB
}

// NewPlanRepo 创建 PlanRepository 实例
func NewPlanRepo(db *gorm.DB) PlanRepository {
	return &planRepo{db: db}
}

func (r *planRepo) Create(ctx context.Context, plan *model.EsgPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *planRepo) GetByID(ctx context.Context, id string) (*model.EsgPlan, error) {
	if !validID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var plan model.EsgPlan
	if err := r.db.WithContext(ctx).Where("plan_id = ?", id).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// List 按年份倒序，其次分类、创建时间
func (r *planRepo) List(ctx context.Context, q PlanQuery) ([]model.EsgPlan, error) {
	db := r.db.WithContext(ctx).Model(&model.EsgPlan{})
	if q.Year != nil {
		db = db.Where("year = ?", *q.Year)
	}
	if q.Category != nil {
		db = db.Where("category = ?", *q.Category)
	}

	plans := make([]model.EsgPlan, 0)
	err := db.Order("year DESC").
		Order("category ASC").
		Order("created_at ASC").
		Find(&plans).Error
	return plans, err
}

func (r *planRepo) Update(ctx context.Context, plan *model.EsgPlan) error {
	return updateExisting(r.db.WithContext(ctx), plan)
}

func (r *planRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("plan_id = ?", id).Delete(&model.EsgPlan{}).Error
}

func (r *planRepo) Years(ctx context.Context) ([]int, error) {
	years := make([]int, 0)
	err := r.db.WithContext(ctx).
		Model(&model.EsgPlan{}).
		Distinct("year").
		Order("year DESC").
		Pluck("year", &years).Error
	return years, err
}
