package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/adventistcho-art/ESG-Archive/internal/model"
)

// ResultRepository 项目成果报告数据访问接口
type ResultRepository interface {
	Create(ctx context.Context, result *model.ProjectResult) error
	GetByProjectID(ctx context.Context, projectID string) (*model.ProjectResult, error)
	Update(ctx context.Context, result *model.ProjectResult) error
}

type resultRepo struct {
	db *gorm.DB
}

// NewResultRepo 创建 ResultRepository 实例
func NewResultRepo(db *gorm.DB) ResultRepository {
	return &resultRepo{db: db}
}

// Create project_id 唯一索引保证一个项目只有一份成果报告
func (r *resultRepo) Create(ctx context.Context, result *model.ProjectResult) error {
	return r.db.WithContext(ctx).Create(result).Error
}

func (r *resultRepo) GetByProjectID(ctx context.Context, projectID string) (*model.ProjectResult, error) {
	if !validID(projectID) {
		return nil, gorm.ErrRecordNotFound
	}
	var result model.ProjectResult
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepo) Update(ctx context.Context, result *model.ProjectResult) error {
	return updateExisting(r.db.WithContext(ctx), result)
}
