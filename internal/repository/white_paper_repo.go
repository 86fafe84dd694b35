package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/adventistcho-art/ESG-Archive/internal/model"
)

// WhitePaperRepository 年度白皮书数据访问接口
type WhitePaperRepository interface {
	Create(ctx context.Context, paper *model.EsgWhitePaper) error
	GetByYear(ctx context.Context, year int) (*model.EsgWhitePaper, error)
	List(ctx context.Context) ([]model.EsgWhitePaper, error)
	Years(ctx context.Context) ([]int, error)
}

type whitePaperRepo struct {
	db *gorm.DB
}

// NewWhitePaperRepo 创建 WhitePaperRepository 实例
func NewWhitePaperRepo(db *gorm.DB) WhitePaperRepository {
	return &whitePaperRepo{db: db}
}

// Create year 唯一索引冲突时返回 gorm.ErrDuplicatedKey
func (r *whitePaperRepo) Create(ctx context.Context, paper *model.EsgWhitePaper) error {
	return r.db.WithContext(ctx).Create(paper).Error
}

func (r *whitePaperRepo) GetByYear(ctx context.Context, year int) (*model.EsgWhitePaper, error) {
	var paper model.EsgWhitePaper
	if err := r.db.WithContext(ctx).Where("year = ?", year).First(&paper).Error; err != nil {
		return nil, err
	}
	return &paper, nil
}

func (r *whitePaperRepo) List(ctx context.Context) ([]model.EsgWhitePaper, error) {
	papers := make([]model.EsgWhitePaper, 0)
	err := r.db.WithContext(ctx).Order("year DESC").Find(&papers).Error
	return papers, err
}

func (r *whitePaperRepo) Years(ctx context.Context) ([]int, error) {
	years := make([]int, 0)
	err := r.db.WithContext(ctx).
		Model(&model.EsgWhitePaper{}).
		Order("year DESC").
		Pluck("year", &years).Error
	return years, err
}
