package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/adventistcho-art/ESG-Archive/internal/model"
)

// ProjectQuery 项目列表查询条件，字段之间为 AND 关系
type ProjectQuery struct {
	PublishedOnly    bool
	Year             *int
	Category         *model.Category
	DeptNameContains string
	OwnerID          string // 非空时仅返回该用户的项目
}

// ProjectStats 项目统计
type ProjectStats struct {
	Total      int64
	Published  int64
	ByCategory map[model.Category]int64
}

// ProjectRepository ESG 项目数据访问接口
type ProjectRepository interface {
	Create(ctx context.Context, project *model.EsgProject) error
	GetByID(ctx context.Context, id string) (*model.EsgProject, error)
	List(ctx context.Context, q ProjectQuery) ([]model.EsgProject, error)
	Update(ctx context.Context, project *model.EsgProject) error
	Delete(ctx context.Context, id string) error
	PublishedYears(ctx context.Context) ([]int, error)
	Stats(ctx context.Context) (*ProjectStats, error)
}

type projectRepo struct {
	db *gorm.DB
}

// NewProjectRepo 创建 ProjectRepository 实例
func NewProjectRepo(db *gorm.DB) ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, project *model.EsgProject) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(project).Error
}

// GetByID 不区分公开状态；调用方自行决定可见性
func (r *projectRepo) GetByID(ctx context.Context, id string) (*model.EsgProject, error) {
	if !validID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var project model.EsgProject
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Result").
		Where("project_id = ?", id).
		First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// List 按年份倒序、同年内按创建时间倒序
func (r *projectRepo) List(ctx context.Context, q ProjectQuery) ([]model.EsgProject, error) {
	db := r.db.WithContext(ctx).Model(&model.EsgProject{})

	if q.PublishedOnly {
		db = db.Where("is_published = ?", true)
	}
	if q.Year != nil {
		db = db.Where("year = ?", *q.Year)
	}
	if q.Category != nil {
		db = db.Where("category = ?", *q.Category)
	}
	if q.DeptNameContains != "" {
		db = db.Where(`dept_name LIKE ? ESCAPE '\'`, containsPattern(q.DeptNameContains))
	}
	if q.OwnerID != "" {
		db = db.Where("user_id = ?", q.OwnerID)
	}

	projects := make([]model.EsgProject, 0)
	err := db.Preload("User").
		Preload("Result").
		Order("year DESC").
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

// Update 覆盖保存全部字段；项目已删除时返回 gorm.ErrRecordNotFound
func (r *projectRepo) Update(ctx context.Context, project *model.EsgProject) error {
	return updateExisting(r.db.WithContext(ctx), project)
}

// Delete 物理删除，连同成果报告一起删除
func (r *projectRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&model.ProjectResult{}).Error; err != nil {
			return err
		}
		return tx.Where("project_id = ?", id).Delete(&model.EsgProject{}).Error
	})
}

func (r *projectRepo) PublishedYears(ctx context.Context) ([]int, error) {
	years := make([]int, 0)
	err := r.db.WithContext(ctx).
		Model(&model.EsgProject{}).
		Where("is_published = ?", true).
		Distinct("year").
		Order("year DESC").
		Pluck("year", &years).Error
	return years, err
}

func (r *projectRepo) Stats(ctx context.Context) (*ProjectStats, error) {
	stats := &ProjectStats{ByCategory: make(map[model.Category]int64, len(model.Categories))}
	for _, c := range model.Categories {
		stats.ByCategory[c] = 0
	}

	db := r.db.WithContext(ctx).Model(&model.EsgProject{})
	if err := db.Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&model.EsgProject{}).
		Where("is_published = ?", true).
		Count(&stats.Published).Error; err != nil {
		return nil, err
	}

	var rows []struct {
		Category model.Category
		Count    int64
	}
	if err := r.db.WithContext(ctx).Model(&model.EsgProject{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		stats.ByCategory[row.Category] = row.Count
	}

	return stats, nil
}
