package service

import (
	"go.uber.org/zap"

	"github.com/adventistcho-art/ESG-Archive/config"
	"github.com/adventistcho-art/ESG-Archive/internal/repository"
	"github.com/adventistcho-art/ESG-Archive/pkg/jwt"
	"github.com/adventistcho-art/ESG-Archive/pkg/metrics"
	"github.com/adventistcho-art/ESG-Archive/pkg/redis"
	"github.com/adventistcho-art/ESG-Archive/pkg/storage"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth       AuthService
	User       UserService
	Project    ProjectService
	Result     ResultService
	Plan       PlanService
	WhitePaper WhitePaperService
	Upload     UploadService
	Export     ExportService
}

// NewService 创建 Service 聚合；rdb、m 可为 nil
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	store storage.Store,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(cfg, repo, jwtMgr, rdb, m, logger),
		User:       NewUserService(repo, logger),
		Project:    NewProjectService(repo, logger),
		Result:     NewResultService(repo, logger),
		Plan:       NewPlanService(repo, logger),
		WhitePaper: NewWhitePaperService(repo, logger),
		Upload:     NewUploadService(&cfg.Upload, store, m, logger),
		Export:     NewExportService(repo, logger),
	}
}
