// Command seed 初始化管理员、部门账号与示例数据，可重复执行
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/adventistcho-art/ESG-Archive/config"
	"github.com/adventistcho-art/ESG-Archive/internal/model"
	"github.com/adventistcho-art/ESG-Archive/internal/repository"
	"github.com/adventistcho-art/ESG-Archive/pkg/database"
	applogger "github.com/adventistcho-art/ESG-Archive/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
	}
	defer sqlDB.Close()
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}

	s := &seeder{repo: repository.NewRepository(db), cost: cfg.Auth.BcryptCost, logger: logger}
	if err := s.run(context.Background()); err != nil {
		logger.Fatal("初始化数据失败", zap.Error(err))
	}
	logger.Info("初始化数据完成")
}

type seeder struct {
	repo   *repository.Repository
	cost   int
	logger *zap.Logger
}

func (s *seeder) run(ctx context.Context) error {
	users := make(map[string]*model.User, len(seedUsers))
	for _, su := range seedUsers {
		u, err := s.ensureUser(ctx, su)
		if err != nil {
			return err
		}
		users[su.Email] = u
	}

	for _, sp := range seedProjects {
		owner, ok := users[sp.OwnerEmail]
		if !ok {
			return fmt.Errorf("示例项目 %q 的所有者 %s 不存在", sp.Project.Title, sp.OwnerEmail)
		}
		if err := s.ensureProject(ctx, owner, sp.Project); err != nil {
			return err
		}
	}

	for i := range seedPlans {
		if err := s.ensurePlan(ctx, seedPlans[i]); err != nil {
			return err
		}
	}
	return nil
}

// ensureUser 按邮箱幂等创建账号；已存在时不修改密码
func (s *seeder) ensureUser(ctx context.Context, su seedUser) (*model.User, error) {
	u, err := s.repo.User.GetByEmail(ctx, su.Email)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cost := s.cost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), cost)
	if err != nil {
		return nil, err
	}
	u = &model.User{Email: su.Email, PasswordHash: string(hash), DeptName: su.DeptName, Role: su.Role}
	if err := s.repo.User.Create(ctx, u); err != nil {
		return nil, err
	}
	s.logger.Info("已创建账号", zap.String("email", su.Email), zap.String("role", string(su.Role)))
	return u, nil
}

// ensureProject 按 标题+年份 幂等创建项目
func (s *seeder) ensureProject(ctx context.Context, owner *model.User, p model.EsgProject) error {
	existing, err := s.repo.Project.List(ctx, repository.ProjectQuery{Year: &p.Year})
	if err != nil {
		return err
	}
	for i := range existing {
		if existing[i].Title == p.Title {
			return nil
		}
	}

	p.UserID = owner.UserID
	if err := s.repo.Project.Create(ctx, &p); err != nil {
		return err
	}
	s.logger.Info("已创建示例项目", zap.Int("year", p.Year), zap.String("title", p.Title))
	return nil
}

// ensurePlan 按 标题+年份 幂等创建计划
func (s *seeder) ensurePlan(ctx context.Context, p model.EsgPlan) error {
	existing, err := s.repo.Plan.List(ctx, repository.PlanQuery{Year: &p.Year})
	if err != nil {
		return err
	}
	for i := range existing {
		if existing[i].Title == p.Title {
			return nil
		}
	}
	if err := s.repo.Plan.Create(ctx, &p); err != nil {
		return err
	}
	s.logger.Info("已创建示例计划", zap.Int("year", p.Year), zap.String("title", p.Title))
	return nil
}
