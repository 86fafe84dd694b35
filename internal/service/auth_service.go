package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/adventistcho-art/ESG-Archive/config"
	"github.com/adventistcho-art/ESG-Archive/internal/dto"
	"github.com/adventistcho-art/ESG-Archive/internal/model"
	"github.com/adventistcho-art/ESG-Archive/internal/repository"
	pkgerrors "github.com/adventistcho-art/ESG-Archive/pkg/errors"
	"github.com/adventistcho-art/ESG-Archive/pkg/jwt"
	"github.com/adventistcho-art/ESG-Archive/pkg/metrics"
	"github.com/adventistcho-art/ESG-Archive/pkg/redis"
)

// ── 认证模块业务错误 ──

var (
	// 邮箱不存在与密码错误返回同一个错误，不暴露具体原因
	ErrInvalidCredentials = pkgerrors.New(pkgerrors.ErrUnauthorized, "邮箱或密码错误")
	ErrEmailTaken         = pkgerrors.New(pkgerrors.ErrConflict, "该邮箱已被注册")
	ErrDeptNameRequired   = pkgerrors.New(pkgerrors.ErrValidation, "deptName 不能为空")
	ErrPasswordTooLong    = pkgerrors.New(pkgerrors.ErrValidation, "password 不能超过 72 字节")
)

// maxPasswordBytes bcrypt 只接受 72 字节以内的输入，按字节而非字符计算
const maxPasswordBytes = 72

// dummyHash 邮箱不存在时仍执行一次比对，使两种失败的耗时接近
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("esg-archive-dummy"), bcrypt.DefaultCost)

// AuthService 认证业务接口
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	// Logout 将 Token 加入黑名单直至其过期
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
}

type authService struct {
	cfg     *config.Config
	repo    *repository.Repository
	jwtMgr  *jwt.Manager
	rdb     *redis.Client
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewAuthService 创建 AuthService 实例；rdb、m 可为 nil
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	m *metrics.Metrics,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:     cfg,
		repo:    repo,
		jwtMgr:  jwtMgr,
		rdb:     rdb,
		metrics: m,
		logger:  logger,
	}
}

// ────────────────────── Register ──────────────────────

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	email := normalizeEmail(req.Email)
	deptName := strings.TrimSpace(req.DeptName)
	if deptName == "" {
		return nil, ErrDeptNameRequired
	}
	if len(req.Password) > maxPasswordBytes {
		return nil, ErrPasswordTooLong
	}

	// 1. 邮箱查重
	if _, err := s.repo.User.GetByEmail(ctx, email); err == nil {
		s.metrics.RecordAuth("register", "conflict")
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	// 2. 哈希密码 (bcrypt)
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost())
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, ErrPasswordTooLong
		}
		s.logger.Error("密码哈希失败", zap.Error(err))
		return nil, err
	}

	// 3. 持久化，并发注册由唯一索引兜底
	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		DeptName:     deptName,
		Role:         model.RoleUser,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			s.metrics.RecordAuth("register", "conflict")
			return nil, ErrEmailTaken
		}
		s.logger.Error("创建用户失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("新用户注册", zap.String("user_id", user.UserID), zap.String("dept_name", user.DeptName))
	s.metrics.RecordAuth("register", "success")
	return s.issue(user)
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	// 1. 查询用户
	user, err := s.repo.User.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
			s.metrics.RecordAuth("login", "failure")
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	// 2. 验证密码 (bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.metrics.RecordAuth("login", "failure")
		return nil, ErrInvalidCredentials
	}

	s.metrics.RecordAuth("login", "success")
	return s.issue(user)
}

// ────────────────────── Logout ──────────────────────

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil || jti == "" {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := s.rdb.BlacklistToken(ctx, jti, ttl); err != nil {
		// Redis 故障不影响客户端登出
		s.logger.Warn("写入 Token 黑名单失败", zap.String("jti", jti), zap.Error(err))
	}
	return nil
}

// ── 内部辅助 ──

// issue 签发 Token 并构造响应
func (s *authService) issue(user *model.User) (*dto.TokenResponse, error) {
	token, err := s.jwtMgr.GenerateAccessToken(user.UserID, user.Email, string(user.Role))
	if err != nil {
		s.logger.Error("生成 AccessToken 失败", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: token,
		ExpiresIn:   int(s.jwtMgr.AccessTokenTTL().Seconds()),
		User:        toUserResponse(user),
	}, nil
}

func (s *authService) bcryptCost() int {
	cost := s.cfg.Auth.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}
	return cost
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.UserID,
		Email:    u.Email,
		DeptName: u.DeptName,
		Role:     string(u.Role),
	}
}
