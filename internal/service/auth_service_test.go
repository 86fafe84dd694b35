package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/adventistcho-art/ESG-Archive/config"
	"github.com/adventistcho-art/ESG-Archive/internal/dto"
	"github.com/adventistcho-art/ESG-Archive/internal/model"
	pkgerrors "github.com/adventistcho-art/ESG-Archive/pkg/errors"
	"github.com/adventistcho-art/ESG-Archive/pkg/jwt"
	"github.com/adventistcho-art/ESG-Archive/pkg/metrics"
)

// ── 测试辅助 ──

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-key-for-unit-tests",
			AccessTokenTTL: time.Hour,
			BcryptCost:     bcrypt.MinCost,
			Issuer:         "esg-archive",
		},
		Upload: config.UploadConfig{
			ImageMaxBytes:    10 << 20,
			DocumentMaxBytes: 20 << 20,
			MaxFiles:         10,
		},
	}
}

func setupTestAuthService() (AuthService, *mockRepos, *jwt.Manager) {
	cfg := testConfig()
	repo, mocks := newMockRepository()
	jwtMgr := jwt.NewManager(&cfg.Auth)
	svc := NewAuthService(cfg, repo, jwtMgr, nil, metrics.New("test"), zap.NewNop())
	return svc, mocks, jwtMgr
}

// ── Register 测试 ──

func TestAuthService_Register_Success(t *testing.T) {
	svc, mocks, jwtMgr := setupTestAuthService()

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "design@university.ac.kr",
		Password: "user1234",
		DeptName: "아트앤디자인학과",
	})
	if err != nil {
		t.Fatalf("Register 应成功: %v", err)
	}
	if resp.User.Role != string(model.RoleUser) {
		t.Errorf("期望 Role=USER，实际=%s", resp.User.Role)
	}
	if resp.ExpiresIn != 3600 {
		t.Errorf("期望 ExpiresIn=3600，实际=%d", resp.ExpiresIn)
	}

	// 密码以哈希保存
	stored, _ := mocks.users.GetByEmail(context.Background(), "design@university.ac.kr")
	if stored.PasswordHash == "user1234" {
		t.Fatal("密码不应明文保存")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("user1234")) != nil {
		t.Error("存储的哈希与原密码不匹配")
	}

	// Token 携带 sub/email/role
	claims, err := jwtMgr.ParseToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("解析 Token 失败: %v", err)
	}
	if claims.UserID() != resp.User.ID || claims.Email != "design@university.ac.kr" || claims.Role != "USER" {
		t.Errorf("Token 声明不正确: %+v", claims)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _, _ := setupTestAuthService()
	req := &dto.RegisterRequest{Email: "a@university.ac.kr", Password: "secret1", DeptName: "A"}

	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("首次注册应成功: %v", err)
	}
	_, err := svc.Register(context.Background(), req)
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("期望 ErrEmailTaken，实际: %v", err)
	}
	if !errors.Is(err, pkgerrors.ErrConflict) {
		t.Error("期望错误分类为 Conflict")
	}
}

func TestAuthService_Register_EmailCaseInsensitive(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	_, _ = svc.Register(context.Background(), &dto.RegisterRequest{Email: "Mixed@University.ac.kr", Password: "secret1", DeptName: "A"})
	_, err := svc.Register(context.Background(), &dto.RegisterRequest{Email: "mixed@university.ac.kr", Password: "secret1", DeptName: "A"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("大小写不同的同一邮箱应冲突，实际: %v", err)
	}
}

func TestAuthService_Register_BlankDeptName(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{Email: "b@university.ac.kr", Password: "secret1", DeptName: "   "})
	if !errors.Is(err, pkgerrors.ErrValidation) {
		t.Fatalf("期望 Validation 错误，实际: %v", err)
	}
}

// 30 个韩文字符为 90 字节，超过 bcrypt 上限
func TestAuthService_Register_MultibytePasswordTooLong(t *testing.T) {
	svc, mocks, _ := setupTestAuthService()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email: "long@university.ac.kr", Password: strings.Repeat("비", 30), DeptName: "D",
	})
	if !errors.Is(err, ErrPasswordTooLong) {
		t.Fatalf("期望 ErrPasswordTooLong，实际: %v", err)
	}
	if !errors.Is(err, pkgerrors.ErrValidation) {
		t.Errorf("期望 Validation 错误，实际: %v", err)
	}
	if len(mocks.users.users) != 0 {
		t.Errorf("不应创建用户，实际 %d 个", len(mocks.users.users))
	}

	// 24 个韩文字符恰好 72 字节
	if _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email: "edge@university.ac.kr", Password: strings.Repeat("비", 24), DeptName: "D",
	}); err != nil {
		t.Fatalf("72 字节密码应注册成功: %v", err)
	}
}

// ── Login 测试 ──

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, _ := setupTestAuthService()
	reg, _ := svc.Register(context.Background(), &dto.RegisterRequest{Email: "c@university.ac.kr", Password: "secret1", DeptName: "C"})

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "c@university.ac.kr", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}
	if resp.User != reg.User {
		t.Errorf("登录与注册返回的用户信息应一致: %+v vs %+v", resp.User, reg.User)
	}
	if resp.AccessToken == "" {
		t.Error("AccessToken 不应为空")
	}
}

// 邮箱不存在与密码错误返回完全相同的错误
func TestAuthService_Login_UniformFailure(t *testing.T) {
	svc, _, _ := setupTestAuthService()
	_, _ = svc.Register(context.Background(), &dto.RegisterRequest{Email: "d@university.ac.kr", Password: "secret1", DeptName: "D"})

	_, errUnknown := svc.Login(context.Background(), &dto.LoginRequest{Email: "nobody@university.ac.kr", Password: "secret1"})
	_, errWrong := svc.Login(context.Background(), &dto.LoginRequest{Email: "d@university.ac.kr", Password: "wrong-password"})

	if errUnknown != errWrong {
		t.Fatalf("两种失败应返回同一错误: %v / %v", errUnknown, errWrong)
	}
	if !errors.Is(errUnknown, pkgerrors.ErrUnauthorized) {
		t.Errorf("期望 Unauthorized，实际: %v", errUnknown)
	}
}

func TestAuthService_Login_AdminRole(t *testing.T) {
	svc, mocks, _ := setupTestAuthService()
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	_ = mocks.users.Create(context.Background(), &model.User{
		Email: "admin@university.ac.kr", PasswordHash: string(hash), DeptName: "대학본부", Role: model.RoleAdmin,
	})

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "admin@university.ac.kr", Password: "admin123"})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}
	if resp.User.Role != "ADMIN" {
		t.Errorf("期望 Role=ADMIN，实际=%s", resp.User.Role)
	}
}

// ── Logout 测试 ──

func TestAuthService_Logout_WithoutRedis(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	if err := svc.Logout(context.Background(), "jti-1", time.Now().Add(time.Hour)); err != nil {
		t.Errorf("未配置 Redis 时登出应成功: %v", err)
	}
}
