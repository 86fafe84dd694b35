package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/adventistcho-art/ESG-Archive/internal/model"
)

func TestUserService_GetMe(t *testing.T) {
	repo, mocks := newMockRepository()
	svc := NewUserService(repo, zap.NewNop())
	u := &model.User{Email: "me@university.ac.kr", PasswordHash: "hash", DeptName: "기획처", Role: model.RoleUser}
	_ = mocks.users.Create(context.Background(), u)

	resp, err := svc.GetMe(context.Background(), u.UserID)
	if err != nil {
		t.Fatalf("GetMe 应成功: %v", err)
	}
	if resp.Email != "me@university.ac.kr" || resp.DeptName != "기획처" || resp.Role != "USER" {
		t.Errorf("返回信息不正确: %+v", resp)
	}
}

func TestUserService_GetMe_Removed(t *testing.T) {
	repo, _ := newMockRepository()
	svc := NewUserService(repo, zap.NewNop())

	_, err := svc.GetMe(context.Background(), "ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}
}
