package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080},
		Auth: AuthConfig{
			JWTSecret:      "test-secret-key-for-unit-testing",
			AccessTokenTTL: time.Hour,
		},
		Upload: UploadConfig{
			ImageMaxBytes:    10 << 20,
			DocumentMaxBytes: 20 << 20,
			MaxFiles:         10,
		},
	}
}

func TestUploadConfig_UseObjectStore(t *testing.T) {
	tests := []struct {
		name      string
		accessKey string
		want      bool
	}{
		{"凭证为空", "", false},
		{"仅空白", "   ", false},
		{"占位凭证", "your-access-key", false},
		{"真实凭证", "AKIAEXAMPLE", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := UploadConfig{S3: S3Config{AccessKey: tt.accessKey}}
			if got := cfg.UseObjectStore(); got != tt.want {
				t.Errorf("UseObjectStore()=%v，期望 %v", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("合法配置不应报错: %v", err)
	}

	cfg := validConfig()
	cfg.Auth.JWTSecret = ""
	if err := cfg.Validate(); err == nil {
		t.Error("空 jwt_secret 应报错")
	}

	cfg = validConfig()
	cfg.Auth.JWTSecret = "short"
	if err := cfg.Validate(); err == nil {
		t.Error("过短 jwt_secret 应报错")
	}

	cfg = validConfig()
	cfg.Server.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("非法端口应报错")
	}

	cfg = validConfig()
	cfg.Upload.S3.AccessKey = "AKIAEXAMPLE"
	cfg.Upload.S3.Bucket = ""
	if err := cfg.Validate(); err == nil {
		t.Error("启用对象存储但未配置 bucket 应报错")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ESG_AUTH_JWT_SECRET", "env-secret-key-0123456789")
	t.Setenv("ESG_SERVER_PORT", "9090")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load 失败: %v", err)
	}
	if cfg.Auth.JWTSecret != "env-secret-key-0123456789" {
		t.Errorf("期望从环境变量读取 jwt_secret，实际=%s", cfg.Auth.JWTSecret)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("期望 Port=9090，实际=%d", cfg.Server.Port)
	}
	if cfg.Auth.AccessTokenTTL != 24*time.Hour {
		t.Errorf("期望默认 TTL=24h，实际=%v", cfg.Auth.AccessTokenTTL)
	}
	if cfg.Upload.ImageMaxBytes != 10<<20 {
		t.Errorf("期望图片上限 10MiB，实际=%d", cfg.Upload.ImageMaxBytes)
	}
	if cfg.Upload.UseObjectStore() {
		t.Error("未配置凭证时不应启用对象存储")
	}
}
