// Package storage 上传文件的持久化后端
//
// 后端在进程启动时按配置选定一次：未配置对象存储凭证（或仍为占位值）时写本地磁盘，
// 否则写入 S3 兼容的对象存储。调用方只依赖 Store 接口。
package storage

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/adventistcho-art/ESG-Archive/config"
)

// 后端名称，用于日志与指标
const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

// ErrInvalidFolder 目录名非法
var ErrInvalidFolder = errors.New("非法的存储目录")

// Object 待存储的文件
type Object struct {
	Folder      string // 单级目录名，如 images、documents
	Ext         string // 含点号的小写扩展名，可为空
	ContentType string
	Data        []byte
}

// Store 文件存储后端
type Store interface {
	// Put 写入文件并返回可访问的 URL
	Put(ctx context.Context, obj Object) (string, error)
	// Backend 返回后端名称
	Backend() string
}

// New 按配置选择存储后端
func New(cfg *config.UploadConfig, logger *zap.Logger) (Store, error) {
	if cfg.UseObjectStore() {
		s, err := NewObjectStore(&cfg.S3)
		if err != nil {
			return nil, err
		}
		logger.Info("上传后端: 对象存储",
			zap.String("endpoint", cfg.S3.Endpoint),
			zap.String("bucket", cfg.S3.Bucket),
		)
		return s, nil
	}

	logger.Info("上传后端: 本地磁盘", zap.String("dir", cfg.LocalDir))
	return NewLocalStore(cfg.LocalDir, cfg.PublicPath), nil
}

var folderPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

func checkFolder(folder string) error {
	if !folderPattern.MatchString(folder) {
		return ErrInvalidFolder
	}
	return nil
}

var extPattern = regexp.MustCompile(`^\.[a-z0-9]{1,10}$`)

// SafeExt 从原始文件名中取扩展名；不符合规则时返回空串
// 原始文件名本身不会落盘
func SafeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if !extPattern.MatchString(ext) {
		return ""
	}
	return ext
}

// objectName 生成 {uuid}{ext}
func objectName(ext string) string {
	return uuid.NewString() + ext
}
