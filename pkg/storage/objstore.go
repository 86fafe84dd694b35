package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/adventistcho-art/ESG-Archive/config"
)

const awsEndpoint = "s3.amazonaws.com"

// ObjectStore S3 兼容对象存储（AWS S3 / MinIO）
type ObjectStore struct {
	mc       *minio.Client
	bucket   string
	endpoint string
	secure   bool
	baseURL  string
}

// NewObjectStore 创建对象存储客户端；不会发起网络请求
func NewObjectStore(cfg *config.S3Config) (*ObjectStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = awsEndpoint
	}

	mc, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}

	return &ObjectStore{
		mc:       mc,
		bucket:   cfg.Bucket,
		endpoint: endpoint,
		secure:   cfg.UseSSL,
		baseURL:  strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// Put 以 {folder}/{uuid}{ext} 为键上传，返回完整访问 URL
func (s *ObjectStore) Put(ctx context.Context, obj Object) (string, error) {
	if err := checkFolder(obj.Folder); err != nil {
		return "", err
	}

	contentType := obj.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := obj.Folder + "/" + objectName(obj.Ext)
	_, err := s.mc.PutObject(ctx, s.bucket, key, bytes.NewReader(obj.Data), int64(len(obj.Data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	return s.objectURL(key), nil
}

// Backend 返回后端名称
func (s *ObjectStore) Backend() string { return BackendS3 }

// objectURL 配置了 public_base_url 时直接拼接；AWS 使用虚拟主机风格，其余使用路径风格
func (s *ObjectStore) objectURL(key string) string {
	if s.baseURL != "" {
		return s.baseURL + "/" + key
	}
	if s.endpoint == awsEndpoint {
		return fmt.Sprintf("https://%s.%s/%s", s.bucket, awsEndpoint, key)
	}
	scheme := "http"
	if s.secure {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, key)
}
