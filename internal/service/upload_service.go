package service

import (
	"context"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/adventistcho-art/ESG-Archive/config"
	pkgerrors "github.com/adventistcho-art/ESG-Archive/pkg/errors"
	"github.com/adventistcho-art/ESG-Archive/pkg/metrics"
	"github.com/adventistcho-art/ESG-Archive/pkg/storage"
)

// ── 上传模块业务错误 ──

var (
	ErrNoFile          = pkgerrors.New(pkgerrors.ErrBadRequest, "没有上传文件")
	ErrNotImage        = pkgerrors.New(pkgerrors.ErrBadRequest, "仅支持图片文件")
	ErrNotPDF          = pkgerrors.New(pkgerrors.ErrBadRequest, "仅支持 PDF 文档")
	ErrTooManyFiles    = pkgerrors.New(pkgerrors.ErrBadRequest, "上传文件数量超出限制")
	ErrUploadTooLarge  = pkgerrors.New(pkgerrors.ErrTooLarge, "文件大小超出限制")
	ErrUploadStoreFail = pkgerrors.New(pkgerrors.ErrStorage, "文件保存失败")
)

// UploadKind 上传类别，决定存储目录、大小上限与允许的内容类型
type UploadKind string

const (
	UploadImage    UploadKind = "image"
	UploadDocument UploadKind = "document"
)

// Folder 存储目录
func (k UploadKind) Folder() string {
	if k == UploadDocument {
		return "documents"
	}
	return "images"
}

// UploadFile 待保存文件，Filename 仅用于提取扩展名
type UploadFile struct {
	Filename string
	Data     []byte
}

// UploadService 上传网关
// 大小与数量限制由接入层在读取请求体时执行，这里只做内容校验与落盘
type UploadService interface {
	Store(ctx context.Context, kind UploadKind, file UploadFile) (string, error)
	// StoreAll 按顺序保存，返回的 URL 与输入一一对应
	StoreAll(ctx context.Context, kind UploadKind, files []UploadFile) ([]string, error)
	MaxBytes(kind UploadKind) int64
	MaxFiles() int
}

type uploadService struct {
	cfg     *config.UploadConfig
	store   storage.Store
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewUploadService 创建 UploadService 实例；m 可为 nil
func NewUploadService(cfg *config.UploadConfig, store storage.Store, m *metrics.Metrics, logger *zap.Logger) UploadService {
	return &uploadService{cfg: cfg, store: store, metrics: m, logger: logger}
}

func (s *uploadService) MaxBytes(kind UploadKind) int64 {
	if kind == UploadDocument {
		return s.cfg.DocumentMaxBytes
	}
	return s.cfg.ImageMaxBytes
}

func (s *uploadService) MaxFiles() int { return s.cfg.MaxFiles }

// ────────────────────── Store ──────────────────────

func (s *uploadService) Store(ctx context.Context, kind UploadKind, file UploadFile) (string, error) {
	if len(file.Data) == 0 {
		return "", ErrNoFile
	}
	if int64(len(file.Data)) > s.MaxBytes(kind) {
		return "", ErrUploadTooLarge
	}

	mt := mimetype.Detect(file.Data)
	switch kind {
	case UploadDocument:
		if !mt.Is("application/pdf") {
			return "", ErrNotPDF
		}
	default:
		// SVG 可内嵌脚本，不作为图片接受
		if !strings.HasPrefix(mt.String(), "image/") || mt.Is("image/svg+xml") {
			return "", ErrNotImage
		}
	}

	ext := storage.SafeExt(file.Filename)
	if ext == "" {
		ext = mt.Extension()
	}

	url, err := s.store.Put(ctx, storage.Object{
		Folder:      kind.Folder(),
		Ext:         ext,
		ContentType: mt.String(),
		Data:        file.Data,
	})
	if err != nil {
		s.logger.Error("保存上传文件失败",
			zap.String("backend", s.store.Backend()),
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
		return "", pkgerrors.Wrap(pkgerrors.ErrStorage, ErrUploadStoreFail.Message(), err)
	}

	s.metrics.RecordUpload(string(kind), s.store.Backend(), int64(len(file.Data)))
	return url, nil
}

func (s *uploadService) StoreAll(ctx context.Context, kind UploadKind, files []UploadFile) ([]string, error) {
	if len(files) == 0 {
		return nil, ErrNoFile
	}
	if len(files) > s.cfg.MaxFiles {
		return nil, ErrTooManyFiles
	}

	urls := make([]string, 0, len(files))
	for _, f := range files {
		url, err := s.Store(ctx, kind, f)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}
