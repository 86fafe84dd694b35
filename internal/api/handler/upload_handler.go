package handler

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"github.com/adventistcho-art/ESG-Archive/internal/api/middleware"
	"github.com/adventistcho-art/ESG-Archive/internal/dto"
	"github.com/adventistcho-art/ESG-Archive/internal/service"
	"github.com/adventistcho-art/ESG-Archive/pkg/response"
)

// UploadHandler 文件上传 HTTP 处理器
//
// 大小与数量限制在这一层执行：超限的文件不会读入内存，也不会到达 UploadService。
type UploadHandler struct {
	uploadSvc service.UploadService
}

// NewUploadHandler 创建 UploadHandler
func NewUploadHandler(uploadSvc service.UploadService) *UploadHandler {
	return &UploadHandler{uploadSvc: uploadSvc}
}

// UploadImage 上传单张图片，表单字段 file
// POST /api/upload/image
func (h *UploadHandler) UploadImage(c *gin.Context) {
	h.single(c, service.UploadImage)
}

// UploadDocument 上传单个 PDF 文档，表单字段 file
// POST /api/upload/document
func (h *UploadHandler) UploadDocument(c *gin.Context) {
	h.single(c, service.UploadDocument)
}

// UploadImages 批量上传图片，表单字段 files
// POST /api/upload/images
func (h *UploadHandler) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		h.formError(c, err)
		return
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		response.FromError(c, service.ErrNoFile)
		return
	}
	if len(headers) > h.uploadSvc.MaxFiles() {
		response.FromError(c, service.ErrTooManyFiles)
		return
	}

	files := make([]service.UploadFile, 0, len(headers))
	for _, fh := range headers {
		if !h.checkSize(c, service.UploadImage, fh) {
			return
		}
		f, err := readUpload(fh)
		if err != nil {
			bindError(c, err)
			return
		}
		files = append(files, f)
	}

	urls, err := h.uploadSvc.StoreAll(c.Request.Context(), service.UploadImage, files)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, dto.MultiUploadResponse{URLs: urls})
}

func (h *UploadHandler) single(c *gin.Context, kind service.UploadKind) {
	fh, err := c.FormFile("file")
	if err != nil {
		h.formError(c, err)
		return
	}
	if !h.checkSize(c, kind, fh) {
		return
	}

	f, err := readUpload(fh)
	if err != nil {
		bindError(c, err)
		return
	}

	url, err := h.uploadSvc.Store(c.Request.Context(), kind, f)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, dto.UploadResponse{URL: url})
}

// checkSize 按类别检查单个文件大小，超限时写入 413
func (h *UploadHandler) checkSize(c *gin.Context, kind service.UploadKind, fh *multipart.FileHeader) bool {
	limit := h.uploadSvc.MaxBytes(kind)
	if fh.Size > limit {
		response.TooLarge(c, fmt.Sprintf("文件 %s 超过 %d MB 上限", fh.Filename, limit>>20))
		return false
	}
	return true
}

func (h *UploadHandler) formError(c *gin.Context, err error) {
	if middleware.IsBodyTooLarge(err) {
		response.TooLarge(c, "请求体过大")
		return
	}
	response.FromError(c, service.ErrNoFile)
}

func readUpload(fh *multipart.FileHeader) (service.UploadFile, error) {
	src, err := fh.Open()
	if err != nil {
		return service.UploadFile{}, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return service.UploadFile{}, err
	}
	return service.UploadFile{Filename: fh.Filename, Data: data}, nil
}
