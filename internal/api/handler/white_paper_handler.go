package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/adventistcho-art/ESG-Archive/internal/dto"
	"github.com/adventistcho-art/ESG-Archive/internal/service"
	"github.com/adventistcho-art/ESG-Archive/pkg/response"
)

// WhitePaperHandler 白皮书 HTTP 处理器
type WhitePaperHandler struct {
	whitePaperSvc service.WhitePaperService
}

// NewWhitePaperHandler 创建 WhitePaperHandler
func NewWhitePaperHandler(whitePaperSvc service.WhitePaperService) *WhitePaperHandler {
	return &WhitePaperHandler{whitePaperSvc: whitePaperSvc}
}

// List 白皮书列表
// GET /api/whitepaper
func (h *WhitePaperHandler) List(c *gin.Context) {
	papers, err := h.whitePaperSvc.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, papers)
}

// Years 已发布白皮书的年份
// GET /api/whitepaper/years
func (h *WhitePaperHandler) Years(c *gin.Context) {
	years, err := h.whitePaperSvc.Years(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, years)
}

// Get 按年份获取白皮书
// GET /api/whitepaper/:year
func (h *WhitePaperHandler) Get(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}

	paper, err := h.whitePaperSvc.GetByYear(c.Request.Context(), year)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, paper)
}

// Compile 汇编年度白皮书（管理员）；请求体可省略
// POST /api/whitepaper/:year/compile
func (h *WhitePaperHandler) Compile(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}

	var req dto.CompileWhitePaperRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		bindError(c, err)
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	paper, err := h.whitePaperSvc.Compile(c.Request.Context(), year, &req, actor)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, paper)
}
