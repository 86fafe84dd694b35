package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/adventistcho-art/ESG-Archive/internal/dto"
	"github.com/adventistcho-art/ESG-Archive/internal/service"
	"github.com/adventistcho-art/ESG-Archive/pkg/response"
)

// ResultHandler 成果报告 HTTP 处理器
type ResultHandler struct {
	resultSvc service.ResultService
}

// NewResultHandler 创建 ResultHandler
func NewResultHandler(resultSvc service.ResultService) *ResultHandler {
	return &ResultHandler{resultSvc: resultSvc}
}

// Get 获取项目成果报告
// GET /api/projects/:id/result
func (h *ResultHandler) Get(c *gin.Context) {
	result, err := h.resultSvc.Get(c.Request.Context(), c.Param("id"), ActorFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, result)
}

// Create 提交成果报告
// POST /api/projects/:id/result
func (h *ResultHandler) Create(c *gin.Context) {
	var req dto.CreateResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	result, err := h.resultSvc.Create(c.Request.Context(), c.Param("id"), &req, actor)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, result)
}

// Update 更新成果报告
// PUT /api/projects/:id/result
func (h *ResultHandler) Update(c *gin.Context) {
	var req dto.UpdateResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	result, err := h.resultSvc.Update(c.Request.Context(), c.Param("id"), &req, actor)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, result)
}
