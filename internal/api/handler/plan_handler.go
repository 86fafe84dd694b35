package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/adventistcho-art/ESG-Archive/internal/dto"
	"github.com/adventistcho-art/ESG-Archive/internal/service"
	"github.com/adventistcho-art/ESG-Archive/pkg/response"
)

// PlanHandler 年度计划 HTTP 处理器
type PlanHandler struct {
	planSvc service.PlanService
}

// NewPlanHandler 创建 PlanHandler
func NewPlanHandler(planSvc service.PlanService) *PlanHandler {
	return &PlanHandler{planSvc: planSvc}
}

// List 计划列表
// GET /api/plans?year=&category=
func (h *PlanHandler) List(c *gin.Context) {
	var filter dto.PlanFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		bindError(c, err)
		return
	}

	plans, err := h.planSvc.List(c.Request.Context(), &filter)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, plans)
}

// Years 计划年份
// GET /api/plans/years
func (h *PlanHandler) Years(c *gin.Context) {
	years, err := h.planSvc.Years(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, years)
}

// Get 计划详情
// GET /api/plans/:id
func (h *PlanHandler) Get(c *gin.Context) {
	plan, err := h.planSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, plan)
}

// Create 创建计划（管理员）
// POST /api/plans
func (h *PlanHandler) Create(c *gin.Context) {
	var req dto.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	plan, err := h.planSvc.Create(c.Request.Context(), &req, actor)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, plan)
}

// Update 更新计划（管理员）
// PUT /api/plans/:id
func (h *PlanHandler) Update(c *gin.Context) {
	var req dto.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	plan, err := h.planSvc.Update(c.Request.Context(), c.Param("id"), &req, actor)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, plan)
}

// Delete 删除计划（管理员）
// DELETE /api/plans/:id
func (h *PlanHandler) Delete(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := h.planSvc.Delete(c.Request.Context(), id, actor); err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, gin.H{"id": id})
}
