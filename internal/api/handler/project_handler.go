package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/adventistcho-art/ESG-Archive/internal/dto"
	"github.com/adventistcho-art/ESG-Archive/internal/service"
	"github.com/adventistcho-art/ESG-Archive/pkg/response"
)

// ProjectHandler 项目模块 HTTP 处理器
type ProjectHandler struct {
	projectSvc service.ProjectService
}

// NewProjectHandler 创建 ProjectHandler
func NewProjectHandler(projectSvc service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectSvc: projectSvc}
}

// ────────────────────── 公开查询 ──────────────────────

// ListPublic 公开项目列表
// GET /api/projects?year=&category=&deptName=
func (h *ProjectHandler) ListPublic(c *gin.Context) {
	var filter dto.ProjectFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		bindError(c, err)
		return
	}

	projects, err := h.projectSvc.ListPublic(c.Request.Context(), &filter)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, projects)
}

// Years 已公开项目的年份
// GET /api/projects/years
func (h *ProjectHandler) Years(c *gin.Context) {
	years, err := h.projectSvc.Years(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, years)
}

// Stats 项目统计
// GET /api/projects/stats
func (h *ProjectHandler) Stats(c *gin.Context) {
	stats, err := h.projectSvc.Stats(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, stats)
}

// Get 项目详情；未公开项目仅所有者与管理员可见
// GET /api/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.projectSvc.GetByID(c.Request.Context(), c.Param("id"), ActorFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, project)
}

// ────────────────────── 需认证 ──────────────────────

// ListForActor 管理列表：管理员看到全部，普通用户只看到自己的
// GET /api/projects/admin/list
func (h *ProjectHandler) ListForActor(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	projects, err := h.projectSvc.ListForActor(c.Request.Context(), actor)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, projects)
}

// Create 创建项目，调用者成为所有者
// POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	project, err := h.projectSvc.Create(c.Request.Context(), &req, actor)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, project)
}

// Update 更新项目（部分更新）
// PUT /api/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	project, err := h.projectSvc.Update(c.Request.Context(), c.Param("id"), &req, actor)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, project)
}

// Delete 删除项目
// DELETE /api/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := h.projectSvc.Delete(c.Request.Context(), id, actor); err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, gin.H{"id": id})
}
