package handler

import "github.com/adventistcho-art/ESG-Archive/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth       *AuthHandler
	User       *UserHandler
	Project    *ProjectHandler
	Result     *ResultHandler
	Plan       *PlanHandler
	WhitePaper *WhitePaperHandler
	Upload     *UploadHandler
	Export     *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		User:       NewUserHandler(svc.User),
		Project:    NewProjectHandler(svc.Project),
		Result:     NewResultHandler(svc.Result),
		Plan:       NewPlanHandler(svc.Plan),
		WhitePaper: NewWhitePaperHandler(svc.WhitePaper),
		Upload:     NewUploadHandler(svc.Upload),
		Export:     NewExportHandler(svc.Export),
	}
}
