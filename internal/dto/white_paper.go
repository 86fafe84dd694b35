package dto

// ── 白皮书 DTO ──

// CompileWhitePaperRequest 汇编年度白皮书；字段均可省略，省略时自动生成
type CompileWhitePaperRequest struct {
	Title      string   `json:"title"      binding:"max=200"`
	Overview   string   `json:"overview"`
	Highlights []string `json:"highlights" binding:"omitempty,dive,required"`
}
