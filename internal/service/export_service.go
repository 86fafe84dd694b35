package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/adventistcho-art/ESG-Archive/internal/model"
	"github.com/adventistcho-art/ESG-Archive/internal/policy"
	"github.com/adventistcho-art/ESG-Archive/internal/repository"
)

var ErrExportGenerateFail = errors.New("生成 Excel 文件失败")

// ExportService 导出业务接口
//
// 导出范围与管理列表一致：管理员导出全部项目，普通用户只导出自己的项目。
// 以 bytes.Buffer 返回，由 Handler 层设置响应头后写入。
type ExportService interface {
	ExportProjects(ctx context.Context, actor *policy.Actor) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger, now: time.Now}
}

// 列定义：表头与取值
var projectColumns = []struct {
	header string
	width  float64
	value  func(p *model.EsgProject) interface{}
}{
	{"연도", 8, func(p *model.EsgProject) interface{} { return p.Year }},
	{"부서", 18, func(p *model.EsgProject) interface{} { return p.DeptName }},
	{"분류", 14, func(p *model.EsgProject) interface{} { return string(p.Category) }},
	{"과제", 20, func(p *model.EsgProject) interface{} { return p.Task }},
	{"제목", 30, func(p *model.EsgProject) interface{} { return p.Title }},
	{"한줄 요약", 30, func(p *model.EsgProject) interface{} { return deref(p.OneLineSummary) }},
	{"정량 성과", 30, func(p *model.EsgProject) interface{} { return deref(p.Quantitative) }},
	{"정성 성과", 40, func(p *model.EsgProject) interface{} { return p.Qualitative }},
	{"예산", 14, func(p *model.EsgProject) interface{} {
		if p.Budget == nil {
			return ""
		}
		return *p.Budget
	}},
	{"공개", 8, func(p *model.EsgProject) interface{} {
		if p.IsPublished {
			return "Y"
		}
		return "N"
	}},
	{"성과보고", 10, func(p *model.EsgProject) interface{} {
		if p.Result != nil {
			return "Y"
		}
		return "N"
	}},
	{"등록일", 20, func(p *model.EsgProject) interface{} { return p.CreatedAt.Format("2006-01-02 15:04") }},
}

// ═══════════════════════════════════════════════════════════
// ExportProjects — 导出项目清单为 Excel
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportProjects(ctx context.Context, actor *policy.Actor) (*bytes.Buffer, string, error) {
	// 1. 按可见范围查询
	scope := policy.ScopeForList(actor)
	q := repository.ProjectQuery{}
	if !scope.All {
		q.OwnerID = scope.OwnerID
	}
	projects, err := s.repo.Project.List(ctx, q)
	if err != nil {
		s.logger.Error("查询导出项目失败", zap.Error(err))
		return nil, "", err
	}

	// 2. 生成 Excel
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "ESG 프로젝트"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#2E7D32"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, col := range projectColumns {
		name := colName(i)
		f.SetColWidth(sheetName, name, name, col.width)
		f.SetCellValue(sheetName, cell(name, 1), col.header)
	}
	f.SetCellStyle(sheetName, "A1", cell(colName(len(projectColumns)-1), 1), headerStyle)
	f.SetPanes(sheetName, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

	// 数据行
	for r := range projects {
		for i, col := range projectColumns {
			f.SetCellValue(sheetName, cell(colName(i), r+2), col.value(&projects[r]))
		}
	}

	// 3. 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("esg_projects_%s.xlsx", s.now().Format("20060102"))
	return buf, filename, nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
