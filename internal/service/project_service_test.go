package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/adventistcho-art/ESG-Archive/internal/dto"
	"github.com/adventistcho-art/ESG-Archive/internal/model"
	"github.com/adventistcho-art/ESG-Archive/internal/policy"
	pkgerrors "github.com/adventistcho-art/ESG-Archive/pkg/errors"
)

// ── 测试辅助 ──

type projectFixture struct {
	svc   ProjectService
	mocks *mockRepos
	admin *policy.Actor
	u1    *policy.Actor
	u2    *policy.Actor
}

func setupTestProjectService() *projectFixture {
	repo, mocks := newMockRepository()
	ctx := context.Background()

	admin := &model.User{Email: "admin@university.ac.kr", PasswordHash: "x", DeptName: "대학본부", Role: model.RoleAdmin}
	u1 := &model.User{Email: "u1@university.ac.kr", PasswordHash: "x", DeptName: "학생복지처", Role: model.RoleUser}
	u2 := &model.User{Email: "u2@university.ac.kr", PasswordHash: "x", DeptName: "그린캠퍼스", Role: model.RoleUser}
	_ = mocks.users.Create(ctx, admin)
	_ = mocks.users.Create(ctx, u1)
	_ = mocks.users.Create(ctx, u2)

	return &projectFixture{
		svc:   NewProjectService(repo, zap.NewNop()),
		mocks: mocks,
		admin: policy.NewActor(admin.UserID, admin.Role),
		u1:    policy.NewActor(u1.UserID, u1.Role),
		u2:    policy.NewActor(u2.UserID, u2.Role),
	}
}

func minimalProject() *dto.CreateProjectRequest {
	return &dto.CreateProjectRequest{
		Year:        2025,
		DeptName:    "X",
		Title:       "T",
		Category:    "ENVIRONMENT",
		Task:        "Task",
		Qualitative: "Q",
	}
}

func strPtr(s string) *string { return &s }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int { return &i }

// ── Create 测试 ──

// 管理员用最少字段创建：默认未公开、列表为空数组、预算为 null
func TestProjectService_Create_Defaults(t *testing.T) {
	f := setupTestProjectService()

	resp, err := f.svc.Create(context.Background(), minimalProject(), f.admin)
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if resp.IsPublished {
		t.Error("期望 isPublished=false")
	}
	if resp.Images == nil || len(resp.Images) != 0 {
		t.Errorf("期望 images=[]，实际 %v", resp.Images)
	}
	if resp.Documents == nil || len(resp.Documents) != 0 {
		t.Errorf("期望 documents=[]，实际 %v", resp.Documents)
	}
	if resp.Budget != nil {
		t.Errorf("期望 budget=null，实际 %v", *resp.Budget)
	}
	if resp.UserID != f.admin.UserID {
		t.Errorf("所有者应为调用方")
	}
	if resp.User == nil || resp.User.Email != "admin@university.ac.kr" {
		t.Errorf("响应应包含所有者公开信息: %+v", resp.User)
	}
}

func TestProjectService_Create_RoundTrip(t *testing.T) {
	f := setupTestProjectService()
	req := &dto.CreateProjectRequest{
		Year:           2024,
		DeptName:       "학생복지처",
		Title:          "다문화 학생 멘토링",
		Category:       "SOCIAL",
		Task:           "포용",
		Thumbnail:      strPtr("/uploads/images/a.png"),
		OneLineSummary: strPtr("멘토링 120명"),
		Quantitative:   strPtr("만족도 4.7"),
		Qualitative:    "지원 체계 구축",
		Budget:         floatPtr(5000000),
		Shortcoming:    strPtr("시기 조율"),
		Improvement:    strPtr("프로세스 개선"),
		Images:         []string{"/uploads/images/a.png", "/uploads/images/b.png"},
		Documents:      []string{"/uploads/documents/r.pdf"},
		IsPublished:    boolPtr(true),
	}

	created, err := f.svc.Create(context.Background(), req, f.u1)
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	got, err := f.svc.GetByID(context.Background(), created.ID, f.u1)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}

	if got.Year != req.Year || got.DeptName != req.DeptName || got.Title != req.Title ||
		got.Category != req.Category || got.Task != req.Task || got.Qualitative != req.Qualitative {
		t.Errorf("必填字段不一致: %+v", got)
	}
	if *got.Thumbnail != *req.Thumbnail || *got.OneLineSummary != *req.OneLineSummary ||
		*got.Quantitative != *req.Quantitative || *got.Shortcoming != *req.Shortcoming ||
		*got.Improvement != *req.Improvement || *got.Budget != *req.Budget {
		t.Errorf("可选字段不一致: %+v", got)
	}
	if !reflect.DeepEqual(got.Images, req.Images) || !reflect.DeepEqual(got.Documents, req.Documents) {
		t.Errorf("列表字段顺序或内容不一致: %v %v", got.Images, got.Documents)
	}
	if !got.IsPublished {
		t.Error("期望 isPublished=true")
	}
}

func TestProjectService_Create_Validation(t *testing.T) {
	f := setupTestProjectService()

	tests := []struct {
		name   string
		mutate func(r *dto.CreateProjectRequest)
	}{
		{"空标题", func(r *dto.CreateProjectRequest) { r.Title = "  " }},
		{"空部门", func(r *dto.CreateProjectRequest) { r.DeptName = "" }},
		{"空任务", func(r *dto.CreateProjectRequest) { r.Task = "" }},
		{"空定性成果", func(r *dto.CreateProjectRequest) { r.Qualitative = "\t" }},
		{"非法分类", func(r *dto.CreateProjectRequest) { r.Category = "ECONOMY" }},
		{"负预算", func(r *dto.CreateProjectRequest) { r.Budget = floatPtr(-1) }},
		{"预算超出列精度", func(r *dto.CreateProjectRequest) { r.Budget = floatPtr(1e13) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := minimalProject()
			tt.mutate(req)
			_, err := f.svc.Create(context.Background(), req, f.u1)
			if !errors.Is(err, pkgerrors.ErrValidation) {
				t.Errorf("期望 Validation 错误，实际: %v", err)
			}
		})
	}
	if len(f.mocks.projects.projects) != 0 {
		t.Error("校验失败时不应写入存储")
	}
}

// 金额按两位小数保存，创建返回值与再次读取一致
func TestProjectService_Create_BudgetRoundedToCents(t *testing.T) {
	f := setupTestProjectService()
	req := minimalProject()
	req.Budget = floatPtr(1.234)

	created, err := f.svc.Create(context.Background(), req, f.u1)
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if created.Budget == nil || *created.Budget != 1.23 {
		t.Fatalf("期望 budget=1.23，实际 %v", created.Budget)
	}
	got, _ := f.svc.GetByID(context.Background(), created.ID, f.u1)
	if *got.Budget != *created.Budget {
		t.Errorf("读取值 %v 与创建返回值 %v 不一致", *got.Budget, *created.Budget)
	}

	limit := 9999999999999.99
	upd, err := f.svc.Update(context.Background(), created.ID, &dto.UpdateProjectRequest{Budget: &limit}, f.u1)
	if err != nil {
		t.Fatalf("上限金额应允许: %v", err)
	}
	if *upd.Budget != limit {
		t.Errorf("期望 %v，实际 %v", limit, *upd.Budget)
	}
}

func TestProjectService_Create_EmptyOptionalIsNull(t *testing.T) {
	f := setupTestProjectService()
	req := minimalProject()
	req.OneLineSummary = strPtr("")
	req.Shortcoming = strPtr("   ")

	resp, err := f.svc.Create(context.Background(), req, f.u1)
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if resp.OneLineSummary != nil || resp.Shortcoming != nil {
		t.Error("空字符串应与缺省等价，存为 null")
	}
}

// ── GetByID 测试 ──

func TestProjectService_GetByID_NotFound(t *testing.T) {
	f := setupTestProjectService()

	_, err := f.svc.GetByID(context.Background(), "nonexistent-id", nil)
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("期望 ErrProjectNotFound，实际: %v", err)
	}
}

func TestProjectService_GetByID_UnpublishedVisibility(t *testing.T) {
	f := setupTestProjectService()
	p, _ := f.svc.Create(context.Background(), minimalProject(), f.u1)

	if _, err := f.svc.GetByID(context.Background(), p.ID, nil); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("匿名访问未公开项目应返回 NotFound，实际: %v", err)
	}
	if _, err := f.svc.GetByID(context.Background(), p.ID, f.u2); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("其他用户访问未公开项目应返回 NotFound，实际: %v", err)
	}
	if _, err := f.svc.GetByID(context.Background(), p.ID, f.u1); err != nil {
		t.Errorf("所有者应可读: %v", err)
	}
	if _, err := f.svc.GetByID(context.Background(), p.ID, f.admin); err != nil {
		t.Errorf("管理员应可读: %v", err)
	}
}

// ── Update 测试 ──

// 其他普通用户修改 → Forbidden
func TestProjectService_Update_ForbiddenForOtherUser(t *testing.T) {
	f := setupTestProjectService()
	p, _ := f.svc.Create(context.Background(), minimalProject(), f.u1)

	_, err := f.svc.Update(context.Background(), p.ID, &dto.UpdateProjectRequest{Title: strPtr("hijack")}, f.u2)
	if !errors.Is(err, pkgerrors.ErrForbidden) {
		t.Fatalf("期望 Forbidden，实际: %v", err)
	}
	if f.mocks.projects.projects[p.ID].Title != "T" {
		t.Error("被拒绝的修改不应落库")
	}
}

// 管理员公开项目后出现在公开列表中
func TestProjectService_Update_AdminPublishes(t *testing.T) {
	f := setupTestProjectService()
	p, _ := f.svc.Create(context.Background(), minimalProject(), f.u1)

	list, _ := f.svc.ListPublic(context.Background(), nil)
	if len(list) != 0 {
		t.Fatal("未公开项目不应出现在公开列表")
	}

	if _, err := f.svc.Update(context.Background(), p.ID, &dto.UpdateProjectRequest{IsPublished: boolPtr(true)}, f.admin); err != nil {
		t.Fatalf("管理员更新应成功: %v", err)
	}

	list, _ = f.svc.ListPublic(context.Background(), nil)
	if len(list) != 1 || list[0].ID != p.ID {
		t.Fatalf("公开列表应包含该项目，实际 %d 条", len(list))
	}
}

func TestProjectService_Update_NotFound(t *testing.T) {
	f := setupTestProjectService()

	_, err := f.svc.Update(context.Background(), "missing", &dto.UpdateProjectRequest{}, f.admin)
	if !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("期望 ErrProjectNotFound，实际: %v", err)
	}
}

// deletedAfterLoadRepo 读取后立即删除，模拟并发删除
type deletedAfterLoadRepo struct {
	*mockProjectRepo
}

func (r deletedAfterLoadRepo) GetByID(ctx context.Context, id string) (*model.EsgProject, error) {
	p, err := r.mockProjectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	_ = r.mockProjectRepo.Delete(ctx, id)
	return p, nil
}

func TestProjectService_Update_DeletedConcurrently(t *testing.T) {
	f := setupTestProjectService()
	ctx := context.Background()
	p, err := f.svc.Create(ctx, minimalProject(), f.u1)
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	repo, _ := newMockRepositoryFrom(f.mocks)
	repo.Project = deletedAfterLoadRepo{f.mocks.projects}
	svc := NewProjectService(repo, zap.NewNop())

	title := "edited"
	_, err = svc.Update(ctx, p.ID, &dto.UpdateProjectRequest{Title: &title}, f.u1)
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("期望 ErrProjectNotFound，实际: %v", err)
	}
	if _, ok := f.mocks.projects.projects[p.ID]; ok {
		t.Error("已删除的项目不应被重新写入")
	}
}

// 空补丁只改变 updatedAt
func TestProjectService_Update_EmptyPatchIdempotent(t *testing.T) {
	f := setupTestProjectService()
	req := minimalProject()
	req.Budget = floatPtr(100)
	req.Images = []string{"/a.png"}
	p, _ := f.svc.Create(context.Background(), req, f.u1)

	updated, err := f.svc.Update(context.Background(), p.ID, &dto.UpdateProjectRequest{}, f.u1)
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}

	before, after := *p, *updated
	after.UpdatedAt = before.UpdatedAt
	if !reflect.DeepEqual(before, after) {
		t.Errorf("空补丁不应改变字段:\n%+v\n%+v", before, after)
	}
	if !updated.UpdatedAt.After(p.UpdatedAt) {
		t.Error("updatedAt 应更新")
	}
}

func TestProjectService_Update_MergesOnlyPresentFields(t *testing.T) {
	f := setupTestProjectService()
	req := minimalProject()
	req.OneLineSummary = strPtr("요약")
	p, _ := f.svc.Create(context.Background(), req, f.u1)

	got, err := f.svc.Update(context.Background(), p.ID, &dto.UpdateProjectRequest{
		Year:         intPtr(2026),
		Quantitative: strPtr("95%"),
	}, f.u1)
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if got.Year != 2026 || got.Quantitative == nil || *got.Quantitative != "95%" {
		t.Errorf("出现的字段应被合并: %+v", got)
	}
	if got.OneLineSummary == nil || *got.OneLineSummary != "요약" || got.Title != "T" {
		t.Errorf("未出现的字段不应改变: %+v", got)
	}
}

func TestProjectService_Update_Validation(t *testing.T) {
	f := setupTestProjectService()
	p, _ := f.svc.Create(context.Background(), minimalProject(), f.u1)

	for _, req := range []*dto.UpdateProjectRequest{
		{Title: strPtr("")},
		{Category: strPtr("OTHER")},
		{Budget: floatPtr(-5)},
	} {
		if _, err := f.svc.Update(context.Background(), p.ID, req, f.u1); !errors.Is(err, pkgerrors.ErrValidation) {
			t.Errorf("期望 Validation 错误，实际: %v", err)
		}
	}
}

// ── Delete 测试 ──

func TestProjectService_Delete(t *testing.T) {
	f := setupTestProjectService()
	p, _ := f.svc.Create(context.Background(), minimalProject(), f.u1)

	if err := f.svc.Delete(context.Background(), p.ID, f.u2); !errors.Is(err, pkgerrors.ErrForbidden) {
		t.Fatalf("其他用户删除应被拒绝，实际: %v", err)
	}
	if err := f.svc.Delete(context.Background(), p.ID, f.u1); err != nil {
		t.Fatalf("所有者删除应成功: %v", err)
	}
	if _, err := f.svc.GetByID(context.Background(), p.ID, f.admin); !errors.Is(err, ErrProjectNotFound) {
		t.Error("删除后应查不到")
	}
	if err := f.svc.Delete(context.Background(), p.ID, f.admin); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("重复删除应返回 NotFound，实际: %v", err)
	}
}

// ── List 测试 ──

func TestProjectService_ListPublic_NeverReturnsUnpublished(t *testing.T) {
	f := setupTestProjectService()
	ctx := context.Background()

	for i, c := range []string{"ENVIRONMENT", "SOCIAL", "GOVERNANCE", "SOCIAL"} {
		req := minimalProject()
		req.Category = c
		req.Year = 2023 + i%2
		req.DeptName = []string{"그린캠퍼스", "학생복지처"}[i%2]
		req.IsPublished = boolPtr(i%2 == 0)
		_, _ = f.svc.Create(ctx, req, f.u1)
	}

	filters := []*dto.ProjectFilter{
		nil,
		{Year: intPtr(2023)},
		{Year: intPtr(2024)},
		{Category: "SOCIAL"},
		{DeptName: "복지"},
		{Year: intPtr(2023), Category: "ENVIRONMENT", DeptName: "그린"},
	}
	for _, filter := range filters {
		list, err := f.svc.ListPublic(ctx, filter)
		if err != nil {
			t.Fatalf("ListPublic 失败: %v", err)
		}
		for _, p := range list {
			if !p.IsPublished {
				t.Errorf("filter=%+v 返回了未公开项目 %s", filter, p.ID)
			}
		}
	}
}

func TestProjectService_ListPublic_Order(t *testing.T) {
	f := setupTestProjectService()
	ctx := context.Background()

	mk := func(year int) string {
		req := minimalProject()
		req.Year = year
		req.IsPublished = boolPtr(true)
		p, _ := f.svc.Create(ctx, req, f.u1)
		return p.ID
	}
	a := mk(2024)
	b := mk(2025)
	c := mk(2025)

	list, _ := f.svc.ListPublic(ctx, nil)
	got := []string{list[0].ID, list[1].ID, list[2].ID}
	want := []string{c, b, a}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("排序应为年份倒序、同年创建时间倒序: got %v want %v", got, want)
	}
}

func TestProjectService_ListForActor(t *testing.T) {
	f := setupTestProjectService()
	ctx := context.Background()
	_, _ = f.svc.Create(ctx, minimalProject(), f.u1)
	_, _ = f.svc.Create(ctx, minimalProject(), f.u2)
	_, _ = f.svc.Create(ctx, minimalProject(), f.u2)

	all, _ := f.svc.ListForActor(ctx, f.admin)
	if len(all) != 3 {
		t.Errorf("管理员应看到全部 3 条，实际 %d", len(all))
	}
	mine, _ := f.svc.ListForActor(ctx, f.u2)
	if len(mine) != 2 {
		t.Errorf("普通用户只应看到自己的 2 条，实际 %d", len(mine))
	}
	for _, p := range mine {
		if p.UserID != f.u2.UserID {
			t.Error("返回了他人的项目")
		}
	}
}

// ── Years / Stats 测试 ──

func TestProjectService_YearsAndStats(t *testing.T) {
	f := setupTestProjectService()
	ctx := context.Background()
	for _, tc := range []struct {
		year int
		cat  string
		pub  bool
	}{
		{2023, "ENVIRONMENT", false},
		{2024, "ENVIRONMENT", true},
		{2025, "SOCIAL", true},
		{2025, "SOCIAL", true},
	} {
		req := minimalProject()
		req.Year, req.Category, req.IsPublished = tc.year, tc.cat, boolPtr(tc.pub)
		_, _ = f.svc.Create(ctx, req, f.u1)
	}

	years, _ := f.svc.Years(ctx)
	if !reflect.DeepEqual(years, []int{2025, 2024}) {
		t.Errorf("期望 [2025 2024]，实际 %v", years)
	}

	stats, _ := f.svc.Stats(ctx)
	if stats.Total != 4 || stats.Published != 3 {
		t.Errorf("统计不正确: %+v", stats)
	}
	if stats.ByCategory["ENVIRONMENT"] != 2 || stats.ByCategory["SOCIAL"] != 2 || stats.ByCategory["GOVERNANCE"] != 0 {
		t.Errorf("分类统计不正确: %v", stats.ByCategory)
	}
}
