package main

import (
	"gorm.io/datatypes"

	"github.com/adventistcho-art/ESG-Archive/internal/model"
)

type seedUser struct {
	Email    string
	Password string
	DeptName string
	Role     model.Role
}

type seedProject struct {
	OwnerEmail string
	Project    model.EsgProject
}

const adminEmail = "admin@university.ac.kr"

var seedUsers = []seedUser{
	{Email: adminEmail, Password: "admin123", DeptName: "대학본부", Role: model.RoleAdmin},
	{Email: "design@university.ac.kr", Password: "user1234", DeptName: "아트앤디자인학과", Role: model.RoleUser},
	{Email: "welfare@university.ac.kr", Password: "user1234", DeptName: "학생복지팀", Role: model.RoleUser},
	{Email: "greencamp@university.ac.kr", Password: "user1234", DeptName: "시설관리팀", Role: model.RoleUser},
	{Email: "research@university.ac.kr", Password: "user1234", DeptName: "산학협력단", Role: model.RoleUser},
}

func str(s string) *string { return &s }
func num(f float64) *float64 { return &f }

var seedProjects = []seedProject{
	{
		OwnerEmail: "greencamp@university.ac.kr",
		Project: model.EsgProject{
			Year:           2025,
			DeptName:       "시설관리팀",
			Title:          "친환경 캠퍼스 조성 프로젝트",
			Category:       model.CategoryEnvironment,
			Task:           "탄소중립 캠퍼스 구현",
			Thumbnail:      str("https://images.unsplash.com/photo-1497435334941-8c899ee9e8e9?w=400&h=300&fit=crop"),
			OneLineSummary: str("태양광 패널 설치 및 LED 교체를 통한 탄소 배출 30% 감축 달성"),
			Quantitative:   str("태양광 패널 50kW 설치, LED 교체 500개, CO2 감축 120톤"),
			Qualitative:    "캠퍼스 전체 건물에 태양광 패널을 설치하고 기존 형광등을 LED로 전면 교체하여 에너지 효율을 높였습니다. 연간 탄소 배출량을 전년 대비 30% 감축했습니다.",
			Budget:         num(150000000),
			Shortcoming:    str("일부 건물의 노후 전기 배선으로 인해 태양광 시스템 연동에 추가 비용이 발생함"),
			Improvement:    str("2026년도 노후 건물 전기 설비 개선 사업과 연계하여 추진 예정"),
			IsPublished:    true,
		},
	},
	{
		OwnerEmail: "welfare@university.ac.kr",
		Project: model.EsgProject{
			Year:           2025,
			DeptName:       "학생복지팀",
			Title:          "재학생 경영참여 프로그램",
			Category:       model.CategorySocial,
			Task:           "재학생 경영참여",
			Thumbnail:      str("https://images.unsplash.com/photo-1523240795612-9a054b0db644?w=400&h=300&fit=crop"),
			OneLineSummary: str("학생 자치 기구를 통한 대학 경영 참여 활성화"),
			Quantitative:   str("학생 참여 위원회 12회 개최, 참여 학생 수 350명"),
			Qualitative:    "학생 대표가 대학 운영위원회에 참여하여 학교 정책에 대한 의견을 직접 개진할 수 있는 체계를 구축하였습니다.",
			Budget:         num(20000000),
			Shortcoming:    str("일부 학생들의 참여 의지 부족으로 대표성 확보에 어려움"),
			Improvement:    str("온라인 투표 시스템 도입 및 참여 인센티브 제도 강화 예정"),
			IsPublished:    true,
		},
	},
	{
		OwnerEmail: adminEmail,
		Project: model.EsgProject{
			Year:           2025,
			DeptName:       "대학본부",
			Title:          "윤리경영 체계 구축",
			Category:       model.CategoryGovernance,
			Task:           "투명경영 시스템 구축",
			Thumbnail:      str("https://images.unsplash.com/photo-1450101499163-c8848c66ca85?w=400&h=300&fit=crop"),
			OneLineSummary: str("내부 감사 시스템 강화 및 윤리경영 교육 실시"),
			Quantitative:   str("윤리교육 이수자 800명, 내부감사 4회 실시"),
			Qualitative:    "내부 감사 시스템을 강화하고 전 교직원 대상 윤리경영 교육을 실시하였습니다. 감사 결과를 홈페이지에 공개했습니다.",
			Budget:         num(30000000),
			Shortcoming:    str("윤리 신고 채널의 접근성이 다소 낮음"),
			Improvement:    str("익명 신고 앱 개발 및 보호 체계 강화 예정"),
			IsPublished:    true,
		},
	},
	{
		OwnerEmail: "design@university.ac.kr",
		Project: model.EsgProject{
			Year:           2024,
			DeptName:       "아트앤디자인학과",
			Title:          "업사이클링 디자인 프로젝트",
			Category:       model.CategoryEnvironment,
			Task:           "자원순환 교육 프로그램",
			Thumbnail:      str("https://images.unsplash.com/photo-1532996122724-e3c354a0b15b?w=400&h=300&fit=crop"),
			OneLineSummary: str("폐자재를 활용한 디자인 작품 전시 및 워크숍 운영"),
			Quantitative:   str("워크숍 8회 운영, 참여 학생 200명, 작품 50점 제작"),
			Qualitative:    "폐플라스틱과 폐목재를 활용한 업사이클링 디자인 교육 프로그램을 운영하고 학생 작품을 전시하였습니다.",
			Budget:         num(15000000),
			Shortcoming:    str("폐자재 수급이 불안정하여 프로그램 운영에 차질 발생"),
			Improvement:    str("지역 기업과 MOU 체결을 통한 안정적 소재 확보 추진"),
			IsPublished:    true,
		},
	},
	{
		OwnerEmail: "research@university.ac.kr",
		Project: model.EsgProject{
			Year:           2024,
			DeptName:       "산학협력단",
			Title:          "지역사회 산학협력 강화",
			Category:       model.CategorySocial,
			Task:           "산학협력 네트워크 확대",
			Thumbnail:      str("https://images.unsplash.com/photo-1521737711867-e3b97375f902?w=400&h=300&fit=crop"),
			OneLineSummary: str("지역 기업 50개사와 산학협력 네트워크 구축"),
			Quantitative:   str("MOU 체결 50건, 현장실습 참여 학생 300명"),
			Qualitative:    "지역 산업체와의 협력 체계를 구축하여 학생들의 현장실습 기회를 확대하였습니다.",
			Budget:         num(50000000),
			Shortcoming:    str("중소기업의 현장실습 환경이 미흡한 경우 발생"),
			Improvement:    str("현장실습 기업 평가 제도 도입 및 사전 점검 강화"),
			IsPublished:    true,
		},
	},
	{
		OwnerEmail: adminEmail,
		Project: model.EsgProject{
			Year:           2024,
			DeptName:       "대학본부",
			Title:          "정보공시 시스템 개선",
			Category:       model.CategoryGovernance,
			Task:           "대학정보 투명성 강화",
			Thumbnail:      str("https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=400&h=300&fit=crop"),
			OneLineSummary: str("대학 운영 정보 100% 공시 및 접근성 개선"),
			Quantitative:   str("정보공시 항목 100% 달성, 웹 접근성 점수 95점"),
			Qualitative:    "정보공시 체계를 개선하여 모든 운영 정보를 공개하고 웹 접근성 기준을 준수하였습니다.",
			Budget:         num(10000000),
			Shortcoming:    str("영문 정보공시가 미비하여 국제화 대응 부족"),
			Improvement:    str("영문 정보공시 시스템 구축 및 다국어 지원 추진"),
			IsPublished:    true,
		},
	},
}

func kpis(items ...model.KpiTarget) datatypes.JSONSlice[model.KpiTarget] {
	return datatypes.JSONSlice[model.KpiTarget](items)
}

var seedPlans = []model.EsgPlan{
	{
		Year:        2026,
		Category:    model.CategoryEnvironment,
		Title:       "탄소중립 캠퍼스 2단계 추진",
		Description: "2025년 1단계 성과를 기반으로 캠퍼스 탄소 배출량을 추가 20% 감축하는 2단계 사업을 추진합니다.",
		DeptName:    "총무처",
		Task:        "탄소중립 추진",
		Goals:       datatypes.JSONSlice[string]{"잔여 건물 태양광 패널 설치", "에너지 저장 시스템(ESS) 도입", "캠퍼스 내 전기 셔틀 운행"},
		KpiTargets: kpis(
			model.KpiTarget{Name: "탄소 배출 감축률", Target: "20", Unit: "%"},
			model.KpiTarget{Name: "재생에너지 사용 비율", Target: "35", Unit: "%"},
			model.KpiTarget{Name: "에너지 비용 절감", Target: "4", Unit: "억원"},
		),
		Budget:   num(400000000),
		Timeline: "2026.03 ~ 2026.12",
		Status:   model.PlanPlanned,
	},
	{
		Year:        2026,
		Category:    model.CategoryEnvironment,
		Title:       "ECO-Farm 고도화 및 농생명 교육",
		Description: "기존 ECO-Farm을 확대하고 스마트팜 기술을 도입하여 교육과 연구에 활용합니다.",
		DeptName:    "시설관리처",
		Task:        "ECO-Farm 육성",
		Goals:       datatypes.JSONSlice[string]{"스마트팜 온실 설치", "ECO-Farm 면적 2배 확대", "농생명 교과 2과목 개설"},
		KpiTargets: kpis(
			model.KpiTarget{Name: "ECO-Farm 면적", Target: "2000", Unit: "㎡"},
			model.KpiTarget{Name: "참여 학생 수", Target: "200", Unit: "명"},
		),
		Budget:   num(150000000),
		Timeline: "2026.03 ~ 2026.11",
		Status:   model.PlanPlanned,
	},
	{
		Year:        2026,
		Category:    model.CategorySocial,
		Title:       "서비스러닝 확대 및 지역 연계 강화",
		Description: "서비스러닝 교과목을 전 학과로 확대하고 지역사회 파트너십을 강화합니다.",
		DeptName:    "학생처",
		Task:        "서비스러닝 교과",
		Goals:       datatypes.JSONSlice[string]{"서비스러닝 교과 10개 학과 확대", "지역사회 MOU 20건 체결", "학생 봉사시간 20,000시간 달성"},
		KpiTargets: kpis(
			model.KpiTarget{Name: "서비스러닝 교과 수", Target: "15", Unit: "과목"},
			model.KpiTarget{Name: "참여 학생 수", Target: "1200", Unit: "명"},
			model.KpiTarget{Name: "지역사회 MOU", Target: "20", Unit: "건"},
		),
		Budget:   num(100000000),
		Timeline: "2026.03 ~ 2026.12",
		Status:   model.PlanPlanned,
	},
	{
		Year:        2026,
		Category:    model.CategorySocial,
		Title:       "캡스톤 디자인 산학협력 강화",
		Description: "산업체와 연계한 캡스톤 디자인 프로젝트를 확대하여 학생의 실무 역량을 강화합니다.",
		DeptName:    "대외협력처",
		Task:        "캡스톤 디자인 활성화",
		Goals:       datatypes.JSONSlice[string]{"산학협력 캡스톤 30팀 운영", "기업 멘토 50명 확보", "프로젝트 결과물 상용화 5건"},
		KpiTargets: kpis(
			model.KpiTarget{Name: "참여 팀 수", Target: "30", Unit: "팀"},
			model.KpiTarget{Name: "기업 멘토", Target: "50", Unit: "명"},
			model.KpiTarget{Name: "상용화 건수", Target: "5", Unit: "건"},
		),
		Budget:   num(200000000),
		Timeline: "2026.03 ~ 2026.12",
		Status:   model.PlanPlanned,
	},
	{
		Year:        2026,
		Category:    model.CategoryGovernance,
		Title:       "ESG 통합 데이터 플랫폼 구축",
		Description: "ESG 성과를 실시간으로 모니터링하고 분석할 수 있는 통합 데이터 플랫폼을 구축합니다.",
		DeptName:    "기획처",
		Task:        "ESG 플랫폼 구축",
		Goals:       datatypes.JSONSlice[string]{"ESG 대시보드 시스템 개발", "부서별 성과 자동 수집 체계", "외부 공시 자동화"},
		KpiTargets: kpis(
			model.KpiTarget{Name: "데이터 수집 자동화율", Target: "80", Unit: "%"},
			model.KpiTarget{Name: "실시간 모니터링 지표", Target: "50", Unit: "개"},
		),
		Budget:   num(300000000),
		Timeline: "2026.04 ~ 2026.12",
		Status:   model.PlanPlanned,
	},
	{
		Year:        2025,
		Category:    model.CategoryEnvironment,
		Title:       "캠퍼스 탄소중립 2030 로드맵 수립",
		Description: "2030년까지 캠퍼스 탄소 배출량 50% 감축을 위한 단계별 실행 계획을 수립합니다.",
		DeptName:    "총무처",
		Task:        "탄소중립 추진",
		Goals:       datatypes.JSONSlice[string]{"태양광 패널 설치", "LED 조명 전면 교체", "전기차 충전 인프라 구축"},
		KpiTargets: kpis(
			model.KpiTarget{Name: "탄소 배출 감축률", Target: "12", Unit: "%"},
			model.KpiTarget{Name: "태양광 설치 용량", Target: "50", Unit: "kW"},
		),
		Budget:   num(250000000),
		Timeline: "2025.03 ~ 2025.12",
		Status:   model.PlanCompleted,
	},
}
