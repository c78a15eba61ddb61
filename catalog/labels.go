package catalog

// Labels are the fixed headings and default bullets of generated documents.
// Any label left empty in a catalog file keeps its default.
type Labels struct {
	GuideHeading     string `yaml:"guide_heading"`
	Purpose          string `yaml:"purpose"`
	Responsibilities string `yaml:"responsibilities"`
	Structure        string `yaml:"structure"`
	FileMap          string `yaml:"file_map"`
	Centralization   string `yaml:"centralization"`
	Rules            string `yaml:"rules"`
	References       string `yaml:"references"`
	TreeHeading      string `yaml:"tree_heading"`

	NoPurpose             string `yaml:"no_purpose"`
	NoResponsibilities    string `yaml:"no_responsibilities"`
	NoStructure           string `yaml:"no_structure"`
	NoFiles               string `yaml:"no_files"`
	DefaultCentralization string `yaml:"default_centralization"`
	DefaultRules          string `yaml:"default_rules"`
	DefaultReferences     string `yaml:"default_references"`
}

// DefaultLabels returns the built-in Korean labels.
func DefaultLabels() Labels {
	return Labels{
		GuideHeading:     "라인 가이드",
		Purpose:          "디렉토리 목적",
		Responsibilities: "핵심 책임",
		Structure:        "구조 요약",
		FileMap:          "파일 라인 맵",
		Centralization:   "중앙화·모듈화·캡슐화",
		Rules:            "작업 규칙",
		References:       "관련 문서",
		TreeHeading:      "전체 디렉토리 구조",

		NoPurpose:             "목적이 정의되지 않았습니다.",
		NoResponsibilities:    "현재 정의된 책임이 없습니다.",
		NoStructure:           "하위 디렉토리가 없습니다.",
		NoFiles:               "추적 가능한 파일이 없습니다.",
		DefaultCentralization: "각 모듈은 기존 중앙화 규칙을 따릅니다.",
		DefaultRules:          "변경 시 관련 claude.md와 설정을 함께 점검합니다.",
		DefaultReferences:     "claude.md",
	}
}

// withDefaults fills every empty label from DefaultLabels.
func (l Labels) withDefaults() Labels {
	d := DefaultLabels()
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&l.GuideHeading, d.GuideHeading)
	fill(&l.Purpose, d.Purpose)
	fill(&l.Responsibilities, d.Responsibilities)
	fill(&l.Structure, d.Structure)
	fill(&l.FileMap, d.FileMap)
	fill(&l.Centralization, d.Centralization)
	fill(&l.Rules, d.Rules)
	fill(&l.References, d.References)
	fill(&l.TreeHeading, d.TreeHeading)
	fill(&l.NoPurpose, d.NoPurpose)
	fill(&l.NoResponsibilities, d.NoResponsibilities)
	fill(&l.NoStructure, d.NoStructure)
	fill(&l.NoFiles, d.NoFiles)
	fill(&l.DefaultCentralization, d.DefaultCentralization)
	fill(&l.DefaultRules, d.DefaultRules)
	fill(&l.DefaultReferences, d.DefaultReferences)
	return l
}
