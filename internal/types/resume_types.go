package types

// SectionLabel 表示简历章节标签
type SectionLabel string

const (
	// SectionContact 联系方式/文档头部章节
	SectionContact SectionLabel = "CONTACT"
	// SectionSummary 个人总结章节
	SectionSummary SectionLabel = "SUMMARY"
	// SectionEducation 教育经历章节
	SectionEducation SectionLabel = "EDUCATION"
	// SectionExperience 工作经历章节
	SectionExperience SectionLabel = "EXPERIENCE"
	// SectionSkills 技能章节
	SectionSkills SectionLabel = "SKILLS"
	// SectionProjects 项目经历章节
	SectionProjects SectionLabel = "PROJECTS"
	// SectionUnclassified 未分类内容章节，仅作为联系方式的兜底扫描范围
	SectionUnclassified SectionLabel = "UNCLASSIFIED"
)

// Segment 简历文本中一个带标签的连续区域
// Heading 为实际命中的标题行；文档头部的隐式段 Heading 为空
type Segment struct {
	Label   SectionLabel // 章节标签
	Heading string       // 标题行原文
	Content string       // 章节正文（不含标题行）
}

// ContactInfo 联系方式，各字段独立可缺省，缺省用空字符串表示
type ContactInfo struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// ResumeRecord 一份简历的规范化结构表示
// CandidateName 永不为空（未识别时回退为默认占位名），其余字段允许缺省：
// 字符串字段缺省为空串，切片字段缺省为空切片，不存在 nil 与空的二义性
type ResumeRecord struct {
	CandidateName string      `json:"candidate_name"`
	Contact       ContactInfo `json:"contact"`
	Skills        []string    `json:"skills"`
	Education     string      `json:"education,omitempty"`
	Experience    string      `json:"experience,omitempty"`
	Projects      []string    `json:"projects"`
	Summary       string      `json:"summary,omitempty"`
}

// IsEmpty 判断记录中是否没有任何可提取字段（默认姓名不算）
func (r *ResumeRecord) IsEmpty() bool {
	return len(r.Skills) == 0 &&
		len(r.Projects) == 0 &&
		r.Education == "" &&
		r.Experience == "" &&
		r.Contact.Email == "" &&
		r.Contact.Phone == "" &&
		r.Contact.Address == ""
}

// SectionPresence 四个关键章节的存在性检查结果
type SectionPresence struct {
	Experience bool `json:"experience"`
	Education  bool `json:"education"`
	Skills     bool `json:"skills"`
	Projects   bool `json:"projects"`
}

// Missing 返回缺失章节名称列表，顺序固定
func (p SectionPresence) Missing() []string {
	missing := make([]string, 0, 4)
	if !p.Experience {
		missing = append(missing, "experience")
	}
	if !p.Education {
		missing = append(missing, "education")
	}
	if !p.Skills {
		missing = append(missing, "skills")
	}
	if !p.Projects {
		missing = append(missing, "projects")
	}
	return missing
}

// AnalysisResponse 一次简历分析请求的完整响应
type AnalysisResponse struct {
	AnalysisID    string          `json:"analysis_id"`
	Resume        *ResumeRecord   `json:"resume"`
	Questions     []string        `json:"questions"`
	SectionsFound SectionPresence `json:"sections_found"`
}
