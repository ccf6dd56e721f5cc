package analyzer

import (
	"regexp"

	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/types"
)

// 规则表集中在本文件维护：章节标题词表、技能关键词表、联系方式模式
// 均为进程级只读数据，初始化后不再修改，可在并发请求间安全共享

// headingVocabEntry 一个章节标签对应的标题词表
type headingVocabEntry struct {
	Label types.SectionLabel
	Terms []string // 小写短语，按常见程度排列
}

// headingVocab 标题词表，切片顺序即命中优先级：
// contact > skills > experience > education > projects > summary
// skills/experience 的标题判别更可靠，优先于泛化程度高的弱标题
var headingVocab = []headingVocabEntry{
	{types.SectionContact, []string{
		"contact", "contact information", "contact details", "personal details",
		"联系方式",
	}},
	{types.SectionSkills, []string{
		"skills", "technical skills", "competencies", "expertise",
		"technologies", "core skills", "技能", "专业技能",
	}},
	{types.SectionExperience, []string{
		"experience", "work experience", "employment", "career",
		"professional experience", "work history", "employment history",
		"工作经历", "实习经历",
	}},
	{types.SectionEducation, []string{
		"education", "academic", "academics", "qualification",
		"qualifications", "academic background", "教育经历", "教育背景",
	}},
	{types.SectionProjects, []string{
		"projects", "project", "portfolio", "achievements", "work samples",
		"academic projects", "personal projects", "项目经历",
	}},
	{types.SectionSummary, []string{
		"summary", "professional summary", "objective", "career objective",
		"profile", "about me", "自我评价", "个人简介",
	}},
}

// validationVocab 章节存在性校验词表，对全文做大小写无关的短语匹配
// 比标题词表更宽松：这些词出现在正文中也算章节存在的证据
var validationVocab = map[string][]string{
	"experience": {"experience", "work experience", "employment", "career", "professional experience", "work history"},
	"education":  {"education", "academic", "degree", "university", "college", "school", "qualification"},
	"skills":     {"skills", "technical skills", "competencies", "expertise", "technologies", "programming"},
	"projects":   {"projects", "project", "portfolio", "work samples", "achievements"},
}

// skillCategory 一个技能类别及其规范化关键词
type skillCategory struct {
	Name     string
	Keywords []string // 规范化写法，匹配时大小写无关
}

// skillVocab 技能关键词表，类别顺序与类别内顺序固定，保证输出可复现
var skillVocab = []skillCategory{
	{"programming", []string{
		"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "PHP",
		"Ruby", "Go", "Rust", "Swift", "Kotlin",
	}},
	{"web", []string{
		"HTML", "CSS", "React", "Angular", "Vue", "Node.js", "Express",
		"Django", "Flask", "Spring",
	}},
	{"database", []string{
		"SQL", "MySQL", "PostgreSQL", "MongoDB", "Oracle", "SQLite", "Redis",
	}},
	{"cloud", []string{
		"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Jenkins", "Terraform",
	}},
	{"tools", []string{
		"Git", "GitHub", "GitLab", "Jira", "Confluence", "Slack", "Linux",
	}},
}

// nonNameWords 出现在姓名候选行中即排除该行的词汇
var nonNameWords = []string{
	"email", "phone", "address", "resume", "cv", "curriculum", "mobile", "tel",
}

// 联系方式识别模式
var (
	emailPattern = regexp.MustCompile(`(?i)[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	// 候选电话片段：带可选国家码的数字/分隔符序列，提取后再按位数校验
	phonePattern = regexp.MustCompile(`\+?\(?\d[\d\s().\-]{6,18}\d`)
	// 门牌号+街道类型词
	streetPattern = regexp.MustCompile(`(?i)\b\d+[\s,]+[A-Za-z .]*\b(street|st|road|rd|avenue|ave|lane|ln|drive|dr|block|nagar|colony|layout)\b`)
	// 城市, 州/省 邮编
	cityStateZipPattern = regexp.MustCompile(`[A-Za-z][A-Za-z .]+,\s*[A-Za-z][A-Za-z .]*\s+\d{5,6}\b`)
)

// 教育信息的学位模式，用于 education 章节缺失时的兜底扫描
var degreeLinePattern = regexp.MustCompile(`(?i)\b(bachelor|master|doctorate|ph\.?d|b\.?\s?(?:tech|sc|e|a|com|s)|m\.?\s?(?:tech|sc|e|a|com|s)|associate|diploma)\b[^.\n]*`)

// 项目条目的行首序号/项目符号
var bulletPrefixPattern = regexp.MustCompile(`^\s*(?:\d+[.)]\s*|[-*•◦▪]\s*)`)

// compiledSkillPattern 单个技能关键词的匹配模式
type compiledSkillPattern struct {
	Canonical string
	Category  string
	Pattern   *regexp.Regexp
}

// skillPatterns 编译后的技能模式表，init 时构建一次
var skillPatterns = compileSkillPatterns()

func compileSkillPatterns() []compiledSkillPattern {
	var patterns []compiledSkillPattern
	for _, category := range skillVocab {
		for _, keyword := range category.Keywords {
			patterns = append(patterns, compiledSkillPattern{
				Canonical: keyword,
				Category:  category.Name,
				Pattern:   regexp.MustCompile(keywordBoundaryExpr(keyword)),
			})
		}
	}
	return patterns
}

// keywordBoundaryExpr 为关键词生成带词边界的大小写无关表达式
// "C++"、"C#"、"Node.js" 这类含符号的词尾不能使用 \b，改用否定字符类收尾
func keywordBoundaryExpr(keyword string) string {
	quoted := regexp.QuoteMeta(keyword)
	expr := `(?i)`
	if isWordByte(keyword[0]) {
		expr += `\b`
	}
	expr += quoted
	if isWordByte(keyword[len(keyword)-1]) {
		expr += `\b`
	} else {
		expr += `(?:[^+#\w]|$)`
	}
	return expr
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
