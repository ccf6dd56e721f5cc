package question

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/config"
	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/constants"
	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/logger"
	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/types"
)

const (
	maxSkillQuestions  = 3 // 单技能问题上限
	maxPositions       = 2 // 职位问题上限
	maxProjectBindings = 3 // 绑定问题的项目数上限，每个项目两问
	maxSoftSkill       = 2 // 软技能问题条数
	maxDegrees         = 2 // 学位问题上限
	projectTitleLimit  = 60
)

// 经历文本中的职位模式，按声明顺序扫描
var positionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(software|web|mobile|frontend|backend|full[- ]stack|data|machine learning|devops|cloud)\s+(developer|engineer|architect|analyst|scientist)\b`),
	regexp.MustCompile(`(?i)\b(senior|junior|lead|principal|associate)\s+[a-z]+\s+(developer|engineer|analyst|manager)\b`),
	regexp.MustCompile(`(?i)\b(project|product|engineering|technical)\s+(manager|lead|coordinator)\b`),
	regexp.MustCompile(`(?i)\b(developer|engineer|analyst|manager|consultant|architect|designer|intern)\b`),
}

// 教育文本中的学位模式
var degreePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(bachelor|master|doctorate|ph\.?d)(?:\s+of)?(?:\s+(?:science|arts|engineering|technology))?(?:\s+in)?\s+([A-Za-z][A-Za-z &]{2,40})`),
	regexp.MustCompile(`(?i)\b(b\.?\s?(?:tech|sc|com|a|e|s)|m\.?\s?(?:tech|sc|com|a|e|s))\.?\s+(?:in\s+)?([A-Za-z][A-Za-z &]{2,40})`),
	regexp.MustCompile(`(?i)\b(diploma|certificate)\s+in\s+([A-Za-z][A-Za-z &]{2,40})`),
}

// 项目标题行首的序号/符号残留
var titlePrefixPattern = regexp.MustCompile(`^[\d.)（）(\]\[*•◦▪\-\s]+`)

// Generator 面试问题生成器
// 从固定模板库按类别选取可满足占位符要求的模板，用记录字段绑定生成问题。
// 同一记录两次生成的输出逐字节一致：无随机选择，类别次序与类别内声明顺序固定
type Generator struct {
	maxQuestions int
	logger       zerolog.Logger
}

// GeneratorOption 生成器选项函数类型
type GeneratorOption func(*Generator)

// WithGeneratorLogger 设置自定义日志记录器
func WithGeneratorLogger(l zerolog.Logger) GeneratorOption {
	return func(g *Generator) {
		g.logger = l
	}
}

// NewGenerator 创建面试问题生成器
func NewGenerator(cfg config.QuestionConfig, options ...GeneratorOption) *Generator {
	g := &Generator{
		maxQuestions: cfg.MaxQuestions,
		logger:       logger.Logger,
	}
	if g.maxQuestions <= 0 {
		g.maxQuestions = constants.DefaultMaxQuestions
	}
	for _, option := range options {
		option(g)
	}
	return g
}

// Generate 为一条简历记录生成有序的面试问题列表
//
// 输出按类别分组排序：technical → experience → project → softskill → education，
// 占位符无法满足的类别整体跳过，永不输出空占位问题。
// 完全空的记录返回空列表，这是合法的退化输出而非错误
func (g *Generator) Generate(record *types.ResumeRecord) []string {
	questions := []string{}
	if record == nil || record.IsEmpty() {
		return questions
	}

	for _, category := range categoryOrder {
		switch category {
		case CategoryTechnical:
			questions = append(questions, g.technicalQuestions(record.Skills)...)
		case CategoryExperience:
			questions = append(questions, g.experienceQuestions(record.Experience)...)
		case CategoryProject:
			questions = append(questions, g.projectQuestions(record.Projects)...)
		case CategorySoftSkill:
			questions = append(questions, softSkillTemplates[:maxSoftSkill]...)
		case CategoryEducation:
			questions = append(questions, g.educationQuestions(record.Education)...)
		}
	}

	if len(questions) > g.maxQuestions {
		questions = questions[:g.maxQuestions]
	}

	g.logger.Debug().
		Int("count", len(questions)).
		Str("candidate", record.CandidateName).
		Msg("面试问题生成完成")
	return questions
}

// technicalQuestions 技能问题：前N项技能各绑定一条模板，有两项以上技能时追加对比问题
func (g *Generator) technicalQuestions(skills []string) []string {
	var questions []string
	for i, skill := range skills {
		if i >= maxSkillQuestions {
			break
		}
		questions = append(questions, bind(skillTemplates[i%len(skillTemplates)], "{skill}", skill))
	}
	if len(skills) >= 2 {
		q := bind(skillPairTemplate, "{skill1}", skills[0])
		questions = append(questions, bind(q, "{skill2}", skills[1]))
	}
	return questions
}

// experienceQuestions 从经历文本提取职位后绑定，无可识别职位则整个类别跳过
func (g *Generator) experienceQuestions(experience string) []string {
	positions := ExtractPositions(experience)
	var questions []string
	for i, position := range positions {
		if i >= maxPositions {
			break
		}
		questions = append(questions, bind(positionTemplates[i%len(positionTemplates)], "{position}", position))
	}
	return questions
}

// projectQuestions 每个项目固定绑定两条模板，模板窗口随项目序号滑动
func (g *Generator) projectQuestions(projects []string) []string {
	var questions []string
	for i, project := range projects {
		if i >= maxProjectBindings {
			break
		}
		title := CleanProjectTitle(project)
		if title == "" {
			continue
		}
		first := (2 * i) % len(projectTemplates)
		second := (2*i + 1) % len(projectTemplates)
		questions = append(questions,
			bind(projectTemplates[first], "{project}", title),
			bind(projectTemplates[second], "{project}", title),
		)
	}
	return questions
}

// educationQuestions 从教育文本提取学位后绑定，无可识别学位则跳过
func (g *Generator) educationQuestions(education string) []string {
	degrees := ExtractDegrees(education)
	var questions []string
	for i, degree := range degrees {
		if i >= maxDegrees {
			break
		}
		questions = append(questions, bind(degreeTemplates[i%len(degreeTemplates)], "{degree}", degree))
	}
	return questions
}

func bind(template, placeholder, value string) string {
	return strings.ReplaceAll(template, placeholder, value)
}

// ExtractPositions 从经历文本中识别职位名称
// 按模式声明顺序扫描，保留首次出现顺序去重，上限三个
func ExtractPositions(experience string) []string {
	if experience == "" {
		return nil
	}
	seen := make(map[string]bool)
	var positions []string
	for _, pattern := range positionPatterns {
		for _, match := range pattern.FindAllString(experience, -1) {
			position := titleCase(strings.TrimSpace(match))
			if position == "" || seen[position] {
				continue
			}
			seen[position] = true
			positions = append(positions, position)
			if len(positions) >= 3 {
				return positions
			}
		}
	}
	return positions
}

// ExtractDegrees 从教育文本中识别学位描述，保留首次出现顺序去重，上限两个
func ExtractDegrees(education string) []string {
	if education == "" {
		return nil
	}
	seen := make(map[string]bool)
	var degrees []string
	for _, pattern := range degreePatterns {
		for _, match := range pattern.FindAllStringSubmatch(education, -1) {
			if len(match) < 3 {
				continue
			}
			degree := titleCase(strings.TrimSpace(match[1] + " " + strings.TrimSpace(match[2])))
			if degree == "" || seen[degree] {
				continue
			}
			seen[degree] = true
			degrees = append(degrees, degree)
			if len(degrees) >= maxDegrees {
				return degrees
			}
		}
	}
	return degrees
}

// CleanProjectTitle 清理项目条目：去掉序号/符号前缀，取第一行第一句，限制长度
func CleanProjectTitle(project string) string {
	title := titlePrefixPattern.ReplaceAllString(project, "")
	if idx := strings.IndexByte(title, '\n'); idx >= 0 {
		title = title[:idx]
	}
	// 句号截断时跳过"Node.js"这类缩写中的点：句号后必须是空格或行尾
	if idx := strings.Index(title, ". "); idx >= 0 {
		title = title[:idx]
	}
	title = strings.TrimSuffix(strings.TrimSpace(title), ".")
	runes := []rune(title)
	if len(runes) > projectTitleLimit {
		title = string(runes[:projectTitleLimit]) + "..."
	}
	return strings.TrimSpace(title)
}

// titleCase 将词组转为标题形式：非字母后的首个字母大写
// "b.tech computer science" → "B.Tech Computer Science"
func titleCase(s string) string {
	runes := []rune(strings.ToLower(s))
	prevLetter := false
	for i, r := range runes {
		isLetter := unicode.IsLetter(r)
		if isLetter && !prevLetter {
			runes[i] = unicode.ToUpper(r)
		}
		prevLetter = isLetter
	}
	return string(runes)
}
