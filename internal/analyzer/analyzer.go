package analyzer

import (
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/config"
	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/logger"
	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/types"
)

// Analyzer 简历分析流水线的聚合入口
// 流水线：规范化 → 分段 → 字段提取 → 记录构建
// 无内部状态跨请求共享，同一实例可在并发请求间安全复用
type Analyzer struct {
	cfg    config.AnalyzerConfig
	logger zerolog.Logger
}

// Option 分析器选项函数类型
type Option func(*Analyzer)

// WithLogger 设置自定义日志记录器
func WithLogger(l zerolog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = l
	}
}

// NewAnalyzer 创建简历分析器
func NewAnalyzer(cfg config.AnalyzerConfig, options ...Option) *Analyzer {
	a := &Analyzer{
		cfg:    cfg,
		logger: logger.Logger,
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// Analyze 对一段简历文本执行完整的分析流水线，产出结构化记录
//
// 只有结构性输入问题（非法UTF-8）会返回错误；提取不确定一律退化为缺省。
// 空文本是合法的退化输入：返回占位姓名、其余字段全缺省的记录，不报错
func (a *Analyzer) Analyze(text string) (*types.ResumeRecord, error) {
	if !utf8.ValidString(text) {
		return nil, NewInputError("输入文本包含非法字节序列")
	}

	normalized := Normalize(text)
	segments := SegmentText(normalized)

	fields := FieldSet{
		Name:       ExtractName(normalized, a.cfg.NameLookaheadLines),
		Contact:    ExtractContact(normalized),
		Skills:     ExtractSkills(segments, normalized),
		Education:  ExtractEducation(segments, normalized),
		Experience: ExtractExperience(segments),
		Summary:    ExtractSummary(segments),
		Projects:   ExtractProjects(segments),
	}

	record := BuildRecord(fields, BuilderConfig{
		MinProjectChars: a.cfg.MinProjectChars,
		MaxProjects:     a.cfg.MaxProjects,
		FilterKeywords:  a.cfg.ProjectFilterKeywords,
	})

	a.logger.Debug().
		Int("segments", len(segments)).
		Int("skills", len(record.Skills)).
		Int("projects", len(record.Projects)).
		Bool("has_email", record.Contact.Email != "").
		Str("candidate", record.CandidateName).
		Msg("简历分析完成")

	return record, nil
}

// ValidateSections 检查文本中四个关键章节的存在性
// 采用比标题识别更宽松的全文短语匹配：关键词出现在正文中也算章节存在的证据
func (a *Analyzer) ValidateSections(text string) types.SectionPresence {
	lowered := strings.ToLower(text)
	return types.SectionPresence{
		Experience: anyPhrase(lowered, validationVocab["experience"]),
		Education:  anyPhrase(lowered, validationVocab["education"]),
		Skills:     anyPhrase(lowered, validationVocab["skills"]),
		Projects:   anyPhrase(lowered, validationVocab["projects"]),
	}
}

func anyPhrase(lowered string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}
	return false
}
