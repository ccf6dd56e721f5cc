package analyzer

import (
	"fmt"
	"strings"

	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/constants"
	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/types"
)

// FieldSet 各提取器的原始输出，记录构建的输入
type FieldSet struct {
	Name       string
	Contact    types.ContactInfo
	Skills     []string
	Education  string
	Experience string
	Summary    string
	Projects   []string
}

// BuilderConfig 记录构建阶段的过滤与缺省策略
type BuilderConfig struct {
	DefaultName     string   // 姓名缺省占位
	MinProjectChars int      // 项目条目最小长度
	MaxProjects     int      // 保留的项目条目上限
	FilterKeywords  []string // 项目条目过滤关键词（小写匹配）
}

// BuildRecord 将提取器输出组装为一条校验过的简历记录
//
// 职责：(a) 姓名缺省回退；(b) 过滤项目原始列表——过短或含机构类关键词的条目
// 是分段器的已知误报（院系标题被当成项目），按配置的关键词表剔除；
// (c) 技能按展示顺序定型；(d) 无总结时用可用字段做确定性的模板填充。
// 构建器不发明联系方式与技能，只做过滤、缺省与总结合成
func BuildRecord(fields FieldSet, cfg BuilderConfig) *types.ResumeRecord {
	if cfg.DefaultName == "" {
		cfg.DefaultName = constants.DefaultCandidateName
	}
	if cfg.MinProjectChars <= 0 {
		cfg.MinProjectChars = constants.DefaultMinProjectChars
	}
	if cfg.MaxProjects <= 0 {
		cfg.MaxProjects = constants.DefaultMaxProjects
	}

	record := &types.ResumeRecord{
		CandidateName: strings.TrimSpace(fields.Name),
		Contact:       fields.Contact,
		Skills:        fields.Skills,
		Education:     fields.Education,
		Experience:    fields.Experience,
		Projects:      filterProjects(fields.Projects, cfg),
		Summary:       fields.Summary,
	}
	if record.CandidateName == "" {
		record.CandidateName = cfg.DefaultName
	}
	if record.Skills == nil {
		record.Skills = []string{}
	}
	if record.Projects == nil {
		record.Projects = []string{}
	}
	if record.Summary == "" {
		record.Summary = synthesizeSummary(record)
	}
	return record
}

// filterProjects 剔除过短条目与机构类关键词条目，并截断到上限
func filterProjects(raw []string, cfg BuilderConfig) []string {
	kept := make([]string, 0, len(raw))
	for _, title := range raw {
		trimmed := strings.TrimSpace(title)
		if len(trimmed) <= cfg.MinProjectChars {
			continue
		}
		if containsKeyword(trimmed, cfg.FilterKeywords) {
			continue
		}
		kept = append(kept, trimmed)
		if len(kept) >= cfg.MaxProjects {
			break
		}
	}
	return kept
}

func containsKeyword(text string, keywords []string) bool {
	lowered := strings.ToLower(text)
	for _, keyword := range keywords {
		if keyword != "" && strings.Contains(lowered, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

// synthesizeSummary 用可用字段做确定性的一句话总结，不是文本生成
// 记录完全为空时返回空串，保持缺省
func synthesizeSummary(record *types.ResumeRecord) string {
	var parts []string
	if n := len(record.Skills); n > 0 {
		top := record.Skills
		if len(top) > 3 {
			top = top[:3]
		}
		parts = append(parts, fmt.Sprintf("%d skills identified including %s", n, strings.Join(top, ", ")))
	}
	if record.Experience != "" {
		parts = append(parts, "prior professional experience")
	}
	if n := len(record.Projects); n > 0 {
		parts = append(parts, fmt.Sprintf("%d listed project(s)", n))
	}
	if record.Education != "" {
		parts = append(parts, "a formal education background")
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("%s: %s.", record.CandidateName, strings.Join(parts, "; "))
}
