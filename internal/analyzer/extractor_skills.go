package analyzer

import (
	"sort"

	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/types"
)

// skillHit 技能关键词在扫描范围内的首次出现
type skillHit struct {
	canonical string
	index     int
	order     int // 词表内的声明顺序，作为同位置时的次级排序键
}

// ExtractSkills 提取技能关键词集合
//
// 优先限定在技能章节内匹配；无技能章节时回退到全文扫描。
// 匹配大小写无关，输出为规范化写法（词表中的写法），按首次出现位置排序，
// 同一技能无论出现多少次、以何种大小写出现，只保留一个条目
func ExtractSkills(segments []types.Segment, fullText string) []string {
	scope := JoinSegmentContent(segments, types.SectionSkills)
	if scope == "" {
		scope = fullText
	}
	if scope == "" {
		return nil
	}

	var hits []skillHit
	for i, sp := range skillPatterns {
		loc := sp.Pattern.FindStringIndex(scope)
		if loc == nil {
			continue
		}
		hits = append(hits, skillHit{canonical: sp.Canonical, index: loc[0], order: i})
	}

	sort.Slice(hits, func(a, b int) bool {
		if hits[a].index != hits[b].index {
			return hits[a].index < hits[b].index
		}
		return hits[a].order < hits[b].order
	})

	skills := make([]string, 0, len(hits))
	for _, hit := range hits {
		skills = append(skills, hit.canonical)
	}
	return skills
}

// SkillCategories 返回技能类别名称表，顺序固定
func SkillCategories() []string {
	names := make([]string, 0, len(skillVocab))
	for _, category := range skillVocab {
		names = append(names, category.Name)
	}
	return names
}
