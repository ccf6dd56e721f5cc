package analyzer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/types"
)

const (
	// 标题候选行的最大长度（按rune计）
	maxHeadingRunes = 40
)

// SegmentText 将规范化文本切分为带标签的有序章节序列
//
// 逐行扫描标题：命中标题词表的行开启对应标签的新章节；两个标题之间的文本归属
// 前一个标题。第一个标题之前的文本归入隐式的头部章节（按惯例姓名与联系方式
// 在文档最前，标签为CONTACT）。形似标题但不在词表中的行开启UNCLASSIFIED章节，
// 这类内容不直接暴露给章节级提取器，仅作为联系方式的全文兜底扫描范围。
//
// 不变式：各章节互不重叠，按序拼接（标题行+正文）可还原输入文本，
// 文本只会被重新归类，不会被静默丢弃
func SegmentText(text string) []types.Segment {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	var segments []types.Segment

	// 隐式头部章节
	current := types.Segment{Label: types.SectionContact}
	var content []string
	seenHeading := false

	flush := func() {
		current.Content = strings.Join(content, "\n")
		// 头部章节只有在有内容时才保留
		if current.Heading != "" || strings.TrimSpace(current.Content) != "" {
			segments = append(segments, current)
		}
		content = content[:0]
	}

	for _, line := range lines {
		if label, ok := classifyHeading(line); ok {
			flush()
			current = types.Segment{Label: label, Heading: line}
			seenHeading = true
			continue
		}
		// 形似标题但词表未命中的行：终结当前已标注章节，开启未分类章节
		// 头部章节不受此规则影响，避免把全大写的姓名行误判为标题
		if seenHeading && looksLikeHeading(line) {
			flush()
			current = types.Segment{Label: types.SectionUnclassified, Heading: line}
			continue
		}
		content = append(content, line)
	}
	flush()

	return segments
}

// SegmentsByLabel 取出指定标签的全部章节，保持原顺序
func SegmentsByLabel(segments []types.Segment, label types.SectionLabel) []types.Segment {
	var matched []types.Segment
	for _, seg := range segments {
		if seg.Label == label {
			matched = append(matched, seg)
		}
	}
	return matched
}

// JoinSegmentContent 将同标签章节的正文拼接为一个字符串，无章节时返回空串
func JoinSegmentContent(segments []types.Segment, label types.SectionLabel) string {
	var parts []string
	for _, seg := range SegmentsByLabel(segments, label) {
		trimmed := strings.TrimSpace(seg.Content)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, "\n")
}

// classifyHeading 判断一行是否为已知章节标题，词表顺序即命中优先级
func classifyHeading(line string) (types.SectionLabel, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || utf8.RuneCountInString(trimmed) > maxHeadingRunes {
		return "", false
	}

	hasColon := strings.HasSuffix(trimmed, ":") || strings.HasSuffix(trimmed, "：")
	stripped := strings.TrimRight(trimmed, ":： ")
	lowered := strings.ToLower(stripped)
	caps := isAllCaps(stripped)

	for _, entry := range headingVocab {
		for _, term := range entry.Terms {
			if lowered == term {
				return entry.Label, true
			}
			// 前缀命中要求格式线索（全大写或冒号结尾），如 "SKILLS & TOOLS"
			if (caps || hasColon) && strings.HasPrefix(lowered, term+" ") {
				return entry.Label, true
			}
		}
	}
	return "", false
}

// looksLikeHeading 判断一行是否具备标题的格式特征（短、全大写或冒号结尾）
func looksLikeHeading(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || utf8.RuneCountInString(trimmed) > maxHeadingRunes {
		return false
	}
	if strings.HasSuffix(trimmed, ":") || strings.HasSuffix(trimmed, "：") {
		return hasLetter(trimmed)
	}
	// 全大写分支排除含列表符号的行，全大写的技能枚举行不是标题
	if strings.ContainsAny(trimmed, ",;|•") {
		return false
	}
	return isAllCaps(trimmed) && len(strings.Fields(trimmed)) <= 4
}

// isAllCaps 文本含字母且无小写字母
func isAllCaps(s string) bool {
	hasUpper := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
