package analyzer

import (
	"strings"

	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/types"
)

// ExtractEducation 提取教育信息
// 有教育章节时原样拼接其正文；无章节时退化为全文学位模式扫描，
// 扫描也无命中则缺省（空串）
func ExtractEducation(segments []types.Segment, fullText string) string {
	if joined := JoinSegmentContent(segments, types.SectionEducation); joined != "" {
		return joined
	}

	matches := degreeLinePattern.FindAllString(fullText, 5)
	if len(matches) == 0 {
		return ""
	}
	parts := make([]string, 0, len(matches))
	for _, m := range matches {
		if trimmed := strings.TrimSpace(m); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, ". ")
}

// ExtractExperience 提取工作经历：经历章节正文的原样拼接，无章节即缺省
func ExtractExperience(segments []types.Segment) string {
	return JoinSegmentContent(segments, types.SectionExperience)
}

// ExtractSummary 提取个人总结章节正文，无章节即缺省
func ExtractSummary(segments []types.Segment) string {
	return JoinSegmentContent(segments, types.SectionSummary)
}

// ExtractProjects 提取候选项目标题行
//
// 从项目章节正文按项目符号/行边界切出候选行并去除符号前缀；
// 无项目章节时兜底扫描经历与教育章节中含"project"字样的列表行。
// 此处只做切分，不做质量过滤：长度与机构关键词过滤属于记录构建阶段
func ExtractProjects(segments []types.Segment) []string {
	scope := JoinSegmentContent(segments, types.SectionProjects)
	if scope != "" {
		return splitProjectLines(scope)
	}

	// 兜底：经历/教育章节中形似项目条目的列表行
	var fallback []string
	for _, label := range []types.SectionLabel{types.SectionExperience, types.SectionEducation} {
		for _, line := range strings.Split(JoinSegmentContent(segments, label), "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || !bulletPrefixPattern.MatchString(line) {
				continue
			}
			if strings.Contains(strings.ToLower(trimmed), "project") {
				fallback = append(fallback, stripBulletPrefix(trimmed))
			}
		}
	}
	return fallback
}

// splitProjectLines 将项目章节正文切为候选标题行
// 存在列表行时只取列表行（其余视为项目描述）；否则每个非空行都是候选
func splitProjectLines(content string) []string {
	lines := strings.Split(content, "\n")

	var bulleted []string
	for _, line := range lines {
		if bulletPrefixPattern.MatchString(line) {
			bulleted = append(bulleted, stripBulletPrefix(strings.TrimSpace(line)))
		}
	}
	if len(bulleted) > 0 {
		return bulleted
	}

	var candidates []string
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			candidates = append(candidates, trimmed)
		}
	}
	return candidates
}

func stripBulletPrefix(line string) string {
	return strings.TrimSpace(bulletPrefixPattern.ReplaceAllString(line, ""))
}
