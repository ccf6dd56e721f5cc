package analyzer

import (
	"strings"
	"unicode"
)

// Normalize 清洗PDF提取出的原始文本
// 规则：统一换行符；行内空白（含NBSP等unicode空白变体）压缩为单个空格；
// 去除行首行尾空白；连续空行压缩为一个；不改变大小写（下游标题/缩写识别需要）
// 幂等：Normalize(Normalize(s)) == Normalize(s)；空输入返回空串
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	// 统一换行符
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	normalized := make([]string, 0, len(lines))
	blankRun := false
	for _, line := range lines {
		collapsed := collapseSpaces(line)
		if collapsed == "" {
			// 连续空行只保留一个
			if !blankRun && len(normalized) > 0 {
				normalized = append(normalized, "")
			}
			blankRun = true
			continue
		}
		blankRun = false
		normalized = append(normalized, collapsed)
	}

	// 去掉末尾残留的空行
	for len(normalized) > 0 && normalized[len(normalized)-1] == "" {
		normalized = normalized[:len(normalized)-1]
	}

	return strings.Join(normalized, "\n")
}

// collapseSpaces 压缩一行内的空白序列并去除首尾空白
// unicode.IsSpace 覆盖 NBSP( )、全角空格(　)等变体
func collapseSpaces(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	pendingSpace := false
	for _, r := range line {
		if unicode.IsSpace(r) {
			pendingSpace = b.Len() > 0
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
