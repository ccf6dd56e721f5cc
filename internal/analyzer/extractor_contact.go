package analyzer

import (
	"strings"
	"unicode"

	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/types"
)

// ExtractName 从文档头部识别候选人姓名
//
// 在前 lookahead 个非空行内（且在任何章节标题之前）寻找形似人名的行：
// 2–4个首字母大写的词，不含数字与@，不命中标题词表与联系方式词汇。
// 返回第一个命中的行，窗口内无命中时返回空串（缺省）
func ExtractName(text string, lookahead int) string {
	if lookahead <= 0 {
		return ""
	}
	scanned := 0
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if _, isHeading := classifyHeading(trimmed); isHeading {
			// 姓名只可能出现在第一个标题之前
			return ""
		}
		if looksLikeName(trimmed) {
			return trimmed
		}
		scanned++
		if scanned >= lookahead {
			break
		}
	}
	return ""
}

// looksLikeName 判断一行是否形似人名
func looksLikeName(line string) bool {
	if strings.ContainsRune(line, '@') {
		return false
	}
	for _, r := range line {
		if unicode.IsDigit(r) {
			return false
		}
	}

	tokens := strings.Fields(line)
	if len(tokens) < 2 || len(tokens) > 4 {
		return false
	}
	for _, token := range tokens {
		if !unicode.IsUpper(firstRune(token)) {
			return false
		}
	}

	lowered := strings.ToLower(line)
	// 按词匹配而非子串匹配："Patel"含"tel"，不能因此排除
	for _, token := range strings.Fields(lowered) {
		token = strings.Trim(token, ":,.")
		for _, word := range nonNameWords {
			if token == word {
				return false
			}
		}
	}
	for _, entry := range headingVocab {
		for _, term := range entry.Terms {
			if strings.Contains(lowered, term) {
				return false
			}
		}
	}
	return true
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// ExtractContact 在整个规范化文本上扫描联系方式
// 不限定在联系方式章节内：邮箱/电话可能出现在文档任何位置（如页脚）
// 各子字段独立可缺省，缺省即空串，不产生错误
func ExtractContact(text string) types.ContactInfo {
	var info types.ContactInfo

	if match := emailPattern.FindString(text); match != "" {
		info.Email = match
	}
	info.Phone = extractPhone(text)
	info.Address = extractAddressLine(text)
	return info
}

// extractPhone 提取第一个位数合理的电话号码候选
// 数字位数限定在9–15位：过滤掉"2019 - 2023"这类年份区间（8位）的误匹配
func extractPhone(text string) string {
	for _, candidate := range phonePattern.FindAllString(text, -1) {
		digits := 0
		for _, r := range candidate {
			if unicode.IsDigit(r) {
				digits++
			}
		}
		if digits >= 9 && digits <= 15 {
			return strings.TrimSpace(candidate)
		}
	}
	return ""
}

// extractAddressLine 按行扫描地址特征：门牌号+街道类型词，或 城市,州 邮编
func extractAddressLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if streetPattern.MatchString(trimmed) || cityStateZipPattern.MatchString(trimmed) {
			return trimmed
		}
	}
	return ""
}
