package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("统一换行符", func(t *testing.T) {
		assert.Equal(t, "line1\nline2\nline3", Normalize("line1\r\nline2\rline3"))
	})

	t.Run("压缩行内空白", func(t *testing.T) {
		assert.Equal(t, "John Doe", Normalize("John    Doe"))
		// 制表符与NBSP等unicode空白变体一并压缩
		assert.Equal(t, "a b c", Normalize("a\tb  c"))
	})

	t.Run("去除行首行尾空白", func(t *testing.T) {
		assert.Equal(t, "hello", Normalize("   hello   "))
	})

	t.Run("连续空行压缩为一个", func(t *testing.T) {
		assert.Equal(t, "a\n\nb", Normalize("a\n\n\n\n\nb"))
	})

	t.Run("去除首尾空行", func(t *testing.T) {
		assert.Equal(t, "content", Normalize("\n\n\ncontent\n\n\n"))
	})

	t.Run("保留大小写", func(t *testing.T) {
		assert.Equal(t, "EDUCATION\nB.Tech", Normalize("EDUCATION\nB.Tech"))
	})

	t.Run("空输入返回空串", func(t *testing.T) {
		assert.Equal(t, "", Normalize(""))
		assert.Equal(t, "", Normalize("   \n\t\n  "))
	})

	t.Run("幂等性", func(t *testing.T) {
		inputs := []string{
			"John  Doe\r\n\r\n\r\nSKILLS\r\nPython,   Java",
			"  leading\n\n\n\ntrailing  \n\n",
			"already\nnormalized\n\ntext",
		}
		for _, input := range inputs {
			once := Normalize(input)
			assert.Equal(t, once, Normalize(once), "Normalize应当幂等: %q", input)
		}
	})
}

func TestCollapseSpaces(t *testing.T) {
	assert.Equal(t, "a b", collapseSpaces("  a   b  "))
	assert.Equal(t, "", collapseSpaces(" \t   "))
	assert.Equal(t, "全角 空格", collapseSpaces("全角　空格"))
}
