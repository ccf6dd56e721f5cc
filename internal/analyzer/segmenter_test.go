package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/types"
)

const sampleResume = `Jane A Doe
jane.doe@example.com | +91 98765 43210

SKILLS
Python, SQL, Docker

EXPERIENCE
Software Engineer at Acme Corp (2019 - 2023)
- Built data pipelines

EDUCATION
B.Tech in Computer Science, Example University

PROJECTS
- Fraud Detection Model using Python
- Database Management System department project`

func TestSegmentText(t *testing.T) {
	t.Run("识别标准章节并保持文档顺序", func(t *testing.T) {
		segments := SegmentText(Normalize(sampleResume))
		require.Len(t, segments, 5)

		labels := make([]types.SectionLabel, 0, len(segments))
		for _, seg := range segments {
			labels = append(labels, seg.Label)
		}
		assert.Equal(t, []types.SectionLabel{
			types.SectionContact,
			types.SectionSkills,
			types.SectionExperience,
			types.SectionEducation,
			types.SectionProjects,
		}, labels)

		// 隐式头部章节没有标题行
		assert.Empty(t, segments[0].Heading)
		assert.Contains(t, segments[0].Content, "Jane A Doe")
		assert.Equal(t, "SKILLS", segments[1].Heading)
		assert.Contains(t, segments[3].Content, "B.Tech")
	})

	t.Run("章节拼接可还原输入文本", func(t *testing.T) {
		normalized := Normalize(sampleResume)
		segments := SegmentText(normalized)

		var parts []string
		for _, seg := range segments {
			if seg.Heading != "" {
				parts = append(parts, seg.Heading)
			}
			if seg.Content != "" {
				parts = append(parts, seg.Content)
			}
		}
		assert.Equal(t, normalized, strings.Join(parts, "\n"), "分段不应丢失任何文本")
	})

	t.Run("标题之间的文本归属前一个标题", func(t *testing.T) {
		text := Normalize("EDUCATION\nB.Sc in Physics, Example University\nEXPERIENCE\nResearch Assistant at Example Lab")
		segments := SegmentText(text)
		require.Len(t, segments, 2)
		assert.Equal(t, types.SectionEducation, segments[0].Label)
		assert.Equal(t, "B.Sc in Physics, Example University", segments[0].Content)
		assert.Equal(t, types.SectionExperience, segments[1].Label)
		assert.Equal(t, "Research Assistant at Example Lab", segments[1].Content)
	})

	t.Run("词表外的标题行归入未分类章节", func(t *testing.T) {
		text := Normalize("EDUCATION\nB.Sc in Physics\nHOBBIES\nChess and hiking")
		segments := SegmentText(text)
		require.Len(t, segments, 2)
		assert.Equal(t, types.SectionEducation, segments[0].Label)
		assert.Equal(t, types.SectionUnclassified, segments[1].Label)
		assert.Equal(t, "HOBBIES", segments[1].Heading)
		assert.Equal(t, "Chess and hiking", segments[1].Content)
	})

	t.Run("文档头部的全大写姓名不被当作标题", func(t *testing.T) {
		text := Normalize("JANE DOE\njane@example.com\nEDUCATION\nB.Tech")
		segments := SegmentText(text)
		require.Len(t, segments, 2)
		assert.Equal(t, types.SectionContact, segments[0].Label)
		assert.Contains(t, segments[0].Content, "JANE DOE")
		assert.Equal(t, types.SectionEducation, segments[1].Label)
	})

	t.Run("带冒号的标题", func(t *testing.T) {
		segments := SegmentText(Normalize("Skills:\nPython\nWork Experience:\nEngineer"))
		require.Len(t, segments, 2)
		assert.Equal(t, types.SectionSkills, segments[0].Label)
		assert.Equal(t, types.SectionExperience, segments[1].Label)
	})

	t.Run("空输入", func(t *testing.T) {
		assert.Nil(t, SegmentText(""))
	})

	t.Run("无任何标题时整个文档归入头部章节", func(t *testing.T) {
		segments := SegmentText("just some plain text\nwith no headings at all")
		require.Len(t, segments, 1)
		assert.Equal(t, types.SectionContact, segments[0].Label)
	})
}

func TestClassifyHeading(t *testing.T) {
	cases := []struct {
		line  string
		label types.SectionLabel
		ok    bool
	}{
		{"EDUCATION", types.SectionEducation, true},
		{"Education", types.SectionEducation, true},
		{"Work Experience", types.SectionExperience, true},
		{"EDUCATION:", types.SectionEducation, true},
		{"技能", types.SectionSkills, true},
		{"SKILLS & TOOLS", types.SectionSkills, true},
		{"Summary", types.SectionSummary, true},
		{"Software Engineer at Acme", "", false},
		{"", "", false},
		{"B.Tech in Computer Science, Example University", "", false},
	}
	for _, c := range cases {
		label, ok := classifyHeading(c.line)
		assert.Equal(t, c.ok, ok, "line=%q", c.line)
		if c.ok {
			assert.Equal(t, c.label, label, "line=%q", c.line)
		}
	}
}

func TestLooksLikeHeading(t *testing.T) {
	assert.True(t, looksLikeHeading("HOBBIES"))
	assert.True(t, looksLikeHeading("Certifications:"))
	// 全大写的技能枚举行不是标题
	assert.False(t, looksLikeHeading("AWS, DOCKER, SQL"))
	assert.False(t, looksLikeHeading("a regular sentence in the body"))
	assert.False(t, looksLikeHeading(""))
}

func TestJoinSegmentContent(t *testing.T) {
	segments := []types.Segment{
		{Label: types.SectionSkills, Content: "Python"},
		{Label: types.SectionEducation, Content: "B.Tech"},
		{Label: types.SectionSkills, Content: "  SQL  "},
	}
	assert.Equal(t, "Python\nSQL", JoinSegmentContent(segments, types.SectionSkills))
	assert.Equal(t, "", JoinSegmentContent(segments, types.SectionProjects))
}
