package question

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/config"
	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/types"
)

func testGenerator(maxQuestions int) *Generator {
	return NewGenerator(config.QuestionConfig{MaxQuestions: maxQuestions},
		WithGeneratorLogger(zerolog.Nop()))
}

func sampleRecord() *types.ResumeRecord {
	return &types.ResumeRecord{
		CandidateName: "Jane Doe",
		Contact:       types.ContactInfo{Email: "jane.doe@example.com"},
		Skills:        []string{"Python", "SQL", "Docker"},
		Experience:    "Software Engineer at Acme Corp (2019 - 2023)\n- Built data pipelines",
		Education:     "B.Tech in Computer Science, Example University",
		Projects:      []string{"Fraud Detection Model using Python"},
	}
}

func TestGenerate(t *testing.T) {
	g := testGenerator(10)

	t.Run("完整记录生成有序问题列表", func(t *testing.T) {
		questions := g.Generate(sampleRecord())
		require.NotEmpty(t, questions)
		assert.LessOrEqual(t, len(questions), 10)

		// 技术问题在最前，绑定第一项技能
		assert.Equal(t, "What's the most complex problem you've solved using Python?", questions[0])
		// 双技能对比问题绑定前两项技能
		assert.Contains(t, questions,
			"Compare Python and SQL - when would you choose one over the other?")
		// 职位问题在技术问题之后
		assert.Contains(t, questions,
			"What were your main responsibilities as a Software Engineer?")
		// 项目问题绑定清理后的项目标题
		assert.Contains(t, questions,
			"What inspired you to build Fraud Detection Model using Python?")

		// 不允许输出未绑定的占位符
		for _, q := range questions {
			assert.NotContains(t, q, "{", "问题中残留未绑定占位符: %s", q)
		}
	})

	t.Run("同一记录两次生成逐字节一致", func(t *testing.T) {
		first := g.Generate(sampleRecord())
		second := g.Generate(sampleRecord())
		assert.Equal(t, first, second)
		assert.Equal(t, strings.Join(first, "\n"), strings.Join(second, "\n"))
	})

	t.Run("类别次序固定", func(t *testing.T) {
		questions := g.Generate(sampleRecord())
		skillIdx := indexOf(questions, "What's the most complex problem you've solved using Python?")
		positionIdx := indexOf(questions, "What were your main responsibilities as a Software Engineer?")
		projectIdx := indexOf(questions, "What inspired you to build Fraud Detection Model using Python?")
		require.GreaterOrEqual(t, skillIdx, 0)
		require.Greater(t, positionIdx, skillIdx)
		require.Greater(t, projectIdx, positionIdx)
	})

	t.Run("空记录返回空列表而非错误", func(t *testing.T) {
		empty := &types.ResumeRecord{CandidateName: "Candidate", Skills: []string{}, Projects: []string{}}
		questions := g.Generate(empty)
		assert.NotNil(t, questions)
		assert.Empty(t, questions)

		assert.Empty(t, g.Generate(nil))
	})

	t.Run("问题总数上限", func(t *testing.T) {
		questions := testGenerator(3).Generate(sampleRecord())
		assert.Len(t, questions, 3)
	})

	t.Run("占位符无法满足的类别整体跳过", func(t *testing.T) {
		record := &types.ResumeRecord{
			CandidateName: "Candidate",
			Skills:        []string{"Python"},
			Projects:      []string{},
		}
		questions := g.Generate(record)
		require.NotEmpty(t, questions)
		for _, q := range questions {
			assert.NotContains(t, q, "{position}")
			assert.NotContains(t, q, "{project}")
			assert.NotContains(t, q, "{degree}")
			assert.NotContains(t, q, "{skill2}")
		}
	})

	t.Run("单项技能无对比问题", func(t *testing.T) {
		record := &types.ResumeRecord{CandidateName: "Candidate", Skills: []string{"Go"}}
		for _, q := range g.Generate(record) {
			assert.NotContains(t, q, "Compare")
		}
	})
}

func indexOf(list []string, target string) int {
	for i, item := range list {
		if item == target {
			return i
		}
	}
	return -1
}

func TestExtractPositions(t *testing.T) {
	t.Run("常见职位", func(t *testing.T) {
		positions := ExtractPositions("Worked as a software engineer and later as a project manager")
		assert.Contains(t, positions, "Software Engineer")
		assert.Contains(t, positions, "Project Manager")
	})

	t.Run("大小写变体去重", func(t *testing.T) {
		positions := ExtractPositions("Software Engineer, software engineer, SOFTWARE ENGINEER")
		count := 0
		for _, p := range positions {
			if p == "Software Engineer" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("上限三个", func(t *testing.T) {
		text := "software engineer, data analyst, web developer, product manager, devops engineer"
		assert.LessOrEqual(t, len(ExtractPositions(text)), 3)
	})

	t.Run("空输入", func(t *testing.T) {
		assert.Nil(t, ExtractPositions(""))
	})
}

func TestExtractDegrees(t *testing.T) {
	t.Run("缩写学位", func(t *testing.T) {
		degrees := ExtractDegrees("B.Tech in Computer Science, Example University")
		require.Len(t, degrees, 1)
		assert.Equal(t, "B.Tech Computer Science", degrees[0])
	})

	t.Run("完整学位", func(t *testing.T) {
		degrees := ExtractDegrees("Bachelor of Science in Computer Science from Example University")
		require.NotEmpty(t, degrees)
		assert.Contains(t, degrees[0], "Bachelor")
	})

	t.Run("上限两个", func(t *testing.T) {
		text := "Bachelor of Arts in History. Master of Science in Data. Diploma in Welding."
		assert.LessOrEqual(t, len(ExtractDegrees(text)), 2)
	})

	t.Run("无学位信息", func(t *testing.T) {
		assert.Nil(t, ExtractDegrees("no relevant text here"))
		assert.Nil(t, ExtractDegrees(""))
	})
}

func TestCleanProjectTitle(t *testing.T) {
	assert.Equal(t, "Inventory Tracker", CleanProjectTitle("1. Inventory Tracker. Built with Go."))
	assert.Equal(t, "Chat Application", CleanProjectTitle("- Chat Application\nReal-time messaging over WebSocket"))
	// 缩写中的点不触发句子截断
	assert.Equal(t, "Node.js based chat app", CleanProjectTitle("Node.js based chat app"))

	long := strings.Repeat("a", 80)
	cleaned := CleanProjectTitle(long)
	assert.True(t, strings.HasSuffix(cleaned, "..."))
	assert.LessOrEqual(t, len([]rune(cleaned)), 63)

	assert.Equal(t, "", CleanProjectTitle("  - 1) "))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Software Engineer", titleCase("SOFTWARE ENGINEER"))
	assert.Equal(t, "B.Tech Computer Science", titleCase("b.tech computer science"))
	assert.Equal(t, "", titleCase(""))
}
