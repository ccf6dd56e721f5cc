package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/config"
	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/constants"
	"github.com/SUGIRTHAN-21/Ai-Resume-analyzer/internal/types"
)

func testBuilderConfig() BuilderConfig {
	return BuilderConfig{
		DefaultName:     constants.DefaultCandidateName,
		MinProjectChars: constants.DefaultMinProjectChars,
		MaxProjects:     constants.DefaultMaxProjects,
		FilterKeywords:  config.DefaultProjectFilterKeywords(),
	}
}

func TestBuildRecord(t *testing.T) {
	t.Run("姓名缺省回退", func(t *testing.T) {
		record := BuildRecord(FieldSet{}, testBuilderConfig())
		assert.Equal(t, "Candidate", record.CandidateName)

		record = BuildRecord(FieldSet{Name: "  Jane Doe  "}, testBuilderConfig())
		assert.Equal(t, "Jane Doe", record.CandidateName)
	})

	t.Run("切片字段永不为nil", func(t *testing.T) {
		record := BuildRecord(FieldSet{}, testBuilderConfig())
		require.NotNil(t, record.Skills)
		require.NotNil(t, record.Projects)
		assert.Empty(t, record.Skills)
		assert.Empty(t, record.Projects)
	})

	t.Run("项目过滤", func(t *testing.T) {
		fields := FieldSet{
			Projects: []string{
				"Fraud Detection Model using Python",
				"Database Management System department project",
				"Short",
				"Computer Science College of Example University",
			},
		}
		record := BuildRecord(fields, testBuilderConfig())
		assert.Equal(t, []string{"Fraud Detection Model using Python"}, record.Projects)
	})

	t.Run("项目数量上限", func(t *testing.T) {
		fields := FieldSet{
			Projects: []string{
				"Project Alpha with details",
				"Project Beta with details",
				"Project Gamma with details",
			},
		}
		cfg := testBuilderConfig()
		cfg.MaxProjects = 2
		record := BuildRecord(fields, cfg)
		assert.Len(t, record.Projects, 2)
	})

	t.Run("已有总结不被覆盖", func(t *testing.T) {
		record := BuildRecord(FieldSet{Summary: "An experienced engineer."}, testBuilderConfig())
		assert.Equal(t, "An experienced engineer.", record.Summary)
	})

	t.Run("无总结时确定性合成", func(t *testing.T) {
		fields := FieldSet{
			Name:       "Jane Doe",
			Skills:     []string{"Python", "SQL", "Docker", "Git"},
			Experience: "Software Engineer at Acme",
		}
		record := BuildRecord(fields, testBuilderConfig())
		assert.Equal(t,
			"Jane Doe: 4 skills identified including Python, SQL, Docker; prior professional experience.",
			record.Summary)

		// 同样输入两次构建，总结逐字节一致
		again := BuildRecord(fields, testBuilderConfig())
		assert.Equal(t, record.Summary, again.Summary)
	})

	t.Run("空记录不合成总结", func(t *testing.T) {
		record := BuildRecord(FieldSet{}, testBuilderConfig())
		assert.Equal(t, "", record.Summary)
		assert.True(t, record.IsEmpty())
	})

	t.Run("零值配置回退到默认值", func(t *testing.T) {
		record := BuildRecord(FieldSet{}, BuilderConfig{})
		assert.Equal(t, constants.DefaultCandidateName, record.CandidateName)
	})
}

func TestFilterProjects(t *testing.T) {
	cfg := testBuilderConfig()
	kept := filterProjects([]string{
		"  Fraud Detection Model  ",
		"tiny",
		"Mechanical Engineering Faculty listing entry",
	}, cfg)
	assert.Equal(t, []string{"Fraud Detection Model"}, kept)
}

func TestContainsKeyword(t *testing.T) {
	keywords := config.DefaultProjectFilterKeywords()
	assert.True(t, containsKeyword("Example UNIVERSITY Department", keywords))
	assert.False(t, containsKeyword("Fraud Detection Model", keywords))
	assert.False(t, containsKeyword("anything", nil))
}

func TestSectionPresenceMissing(t *testing.T) {
	presence := types.SectionPresence{Experience: true, Skills: true}
	assert.Equal(t, []string{"education", "projects"}, presence.Missing())
	assert.Empty(t, types.SectionPresence{Experience: true, Education: true, Skills: true, Projects: true}.Missing())
}
