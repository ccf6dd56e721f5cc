package question

// Category 问题类别
type Category string

const (
	// CategoryTechnical 技术深挖类问题
	CategoryTechnical Category = "technical"
	// CategoryExperience 工作经历类问题
	CategoryExperience Category = "experience"
	// CategoryProject 项目细节类问题
	CategoryProject Category = "project"
	// CategorySoftSkill 软技能类问题
	CategorySoftSkill Category = "softskill"
	// CategoryEducation 教育背景类问题
	CategoryEducation Category = "education"
)

// categoryOrder 输出时的类别先后次序，固定不变
var categoryOrder = []Category{
	CategoryTechnical,
	CategoryExperience,
	CategoryProject,
	CategorySoftSkill,
	CategoryEducation,
}

// 模板库为进程级只读配置，启动时装载一次，并发请求间安全共享。
// 占位符 {skill} {skill1} {skill2} {position} {project} {degree}
// 由生成器用记录字段绑定；同类别内的选择顺序即声明顺序，保证输出可复现

// skillTemplates 单技能模板
var skillTemplates = []string{
	"What's the most complex problem you've solved using {skill}?",
	"How do you debug issues when working with {skill}?",
	"What are the performance considerations when using {skill} in production?",
	"If you had to teach {skill} to a junior developer, what would be your approach?",
}

// skillPairTemplate 双技能对比模板，要求记录中至少有两项技能
var skillPairTemplate = "Compare {skill1} and {skill2} - when would you choose one over the other?"

// positionTemplates 职位绑定模板
var positionTemplates = []string{
	"What were your main responsibilities as a {position}?",
	"Which accomplishment as a {position} are you most proud of, and why?",
}

// projectTemplates 项目绑定模板，每个项目取两条
var projectTemplates = []string{
	"What inspired you to build {project}?",
	"What was your testing strategy for {project}?",
	"How did you handle data management in {project}?",
	"What performance optimizations did you implement in {project}?",
}

// softSkillTemplates 无占位符，仅在记录非空时选取
var softSkillTemplates = []string{
	"Describe a time when you had to learn a new technology quickly for a project.",
	"How do you approach breaking down complex technical problems?",
	"How do you balance technical debt with feature development?",
}

// degreeTemplates 学位绑定模板
var degreeTemplates = []string{
	"How has your {degree} prepared you for this role?",
	"Which part of your {degree} coursework do you apply most in practice?",
}
