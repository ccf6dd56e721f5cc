package constants

const (
	// DefaultCandidateName is the placeholder used when no name can be detected.
	DefaultCandidateName = "Candidate"

	// DefaultMaxProjects caps how many project entries survive record building.
	DefaultMaxProjects = 5

	// DefaultMinProjectChars drops project lines at or under this length,
	// they are almost always stray bullets or mis-segmented headings.
	DefaultMinProjectChars = 10

	// DefaultNameLookaheadLines bounds the top-of-document window scanned for
	// the candidate name.
	DefaultNameLookaheadLines = 5

	// DefaultMaxQuestions caps the generated interview question list.
	DefaultMaxQuestions = 10

	// DefaultMaxUploadSizeMB is the upload size limit for resume files.
	DefaultMaxUploadSizeMB = 16

	// MaxMissingSections is the tolerated number of absent key sections before
	// a document is rejected as not being a resume.
	MaxMissingSections = 2
)
