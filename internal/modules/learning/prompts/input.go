package prompts

// Input is a superset of the fields any prompt renders.
// Missing fields render as zero values (templates use missingkey=zero).
type Input struct {
	Topic        string
	Level        string
	ExerciseType string
	NumQuestions int
	// Lesson generation
	NumVocabulary int
	// Optional free text appended to the instructions, e.g. the learner's goal.
	LessonContext string
}

const (
	DefaultLessonQuestions  = 3
	DefaultLessonVocabulary = 5
	MaxQuestions            = 20
)
