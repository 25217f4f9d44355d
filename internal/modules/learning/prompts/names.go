package prompts

type PromptName string

const (
	PromptConnectivityCheck PromptName = "connectivity_check"
	PromptGrammarExercises  PromptName = "grammar_exercises"
	PromptReadingLesson     PromptName = "reading_lesson"
)

// Keys the model must emit. The parser checks for exactly these.
const (
	KeyQuestionText  = "question_text"
	KeyOptions       = "options"
	KeyCorrectOption = "correct_option"
	KeyTitle         = "title"
	KeyTextPassage   = "text_passage"
	KeyVocabulary    = "vocabulary"
	KeyComprehension = "comprehension_questions"
	KeyWord          = "word"
	KeyPhoneticGuide = "phonetic_guide"
	KeyTranslation   = "translation"
)

// LessonKeys is the required key set of a generated lesson object.
var LessonKeys = []string{KeyTitle, KeyTextPassage, KeyVocabulary, KeyComprehension}

// QuestionKeys is the required key set of a generated multiple choice question.
var QuestionKeys = []string{KeyQuestionText, KeyOptions, KeyCorrectOption}
