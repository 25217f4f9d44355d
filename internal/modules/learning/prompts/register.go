package prompts

func init() {
	registerSpec(Spec{
		Name:    PromptConnectivityCheck,
		Version: 1,
		Text:    `Explain what an API is in one simple sentence for a beginner.`,
	})

	registerSpec(Spec{
		Name:    PromptGrammarExercises,
		Version: 1,
		Text: `
Generate exactly {{.NumQuestions}} {{humanize .ExerciseType}} grammar questions suitable for a {{trim .Level}} level English learner, focusing specifically on the topic: "{{trim .Topic}}".

For each question, provide:
1. A sentence relevant to the topic with a blank space to be filled or a verb in parentheses to be conjugated.
2. Four distinct options as potential answers, where only one option is grammatically correct for the tense/topic required by the context. Include the correct answer among the options.
3. The correct option string (exactly as it appears in the options list).
{{- if .LessonContext}}

Additional context from the learner: {{trim .LessonContext}}
{{- end}}

Please format the entire output strictly as a single JSON list. Each element in the list must be a JSON object representing one question, with the following exact keys:
- "question_text": A string containing the question sentence.
- "options": A list of four strings representing the answer choices.
- "correct_option": A string containing the correct answer choice from the options list.

Example for a different topic:
{
  "question_text": "My keys are ___ the table.",
  "options": ["at", "in", "on", "by"],
  "correct_option": "on"
}`,
		Validators: []Validator{
			RequireNonEmpty("topic", func(in Input) string { return in.Topic }),
			RequireNonEmpty("level", func(in Input) string { return in.Level }),
			RequireNonEmpty("exercise_type", func(in Input) string { return in.ExerciseType }),
			RequireIntRange("num_questions", 1, MaxQuestions, func(in Input) int { return in.NumQuestions }),
		},
	})

	registerSpec(Spec{
		Name:    PromptReadingLesson,
		Version: 1,
		Text: `
Write a short reading lesson for a {{trim .Level}} level English learner about the topic: "{{trim .Topic}}".
{{- if .LessonContext}}

Additional context from the learner: {{trim .LessonContext}}
{{- end}}

The lesson must contain:
1. A short title.
2. A reading passage of 120-250 words written at the learner's level.
3. Exactly {{.NumVocabulary}} vocabulary words taken from the passage, each with a simple phonetic guide and a short translation or definition.
4. Exactly {{.NumQuestions}} multiple choice comprehension questions about the passage, each with four distinct options and exactly one correct option.

Please format the entire output strictly as a single JSON object with the following exact keys:
- "title": A string.
- "text_passage": A string containing the full passage.
- "vocabulary": A list of objects with the keys "word" (string), "phonetic_guide" (string) and "translation" (string).
- "comprehension_questions": A list of objects with the keys "question_text" (string), "options" (a list of four strings) and "correct_option" (a string copied exactly from options).

Do not add any other keys and do not wrap the JSON in commentary.`,
		Validators: []Validator{
			RequireNonEmpty("topic", func(in Input) string { return in.Topic }),
			RequireNonEmpty("level", func(in Input) string { return in.Level }),
			RequireIntRange("num_questions", 1, MaxQuestions, func(in Input) int { return in.NumQuestions }),
			RequireIntRange("num_vocabulary", 0, MaxQuestions, func(in Input) int { return in.NumVocabulary }),
		},
	})
}

// BuildExercisePrompt renders the grammar exercise prompt.
func BuildExercisePrompt(in Input) (string, error) {
	p, err := Build(PromptGrammarExercises, in)
	if err != nil {
		return "", err
	}
	return p.Text, nil
}

// BuildLessonPrompt renders the reading lesson prompt, applying default counts.
func BuildLessonPrompt(in Input) (string, error) {
	if in.NumQuestions == 0 {
		in.NumQuestions = DefaultLessonQuestions
	}
	if in.NumVocabulary == 0 {
		in.NumVocabulary = DefaultLessonVocabulary
	}
	p, err := Build(PromptReadingLesson, in)
	if err != nil {
		return "", err
	}
	return p.Text, nil
}

func ConnectivityPrompt() string {
	p, _ := Build(PromptConnectivityCheck, Input{})
	return p.Text
}
