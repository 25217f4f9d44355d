package prompts

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildExercisePromptRendersParameters(t *testing.T) {
	got, err := BuildExercisePrompt(Input{Topic: "past simple", Level: "A2", ExerciseType: "fill_in_the_blank", NumQuestions: 4})
	if err != nil {
		t.Fatalf("BuildExercisePrompt: %v", err)
	}
	for _, want := range []string{
		"Generate exactly 4 fill in the blank grammar questions",
		"A2 level English learner",
		`topic: "past simple"`,
		`"question_text"`,
		`"options"`,
		`"correct_option"`,
		"My keys are ___ the table.",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("prompt missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Additional context") {
		t.Fatalf("context section rendered without context")
	}
}

func TestBuildExercisePromptIncludesContext(t *testing.T) {
	got, err := BuildExercisePrompt(Input{Topic: "t", Level: "B1", ExerciseType: "mcq", NumQuestions: 1, LessonContext: "travel vocabulary"})
	if err != nil {
		t.Fatalf("BuildExercisePrompt: %v", err)
	}
	if !strings.Contains(got, "Additional context from the learner: travel vocabulary") {
		t.Fatalf("context not rendered:\n%s", got)
	}
}

func TestBuildExercisePromptRejectsInvalidInput(t *testing.T) {
	cases := []Input{
		{Topic: "", Level: "A1", ExerciseType: "mcq", NumQuestions: 1},
		{Topic: "t", Level: " ", ExerciseType: "mcq", NumQuestions: 1},
		{Topic: "t", Level: "A1", ExerciseType: "", NumQuestions: 1},
		{Topic: "t", Level: "A1", ExerciseType: "mcq", NumQuestions: 0},
		{Topic: "t", Level: "A1", ExerciseType: "mcq", NumQuestions: MaxQuestions + 1},
	}
	for i, in := range cases {
		if _, err := BuildExercisePrompt(in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestBuildLessonPromptNamesEveryRequiredKey(t *testing.T) {
	got, err := BuildLessonPrompt(Input{Topic: "weather", Level: "B1"})
	if err != nil {
		t.Fatalf("BuildLessonPrompt: %v", err)
	}
	for _, key := range append(append([]string{}, LessonKeys...), KeyWord, KeyPhoneticGuide, KeyTranslation) {
		if !strings.Contains(got, `"`+key+`"`) {
			t.Fatalf("lesson prompt missing key %q", key)
		}
	}
	if !strings.Contains(got, "Exactly 5 vocabulary words") || !strings.Contains(got, "Exactly 3 multiple choice") {
		t.Fatalf("defaults not applied:\n%s", got)
	}
}

func TestConnectivityPrompt(t *testing.T) {
	if got := ConnectivityPrompt(); got != "Explain what an API is in one simple sentence for a beginner." {
		t.Fatalf("unexpected prompt %q", got)
	}
}
