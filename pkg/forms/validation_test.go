package forms

import (
	"strings"
	"testing"

	formTypes "github.com/Nithin0620/DynoForm/pkg/forms/types"
)

func textQuestion(key string) formTypes.Question {
	return formTypes.Question{
		QuestionKey: key,
		FieldID:     "fld" + key,
		Label:       "Question " + key,
		Type:        formTypes.QUESTION_TYPE_SHORT_TEXT,
	}
}

func TestValidateFormQuestions(t *testing.T) {
	t.Run("valid questions pass", func(t *testing.T) {
		questions := []formTypes.Question{
			textQuestion("q1"),
			{
				QuestionKey: "q2",
				FieldID:     "fldq2",
				Label:       "Question q2",
				Type:        formTypes.QUESTION_TYPE_SINGLE_SELECT,
				Options:     []string{"A", "B"},
				ConditionalRules: &formTypes.ConditionalRules{
					Logic: formTypes.CONDITION_LOGIC_AND,
					Conditions: []formTypes.Condition{
						{QuestionKey: "q1", Operator: formTypes.CONDITION_OPERATOR_EQUALS, Value: "yes"},
					},
				},
			},
		}
		if err := ValidateFormQuestions(questions); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("empty question list fails", func(t *testing.T) {
		if err := ValidateFormQuestions(nil); err == nil {
			t.Error("should fail")
		}
	})

	t.Run("missing required fields fail", func(t *testing.T) {
		question := textQuestion("q1")
		question.Label = ""
		err := ValidateFormQuestions([]formTypes.Question{question})
		if err == nil {
			t.Error("should fail")
		}
	})

	t.Run("duplicate question key fails", func(t *testing.T) {
		err := ValidateFormQuestions([]formTypes.Question{
			textQuestion("q1"),
			textQuestion("q1"),
		})
		if err == nil {
			t.Fatal("should fail")
		}
		if !strings.Contains(err.Error(), "more than once") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("unsupported question type fails", func(t *testing.T) {
		question := textQuestion("q1")
		question.Type = "rating"
		err := ValidateFormQuestions([]formTypes.Question{question})
		if err == nil {
			t.Fatal("should fail")
		}
		if !strings.Contains(err.Error(), "unsupported type") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("select without options fails", func(t *testing.T) {
		question := textQuestion("q1")
		question.Type = formTypes.QUESTION_TYPE_MULTI_SELECT
		err := ValidateFormQuestions([]formTypes.Question{question})
		if err == nil {
			t.Fatal("should fail")
		}
		if !strings.Contains(err.Error(), "no options") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("invalid logic fails", func(t *testing.T) {
		question := textQuestion("q2")
		question.ConditionalRules = &formTypes.ConditionalRules{
			Logic: "XOR",
			Conditions: []formTypes.Condition{
				{QuestionKey: "q1", Operator: formTypes.CONDITION_OPERATOR_EQUALS, Value: "yes"},
			},
		}
		err := ValidateFormQuestions([]formTypes.Question{textQuestion("q1"), question})
		if err == nil {
			t.Fatal("should fail")
		}
		if !strings.Contains(err.Error(), "invalid logic") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("rules without conditions fail", func(t *testing.T) {
		question := textQuestion("q2")
		question.ConditionalRules = &formTypes.ConditionalRules{
			Logic: formTypes.CONDITION_LOGIC_AND,
		}
		err := ValidateFormQuestions([]formTypes.Question{textQuestion("q1"), question})
		if err == nil {
			t.Fatal("should fail")
		}
		if !strings.Contains(err.Error(), "no conditions") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("condition without value fails", func(t *testing.T) {
		question := textQuestion("q2")
		question.ConditionalRules = &formTypes.ConditionalRules{
			Logic: formTypes.CONDITION_LOGIC_AND,
			Conditions: []formTypes.Condition{
				{QuestionKey: "q1", Operator: formTypes.CONDITION_OPERATOR_EQUALS},
			},
		}
		err := ValidateFormQuestions([]formTypes.Question{textQuestion("q1"), question})
		if err == nil {
			t.Error("should fail")
		}
	})

	t.Run("invalid operator fails", func(t *testing.T) {
		question := textQuestion("q2")
		question.ConditionalRules = &formTypes.ConditionalRules{
			Logic: formTypes.CONDITION_LOGIC_AND,
			Conditions: []formTypes.Condition{
				{QuestionKey: "q1", Operator: "greaterThan", Value: "yes"},
			},
		}
		err := ValidateFormQuestions([]formTypes.Question{textQuestion("q1"), question})
		if err == nil {
			t.Fatal("should fail")
		}
		if !strings.Contains(err.Error(), "invalid operator") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("reference to unknown question fails", func(t *testing.T) {
		question := textQuestion("q2")
		question.ConditionalRules = &formTypes.ConditionalRules{
			Logic: formTypes.CONDITION_LOGIC_AND,
			Conditions: []formTypes.Condition{
				{QuestionKey: "missing", Operator: formTypes.CONDITION_OPERATOR_EQUALS, Value: "yes"},
			},
		}
		err := ValidateFormQuestions([]formTypes.Question{textQuestion("q1"), question})
		if err == nil {
			t.Fatal("should fail")
		}
		if !strings.Contains(err.Error(), "non-existent") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("forward reference fails", func(t *testing.T) {
		question := textQuestion("q1")
		question.ConditionalRules = &formTypes.ConditionalRules{
			Logic: formTypes.CONDITION_LOGIC_AND,
			Conditions: []formTypes.Condition{
				{QuestionKey: "q2", Operator: formTypes.CONDITION_OPERATOR_EQUALS, Value: "yes"},
			},
		}
		err := ValidateFormQuestions([]formTypes.Question{question, textQuestion("q2")})
		if err == nil {
			t.Fatal("should fail")
		}
		if !strings.Contains(err.Error(), "comes after") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("self reference fails", func(t *testing.T) {
		question := textQuestion("q1")
		question.ConditionalRules = &formTypes.ConditionalRules{
			Logic: formTypes.CONDITION_LOGIC_AND,
			Conditions: []formTypes.Condition{
				{QuestionKey: "q1", Operator: formTypes.CONDITION_OPERATOR_EQUALS, Value: "yes"},
			},
		}
		if err := ValidateFormQuestions([]formTypes.Question{question}); err == nil {
			t.Error("should fail")
		}
	})
}
