package forms

import (
	"fmt"

	formTypes "github.com/Nithin0620/DynoForm/pkg/forms/types"
	"github.com/Nithin0620/DynoForm/pkg/utils"
)

var validQuestionTypes = []string{
	formTypes.QUESTION_TYPE_SHORT_TEXT,
	formTypes.QUESTION_TYPE_LONG_TEXT,
	formTypes.QUESTION_TYPE_SINGLE_SELECT,
	formTypes.QUESTION_TYPE_MULTI_SELECT,
	formTypes.QUESTION_TYPE_ATTACHMENT,
}

var validConditionOperators = []string{
	formTypes.CONDITION_OPERATOR_EQUALS,
	formTypes.CONDITION_OPERATOR_NOT_EQUALS,
	formTypes.CONDITION_OPERATOR_CONTAINS,
}

// ValidateFormQuestions checks a proposed question sequence at form-creation
// time. It fails on the first violation so no partially valid form is ever
// persisted. Conditional rules are checked structurally only; references
// must point to a question at a strictly lower index, which is what makes
// single-pass evaluation at submission time safe.
func ValidateFormQuestions(questions []formTypes.Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("questions must not be empty")
	}

	indexByKey := map[string]int{}
	for index, question := range questions {
		if _, ok := indexByKey[question.QuestionKey]; !ok {
			indexByKey[question.QuestionKey] = index
		}
	}

	seenKeys := map[string]bool{}
	for index, question := range questions {
		if question.QuestionKey == "" || question.FieldID == "" || question.Label == "" || question.Type == "" {
			return fmt.Errorf("each question must have questionKey, fieldId, label and type (question at index %d)", index)
		}

		if seenKeys[question.QuestionKey] {
			return fmt.Errorf("question key %q is used more than once", question.QuestionKey)
		}
		seenKeys[question.QuestionKey] = true

		if !utils.ContainsString(validQuestionTypes, question.Type) {
			return fmt.Errorf("question %q has unsupported type %q", question.QuestionKey, question.Type)
		}

		if question.Type == formTypes.QUESTION_TYPE_SINGLE_SELECT || question.Type == formTypes.QUESTION_TYPE_MULTI_SELECT {
			if len(question.Options) == 0 {
				return fmt.Errorf("question %q is a select type but has no options", question.QuestionKey)
			}
		}

		if question.ConditionalRules != nil {
			if err := validateConditionalRules(question, index, indexByKey); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateConditionalRules(question formTypes.Question, index int, indexByKey map[string]int) error {
	rules := question.ConditionalRules

	if rules.Logic != formTypes.CONDITION_LOGIC_AND && rules.Logic != formTypes.CONDITION_LOGIC_OR {
		return fmt.Errorf("question %q has invalid logic %q, must be AND or OR", question.QuestionKey, rules.Logic)
	}

	if len(rules.Conditions) == 0 {
		return fmt.Errorf("question %q has conditional rules but no conditions", question.QuestionKey)
	}

	for _, condition := range rules.Conditions {
		if condition.QuestionKey == "" || condition.Operator == "" || condition.Value == nil {
			return fmt.Errorf("question %q has a condition without questionKey, operator or value", question.QuestionKey)
		}

		if !utils.ContainsString(validConditionOperators, condition.Operator) {
			return fmt.Errorf("question %q has invalid operator %q, must be one of equals, notEquals, contains", question.QuestionKey, condition.Operator)
		}

		refIndex, ok := indexByKey[condition.QuestionKey]
		if !ok {
			return fmt.Errorf("question %q references non-existent question %q", question.QuestionKey, condition.QuestionKey)
		}
		if refIndex >= index {
			return fmt.Errorf("question %q cannot reference a question that comes after it (%q)", question.QuestionKey, condition.QuestionKey)
		}
	}
	return nil
}
