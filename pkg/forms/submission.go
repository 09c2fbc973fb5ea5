package forms

import (
	"fmt"
	"strings"

	formTypes "github.com/Nithin0620/DynoForm/pkg/forms/types"
	"github.com/Nithin0620/DynoForm/pkg/utils"
)

// ProcessSubmission validates one answer set against a form definition and
// builds the Airtable field-value map for the record-create call.
//
// Questions are walked in sequence order; a question's conditional rules may
// only reference earlier questions, so one left-to-right pass is enough.
// Hidden questions are skipped entirely, even when marked required. All
// validation failures are collected so the caller can report them in one
// round trip; the field map is only meaningful when the failure list is
// empty.
func ProcessSubmission(form formTypes.FormDefinition, answers map[string]interface{}) (fieldValues map[string]interface{}, validationErrors []string) {
	fieldValues = map[string]interface{}{}

	for _, question := range form.Questions {
		if !ShouldShowQuestion(question.ConditionalRules, answers) {
			continue
		}

		answer := formTypes.ParseAnswerValue(answers[question.QuestionKey])

		if answer.IsEmpty() {
			if question.Required {
				validationErrors = append(validationErrors, fmt.Sprintf("question %q (%s) is required", question.Label, question.QuestionKey))
			}
			continue
		}

		switch question.Type {
		case formTypes.QUESTION_TYPE_SHORT_TEXT, formTypes.QUESTION_TYPE_LONG_TEXT:
			if answer.Kind != formTypes.ANSWER_KIND_TEXT {
				validationErrors = append(validationErrors, fmt.Sprintf("answer for %q must be a string", question.Label))
				continue
			}
			fieldValues[question.FieldID] = answer.Raw
		case formTypes.QUESTION_TYPE_SINGLE_SELECT:
			if answer.Kind != formTypes.ANSWER_KIND_TEXT {
				validationErrors = append(validationErrors, fmt.Sprintf("answer for %q must be a string", question.Label))
				continue
			}
			if len(question.Options) > 0 && !utils.ContainsString(question.Options, answer.Text) {
				validationErrors = append(validationErrors, fmt.Sprintf("answer for %q must be one of: %s", question.Label, strings.Join(question.Options, ", ")))
				continue
			}
			fieldValues[question.FieldID] = answer.Raw
		case formTypes.QUESTION_TYPE_MULTI_SELECT:
			selected, ok := answer.StringItems()
			if !ok {
				validationErrors = append(validationErrors, fmt.Sprintf("answer for %q must be an array", question.Label))
				continue
			}
			if len(question.Options) > 0 {
				invalidOptions := []string{}
				for _, option := range selected {
					if !utils.ContainsString(question.Options, option) {
						invalidOptions = append(invalidOptions, option)
					}
				}
				if len(invalidOptions) > 0 {
					validationErrors = append(validationErrors, fmt.Sprintf("invalid options for %q: %s", question.Label, strings.Join(invalidOptions, ", ")))
					continue
				}
			}
			fieldValues[question.FieldID] = answer.Raw
		case formTypes.QUESTION_TYPE_ATTACHMENT:
			if answer.Kind != formTypes.ANSWER_KIND_LIST {
				validationErrors = append(validationErrors, fmt.Sprintf("answer for %q must be an array of attachment objects", question.Label))
				continue
			}
			fieldValues[question.FieldID] = answer.Raw
		}
	}
	return fieldValues, validationErrors
}
