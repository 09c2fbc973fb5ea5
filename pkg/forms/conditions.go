package forms

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	formTypes "github.com/Nithin0620/DynoForm/pkg/forms/types"
)

// ShouldShowQuestion decides whether a question is visible given the answers
// collected so far. Questions without rules (or with an empty condition list)
// are always visible. Pure function of its inputs.
func ShouldShowQuestion(rules *formTypes.ConditionalRules, answersSoFar map[string]interface{}) bool {
	if rules == nil || len(rules.Conditions) == 0 {
		return true
	}

	if rules.Logic == formTypes.CONDITION_LOGIC_AND {
		for _, condition := range rules.Conditions {
			if !evalCondition(condition, answersSoFar) {
				return false
			}
		}
		return true
	}

	// OR: at least one condition must hold
	for _, condition := range rules.Conditions {
		if evalCondition(condition, answersSoFar) {
			return true
		}
	}
	return false
}

func evalCondition(condition formTypes.Condition, answersSoFar map[string]interface{}) bool {
	answer := formTypes.ParseAnswerValue(answersSoFar[condition.QuestionKey])

	// a missing answer only satisfies notEquals
	if answer.Kind == formTypes.ANSWER_KIND_ABSENT {
		return condition.Operator == formTypes.CONDITION_OPERATOR_NOT_EQUALS
	}

	switch condition.Operator {
	case formTypes.CONDITION_OPERATOR_EQUALS:
		return answerEquals(answer, condition.Value)
	case formTypes.CONDITION_OPERATOR_NOT_EQUALS:
		return !answerEquals(answer, condition.Value)
	case formTypes.CONDITION_OPERATOR_CONTAINS:
		return answerContains(answer, condition.Value)
	default:
		return false
	}
}

// answerEquals implements strict, type-sensitive equality. Multi-valued
// answers compare as sets: both sides are sorted before the elementwise
// comparison and a scalar condition value counts as a one-element list.
func answerEquals(answer formTypes.AnswerValue, value interface{}) bool {
	if answer.Kind == formTypes.ANSWER_KIND_LIST {
		valueItems := asItemList(value)
		if len(answer.Items) != len(valueItems) {
			return false
		}
		left := sortedEncodedItems(answer.Items)
		right := sortedEncodedItems(valueItems)
		for i := range left {
			if left[i] != right[i] {
				return false
			}
		}
		return true
	}
	return encodeForComparison(answer.Raw) == encodeForComparison(value)
}

// answerContains implements case-insensitive substring matching on the
// stringified operands. For list answers any element may match. Numbers are
// stringified in decimal form, so 15 contains "5".
func answerContains(answer formTypes.AnswerValue, value interface{}) bool {
	valueStr := strings.ToLower(stringifyValue(value))

	if answer.Kind == formTypes.ANSWER_KIND_LIST {
		for _, item := range answer.Items {
			if strings.Contains(strings.ToLower(stringifyValue(item)), valueStr) {
				return true
			}
		}
		return false
	}
	return strings.Contains(strings.ToLower(stringifyValue(answer.Raw)), valueStr)
}

func asItemList(value interface{}) []interface{} {
	parsed := formTypes.ParseAnswerValue(value)
	if parsed.Kind == formTypes.ANSWER_KIND_LIST {
		return parsed.Items
	}
	return []interface{}{value}
}

// encodeForComparison renders a scalar as its JSON encoding, which keeps the
// comparison type-sensitive (the string "15" and the number 15 stay distinct)
// while numeric representations from different decoders collapse.
func encodeForComparison(value interface{}) string {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%#v", value)
	}
	return string(encoded)
}

func sortedEncodedItems(items []interface{}) []string {
	encoded := make([]string, len(items))
	for i, item := range items {
		encoded[i] = encodeForComparison(item)
	}
	sort.Strings(encoded)
	return encoded
}

func stringifyValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
