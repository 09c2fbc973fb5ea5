package types

import (
	"reflect"
)

// answer value kinds
const (
	ANSWER_KIND_ABSENT = "absent"
	ANSWER_KIND_TEXT   = "text"
	ANSWER_KIND_NUMBER = "number"
	ANSWER_KIND_LIST   = "list"
	ANSWER_KIND_OTHER  = "other"
)

// AnswerValue is the typed view on one dynamic answer value. Raw keeps the
// value as it arrived so it can be passed through to Airtable unchanged.
type AnswerValue struct {
	Kind   string
	Raw    interface{}
	Text   string
	Number float64
	Items  []interface{}
}

// ParseAnswerValue classifies a dynamic answer value (JSON or BSON decoded)
// into one of the answer kinds.
func ParseAnswerValue(raw interface{}) AnswerValue {
	if raw == nil {
		return AnswerValue{Kind: ANSWER_KIND_ABSENT}
	}

	switch v := raw.(type) {
	case string:
		return AnswerValue{Kind: ANSWER_KIND_TEXT, Raw: raw, Text: v}
	case float64:
		return AnswerValue{Kind: ANSWER_KIND_NUMBER, Raw: raw, Number: v}
	case float32:
		return AnswerValue{Kind: ANSWER_KIND_NUMBER, Raw: raw, Number: float64(v)}
	case int:
		return AnswerValue{Kind: ANSWER_KIND_NUMBER, Raw: raw, Number: float64(v)}
	case int32:
		return AnswerValue{Kind: ANSWER_KIND_NUMBER, Raw: raw, Number: float64(v)}
	case int64:
		return AnswerValue{Kind: ANSWER_KIND_NUMBER, Raw: raw, Number: float64(v)}
	}

	// slices arrive as []interface{} from JSON but as named slice types from
	// BSON decoding, so detect them by reflection
	rv := reflect.ValueOf(raw)
	if rv.Kind() == reflect.Slice {
		items := make([]interface{}, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			items[i] = rv.Index(i).Interface()
		}
		return AnswerValue{Kind: ANSWER_KIND_LIST, Raw: raw, Items: items}
	}

	return AnswerValue{Kind: ANSWER_KIND_OTHER, Raw: raw}
}

// IsEmpty reports whether the answer counts as "not answered" for required
// checks (missing, null or empty string).
func (a AnswerValue) IsEmpty() bool {
	return a.Kind == ANSWER_KIND_ABSENT || (a.Kind == ANSWER_KIND_TEXT && a.Text == "")
}

// StringItems returns the list elements if every element is a string.
func (a AnswerValue) StringItems() ([]string, bool) {
	if a.Kind != ANSWER_KIND_LIST {
		return nil, false
	}
	items := make([]string, len(a.Items))
	for i, item := range a.Items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		items[i] = s
	}
	return items, true
}
