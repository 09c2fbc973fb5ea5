package types

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseAnswerValue(t *testing.T) {
	t.Run("nil is absent", func(t *testing.T) {
		answer := ParseAnswerValue(nil)
		if answer.Kind != ANSWER_KIND_ABSENT {
			t.Errorf("expected absent, got %q", answer.Kind)
		}
		if !answer.IsEmpty() {
			t.Error("absent answer should be empty")
		}
	})

	t.Run("string is text", func(t *testing.T) {
		answer := ParseAnswerValue("hello")
		if answer.Kind != ANSWER_KIND_TEXT || answer.Text != "hello" {
			t.Errorf("unexpected answer: %+v", answer)
		}
		if answer.IsEmpty() {
			t.Error("non-empty text should not be empty")
		}
	})

	t.Run("empty string is empty but not absent", func(t *testing.T) {
		answer := ParseAnswerValue("")
		if answer.Kind != ANSWER_KIND_TEXT {
			t.Errorf("expected text, got %q", answer.Kind)
		}
		if !answer.IsEmpty() {
			t.Error("empty string should be empty")
		}
	})

	t.Run("numbers normalize to float64", func(t *testing.T) {
		for _, raw := range []interface{}{float64(15), float32(15), int(15), int32(15), int64(15)} {
			answer := ParseAnswerValue(raw)
			if answer.Kind != ANSWER_KIND_NUMBER || answer.Number != 15 {
				t.Errorf("%T: unexpected answer: %+v", raw, answer)
			}
		}
	})

	t.Run("json decoded slices are lists", func(t *testing.T) {
		answer := ParseAnswerValue([]interface{}{"a", "b"})
		if answer.Kind != ANSWER_KIND_LIST || len(answer.Items) != 2 {
			t.Errorf("unexpected answer: %+v", answer)
		}
	})

	t.Run("bson decoded slices are lists", func(t *testing.T) {
		answer := ParseAnswerValue(primitive.A{"a", "b"})
		if answer.Kind != ANSWER_KIND_LIST || len(answer.Items) != 2 {
			t.Errorf("unexpected answer: %+v", answer)
		}
	})

	t.Run("maps are other", func(t *testing.T) {
		answer := ParseAnswerValue(map[string]interface{}{"url": "x"})
		if answer.Kind != ANSWER_KIND_OTHER {
			t.Errorf("expected other, got %q", answer.Kind)
		}
	})
}

func TestStringItems(t *testing.T) {
	t.Run("string elements pass", func(t *testing.T) {
		items, ok := ParseAnswerValue([]interface{}{"a", "b"}).StringItems()
		if !ok || len(items) != 2 || items[0] != "a" || items[1] != "b" {
			t.Errorf("unexpected items: %v (ok=%t)", items, ok)
		}
	})

	t.Run("mixed elements fail", func(t *testing.T) {
		if _, ok := ParseAnswerValue([]interface{}{"a", float64(1)}).StringItems(); ok {
			t.Error("should fail")
		}
	})

	t.Run("non list fails", func(t *testing.T) {
		if _, ok := ParseAnswerValue("a").StringItems(); ok {
			t.Error("should fail")
		}
	})
}
