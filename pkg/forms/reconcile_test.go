package forms

import (
	"testing"

	formTypes "github.com/Nithin0620/DynoForm/pkg/forms/types"
)

func TestBuildFieldIndex(t *testing.T) {
	questions := []formTypes.Question{
		{QuestionKey: "q1", FieldID: "fld1"},
		{QuestionKey: "q2", FieldID: "fld2"},
	}
	index := BuildFieldIndex(questions)
	if len(index) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(index))
	}
	if index["fld1"] != "q1" || index["fld2"] != "q2" {
		t.Errorf("unexpected index: %v", index)
	}
}

func TestApplyCellChanges(t *testing.T) {
	fieldIndex := map[string]string{
		"fld1": "q1",
		"fld2": "q2",
	}

	t.Run("mapped fields overwrite answers", func(t *testing.T) {
		answers := map[string]interface{}{"q1": "old", "q2": "kept"}
		updated, changed := ApplyCellChanges(answers, fieldIndex, map[string]interface{}{
			"fld1": "new",
		})
		if !changed {
			t.Error("expected change")
		}
		if updated["q1"] != "new" || updated["q2"] != "kept" {
			t.Errorf("unexpected answers: %v", updated)
		}
	})

	t.Run("unmapped fields are ignored", func(t *testing.T) {
		answers := map[string]interface{}{"q1": "old"}
		updated, changed := ApplyCellChanges(answers, fieldIndex, map[string]interface{}{
			"fldUnknown": "value",
		})
		if changed {
			t.Error("expected no change")
		}
		if updated["q1"] != "old" {
			t.Errorf("unexpected answers: %v", updated)
		}
	})

	t.Run("input map is not mutated", func(t *testing.T) {
		answers := map[string]interface{}{"q1": "old"}
		_, _ = ApplyCellChanges(answers, fieldIndex, map[string]interface{}{
			"fld1": "new",
		})
		if answers["q1"] != "old" {
			t.Error("input map was mutated")
		}
	})

	t.Run("new answers can be introduced", func(t *testing.T) {
		answers := map[string]interface{}{"q1": "old"}
		updated, changed := ApplyCellChanges(answers, fieldIndex, map[string]interface{}{
			"fld2": "added",
		})
		if !changed {
			t.Error("expected change")
		}
		if updated["q2"] != "added" {
			t.Errorf("unexpected answers: %v", updated)
		}
	})
}
