package forms

import (
	"testing"

	formTypes "github.com/Nithin0620/DynoForm/pkg/forms/types"
)

func TestShouldShowQuestion(t *testing.T) {
	t.Run("nil rules show the question", func(t *testing.T) {
		if !ShouldShowQuestion(nil, map[string]interface{}{}) {
			t.Error("should be visible")
		}
	})

	t.Run("empty condition list shows the question", func(t *testing.T) {
		rules := &formTypes.ConditionalRules{
			Logic:      formTypes.CONDITION_LOGIC_AND,
			Conditions: []formTypes.Condition{},
		}
		if !ShouldShowQuestion(rules, map[string]interface{}{}) {
			t.Error("should be visible")
		}
	})

	t.Run("missing answer fails equals", func(t *testing.T) {
		rules := &formTypes.ConditionalRules{
			Logic: formTypes.CONDITION_LOGIC_AND,
			Conditions: []formTypes.Condition{
				{QuestionKey: "q1", Operator: formTypes.CONDITION_OPERATOR_EQUALS, Value: "yes"},
			},
		}
		if ShouldShowQuestion(rules, map[string]interface{}{}) {
			t.Error("should be hidden")
		}
	})

	t.Run("missing answer satisfies notEquals", func(t *testing.T) {
		rules := &formTypes.ConditionalRules{
			Logic: formTypes.CONDITION_LOGIC_AND,
			Conditions: []formTypes.Condition{
				{QuestionKey: "q1", Operator: formTypes.CONDITION_OPERATOR_NOT_EQUALS, Value: "yes"},
			},
		}
		if !ShouldShowQuestion(rules, map[string]interface{}{}) {
			t.Error("should be visible")
		}
	})

	t.Run("missing answer fails contains", func(t *testing.T) {
		rules := &formTypes.ConditionalRules{
			Logic: formTypes.CONDITION_LOGIC_AND,
			Conditions: []formTypes.Condition{
				{QuestionKey: "q1", Operator: formTypes.CONDITION_OPERATOR_CONTAINS, Value: "yes"},
			},
		}
		if ShouldShowQuestion(rules, map[string]interface{}{}) {
			t.Error("should be hidden")
		}
	})

	t.Run("equals is type sensitive", func(t *testing.T) {
		rules := &formTypes.ConditionalRules{
			Logic: formTypes.CONDITION_LOGIC_AND,
			Conditions: []formTypes.Condition{
				{QuestionKey: "q1", Operator: formTypes.CONDITION_OPERATOR_EQUALS, Value: "15"},
			},
		}
		answers := map[string]interface{}{"q1": float64(15)}
		if ShouldShowQuestion(rules, answers) {
			t.Error("number 15 must not equal string \"15\"")
		}

		answers = map[string]interface{}{"q1": "15"}
		if !ShouldShowQuestion(rules, answers) {
			t.Error("string \"15\" must equal string \"15\"")
		}
	})

	t.Run("multi valued equals ignores order", func(t *testing.T) {
		rules := &formTypes.ConditionalRules{
			Logic: formTypes.CONDITION_LOGIC_AND,
			Conditions: []formTypes.Condition{
				{QuestionKey: "q1", Operator: formTypes.CONDITION_OPERATOR_EQUALS, Value: []interface{}{"b", "a"}},
			},
		}
		answers := map[string]interface{}{"q1": []interface{}{"a", "b"}}
		if !ShouldShowQuestion(rules, answers) {
			t.Error("should be visible")
		}

		answers = map[string]interface{}{"q1": []interface{}{"a", "c"}}
		if ShouldShowQuestion(rules, answers) {
			t.Error("should be hidden")
		}

		answers = map[string]interface{}{"q1": []interface{}{"a", "b", "c"}}
		if ShouldShowQuestion(rules, answers) {
			t.Error("length mismatch should hide the question")
		}
	})

	t.Run("list answer equals scalar value with one element", func(t *testing.T) {
		rules := &formTypes.ConditionalRules{
			Logic: formTypes.CONDITION_LOGIC_AND,
			Conditions: []formTypes.Condition{
				{QuestionKey: "q1", Operator: formTypes.CONDITION_OPERATOR_EQUALS, Value: "a"},
			},
		}
		answers := map[string]interface{}{"q1": []interface{}{"a"}}
		if !ShouldShowQuestion(rules, answers) {
			t.Error("one element list should equal the scalar")
		}
	})

	t.Run("contains is case insensitive", func(t *testing.T) {
		rules := &formTypes.ConditionalRules{
			Logic: formTypes.CONDITION_LOGIC_AND,
			Conditions: []formTypes.Condition{
				{QuestionKey: "q1", Operator: formTypes.CONDITION_OPERATOR_CONTAINS, Value: "WORLD"},
			},
		}
		answers := map[string]interface{}{"q1": "hello world"}
		if !ShouldShowQuestion(rules, answers) {
			t.Error("should be visible")
		}
	})

	t.Run("contains stringifies numbers", func(t *testing.T) {
		rules := &formTypes.ConditionalRules{
			Logic: formTypes.CONDITION_LOGIC_AND,
			Conditions: []formTypes.Condition{
				{QuestionKey: "q1", Operator: formTypes.CONDITION_OPERATOR_CONTAINS, Value: "5"},
			},
		}
		answers := map[string]interface{}{"q1": float64(15)}
		if !ShouldShowQuestion(rules, answers) {
			t.Error("15 stringifies to \"15\" which contains \"5\"")
		}
	})

	t.Run("contains matches any list element", func(t *testing.T) {
		rules := &formTypes.ConditionalRules{
			Logic: formTypes.CONDITION_LOGIC_AND,
			Conditions: []formTypes.Condition{
				{QuestionKey: "q1", Operator: formTypes.CONDITION_OPERATOR_CONTAINS, Value: "ban"},
			},
		}
		answers := map[string]interface{}{"q1": []interface{}{"apple", "Banana"}}
		if !ShouldShowQuestion(rules, answers) {
			t.Error("should be visible")
		}
	})

	t.Run("AND requires all conditions", func(t *testing.T) {
		rules := &formTypes.ConditionalRules{
			Logic: formTypes.CONDITION_LOGIC_AND,
			Conditions: []formTypes.Condition{
				{QuestionKey: "q1", Operator: formTypes.CONDITION_OPERATOR_EQUALS, Value: "a"},
				{QuestionKey: "q2", Operator: formTypes.CONDITION_OPERATOR_EQUALS, Value: "b"},
			},
		}
		answers := map[string]interface{}{"q1": "a", "q2": "b"}
		if !ShouldShowQuestion(rules, answers) {
			t.Error("should be visible")
		}

		answers = map[string]interface{}{"q1": "a", "q2": "x"}
		if ShouldShowQuestion(rules, answers) {
			t.Error("should be hidden")
		}
	})

	t.Run("OR requires one condition", func(t *testing.T) {
		rules := &formTypes.ConditionalRules{
			Logic: formTypes.CONDITION_LOGIC_OR,
			Conditions: []formTypes.Condition{
				{QuestionKey: "q1", Operator: formTypes.CONDITION_OPERATOR_EQUALS, Value: "a"},
				{QuestionKey: "q2", Operator: formTypes.CONDITION_OPERATOR_EQUALS, Value: "b"},
			},
		}
		answers := map[string]interface{}{"q1": "x", "q2": "b"}
		if !ShouldShowQuestion(rules, answers) {
			t.Error("should be visible")
		}

		answers = map[string]interface{}{"q1": "x", "q2": "y"}
		if ShouldShowQuestion(rules, answers) {
			t.Error("should be hidden")
		}
	})

	t.Run("unknown operator never matches", func(t *testing.T) {
		rules := &formTypes.ConditionalRules{
			Logic: formTypes.CONDITION_LOGIC_OR,
			Conditions: []formTypes.Condition{
				{QuestionKey: "q1", Operator: "greaterThan", Value: "a"},
			},
		}
		answers := map[string]interface{}{"q1": "b"}
		if ShouldShowQuestion(rules, answers) {
			t.Error("should be hidden")
		}
	})
}
