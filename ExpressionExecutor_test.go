package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpressionExecutor_Evaluate(t *testing.T) {
	executor := NewExpressionExecutor()

	t.Run("arithmetic over document fields", func(t *testing.T) {
		output, err := executor.Evaluate("price * quantity", map[string]any{
			"price":    2.5,
			"quantity": 4,
		})

		assert.NoError(t, err)
		assert.Equal(t, 10.0, output)
	})

	t.Run("string concatenation", func(t *testing.T) {
		output, err := executor.Evaluate(`firstName + " " + lastName`, map[string]any{
			"firstName": "John",
			"lastName":  "Doe",
		})

		assert.NoError(t, err)
		assert.Equal(t, "John Doe", output)
	})

	t.Run("nested objects", func(t *testing.T) {
		output, err := executor.Evaluate("order.total", map[string]any{
			"order": map[string]any{"total": 99.5},
		})

		assert.NoError(t, err)
		assert.Equal(t, 99.5, output)
	})

	t.Run("undefined variables resolve to nil", func(t *testing.T) {
		output, err := executor.Evaluate("missing", map[string]any{})

		assert.NoError(t, err)
		assert.Nil(t, output)
	})

	t.Run("nil document", func(t *testing.T) {
		output, err := executor.Evaluate("1 + 2", nil)

		assert.NoError(t, err)
		assert.Equal(t, 3, output)
	})

	t.Run("broken expression", func(t *testing.T) {
		_, err := executor.Evaluate("1 +", map[string]any{})

		assert.Error(t, err)
		assert.ErrorIs(t, err, ExpressionError)
	})
}
