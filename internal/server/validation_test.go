package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct(t *testing.T) {
	type activateInput struct {
		UserID   int    `validate:"required,gte=1"`
		PlanType string `validate:"required"`
	}

	t.Run("valid input", func(t *testing.T) {
		errs := ValidateStruct(activateInput{UserID: 1, PlanType: "committed"})
		assert.Empty(t, errs)
	})

	t.Run("missing fields", func(t *testing.T) {
		errs := ValidateStruct(activateInput{})
		assert.Len(t, errs, 2)
		assert.Equal(t, "UserID", errs[0].Field)
		assert.Equal(t, "required", errs[0].Tag)
		assert.Contains(t, errs[0].Message, "required")
	})
}
