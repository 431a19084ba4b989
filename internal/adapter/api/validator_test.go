package api

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	JobID  string  `json:"jobId" validate:"required"`
	Amount float64 `json:"amount" validate:"gt=0"`
}

func TestValidator_UsesJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sampleRequest{Amount: 1})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "jobId", verrs[0].Field())
	assert.Equal(t, "required", verrs[0].Tag())

	assert.NoError(t, v.Validate(&sampleRequest{JobID: "j1", Amount: 2}))
}
