package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusPayload struct {
	Status string `json:"status" validate:"omitempty,is-application-status"`
}

type documentPayload struct {
	Type string `json:"type" validate:"required,is-document-type"`
}

func TestValidator_ApplicationStatus(t *testing.T) {
	v := New()

	for _, status := range []string{"preparing", "submitted", "interviewing", "admitted", "rejected"} {
		assert.NoError(t, v.Validate(&statusPayload{Status: status}), status)
	}

	// Empty passes; 'required' is a separate concern.
	assert.NoError(t, v.Validate(&statusPayload{}))

	err := v.Validate(&statusPayload{Status: "ghosted"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Unknown application status", vErr.Errors["status"])
}

func TestValidator_DocumentType(t *testing.T) {
	v := New()

	for _, docType := range []string{"cv", "personal-statement", "recommendation-letter", "transcript", "other"} {
		assert.NoError(t, v.Validate(&documentPayload{Type: docType}), docType)
	}

	err := v.Validate(&documentPayload{Type: "mixtape"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Unknown document type", vErr.Errors["type"])
}

func TestValidator_FieldNamesFromJSONTags(t *testing.T) {
	v := New()

	type payload struct {
		ContactEmail string `json:"contact_email" validate:"required,email"`
	}

	err := v.Validate(&payload{ContactEmail: "not-an-email"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	_, hasJSONName := vErr.Errors["contact_email"]
	assert.True(t, hasJSONName)
}
