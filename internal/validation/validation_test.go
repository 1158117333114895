package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Name  string   `validate:"required"`
	Email string   `validate:"omitempty,email"`
	Logo  []string `validate:"max=2,dive,url"`
}

func TestStructValid(t *testing.T) {
	v := New()
	err := v.Struct(sampleForm{Name: "Acme", Email: "ops@acme.test", Logo: []string{"https://acme.test/logo.png"}})
	assert.NoError(t, err)
}

func TestStructFieldMessages(t *testing.T) {
	v := New()

	err := v.Struct(sampleForm{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Name is required")

	err = v.Struct(sampleForm{Name: "Acme", Email: "not-an-email"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Email must be a valid email address")

	err = v.Struct(sampleForm{Name: "Acme", Logo: []string{"https://a.test/1.png", "https://a.test/2.png", "https://a.test/3.png"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Logo must have at most 2 entries")
}
