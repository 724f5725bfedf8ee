package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailFormatValid(t *testing.T) {
	assert.True(t, IsEmailFormatValid("ana@example.com"))
	assert.True(t, IsEmailFormatValid("ana.souza+clinic@example.com.br"))

	assert.False(t, IsEmailFormatValid(""))
	assert.False(t, IsEmailFormatValid("ana"))
	assert.False(t, IsEmailFormatValid("ana@"))
	assert.False(t, IsEmailFormatValid("Ana Souza <ana@example.com>"))
}
