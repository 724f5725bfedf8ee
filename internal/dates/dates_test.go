package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("2026-09-01"))
	assert.True(t, IsValid("2024-02-29"))

	assert.False(t, IsValid(""))
	assert.False(t, IsValid("2026-9-1"))
	assert.False(t, IsValid("09/01/2026"))
	assert.False(t, IsValid("2026-13-01"))
	assert.False(t, IsValid("2026-02-30"))
	assert.False(t, IsValid("2026-09-01T10:00:00Z"))
}

func TestFormatRoundTrip(t *testing.T) {
	d, err := Parse("2026-09-01")
	assert.NoError(t, err)
	assert.Equal(t, "2026-09-01", Format(d))
}

func TestMonthPrefix(t *testing.T) {
	assert.Equal(t, "2026-09-", MonthPrefix(2026, time.September))
	assert.Equal(t, "2026-01-", MonthPrefix(2026, time.January))
	assert.Equal(t, "2026-12-", MonthPrefix(2026, time.December))
}
