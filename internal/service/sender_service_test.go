package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayTime(t *testing.T) {
	assert.Equal(t, "30.01.2026 12:05", displayTime("2026-01-30T12:05:00"))
	assert.Equal(t, "30.01.2026 12:05", displayTime("2026-01-30T12:05:00Z"))
	assert.Equal(t, "bad", displayTime("bad"))
}

func TestNewSenderServiceDefaultsName(t *testing.T) {
	s := NewSenderService("")
	assert.Equal(t, "the salon", s.SalonName)
}
