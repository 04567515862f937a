package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrompt(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("um\r\ndois"), &out, false)

	v, ok := c.Prompt("> ")
	assert.True(t, ok)
	assert.Equal(t, "um", v)

	v, ok = c.Prompt("> ")
	assert.True(t, ok)
	assert.Equal(t, "dois", v)

	_, ok = c.Prompt("> ")
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	var out bytes.Buffer
	NewConsole(strings.NewReader(""), &out, false).Clear()
	assert.Empty(t, out.String())

	NewConsole(strings.NewReader(""), &out, true).Clear()
	assert.Equal(t, clearSequence, out.String())
}
