package ui

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevColor := Out, color.NoColor
	Out, color.NoColor = &buf, true
	t.Cleanup(func() { Out, color.NoColor = prevOut, prevColor })
	return &buf
}

func TestMessages(t *testing.T) {
	buf := capture(t)
	Okf("wrote %s", "a.yaml")
	Warnf("careful")
	Errorf("failed: %d", 3)
	Hint("press %s", "q")

	assert.Equal(t, "✓ wrote a.yaml\n⚠ careful\n✗ failed: 3\npress q\n", buf.String())
}

func TestKeyValue(t *testing.T) {
	buf := capture(t)
	KeyValue("window", "960x800")
	assert.Equal(t, "  window:    960x800\n", buf.String())
}
