package session

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterAlerter(t *testing.T) {
	var buf bytes.Buffer

	WriterAlerter{W: &buf}.Alert("Failed to save report. Please try again.")

	assert.Equal(t, "Failed to save report. Please try again.\n", buf.String())
}
