package sui

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptConfirmer_LeavesRestOfInput(t *testing.T) {
	in := strings.NewReader("y\nno\nleftover")
	var out bytes.Buffer
	p := PromptConfirmer{In: in, Out: &out}

	ok, err := p.Confirm(context.Background(), &Preview{})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, out.String(), "[y/N]")

	ok, err = p.Confirm(context.Background(), &Preview{})
	require.NoError(t, err)
	assert.False(t, ok, "second prompt reads the next line")

	rest, err := io.ReadAll(in)
	require.NoError(t, err)
	assert.Equal(t, "leftover", string(rest))
}

func TestReadLine(t *testing.T) {
	assert.Equal(t, "yes\r", readLine(strings.NewReader("yes\r\nmore")))
	assert.Equal(t, "partial", readLine(strings.NewReader("partial")))
	assert.Equal(t, "", readLine(strings.NewReader("")))
}
