package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPlain(t *testing.T) {
	fa := &fakeAssistant{}
	var out bytes.Buffer

	err := RunPlain(strings.NewReader("shared layers\n\n   \nQUIT\nnever asked\n"), &out, fa)

	require.NoError(t, err)
	assert.Equal(t, []string{"shared layers"}, fa.queries)
	text := out.String()
	assert.True(t, strings.HasPrefix(text, "RLM Chatbot ready. Ask a question, or type 'exit' to quit.\n"))
	assert.Contains(t, text, "\nYou: \nanswer to shared layers\n")
	assert.True(t, strings.HasSuffix(text, "Goodbye!\n"))
}

func TestRunPlain_EOF(t *testing.T) {
	fa := &fakeAssistant{}
	var out bytes.Buffer

	require.NoError(t, RunPlain(strings.NewReader("one\ntwo"), &out, fa))
	assert.Equal(t, []string{"one", "two"}, fa.queries)
	assert.NotContains(t, out.String(), "Goodbye!")
}
