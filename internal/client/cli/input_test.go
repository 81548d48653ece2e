package cli

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out strings.Builder
	reader := bufio.NewReader(strings.NewReader("  hello world  \n"))

	got, err := GetSimpleText(reader, "Say something", &out)

	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out strings.Builder
	reader := bufio.NewReader(strings.NewReader("no newline"))

	got, err := GetSimpleText(reader, "p", &out)

	require.NoError(t, err)
	assert.Equal(t, "no newline", got)
}

func TestGetMultiline_StopsAtEmptyLine(t *testing.T) {
	var out strings.Builder
	reader := bufio.NewReader(strings.NewReader("first\r\nsecond\n\nignored\n"))

	got, err := GetMultiline(reader, "Steps", &out)

	require.NoError(t, err)
	assert.Equal(t, "first\nsecond", got)
}

func TestGetPassword_UsesTerminalReader(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("s3cr3t"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out strings.Builder
	got, err := GetPassword(&out)

	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", got)
	assert.Contains(t, out.String(), "Enter password")
}
