package cli

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubPasswords replaces the terminal password reader with a scripted queue.
func stubPasswords(t *testing.T, pws ...string) {
	t.Helper()
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	i := 0
	readPassword = func(fd int) ([]byte, error) {
		if i >= len(pws) {
			return nil, io.EOF
		}
		p := pws[i]
		i++
		return []byte(p), nil
	}
}

func TestGetSimpleText_TrimsLine(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  example.com  \n"))

	got, err := getSimpleText(r, "Site", &out)
	require.NoError(t, err)
	require.Equal(t, "example.com", got)
	require.Equal(t, "Site: ", out.String())
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("no-newline"))

	got, err := getSimpleText(r, "Site", &out)
	require.NoError(t, err)
	require.Equal(t, "no-newline", got)
}

func TestGetSimpleText_EOFWithoutInput(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader(""))

	_, err := getSimpleText(r, "Site", &out)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetPassword_UsesSeam(t *testing.T) {
	stubPasswords(t, "hunter2")
	var out bytes.Buffer

	pw, err := getPassword("Password", &out)
	require.NoError(t, err)
	require.Equal(t, []byte("hunter2"), pw)
	require.Contains(t, out.String(), "Password: ")
}

func TestGetSelection(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"valid number", "3\n", 3},
		{"cancel with zero", "0\n", 0},
		{"not a number", "abc\n", -1},
		{"negative", "-2\n", -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			r := bufio.NewReader(strings.NewReader(tc.input))
			got, err := getSelection(r, "Select", &out)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
