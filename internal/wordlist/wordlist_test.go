package wordlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadWords(t *testing.T) {
	path := writeList(t, "# my words\nA Ant\n\nb Banana\nI Ice cream\n")
	words, err := LoadWords(path)
	require.NoError(t, err)
	assert.Equal(t, map[rune]string{'A': "Ant", 'B': "Banana", 'I': "Ice cream"}, words)
}

func TestLoadWordsAcceptsTabsAndRepeatedSpaces(t *testing.T) {
	path := writeList(t, "A\tApple\nB   Big ball\nc\t Cat\n")
	words, err := LoadWords(path)
	require.NoError(t, err)
	assert.Equal(t, map[rune]string{'A': "Apple", 'B': "Big ball", 'C': "Cat"}, words)
}

func TestLoadWordsErrors(t *testing.T) {
	cases := map[string]string{
		"duplicate":    "A Ant\nA Apple\n",
		"wrong letter": "A Banana\n",
		"no word":      "A\n",
		"tab only":     "A\t\n",
		"two letters":  "AB Apple\n",
		"not a letter": "1 One\n",
		"empty":        "# nothing\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadWords(writeList(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadWordsMissingFile(t *testing.T) {
	_, err := LoadWords(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
