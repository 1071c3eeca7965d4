package rules

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/g2p/internal"
	"codeberg.org/snonux/g2p/internal/phoneme"
)

const sampleRules = `# sample rule file

kn|||N|10|word-start
gh|||F|6|word-end
gh|||-|5
e||_|-|4|word-end
c||e|S|4
a|b||EY1|3|after-vowel, stressed
!yacht|Y AA1 T
!Colonel | K ER1 N AH0 L
`

func TestParseTable(t *testing.T) {
	table, err := ParseTable(strings.NewReader(sampleRules))
	require.NoError(t, err)

	require.Len(t, table.Rules, 6)
	assert.Len(t, table.Irregular, 2)

	kn := table.Rules[0]
	assert.Equal(t, "kn", kn.Pattern)
	assert.Equal(t, 10, kn.Priority)
	assert.Equal(t, []Condition{WordStart}, kn.Conditions)
	assert.Equal(t, "N", phoneme.Join(kn.Phonemes))

	assert.Empty(t, table.Rules[2].Phonemes)
	assert.Equal(t, Boundary, table.Rules[3].Right)
	assert.Equal(t, "e", table.Rules[4].Right)
	assert.Equal(t, "b", table.Rules[5].Left)
	assert.Equal(t, []Condition{AfterVowel, Stressed}, table.Rules[5].Conditions)

	assert.Equal(t, "K ER1 N AH0 L", phoneme.Join(table.Irregular["colonel"]))
}

func TestParseTableErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"too few fields", "a|||AE0"},
		{"too many fields", "a|||AE0|2|word-end|x"},
		{"bad priority", "a|||AE0|high"},
		{"unknown condition", "a|||AE0|2|sometimes"},
		{"unknown phoneme", "a|||QQ1|2"},
		{"empty pattern", "|||AE0|2"},
		{"empty phonemes", "a||||2"},
		{"irregular without separator", "!yacht Y AA1 T"},
		{"irregular silent", "!yacht|-"},
		{"irregular empty word", "!|Y AA1 T"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "# header\n" + tt.line + "\n"
			_, err := ParseTable(strings.NewReader(input))
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, 2, perr.Line)
		})
	}
}

func TestRuleStringRoundTrip(t *testing.T) {
	table, err := Builtin().Load()
	require.NoError(t, err)

	var b strings.Builder
	for _, r := range table.Rules {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}

	parsed, err := ParseTable(strings.NewReader(b.String()))
	require.NoError(t, err)
	require.Len(t, parsed.Rules, len(table.Rules))
	for i := range table.Rules {
		assert.Equal(t, table.Rules[i].String(), parsed.Rules[i].String())
	}
}

func TestBuiltinLoadReturnsCopy(t *testing.T) {
	first, err := Builtin().Load()
	require.NoError(t, err)
	first.Rules[0].Pattern = "zz"
	delete(first.Irregular, "yacht")

	second, err := Builtin().Load()
	require.NoError(t, err)
	assert.Equal(t, "kn", second.Rules[0].Pattern)
	assert.Contains(t, second.Irregular, "yacht")
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleRules), 0644))

	e, err := NewEngine(File(path))
	require.NoError(t, err)

	assert.Equal(t, 6, e.RuleCount())
	assert.Equal(t, 2, e.IrregularCount())
	assert.Equal(t, path, e.Source())

	// File rules replace the built-in table, so "th" falls back letter by letter.
	assert.Equal(t, "T HH", phoneme.Join(e.Apply("th")))
	assert.Equal(t, "N OW0", phoneme.Join(e.Apply("kno")))
	assert.Equal(t, "Y AA1 T", phoneme.Join(e.Apply("yacht")))
	assert.Equal(t, "S IH0 F", phoneme.Join(e.Apply("sigh")))
}

func TestFileSourceErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewEngine(File(filepath.Join(dir, "missing.txt")))
	assert.ErrorIs(t, err, internal.ErrSourceNotFound)

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("# nothing\n\n"), 0644))
	_, err = NewEngine(File(empty))
	assert.ErrorIs(t, err, internal.ErrSourceEmpty)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("a|||AE0\n"), 0644))
	_, err = NewEngine(File(bad))
	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
}

func TestParseCondition(t *testing.T) {
	for c, name := range conditionNames {
		got, err := ParseCondition(strings.ToUpper(name))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	_, err := ParseCondition("maybe")
	assert.Error(t, err)
}
