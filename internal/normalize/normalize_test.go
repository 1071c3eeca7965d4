package normalize

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "Hello World", "hello world"},
		{"abbreviation", "Dr. Smith vs. Mr. Jones", "doctor smith versus mister jones"},
		{"mrs before mr", "Mrs. Brown", "misses brown"},
		{"no abbreviation inside word", "The first.", "the first"},
		{"numbers", "I have 3 cats and 20 dogs", "i have three cats and twenty dogs"},
		{"large number kept", "route 66", "route 66"},
		{"leading zero kept", "agent 007", "agent 007"},
		{"punctuation", "Hello, world! How are you?", "hello world how are you"},
		{"apostrophe kept", "Don't stop", "don't stop"},
		{"whitespace", "  lots\tof \n space  ", "lots of space"},
		{"empty", "", ""},
	}

	n := NewEnglish()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple", "hello world", []string{"hello", "world"}},
		{"edge quotes", "'quoted' words", []string{"quoted", "words"}},
		{"inner apostrophe", "don't", []string{"don't"}},
		{"digits dropped", "route 66", []string{"route"}},
		{"empty", "", nil},
	}

	n := NewEnglish()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Tokenize(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSpellNumber(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0", "zero"},
		{"13", "thirteen"},
		{"20", "twenty"},
		{"21", "21"},
		{"05", "05"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := spellNumber(tt.input); got != tt.want {
				t.Errorf("spellNumber(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEnglishImplementsNormalizer(t *testing.T) {
	var _ Normalizer = NewEnglish()
	var _ Normalizer = English{}
}
