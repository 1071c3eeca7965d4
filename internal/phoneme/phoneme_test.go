package phoneme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantSymbol string
		wantStress Stress
		wantType   Type
	}{
		{"primary vowel", "AE1", "AE", Primary, Vowel},
		{"secondary vowel", "OW2", "OW", Secondary, Vowel},
		{"explicit unstressed", "AH0", "AH", Unstressed, Vowel},
		{"no digit", "IY", "IY", Unstressed, Vowel},
		{"consonant", "K", "K", Unstressed, Consonant},
		{"lowercase", "sh", "SH", Unstressed, Consonant},
		{"unknown", "QX", "QX", Unstressed, Special},
		{"empty", "", "", Unstressed, Special},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.raw)
			assert.Equal(t, tt.wantSymbol, p.Symbol)
			assert.Equal(t, tt.wantStress, p.Stress)
			assert.Equal(t, tt.wantType, p.Features.Type)
		})
	}
}

func TestFeatureInvariant(t *testing.T) {
	for _, sym := range Inventory() {
		p := New(sym)
		f := p.Features
		switch {
		case p.IsVowel():
			assert.NotEqual(t, NoHeight, f.Height, sym)
			assert.NotEqual(t, NoBackness, f.Backness, sym)
			assert.Equal(t, NoManner, f.Manner, sym)
			assert.Equal(t, NoPlace, f.Place, sym)
			assert.Equal(t, NoVoicing, f.Voicing, sym)
		case p.IsConsonant():
			assert.NotEqual(t, NoManner, f.Manner, sym)
			assert.NotEqual(t, NoPlace, f.Place, sym)
			assert.NotEqual(t, NoVoicing, f.Voicing, sym)
			assert.Equal(t, NoHeight, f.Height, sym)
			assert.Equal(t, NoBackness, f.Backness, sym)
		default:
			t.Errorf("inventory symbol %s classified as %s", sym, f.Type)
		}
	}
}

func TestInventory(t *testing.T) {
	inv := Inventory()
	require.Len(t, inv, 39)

	vowels := 0
	for _, s := range inv {
		if New(s).IsVowel() {
			vowels++
		}
	}
	assert.Equal(t, 15, vowels)
}

func TestRenderRoundTrip(t *testing.T) {
	for _, sym := range Inventory() {
		for _, suffix := range []string{"", "0", "1", "2"} {
			raw := sym + suffix
			assert.Equal(t, raw, New(raw).String())
		}
	}
}

func TestWordBoundary(t *testing.T) {
	b := WordBoundary()
	assert.True(t, b.IsBoundary())
	assert.False(t, b.IsVowel())
	assert.False(t, b.IsConsonant())
	assert.Equal(t, Special, b.Features.Type)
	assert.Equal(t, BoundarySeparator, b.String())
	assert.False(t, New("K").IsBoundary())
}

func TestEquality(t *testing.T) {
	assert.Equal(t, New("AE1"), New("ae1"))
	assert.NotEqual(t, New("AE1"), New("AE2"))
}

func TestValid(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"AA1", true},
		{"zh", true},
		{"NG", true},
		{"AA3", false},
		{"Q", false},
		{"", false},
		{"AH01", false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, Valid(tt.token))
		})
	}
}

func TestJoin(t *testing.T) {
	seq := []Phoneme{New("K"), New("AE1"), New("T"), WordBoundary()}
	assert.Equal(t, "K AE1 T |", Join(seq))
}

func TestToIPA(t *testing.T) {
	seq := []Phoneme{New("K"), New("AE1"), New("T"), WordBoundary(), New("S"), New("IH0"), New("T"), WordBoundary()}
	assert.Equal(t, "/kˈæt sɪt/", ToIPA(seq))
}
