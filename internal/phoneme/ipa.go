package phoneme

import "strings"

// ipaMap maps ARPAbet base symbols to IPA.
var ipaMap = map[string]string{
	"AA": "\u0251",  // ɑ
	"AE": "\u00e6",  // æ
	"AH": "\u028c",  // ʌ
	"AO": "\u0254",  // ɔ
	"AW": "a\u028a", // aʊ
	"AY": "a\u026a", // aɪ
	"B":  "b",
	"CH": "t\u0283", // tʃ
	"D":  "d",
	"DH": "\u00f0",  // ð
	"EH": "\u025b",  // ɛ
	"ER": "\u025d",  // ɝ
	"EY": "e\u026a", // eɪ
	"F":  "f",
	"G":  "\u0261", // ɡ
	"HH": "h",
	"IH": "\u026a", // ɪ
	"IY": "i",
	"JH": "d\u0292", // dʒ
	"K":  "k",
	"L":  "l",
	"M":  "m",
	"N":  "n",
	"NG": "\u014b",       // ŋ
	"OW": "o\u028a",      // oʊ
	"OY": "\u0254\u026a", // ɔɪ
	"P":  "p",
	"R":  "\u0279", // ɹ
	"S":  "s",
	"SH": "\u0283", // ʃ
	"T":  "t",
	"TH": "\u03b8", // θ
	"UH": "\u028a", // ʊ
	"UW": "u",
	"V":  "v",
	"W":  "w",
	"Y":  "j",
	"Z":  "z",
	"ZH": "\u0292", // ʒ
}

// IPA returns the IPA symbol for p, prefixed with a stress mark for
// stressed vowels. Boundaries render as a space, unknown symbols as "".
func (p Phoneme) IPA() string {
	if p.IsBoundary() {
		return " "
	}
	ipa, ok := ipaMap[p.Symbol]
	if !ok {
		return ""
	}
	if p.IsVowel() {
		switch p.Stress {
		case Primary:
			return "\u02c8" + ipa // ˈ
		case Secondary:
			return "\u02cc" + ipa // ˌ
		}
	}
	return ipa
}

// ToIPA renders a sequence as a slash-wrapped IPA transcription.
// Boundaries split words with a space.
func ToIPA(seq []Phoneme) string {
	var b strings.Builder
	b.WriteByte('/')
	for _, p := range seq {
		b.WriteString(p.IPA())
	}
	return strings.TrimRight(b.String(), " ") + "/"
}
