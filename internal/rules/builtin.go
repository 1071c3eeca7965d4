package rules

import (
	"strings"

	"codeberg.org/snonux/g2p/internal/phoneme"
)

type ruleSpec struct {
	pattern, left, right string
	phonemes             string
	priority             int
	conditions           []Condition
}

func cond(c ...Condition) []Condition { return c }

// builtinRules is the English rule table in declaration order. Ties in
// priority keep this order.
var builtinRules = []ruleSpec{
	// Silent leading letters.
	{"kn", "", "", "N", 10, cond(WordStart)},
	{"gn", "", "", "N", 10, cond(WordStart)},
	{"wr", "", "", "R", 10, cond(WordStart)},
	{"ps", "", "", "S", 10, cond(WordStart)},
	{"pn", "", "", "N", 10, cond(WordStart)},
	{"pt", "", "", "T", 10, cond(WordStart)},

	// Silent trailing letters.
	{"mb", "", "", "M", 8, cond(WordEnd)},
	{"bt", "", "", "T", 8, cond(WordEnd)},
	{"mn", "", "", "M", 8, cond(WordEnd)},

	{"th", "", "", "TH", 5, nil},
	{"ch", "", "", "CH", 5, nil},
	{"tch", "", "", "CH", 6, nil},
	{"sch", "", "", "S K", 6, nil},
	{"sh", "", "", "SH", 5, nil},
	{"ti", "", "on", "SH", 6, nil},
	{"ci", "", "an", "SH", 6, nil},
	{"si", "", "on", "ZH", 6, nil},
	{"ph", "", "", "F", 5, nil},

	// gh is F at the end of a word and silent elsewhere.
	{"gh", "", "", "F", 6, cond(WordEnd)},
	{"gh", "", "", "", 5, nil},
	{"ght", "", "", "T", 6, nil},

	{"ng", "", "", "NG", 5, nil},
	{"nk", "", "", "NG K", 5, nil},
	{"qu", "", "", "K W", 5, nil},
	{"x", "", "", "K S", 3, nil},
	{"x", Boundary, "", "Z", 4, cond(WordStart)},
	{"ck", "", "", "K", 5, nil},
	{"dge", "", "", "JH", 6, cond(WordEnd)},

	{"ough", "", "", "AH1 F", 8, nil},
	{"augh", "", "", "AO1 F", 8, nil},
	{"eigh", "", "", "EY1", 8, nil},
	{"tion", "", "", "SH AH0 N", 7, nil},
	{"sion", "", "", "ZH AH0 N", 7, nil},
	{"ture", "", "", "CH ER0", 7, nil},

	{"eau", "", "", "OW1", 6, nil},
	{"ieu", "", "", "UW1", 6, nil},
	{"oor", "", "", "UH1 R", 6, nil},
	{"ear", "", "", "IH1 R", 6, nil},
	{"eer", "", "", "IH1 R", 6, nil},
	{"air", "", "", "EH1 R", 6, nil},
	{"are", "", "", "EH1 R", 6, nil},
	{"ore", "", "", "AO1 R", 6, nil},
	{"our", "", "", "AW1 R", 6, nil},

	{"ai", "", "", "EY1", 5, nil},
	{"ay", "", "", "EY1", 5, nil},
	{"au", "", "", "AO1", 5, nil},
	{"aw", "", "", "AO1", 5, nil},
	{"ea", "", "", "IY1", 5, nil},
	{"ee", "", "", "IY1", 5, nil},
	{"ei", "", "", "EY1", 5, nil},
	{"eu", "", "", "Y UW1", 5, nil},
	{"ey", "", "", "EY1", 5, nil},
	{"ie", "", "", "IY1", 5, nil},
	{"oa", "", "", "OW1", 5, nil},
	{"oe", "", "", "OW1", 5, nil},
	{"oi", "", "", "OY1", 5, nil},
	{"oo", "", "", "UW1", 5, nil},
	{"ou", "", "", "AW1", 5, nil},
	{"ow", "", "", "AW1", 5, nil},
	{"oy", "", "", "OY1", 5, nil},
	{"ue", "", "", "UW1", 5, nil},
	{"ui", "", "", "UW1", 5, nil},

	{"al", "", "", "AO1 L", 4, nil},
	{"ar", "", "", "AA1 R", 4, nil},
	{"er", "", "", "ER1", 4, nil},
	{"ir", "", "", "ER1", 4, nil},
	{"or", "", "", "AO1 R", 4, nil},
	{"ur", "", "", "ER1", 4, nil},

	// Soft c and g.
	{"c", "", "e", "S", 4, nil},
	{"c", "", "i", "S", 4, nil},
	{"c", "", "y", "S", 4, nil},
	{"g", "", "e", "JH", 4, nil},
	{"g", "", "i", "JH", 4, nil},
	{"g", "", "y", "JH", 4, nil},

	{"y", "", "", "AY1", 4, cond(WordEnd)},
	{"y", "", "", "IH0", 3, nil},
	{"e", "", Boundary, "", 4, cond(WordEnd)},

	{"a", "", "", "AE0", 2, nil},
	{"e", "", "", "EH0", 2, nil},
	{"i", "", "", "IH0", 2, nil},
	{"o", "", "", "AA0", 2, nil},
	{"u", "", "", "AH0", 2, nil},

	{"b", "", "", "B", 2, nil},
	{"c", "", "", "K", 2, nil},
	{"d", "", "", "D", 2, nil},
	{"f", "", "", "F", 2, nil},
	{"g", "", "", "G", 2, nil},
	{"h", "", "", "HH", 2, nil},
	{"j", "", "", "JH", 2, nil},
	{"k", "", "", "K", 2, nil},
	{"l", "", "", "L", 2, nil},
	{"m", "", "", "M", 2, nil},
	{"n", "", "", "N", 2, nil},
	{"p", "", "", "P", 2, nil},
	{"r", "", "", "R", 2, nil},
	{"s", "", "", "S", 2, nil},
	{"t", "", "", "T", 2, nil},
	{"v", "", "", "V", 2, nil},
	{"w", "", "", "W", 2, nil},
	{"z", "", "", "Z", 2, nil},
}

var builtinIrregular = map[string]string{
	"colonel": "K ER1 N AH0 L",
	"yacht":   "Y AA1 T",
	"island":  "AY1 L AH0 N D",
	"aisle":   "AY1 L",
	"isle":    "AY1 L",

	"knight": "N AY1 T",
	"knee":   "N IY1",
	"knife":  "N AY1 F",
	"know":   "N OW1",
	"gnome":  "N OW1 M",
	"gnat":   "N AE1 T",
	"write":  "R AY1 T",
	"wrong":  "R AO1 NG",
	"wrist":  "R IH1 S T",
	"lamb":   "L AE1 M",
	"comb":   "K OW1 M",
	"tomb":   "T UW1 M",
	"thumb":  "TH AH1 M",
	"debt":   "D EH1 T",
	"doubt":  "D AW1 T",

	"psychology": "S AY0 K AA1 L AH0 JH IY0",
	"pneumonia":  "N UW0 M OW1 N Y AH0",
	"rhythm":     "R IH1 DH AH0 M",
	"phone":      "F OW1 N",
	"graph":      "G R AE1 F",
	"laugh":      "L AE1 F",
	"cough":      "K AO1 F",
	"rough":      "R AH1 F",
	"tough":      "T AH1 F",
	"enough":     "IH0 N AH1 F",
	"high":       "HH AY1",
	"sigh":       "S AY1",
	"thigh":      "TH AY1",

	"one":      "W AH1 N",
	"once":     "W AH1 N S",
	"two":      "T UW1",
	"eight":    "EY1 T",
	"women":    "W IH1 M AH0 N",
	"woman":    "W UH1 M AH0 N",
	"busy":     "B IH1 Z IY0",
	"business": "B IH1 Z N AH0 S",
	"minute":   "M AY0 N UW1 T",
}

// fallback maps each letter to the phoneme emitted when no rule matches.
var fallback = map[rune]phoneme.Phoneme{
	'a': phoneme.New("AE0"),
	'b': phoneme.New("B"),
	'c': phoneme.New("K"),
	'd': phoneme.New("D"),
	'e': phoneme.New("EH0"),
	'f': phoneme.New("F"),
	'g': phoneme.New("G"),
	'h': phoneme.New("HH"),
	'i': phoneme.New("IH0"),
	'j': phoneme.New("JH"),
	'k': phoneme.New("K"),
	'l': phoneme.New("L"),
	'm': phoneme.New("M"),
	'n': phoneme.New("N"),
	'o': phoneme.New("OW0"),
	'p': phoneme.New("P"),
	'q': phoneme.New("K"),
	'r': phoneme.New("R"),
	's': phoneme.New("S"),
	't': phoneme.New("T"),
	'u': phoneme.New("UH0"),
	'v': phoneme.New("V"),
	'w': phoneme.New("W"),
	'x': phoneme.New("K"),
	'y': phoneme.New("Y"),
	'z': phoneme.New("Z"),
}

func builtinTable() Table {
	t := Table{
		Rules:     make([]Rule, 0, len(builtinRules)),
		Irregular: make(map[string][]phoneme.Phoneme, len(builtinIrregular)),
	}
	for _, s := range builtinRules {
		t.Rules = append(t.Rules, Rule{
			Pattern:    s.pattern,
			Left:       s.left,
			Right:      s.right,
			Phonemes:   phoneme.Parse(strings.Fields(s.phonemes)),
			Priority:   s.priority,
			Conditions: s.conditions,
		})
	}
	for word, seq := range builtinIrregular {
		t.Irregular[word] = phoneme.Parse(strings.Fields(seq))
	}
	return t
}
