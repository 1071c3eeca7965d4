package phoneme

// Type classifies a phoneme as vowel, consonant or special marker.
type Type int

const (
	Special Type = iota
	Vowel
	Consonant
)

// Manner of articulation, consonants only.
type Manner int

const (
	NoManner Manner = iota
	Stop
	Fricative
	Affricate
	Nasal
	Liquid
	Glide
)

// Place of articulation, consonants only.
type Place int

const (
	NoPlace Place = iota
	Bilabial
	Labiodental
	Dental
	Alveolar
	Postalveolar
	Palatal
	Velar
	Glottal
)

// Voicing, consonants only.
type Voicing int

const (
	NoVoicing Voicing = iota
	Voiced
	Voiceless
)

// Height of the tongue, vowels only.
type Height int

const (
	NoHeight Height = iota
	High
	Mid
	Low
)

// Backness of the tongue, vowels only.
type Backness int

const (
	NoBackness Backness = iota
	Front
	Central
	Back
)

// Features holds the articulatory description of a phoneme. Vowels only
// carry Height and Backness, consonants only Manner, Place and Voicing.
type Features struct {
	Type     Type
	Manner   Manner
	Place    Place
	Voicing  Voicing
	Height   Height
	Backness Backness
}

func vowel(h Height, b Backness) Features {
	return Features{Type: Vowel, Height: h, Backness: b}
}

func consonant(m Manner, p Place, v Voicing) Features {
	return Features{Type: Consonant, Manner: m, Place: p, Voicing: v}
}

// vowelOrder and consonantOrder fix the inventory listing order.
var vowelOrder = []string{
	"AA", "AE", "AH", "AO", "AW", "AY", "EH", "ER",
	"EY", "IH", "IY", "OW", "OY", "UH", "UW",
}

var consonantOrder = []string{
	"B", "CH", "D", "DH", "F", "G", "HH", "JH", "K", "L", "M", "N",
	"NG", "P", "R", "S", "SH", "T", "TH", "V", "W", "Y", "Z", "ZH",
}

var templates = map[string]Features{
	"AA": vowel(Low, Back),
	"AE": vowel(Low, Front),
	"AH": vowel(Mid, Central),
	"AO": vowel(Mid, Back),
	"AW": vowel(Low, Central),
	"AY": vowel(Low, Central),
	"EH": vowel(Mid, Front),
	"ER": vowel(Mid, Central),
	"EY": vowel(Mid, Front),
	"IH": vowel(High, Front),
	"IY": vowel(High, Front),
	"OW": vowel(Mid, Back),
	"OY": vowel(Mid, Back),
	"UH": vowel(High, Back),
	"UW": vowel(High, Back),

	"B":  consonant(Stop, Bilabial, Voiced),
	"CH": consonant(Affricate, Postalveolar, Voiceless),
	"D":  consonant(Stop, Alveolar, Voiced),
	"DH": consonant(Fricative, Dental, Voiced),
	"F":  consonant(Fricative, Labiodental, Voiceless),
	"G":  consonant(Stop, Velar, Voiced),
	"HH": consonant(Fricative, Glottal, Voiceless),
	"JH": consonant(Affricate, Postalveolar, Voiced),
	"K":  consonant(Stop, Velar, Voiceless),
	"L":  consonant(Liquid, Alveolar, Voiced),
	"M":  consonant(Nasal, Bilabial, Voiced),
	"N":  consonant(Nasal, Alveolar, Voiced),
	"NG": consonant(Nasal, Velar, Voiced),
	"P":  consonant(Stop, Bilabial, Voiceless),
	"R":  consonant(Liquid, Alveolar, Voiced),
	"S":  consonant(Fricative, Alveolar, Voiceless),
	"SH": consonant(Fricative, Postalveolar, Voiceless),
	"T":  consonant(Stop, Alveolar, Voiceless),
	"TH": consonant(Fricative, Dental, Voiceless),
	"V":  consonant(Fricative, Labiodental, Voiced),
	"W":  consonant(Glide, Bilabial, Voiced),
	"Y":  consonant(Glide, Palatal, Voiced),
	"Z":  consonant(Fricative, Alveolar, Voiced),
	"ZH": consonant(Fricative, Postalveolar, Voiced),
}

func (t Type) String() string {
	switch t {
	case Vowel:
		return "vowel"
	case Consonant:
		return "consonant"
	default:
		return "special"
	}
}

func (m Manner) String() string {
	return [...]string{"", "stop", "fricative", "affricate", "nasal", "liquid", "glide"}[m]
}

func (p Place) String() string {
	return [...]string{"", "bilabial", "labiodental", "dental", "alveolar", "postalveolar", "palatal", "velar", "glottal"}[p]
}

func (v Voicing) String() string {
	return [...]string{"", "voiced", "voiceless"}[v]
}

func (h Height) String() string {
	return [...]string{"", "high", "mid", "low"}[h]
}

func (b Backness) String() string {
	return [...]string{"", "front", "central", "back"}[b]
}
