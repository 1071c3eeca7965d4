// Package phoneme models a single ARPAbet phonetic unit: the base symbol,
// its lexical stress tier and the articulatory features looked up from a
// fixed inventory of 15 vowels and 24 consonants. Values are immutable and
// comparable with ==.
package phoneme
