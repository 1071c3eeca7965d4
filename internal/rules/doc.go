// Package rules implements letter-to-sound conversion for words missing
// from the lexicon. Rules are tried in descending priority order among
// those indexed under the current letter; an irregular-word table is
// consulted first and a single-letter fallback covers letters no rule
// matches.
package rules
