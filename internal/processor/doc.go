// Package processor contains the conversion core. It looks words up in the
// lexicon first, falls back to the letter-to-sound rules on a miss, and
// joins per-word results with boundary markers for running text.
package processor
