// Package verse assembles the cumulative text of "The Twelve Days of
// Christmas".
package verse

import (
	"fmt"
	"slices"
	"strings"

	apperrors "github.com/agbru/primer/internal/errors"
)

// Phrases lists the gifts from the twelfth day down to the first. The
// connector "and" is part of the second-to-last phrase, so every stanza
// after the first reads "... Two turtle doves and / A partridge in a pear tree".
var Phrases = [...]string{
	"Twelve drummers drumming",
	"Eleven pipers piping",
	"Ten lords a-leaping",
	"Nine ladies dancing",
	"Eight maids a-milking",
	"Seven swans a-swimming",
	"Six geese a-laying",
	"Five golden rings",
	"Four calling birds",
	"Three French hens",
	"Two turtle doves and",
	"A partridge in a pear tree",
}

// Ordinals names the days in forward order.
var Ordinals = [...]string{
	"first", "second", "third", "fourth", "fifth", "sixth",
	"seventh", "eighth", "ninth", "tenth", "eleventh", "twelfth",
}

// Song pairs a phrase list (last day first) with the ordinal words naming
// each day (first day first).
type Song struct {
	Phrases  []string
	Ordinals []string
}

// DefaultSong returns the twelve-day song. The returned slices are copies.
func DefaultSong() Song {
	return Song{
		Phrases:  append([]string(nil), Phrases[:]...),
		Ordinals: append([]string(nil), Ordinals[:]...),
	}
}

// Stanza is one day of the song.
type Stanza struct {
	// Day is the zero-based stanza index.
	Day int
	// Ordinal names the day ("first", "second", ...).
	Ordinal string
	// Lines holds the gifts sung on this day, most recent first.
	Lines []string
}

// Header returns the two heading lines of the stanza.
func (s Stanza) Header() [2]string {
	return [2]string{
		fmt.Sprintf("On the %s day of Christmas", s.Ordinal),
		"My true love sent to me:",
	}
}

// Len returns the number of stanzas the song can produce.
func (s Song) Len() int {
	return min(len(s.Phrases), len(s.Ordinals))
}

// Stanza returns stanza i, which holds the last i+1 phrases in list order.
// An index outside [0, Len()) yields an apperrors.IndexError.
func (s Song) Stanza(i int) (Stanza, error) {
	if i < 0 || i >= s.Len() {
		return Stanza{}, apperrors.IndexError{Index: i, Len: s.Len()}
	}
	start := len(s.Phrases) - i - 1
	return Stanza{
		Day:     i,
		Ordinal: s.Ordinals[i],
		Lines:   slices.Clone(s.Phrases[start:]),
	}, nil
}

// Stanzas returns every stanza in order.
func (s Song) Stanzas() ([]Stanza, error) {
	stanzas := make([]Stanza, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		st, err := s.Stanza(i)
		if err != nil {
			return nil, err
		}
		stanzas = append(stanzas, st)
	}
	return stanzas, nil
}

// Verse renders the whole song. Each stanza is its two header lines followed
// by one line per phrase; stanzas are separated by a blank line and the text
// ends with the final phrase's newline.
func (s Song) Verse() (string, error) {
	return s.Render(func(h string) string { return h })
}

// Render is Verse with each header line passed through styleHeader.
func (s Song) Render(styleHeader func(string) string) (string, error) {
	stanzas, err := s.Stanzas()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i, st := range stanzas {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, h := range st.Header() {
			b.WriteString(styleHeader(h))
			b.WriteString("\n")
		}
		for _, line := range st.Lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}
