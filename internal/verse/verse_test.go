package verse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	apperrors "github.com/agbru/primer/internal/errors"
)

func TestStanza_PhraseCounts(t *testing.T) {
	t.Parallel()
	song := DefaultSong()

	for i := 0; i < 12; i++ {
		st, err := song.Stanza(i)
		if err != nil {
			t.Fatalf("Stanza(%d) error: %v", i, err)
		}
		if len(st.Lines) != i+1 {
			t.Errorf("Stanza(%d) has %d lines, want %d", i, len(st.Lines), i+1)
		}
		if last := st.Lines[len(st.Lines)-1]; last != "A partridge in a pear tree" {
			t.Errorf("Stanza(%d) ends with %q", i, last)
		}
		if st.Ordinal != Ordinals[i] || st.Day != i {
			t.Errorf("Stanza(%d) = day %d %q", i, st.Day, st.Ordinal)
		}
	}
}

func TestStanza_FirstAndLast(t *testing.T) {
	t.Parallel()
	song := DefaultSong()

	first, err := song.Stanza(0)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"A partridge in a pear tree"}, first.Lines); diff != "" {
		t.Errorf("stanza 0 mismatch (-want +got):\n%s", diff)
	}

	second, _ := song.Stanza(1)
	if diff := cmp.Diff([]string{"Two turtle doves and", "A partridge in a pear tree"}, second.Lines); diff != "" {
		t.Errorf("stanza 1 mismatch (-want +got):\n%s", diff)
	}

	last, err := song.Stanza(11)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Phrases[:], last.Lines); diff != "" {
		t.Errorf("stanza 11 mismatch (-want +got):\n%s", diff)
	}
}

func TestStanza_OutOfRange(t *testing.T) {
	t.Parallel()
	song := DefaultSong()

	for _, i := range []int{-1, 12, 100} {
		_, err := song.Stanza(i)
		var indexErr apperrors.IndexError
		if !errors.As(err, &indexErr) {
			t.Fatalf("Stanza(%d): expected IndexError, got %v", i, err)
		}
		if indexErr.Index != i || indexErr.Len != 12 {
			t.Errorf("Stanza(%d): unexpected error fields %+v", i, indexErr)
		}
	}
}

func TestStanza_MismatchedLists(t *testing.T) {
	t.Parallel()
	song := Song{
		Phrases:  []string{"Two turtle doves and", "A partridge in a pear tree"},
		Ordinals: []string{"first", "second", "third"},
	}

	if song.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", song.Len())
	}
	if _, err := song.Stanza(2); err == nil {
		t.Error("Stanza past the shorter list should fail")
	}

	text, err := song.Verse()
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(text, "third") {
		t.Errorf("verse should stop at the shorter list:\n%s", text)
	}
}

func TestStanza_LinesAreCopies(t *testing.T) {
	t.Parallel()
	song := DefaultSong()
	st, _ := song.Stanza(0)
	st.Lines[0] = "changed"

	again, _ := song.Stanza(0)
	if again.Lines[0] != "A partridge in a pear tree" {
		t.Error("mutating a stanza should not alter the song")
	}
}

func TestVerse_Structure(t *testing.T) {
	t.Parallel()
	text, err := DefaultSong().Verse()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(text, "A partridge in a pear tree\n") || strings.HasSuffix(text, "\n\n") {
		t.Errorf("verse should end with the final phrase and a single newline")
	}

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	phraseLines := 0
	for i := 0; i < 12; i++ {
		phraseLines += i + 1
	}
	if want := 12*2 + phraseLines + 11; len(lines) != want {
		t.Errorf("verse has %d lines, want %d", len(lines), want)
	}

	headers, blanks := 0, 0
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "On the "):
			headers++
			if headers > 1 && lines[i-1] != "" {
				t.Errorf("header %d at line %d is not preceded by a blank line", headers, i)
			}
			if lines[i+1] != "My true love sent to me:" {
				t.Errorf("header at line %d lacks its second line", i)
			}
		case line == "":
			blanks++
		}
	}
	if headers != 12 || blanks != 11 {
		t.Errorf("headers = %d, blanks = %d; want 12 and 11", headers, blanks)
	}
}

func TestVerse_Opening(t *testing.T) {
	t.Parallel()
	text, _ := DefaultSong().Verse()
	want := "On the first day of Christmas\n" +
		"My true love sent to me:\n" +
		"A partridge in a pear tree\n" +
		"\n" +
		"On the second day of Christmas\n" +
		"My true love sent to me:\n" +
		"Two turtle doves and\n" +
		"A partridge in a pear tree\n"
	if !strings.HasPrefix(text, want) {
		t.Errorf("verse opening mismatch (-want +got):\n%s", cmp.Diff(want, text[:min(len(text), len(want))]))
	}
}

func TestRender_StylesOnlyHeaders(t *testing.T) {
	t.Parallel()
	text, err := DefaultSong().Render(strings.ToUpper)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "ON THE TWELFTH DAY OF CHRISTMAS\nMY TRUE LOVE SENT TO ME:\nTwelve drummers drumming\n") {
		t.Errorf("headers should be styled and phrases left alone:\n%s", text)
	}
}
