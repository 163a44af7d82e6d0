// Package wordlist ingests a host-supplied word list into the form
// pkg/lexicon and pkg/crossword need: every word uppercased, grouped by
// length, with malformed entries silently dropped per spec.md §6.
//
// Grounded on the teacher's pkg/wordlist.LoadBrodaWordlist (bufio scan,
// WORD;SCORE parsing, grouping by length, sort by score) generalized to
// also accept a plain in-memory []string (the dictionary ingestion
// interface spec.md §6 actually specifies) rather than only a file on
// disk.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Word is a dictionary entry with an optional quality score. Scores are
// never consulted by the solver core (spec.md's Non-goals: no ranking, no
// difficulty scoring) - they are carried through for a host's own
// candidate-ordering preferences and stored in the sqlite cache, the way
// the teacher's Broda-format loader treats them. The stats CLI reports
// word counts only, not scores.
type Word struct {
	Text  string
	Score int
}

// List is a word list ingested and grouped by length.
type List struct {
	ByLength map[int][]Word
	// Skipped counts input entries dropped for failing validation: length
	// < 2, or containing a character outside A-Z once folded (spec.md §9
	// open question - this module's chosen answer is "skip, don't error").
	Skipped int
}

// newList returns an empty List.
func newList() *List {
	return &List{ByLength: make(map[int][]Word)}
}

// valid reports whether text, once uppercased, is accepted: length >= 2
// and every character is A-Z.
func valid(text string) (string, bool) {
	if len(text) < 2 {
		return "", false
	}
	upper := strings.ToUpper(text)
	for i := 0; i < len(upper); i++ {
		c := upper[i]
		if c < 'A' || c > 'Z' {
			return "", false
		}
	}
	return upper, true
}

// FromSlice builds a List from an in-memory word slice (spec.md §6's word
// list interface: "Sequence of strings"). Every word is uppercased;
// entries shorter than 2 letters or containing a non-A-Z character are
// silently dropped and counted in Skipped.
func FromSlice(words []string) *List {
	l := newList()
	for _, w := range words {
		upper, ok := valid(w)
		if !ok {
			l.Skipped++
			continue
		}
		length := len(upper)
		l.ByLength[length] = append(l.ByLength[length], Word{Text: upper, Score: 0})
	}
	return l
}

// LoadBroda loads a word list from a file in Peter Broda's WORD;SCORE
// format, one entry per line. Malformed lines (no ';' separator,
// non-numeric score) are a read error, matching the teacher's
// LoadBrodaWordlist - unlike FromSlice, a Broda file is assumed to be a
// curated, machine-generated artifact, so a malformed line indicates file
// corruption rather than ordinary free-form input. A well-formed line whose
// word fails validation (empty, shorter than 2, or non-A-Z) is skipped and
// counted in Skipped, as in FromSlice.
func LoadBroda(path string) (*List, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open wordlist file: %w", err)
	}
	defer file.Close()

	l := newList()
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, ";", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed line %d: expected 'WORD;SCORE', got %q", lineNum, line)
		}

		rawText := strings.TrimSpace(parts[0])
		scoreStr := strings.TrimSpace(parts[1])

		score, err := strconv.Atoi(scoreStr)
		if err != nil {
			return nil, fmt.Errorf("malformed line %d: invalid score %q: %w", lineNum, scoreStr, err)
		}

		upper, ok := valid(rawText)
		if !ok {
			l.Skipped++
			continue
		}

		length := len(upper)
		l.ByLength[length] = append(l.ByLength[length], Word{Text: upper, Score: score})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading wordlist file: %w", err)
	}

	for length := range l.ByLength {
		sort.Slice(l.ByLength[length], func(i, j int) bool {
			return l.ByLength[length][i].Score > l.ByLength[length][j].Score
		})
	}
	return l, nil
}

// Words flattens the list to the plain []string the lexicon builds from.
func (l *List) Words() []string {
	out := make([]string, 0, l.Size())
	for _, words := range l.ByLength {
		for _, w := range words {
			out = append(out, w.Text)
		}
	}
	return out
}

// WordsOfLength returns all words of the given length, highest score
// first.
func (l *List) WordsOfLength(length int) []Word {
	return l.ByLength[length]
}

// Size returns the total number of accepted words.
func (l *List) Size() int {
	n := 0
	for _, words := range l.ByLength {
		n += len(words)
	}
	return n
}
