// Package segmenter splits raw regulatory text into numbered clause records.
package segmenter

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Clause markers look like "第二十八条": the CJK numeral alphabet between
// "第" and "条" covers composites up to the thousands.
var (
	markerPattern = regexp.MustCompile(`第[零一二三四五六七八九十百千]+条`)
	datedSuffix   = regexp.MustCompile(`_\d{8}\.(?i:md|pdf|docx?)$`)
	extSuffix     = regexp.MustCompile(`\.(?i:md|pdf|docx?)$`)
)

// MinContentLength is the rune count below which a collapsed clause is
// treated as segmentation noise (table-of-contents hits, header fragments).
const MinContentLength = 10

type Clause struct {
	Number  string
	Content string
}

// ExtractClauses segments text into clauses in document order. A clause spans
// from one marker up to the next marker or end of text. Internal whitespace
// runs are collapsed to single spaces; clauses whose collapsed content is
// MinContentLength runes or shorter are discarded. Text without any marker
// yields an empty slice.
func ExtractClauses(text string) []Clause {
	bounds := markerPattern.FindAllStringIndex(text, -1)
	clauses := make([]Clause, 0, len(bounds))

	for i, b := range bounds {
		end := len(text)
		if i+1 < len(bounds) {
			end = bounds[i+1][0]
		}
		span := strings.TrimSpace(text[b[0]:end])

		// Every span starts at a marker, but guard against a violated
		// invariant instead of emitting an unnumbered record.
		number := markerPattern.FindString(span)
		if number == "" {
			continue
		}

		content := strings.Join(strings.Fields(span), " ")
		if utf8.RuneCountInString(content) <= MinContentLength {
			continue
		}

		clauses = append(clauses, Clause{Number: number, Content: content})
	}

	return clauses
}

// DeriveTitle derives a regulation's display title from its source filename.
// Dated corpus files carry an "_YYYYMMDD" stamp before the extension
// ("政府采购法_20220101.md" -> "政府采购法"); uploads just lose the extension.
func DeriveTitle(filename string) string {
	if title := datedSuffix.ReplaceAllString(filename, ""); title != filename {
		return title
	}
	return extSuffix.ReplaceAllString(filename, "")
}
