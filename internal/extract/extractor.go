package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"go-posting-cleaner/internal/models"
)

// word is a run of letters, digits or underscores in any script
const word = `[\p{L}\p{N}_]+`

var (
	companyRegex     = regexp.MustCompile(`team at (` + word + `)`)
	emailRegex       = regexp.MustCompile(`(` + word + `@` + word + `\.` + word + `)`)
	deadlineRegex    = regexp.MustCompile(`(` + word + ` \d+, \d{4})\b`)
	testimonialRegex = regexp.MustCompile(`"([^"]+)"`)
	requirementStart = regexp.MustCompile(`(?m)^[ \t]*- `)
	requirementStop  = regexp.MustCompile(`\n[ \t]*-|\n\n`)
)

// Extract pulls every known field out of a raw posting.
// Each field is searched on its own over the whole text and the first match wins,
// fields with no match keep their placeholder value.
func Extract(text string) models.PostingRecord {
	rec := models.NewPostingRecord()

	if m := companyRegex.FindStringSubmatch(text); m != nil {
		rec.Company = m[1]
	}
	if m := emailRegex.FindStringSubmatch(text); m != nil {
		rec.Email = m[1]
	}
	if m := deadlineRegex.FindStringSubmatch(text); m != nil {
		rec.Deadline = m[1]
	}

	rec.Requirements = Requirements(text)

	if m := testimonialRegex.FindStringSubmatch(text); m != nil {
		testimonial := m[1]
		rec.Testimonial = &testimonial
	}

	return rec
}

// Requirements returns the "- " bullet items of text in source order, indented bullets included.
// An item runs until the next line starting with "-" after optional indentation, a blank line or the end of the text,
// so a bullet wrapped over several lines stays one item.
func Requirements(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	reqs := []string{}

	end := 0
	for _, loc := range requirementStart.FindAllStringIndex(text, -1) {
		if loc[0] < end {
			continue
		}
		start := loc[1]
		if start >= len(text) {
			break
		}

		//an item holds at least one character before a terminator may close it
		_, size := utf8.DecodeRuneInString(text[start:])
		end = itemEnd(text, start+size)

		reqs = append(reqs, strings.TrimSpace(text[start:end]))
	}
	return reqs
}

// itemEnd finds where the item ends, searching from 'from'
func itemEnd(text string, from int) int {
	if loc := requirementStop.FindStringIndex(text[from:]); loc != nil {
		return from + loc[0]
	}
	return len(text)
}
