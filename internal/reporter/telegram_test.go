package reporter

import (
	"strings"
	"testing"

	"go-posting-cleaner/internal/models"
	"go-posting-cleaner/internal/pipeline"

	"github.com/stretchr/testify/assert"
)

func TestBuildPostingMessage(t *testing.T) {
	rec := models.NewPostingRecord()
	rec.Company = "Acme"
	rec.Email = "hr@acme.io"
	res := pipeline.Result{Record: rec, Formatted: "REQUIREMENTS:\n1. <Go> & SQL"}

	msg := BuildPostingMessage(res)

	assert.True(t, strings.HasPrefix(msg, "🔥 <b>New posting: Acme</b>\n📧 hr@acme.io\n📅 No deadline specified\n"))
	assert.Contains(t, msg, "<pre>REQUIREMENTS:\n1. &lt;Go&gt; &amp; SQL</pre>")
}

func TestBuildPostingMessage_Truncates(t *testing.T) {
	rec := models.NewPostingRecord()
	res := pipeline.Result{Record: rec, Formatted: strings.Repeat("a&b ", 3000)}

	msg := BuildPostingMessage(res)

	assert.LessOrEqual(t, utf16Len(msg), maxMessageLen)
	assert.True(t, strings.HasSuffix(msg, "…</pre>"))
	//no half-written entity before the ellipsis
	body := strings.TrimSuffix(msg, "…</pre>")
	assert.False(t, strings.HasSuffix(body, "&"))
	assert.False(t, strings.HasSuffix(body, "&amp"))
}

func TestBuildPostingMessage_CountsUTF16Units(t *testing.T) {
	rec := models.NewPostingRecord()
	res := pipeline.Result{Record: rec, Formatted: strings.Repeat("🚀", 3000)}

	msg := BuildPostingMessage(res)

	//3000 runes fit by rune count but take 6000 units
	assert.LessOrEqual(t, utf16Len(msg), maxMessageLen)
	assert.True(t, strings.HasSuffix(msg, "…</pre>"))
}

func TestBuildPostingMessage_LongHeaderFieldsAreCapped(t *testing.T) {
	rec := models.NewPostingRecord()
	rec.Company = strings.Repeat("A&B 🏢", 2000)
	rec.Email = strings.Repeat("x", 5000)
	res := pipeline.Result{Record: rec, Formatted: "REQUIREMENTS:\n1. Go"}

	msg := BuildPostingMessage(res)

	assert.LessOrEqual(t, utf16Len(msg), maxMessageLen)
	assert.True(t, strings.HasPrefix(msg, "🔥 <b>New posting: A&amp;B"))
	assert.Contains(t, msg, "…</b>\n📧 ")
	assert.True(t, strings.HasSuffix(msg, "<pre>REQUIREMENTS:\n1. Go</pre>"))
}

func TestUTF16Len(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "ASCII", input: "abc", expected: 3},
		{name: "BMP accents", input: "café", expected: 4},
		{name: "Astral emoji take two units", input: "🔥📧", expected: 4},
		{name: "Empty", input: "", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, utf16Len(tt.input))
		})
	}
}

func TestFitEscaped(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		limit    int
		expected string
	}{
		{name: "Fits as is", input: "a<b", limit: 6, expected: "a&lt;b"},
		{name: "Cut before an entity", input: "ab<cd", limit: 5, expected: "ab…"},
		{name: "Escaped text is not cut to nothing", input: strings.Repeat("&", 10), limit: 11, expected: "&amp;&amp;…"},
		{name: "Astral rune counts two units", input: "a🚀b", limit: 3, expected: "a…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fitEscaped(tt.input, tt.limit)
			assert.Equal(t, tt.expected, got)
			assert.LessOrEqual(t, utf16Len(got), tt.limit)
		})
	}
}
