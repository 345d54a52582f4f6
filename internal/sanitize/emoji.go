// Package sanitize removes decoration characters from posting text.
package sanitize

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// emojiRanges lists the code points treated as decoration.
// Letter scripts in between (CJK, Hangul, Cyrillic) are left out on purpose.
var emojiRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2300, Hi: 0x23FF, Stride: 1}, // misc technical: hourglass, watch, media keys
		{Lo: 0x24C2, Hi: 0x24C2, Stride: 1}, // circled M
		{Lo: 0x2600, Hi: 0x26FF, Stride: 1}, // misc symbols: sun, coffee, zap
		{Lo: 0x2702, Hi: 0x27B0, Stride: 1}, // dingbats
		{Lo: 0x2B00, Hi: 0x2BFF, Stride: 1}, // arrows, star, large circles
		{Lo: 0x3030, Hi: 0x3030, Stride: 1}, // wavy dash
		{Lo: 0x303D, Hi: 0x303D, Stride: 1}, // part alternation mark
		{Lo: 0x3297, Hi: 0x3297, Stride: 1}, // circled ideograph congratulation
		{Lo: 0x3299, Hi: 0x3299, Stride: 1}, // circled ideograph secret
		{Lo: 0xFE0E, Hi: 0xFE0F, Stride: 1}, // variation selectors
	},
	R32: []unicode.Range32{
		{Lo: 0x1F170, Hi: 0x1F251, Stride: 1}, // enclosed supplements, regional indicator flags included
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1}, // symbols & pictographs
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1}, // emoticons
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1}, // transport & map symbols
	},
}

var stripper = runes.Remove(runes.In(emojiRanges))

// IsEmoji reports whether r falls inside one of the stripped ranges.
func IsEmoji(r rune) bool {
	return unicode.Is(emojiRanges, r)
}

// StripEmoji returns s with every emoji code point removed.
// All other characters, multi-byte ones included, are kept as they are.
func StripEmoji(s string) string {
	result, _, err := transform.String(stripper, s)
	if err != nil {
		// runes.Remove never fails on a complete string
		return s
	}
	return result
}
