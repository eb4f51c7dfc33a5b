// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from post titles.
// Turkish letters are transliterated to their ASCII counterparts so that
// titles in either site language produce clean path segments.
package slug

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// turkishASCII maps each Turkish-specific letter to its ASCII form.
	// An explicit table, not generic transliteration — only these six
	// letters are folded, everything else outside [a-z0-9] becomes a hyphen.
	turkishASCII = strings.NewReplacer(
		"ğ", "g",
		"ü", "u",
		"ş", "s",
		"ı", "i",
		"ö", "o",
		"ç", "c",
	)

	// nonAlphanumeric matches every rune that may not appear in a slug.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]`)

	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a URL-friendly slug from the given title.
// Example: "Ramazan Ayının Önemi" → "ramazan-ayinin-onemi"
//
// Lowercasing uses the Turkish case table so that İ folds to i and I to ı
// before the transliteration table runs; without it the dotted/dotless
// distinction leaks combining marks into the output. The result contains
// only [a-z0-9-] with no run of consecutive hyphens. Leading and trailing
// hyphens are kept: an all-punctuation title yields "-", the empty title "".
func Generate(title string) string {
	result := strings.ToLowerSpecial(unicode.TurkishCase, title)
	result = turkishASCII.Replace(result)
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return result
}
