// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Language is the locale code that partitions both content and routing.
type Language string

const (
	LanguageTurkish Language = "tr"
	LanguageEnglish Language = "en"
)

// DefaultLanguage is where the bare root path redirects. It is the single
// definition of the rule — the router consumes it, nothing else declares it.
const DefaultLanguage = LanguageTurkish

// Languages lists every locale the site serves, in display order.
// Adding a language here is all that is needed for routing and the
// admin form selector to pick it up.
var Languages = []Language{LanguageTurkish, LanguageEnglish}

// Valid reports whether l is one of the served locales.
func (l Language) Valid() bool {
	for _, known := range Languages {
		if l == known {
			return true
		}
	}
	return false
}

// Label returns the human-readable name shown in the admin form selector.
func (l Language) Label() string {
	switch l {
	case LanguageTurkish:
		return "Türkçe"
	case LanguageEnglish:
		return "English"
	default:
		return string(l)
	}
}

// Post is a single content item. The slug is unique per language and is
// the public path segment for the post (/{language}/{slug}).
type Post struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Content     string    `json:"content"`
	Language    Language  `json:"language"`
	ImageURL    string    `json:"image_url"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
}

// previewLen is how many runes of content the public listing shows.
const previewLen = 180

// Preview returns a truncated version of the content for listing cards.
func (p Post) Preview() string {
	runes := []rune(p.Content)
	if len(runes) <= previewLen {
		return p.Content
	}
	return string(runes[:previewLen]) + "…"
}

// Path returns the public URL path for the post.
func (p Post) Path() string {
	return "/" + string(p.Language) + "/" + p.Slug
}
