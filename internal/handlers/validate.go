package handlers

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"halkapress/internal/models"
)

// Validation limits for post form fields.
const (
	maxTitleLen   = 300
	maxSlugLen    = 300
	maxContentLen = 100_000
)

// slugPattern is what a stored slug is allowed to look like: the output
// charset of the slug generator.
var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// PostDraft carries the raw form input for a post before it is validated
// and written. Fields mirror the form, not the database row.
type PostDraft struct {
	Title    string
	Slug     string
	Content  string
	Language models.Language
	ImageURL string
}

// validatePost checks a draft and returns all problems found, in field
// order. An empty result means the draft is ready to persist. Callers fill
// an empty slug from the title before validating, so here the slug is
// required and must carry at least one letter or digit.
func validatePost(d PostDraft) []string {
	var errs []string

	title := strings.TrimSpace(d.Title)
	if title == "" {
		errs = append(errs, "Başlık zorunludur.")
	} else if utf8.RuneCountInString(title) > maxTitleLen {
		errs = append(errs, "Başlık çok uzun (en fazla 300 karakter).")
	}

	switch {
	case d.Slug == "" || strings.Trim(d.Slug, "-") == "":
		errs = append(errs, "Başlıktan geçerli bir slug üretilemedi; slug alanını elle doldurun.")
	case utf8.RuneCountInString(d.Slug) > maxSlugLen:
		errs = append(errs, "Slug çok uzun (en fazla 300 karakter).")
	case !slugPattern.MatchString(d.Slug):
		errs = append(errs, "Slug yalnızca küçük harf, rakam ve tire içerebilir.")
	}

	if strings.TrimSpace(d.Content) == "" {
		errs = append(errs, "İçerik zorunludur.")
	} else if utf8.RuneCountInString(d.Content) > maxContentLen {
		errs = append(errs, "İçerik çok uzun (en fazla 100.000 karakter).")
	}

	if !d.Language.Valid() {
		errs = append(errs, "Geçersiz dil seçimi.")
	}

	if d.ImageURL != "" {
		u, err := url.Parse(d.ImageURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, "Görsel adresi geçerli bir URL olmalıdır.")
		}
	}

	return errs
}
