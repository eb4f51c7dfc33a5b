// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"halkapress/internal/cache"
	"halkapress/internal/models"
	"halkapress/internal/render"
	"halkapress/internal/store"
)

// Public groups the reader-facing handlers. Every page is checked against
// the Valkey page cache first; on a miss the rendered HTML is stored before
// being written out.
type Public struct {
	renderer  *render.Renderer
	postStore *store.PostStore
	pageCache *cache.PageCache
}

// NewPublic creates a new Public handler group.
func NewPublic(renderer *render.Renderer, postStore *store.PostStore, pageCache *cache.PageCache) *Public {
	return &Public{
		renderer:  renderer,
		postStore: postStore,
		pageCache: pageCache,
	}
}

// ListPosts renders the published posts of one language, newest first.
// An unknown language code is a 404, not an empty listing.
func (p *Public) ListPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := models.Language(chi.URLParam(r, "lang"))
	if !lang.Valid() {
		p.notFound(w, models.DefaultLanguage)
		return
	}

	if cached, ok := p.pageCache.Get(ctx, cache.ListKey(lang)); ok {
		writeHTML(w, http.StatusOK, cached)
		return
	}

	posts, err := p.postStore.ListByLanguage(lang, true)
	if err != nil {
		slog.Error("list published posts failed", "language", lang, "error", err)
		p.notFound(w, lang)
		return
	}

	out, err := p.renderer.Public("list", &render.PageData{Data: map[string]any{
		"Lang":  lang,
		"Posts": posts,
	}})
	if err != nil {
		slog.Error("render post list failed", "language", lang, "error", err)
		p.notFound(w, lang)
		return
	}

	p.pageCache.Set(ctx, cache.ListKey(lang), out)
	writeHTML(w, http.StatusOK, out)
}

// PostDetail renders one published post. Missing posts, unpublished posts
// and backend errors all produce the same 404 page.
func (p *Public) PostDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := models.Language(chi.URLParam(r, "lang"))
	if !lang.Valid() {
		p.notFound(w, models.DefaultLanguage)
		return
	}
	slugParam := chi.URLParam(r, "slug")

	if cached, ok := p.pageCache.Get(ctx, cache.PostKey(lang, slugParam)); ok {
		writeHTML(w, http.StatusOK, cached)
		return
	}

	post, err := p.postStore.FindBySlugAndLanguage(slugParam, lang)
	if err != nil {
		slog.Error("find post failed", "language", lang, "slug", slugParam, "error", err)
		p.notFound(w, lang)
		return
	}
	if post == nil {
		p.notFound(w, lang)
		return
	}

	out, err := p.renderer.Public("post", &render.PageData{Data: map[string]any{
		"Post": post,
	}})
	if err != nil {
		slog.Error("render post failed", "language", lang, "slug", slugParam, "error", err)
		p.notFound(w, lang)
		return
	}

	p.pageCache.Set(ctx, cache.PostKey(lang, slugParam), out)
	writeHTML(w, http.StatusOK, out)
}

// notFound renders the shared 404 page with a link back to the listing.
func (p *Public) notFound(w http.ResponseWriter, lang models.Language) {
	out, err := p.renderer.Public("notfound", &render.PageData{Data: map[string]any{
		"Lang": lang,
	}})
	if err != nil {
		slog.Error("render 404 failed", "error", err)
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	writeHTML(w, http.StatusNotFound, out)
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}
