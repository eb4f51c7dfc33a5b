// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the blog. Handlers are
// grouped by concern (admin, public, auth) and receive their dependencies
// through the handler struct.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"halkapress/internal/cache"
	"halkapress/internal/models"
	"halkapress/internal/render"
	"halkapress/internal/slug"
	"halkapress/internal/store"
)

// Admin groups the post management handlers and their dependencies.
type Admin struct {
	renderer  *render.Renderer
	postStore *store.PostStore
	pageCache *cache.PageCache
}

// NewAdmin creates a new Admin handler group.
func NewAdmin(renderer *render.Renderer, postStore *store.PostStore, pageCache *cache.PageCache) *Admin {
	return &Admin{
		renderer:  renderer,
		postStore: postStore,
		pageCache: pageCache,
	}
}

// Dashboard renders the post listing for the admin panel, newest first.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	a.renderDashboard(w, r, "")
}

// renderDashboard shows the post listing, optionally with an error notice
// above the table (used after a failed delete).
func (a *Admin) renderDashboard(w http.ResponseWriter, r *http.Request, errMsg string) {
	posts, err := a.postStore.ListAll()
	if err != nil {
		slog.Error("list posts failed", "error", err)
	}
	count, err := a.postStore.Count()
	if err != nil {
		slog.Error("count posts failed", "error", err)
	}

	data := map[string]any{
		"Posts": posts,
		"Count": count,
	}
	if errMsg != "" {
		data["Error"] = errMsg
	}

	a.renderer.Page(w, r, "dashboard", &render.PageData{
		Title:   "Yazılar",
		Section: "dashboard",
		Data:    data,
	})
}

// PostNew renders the empty create form.
func (a *Admin) PostNew(w http.ResponseWriter, r *http.Request) {
	a.renderForm(w, r, PostDraft{Language: models.DefaultLanguage}, true, "/admin/posts/new", nil)
}

// PostCreate validates the form and inserts a new post. New posts are
// published immediately; there is no separate publish step in the UI.
func (a *Admin) PostCreate(w http.ResponseWriter, r *http.Request) {
	draft := draftFromForm(r)
	if draft.Slug == "" {
		draft.Slug = slug.Generate(draft.Title)
	}

	if errs := validatePost(draft); len(errs) > 0 {
		a.renderForm(w, r, draft, true, "/admin/posts/new", errs)
		return
	}

	post := &models.Post{
		Title:       strings.TrimSpace(draft.Title),
		Slug:        draft.Slug,
		Content:     draft.Content,
		Language:    draft.Language,
		ImageURL:    draft.ImageURL,
		IsPublished: true,
	}

	created, err := a.postStore.Create(post)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateSlug) {
			a.renderForm(w, r, draft, true, "/admin/posts/new",
				[]string{"Bu dilde aynı slug ile bir yazı zaten var."})
			return
		}
		slog.Error("create post failed", "error", err)
		a.renderForm(w, r, draft, true, "/admin/posts/new",
			[]string{"Yazı kaydedilemedi. Lütfen tekrar deneyin."})
		return
	}

	a.pageCache.InvalidatePost(r.Context(), created.Language, created.Slug)
	slog.Info("post created", "id", created.ID, "slug", created.Slug, "language", created.Language)
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

// PostEdit renders the edit form pre-filled from the stored post.
// Unknown ids go back to the dashboard instead of erroring.
func (a *Admin) PostEdit(w http.ResponseWriter, r *http.Request) {
	post := a.lookupPost(w, r)
	if post == nil {
		return
	}

	draft := PostDraft{
		Title:    post.Title,
		Slug:     post.Slug,
		Content:  post.Content,
		Language: post.Language,
		ImageURL: post.ImageURL,
	}
	a.renderForm(w, r, draft, false, "/admin/posts/"+strconv.FormatInt(post.ID, 10), nil)
}

// PostUpdate validates the form and updates the five editable fields of an
// existing post. Publication state and the creation timestamp are untouched.
func (a *Admin) PostUpdate(w http.ResponseWriter, r *http.Request) {
	post := a.lookupPost(w, r)
	if post == nil {
		return
	}
	action := "/admin/posts/" + strconv.FormatInt(post.ID, 10)

	draft := draftFromForm(r)
	if draft.Slug == "" {
		draft.Slug = slug.Generate(draft.Title)
	}

	if errs := validatePost(draft); len(errs) > 0 {
		a.renderForm(w, r, draft, false, action, errs)
		return
	}

	// Remember the old address so its cached page can be dropped even when
	// the slug or language changes.
	oldLang, oldSlug := post.Language, post.Slug

	post.Title = strings.TrimSpace(draft.Title)
	post.Slug = draft.Slug
	post.Content = draft.Content
	post.Language = draft.Language
	post.ImageURL = draft.ImageURL

	if err := a.postStore.Update(post); err != nil {
		if errors.Is(err, store.ErrDuplicateSlug) {
			a.renderForm(w, r, draft, false, action,
				[]string{"Bu dilde aynı slug ile bir yazı zaten var."})
			return
		}
		slog.Error("update post failed", "id", post.ID, "error", err)
		a.renderForm(w, r, draft, false, action,
			[]string{"Yazı kaydedilemedi. Lütfen tekrar deneyin."})
		return
	}

	a.pageCache.InvalidatePost(r.Context(), oldLang, oldSlug)
	a.pageCache.InvalidatePost(r.Context(), post.Language, post.Slug)
	slog.Info("post updated", "id", post.ID, "slug", post.Slug, "language", post.Language)
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

// PostDelete removes a post. A failed delete leaves the listing unchanged
// and surfaces the backend's message above it.
func (a *Admin) PostDelete(w http.ResponseWriter, r *http.Request) {
	post := a.lookupPost(w, r)
	if post == nil {
		return
	}

	if err := a.postStore.Delete(post.ID); err != nil {
		slog.Error("delete post failed", "id", post.ID, "error", err)
		a.renderDashboard(w, r, "Yazı silinemedi: "+err.Error())
		return
	}

	a.pageCache.InvalidatePost(r.Context(), post.Language, post.Slug)
	slog.Info("post deleted", "id", post.ID, "slug", post.Slug)
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

// lookupPost resolves the {id} URL parameter to a stored post. On a bad or
// unknown id it redirects to the dashboard and returns nil.
func (a *Admin) lookupPost(w http.ResponseWriter, r *http.Request) *models.Post {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
		return nil
	}

	post, err := a.postStore.FindByID(id)
	if err != nil {
		slog.Error("post lookup failed", "id", id, "error", err)
	}
	if post == nil {
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
		return nil
	}
	return post
}

// renderForm shows the create/edit form with the given draft state.
func (a *Admin) renderForm(w http.ResponseWriter, r *http.Request, draft PostDraft, isNew bool, action string, errs []string) {
	title := "Yazıyı Düzenle"
	section := "posts"
	if isNew {
		title = "Yeni Yazı"
		section = "new"
	}

	a.renderer.Page(w, r, "post_form", &render.PageData{
		Title:   title,
		Section: section,
		Data: map[string]any{
			"Form":      draft,
			"IsNew":     isNew,
			"Action":    action,
			"Languages": models.Languages,
			"Errors":    errs,
		},
	})
}

// draftFromForm reads the post form fields into a draft.
func draftFromForm(r *http.Request) PostDraft {
	return PostDraft{
		Title:    r.FormValue("title"),
		Slug:     strings.TrimSpace(r.FormValue("slug")),
		Content:  r.FormValue("content"),
		Language: models.Language(r.FormValue("language")),
		ImageURL: strings.TrimSpace(r.FormValue("image_url")),
	}
}
