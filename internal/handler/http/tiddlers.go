// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-wiki-sync/internal/app"
	"github.com/MKhiriev/go-wiki-sync/internal/logger"
	"github.com/MKhiriev/go-wiki-sync/internal/utils"
)

// maxTiddlerBody bounds an inbound tiddler payload.
const maxTiddlerBody = 16 << 20

// resolveCollection extracts the collection route parameter and opens the
// matching runtime. A nil return means the response was already written.
func (h *Handler) resolveCollection(w http.ResponseWriter, r *http.Request) *app.Collection {
	log := logger.FromRequest(r)

	name := chi.URLParam(r, "collection")
	col, err := h.collections.Collection(name)
	if err != nil {
		log.Err(err).Str("func", "*Handler.resolveCollection").Str("collection", name).
			Msg("error opening collection")
		http.Error(w, "error opening collection", statusFromError(err))
		return nil
	}

	return col
}

// titleParam decodes the escaped tiddler title route parameter.
func titleParam(r *http.Request) (string, error) {
	return url.PathUnescape(chi.URLParam(r, "title"))
}

func (h *Handler) getTiddler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	col := h.resolveCollection(w, r)
	if col == nil {
		return
	}

	title, err := titleParam(r)
	if err != nil {
		http.Error(w, "invalid tiddler title", http.StatusBadRequest)
		return
	}

	tiddler, err := col.Services.Editor.LoadTiddler(ctx, title)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getTiddler").Str("title", title).
			Msg("error loading tiddler")
		http.Error(w, "error loading tiddler", statusFromError(err))
		return
	}

	utils.WriteJSON(w, tiddler, http.StatusOK)
}

func (h *Handler) putTiddler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	col := h.resolveCollection(w, r)
	if col == nil {
		return
	}

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxTiddlerBody))
	if err != nil {
		http.Error(w, "error reading request body", http.StatusBadRequest)
		return
	}

	status, err := col.Services.Editor.SaveTiddler(ctx, payload)
	if err != nil {
		log.Err(err).Str("func", "*Handler.putTiddler").Msg("error saving tiddler")
		http.Error(w, "error saving tiddler", statusFromError(err))
		return
	}

	utils.WriteJSON(w, map[string]string{"status": string(status)}, http.StatusOK)
}

func (h *Handler) deleteTiddler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	col := h.resolveCollection(w, r)
	if col == nil {
		return
	}

	title, err := titleParam(r)
	if err != nil {
		http.Error(w, "invalid tiddler title", http.StatusBadRequest)
		return
	}

	if err = col.Services.Editor.DeleteTiddler(ctx, title); err != nil {
		log.Err(err).Str("func", "*Handler.deleteTiddler").Str("title", title).
			Msg("error deleting tiddler")
		http.Error(w, "error deleting tiddler", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// tiddlerVersions exposes the remote version history of one record, useful
// when inspecting how a conflict resolved.
func (h *Handler) tiddlerVersions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	col := h.resolveCollection(w, r)
	if col == nil {
		return
	}

	title, err := titleParam(r)
	if err != nil {
		http.Error(w, "invalid tiddler title", http.StatusBadRequest)
		return
	}

	versions, err := col.Services.Versions(ctx, title)
	if err != nil {
		log.Err(err).Str("func", "*Handler.tiddlerVersions").Str("title", title).
			Msg("error listing record versions")
		http.Error(w, "error listing record versions", statusFromError(err))
		return
	}

	utils.WriteJSON(w, map[string]any{"title": title, "versions": versions}, http.StatusOK)
}
