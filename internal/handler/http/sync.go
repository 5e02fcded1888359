package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-wiki-sync/internal/logger"
	"github.com/MKhiriev/go-wiki-sync/internal/utils"
)

// changesRequest is what the editor posts to learn what changed: the
// cursor it saw last (TiddlyWiki or ISO timestamp, empty for a fresh
// boot) and the titles it currently displays.
type changesRequest struct {
	Cursor     string   `json:"cursor"`
	LiveTitles []string `json:"live_titles"`
}

func (h *Handler) listChanges(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	col := h.resolveCollection(w, r)
	if col == nil {
		return
	}

	var req changesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.listChanges").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	changes, err := col.Services.Editor.ListChangesSince(ctx, req.Cursor, req.LiveTitles)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listChanges").Msg("error listing changes")
		http.Error(w, "error listing changes", statusFromError(err))
		return
	}

	utils.WriteJSON(w, changes, http.StatusOK)
}

// syncStatus reports the collection's sync state. With ?wait=ready the
// response is held back until the first sync cycle has completed, so an
// editor can block on it at boot instead of polling.
func (h *Handler) syncStatus(w http.ResponseWriter, r *http.Request) {
	col := h.resolveCollection(w, r)
	if col == nil {
		return
	}

	if r.URL.Query().Get("wait") == "ready" {
		select {
		case <-col.Services.Job.Ready():
		case <-r.Context().Done():
			http.Error(w, "request cancelled before sync became ready", http.StatusRequestTimeout)
			return
		}
	}

	utils.WriteJSON(w, col.Services.Editor.Status(r.Context()), http.StatusOK)
}

// triggerSync requests an immediate sync cycle and reports the status as
// of the request; the cycle itself runs in the background.
func (h *Handler) triggerSync(w http.ResponseWriter, r *http.Request) {
	col := h.resolveCollection(w, r)
	if col == nil {
		return
	}

	col.Services.Job.TriggerSync()
	utils.WriteJSON(w, col.Services.Editor.Status(r.Context()), http.StatusAccepted)
}

// serverStatus answers the editor's availability check.
func (h *Handler) serverStatus(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]any{
		"username": "",
		"space":    map[string]string{"recipe": "default"},
		"version":  h.version,
	}, http.StatusOK)
}

func (h *Handler) appVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"version": h.version}, http.StatusOK)
}
