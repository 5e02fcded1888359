package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/status", h.serverStatus)
	router.Get("/api/version", h.appVersion)

	router.Route("/wiki/{collection}", func(r chi.Router) {
		r.Get("/tiddlers/{title}", h.getTiddler)
		r.Put("/tiddlers/{title}", h.putTiddler)
		r.Delete("/tiddlers/{title}", h.deleteTiddler)
		r.Get("/tiddlers/{title}/versions", h.tiddlerVersions)

		r.Post("/changes", h.listChanges)

		r.Get("/sync/status", h.syncStatus)
		r.Post("/sync/trigger", h.triggerSync)
	})

	return router
}
