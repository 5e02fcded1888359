package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-wiki-sync/internal/app"
	"github.com/MKhiriev/go-wiki-sync/internal/remote"
	"github.com/MKhiriev/go-wiki-sync/internal/service"
	"github.com/MKhiriev/go-wiki-sync/internal/store"
)

var errorStatusMap = map[error]int{
	app.ErrInvalidCollectionName: http.StatusBadRequest,

	service.ErrInvalidPayload:      http.StatusBadRequest,
	service.ErrSyncDisabled:        http.StatusConflict,
	service.ErrCorruptRemoteRecord: http.StatusBadGateway,

	store.ErrTiddlerNotFound:    http.StatusNotFound,
	store.ErrQueueEntryNotFound: http.StatusNotFound,
	store.ErrNoCachedIndex:      http.StatusNotFound,
	store.ErrCorruptPayload:     http.StatusInternalServerError,

	remote.ErrObjectNotFound:         http.StatusNotFound,
	remote.ErrRemoteUnavailable:      http.StatusBadGateway,
	remote.ErrVersionMismatch:        http.StatusConflict,
	remote.ErrObjectExists:           http.StatusConflict,
	remote.ErrConcurrentModification: http.StatusConflict,
	remote.ErrCorruptIndex:           http.StatusBadGateway,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
