package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aceitestapia/fueltrack-backend/api/responses"
	"github.com/aceitestapia/fueltrack-backend/internal/events"
	pkgerrors "github.com/aceitestapia/fueltrack-backend/pkg/errors"
	"github.com/aceitestapia/fueltrack-backend/pkg/logger"
)

const sseKeepAliveInterval = 25 * time.Second

type changeFeedHub interface {
	Subscribe() (<-chan events.Signal, func())
}

// ChangeFeed streams refetch signals to the client over SSE. Each signal
// means inventory data changed since the last one; the client responds by
// refetching the lists it displays.
func ChangeFeed(hub changeFeedHub, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if hub == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "change feed unavailable"))
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "streaming unsupported"))
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)

		fmt.Fprint(w, "event: connected\ndata: {}\n\n")
		flusher.Flush()

		signals, cancel := hub.Subscribe()
		defer cancel()

		keepAlive := time.NewTicker(sseKeepAliveInterval)
		defer keepAlive.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case <-keepAlive.C:
				fmt.Fprint(w, ": keep-alive\n\n")
				flusher.Flush()
			case signal, ok := <-signals:
				if !ok {
					return
				}
				payload, err := json.Marshal(signal)
				if err != nil {
					if logg != nil {
						logg.Error(r.Context(), "encode refetch signal", err)
					}
					continue
				}
				fmt.Fprintf(w, "event: change\ndata: %s\n\n", payload)
				flusher.Flush()
			}
		}
	}
}
