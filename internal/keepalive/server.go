package keepalive

import (
	"context"
	"log"
	"net/http"
)

// Run starts the liveness HTTP responder used by hosting-platform uptime
// checks. It has no interaction with bot state. Blocks until the server
// exits or ctx is cancelled; run in a goroutine.
func Run(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", Handler)

	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		log.Println("[INFO] Shutting down keepalive server...")
		srv.Shutdown(context.Background()) //nolint:errcheck
	}()

	log.Printf("[INFO] Keepalive server listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		// Log the error but do NOT call log.Fatal — that would kill the whole process.
		log.Printf("[ERR] Keepalive server exited: %v", err)
	}
}

func Handler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("I'm alive!")) //nolint:errcheck
}
