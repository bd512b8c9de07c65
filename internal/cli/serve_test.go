package cli

import (
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"sync/atomic"
	"testing"
	"time"
)

func TestServeUntilShutdownDrainsInFlightRequests(t *testing.T) {
	var finished atomic.Bool

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		finished.Store(true)
		w.WriteHeader(http.StatusOK)
	})

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	server := &http.Server{Handler: handler}
	sig := make(chan os.Signal, 1)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	served := make(chan error, 1)
	go func() {
		served <- serveUntilShutdown(server, listener, sig, 5*time.Second, logger)
	}()

	// Fire a request, then signal shutdown while it is still in flight.
	reqDone := make(chan error, 1)
	go func() {
		resp, err := http.Get("http://" + listener.Addr().String() + "/")
		if resp != nil {
			resp.Body.Close()
		}
		reqDone <- err
	}()

	time.Sleep(50 * time.Millisecond)
	sig <- os.Interrupt

	select {
	case err := <-served:
		if err != nil {
			t.Fatalf("serveUntilShutdown returned error: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}

	// Cleanup only becomes safe once every handler has returned.
	if !finished.Load() {
		t.Fatal("serveUntilShutdown returned before the in-flight request finished")
	}
	if err := <-reqDone; err != nil {
		t.Errorf("in-flight request failed: %v", err)
	}
}
