package webscene

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	goutils "go.viam.com/utils"
)

const shutdownTimeout = 5 * time.Second

// ListenAndServe serves the scene's websocket endpoint on addr until ctx is
// canceled, then shuts the server down gracefully.
func (s *Scene) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	goutils.PanicCapturingGo(func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		goutils.UncheckedError(server.Shutdown(shutdownCtx))
	})

	s.logger.Infow("serving scene", "address", addr)
	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
