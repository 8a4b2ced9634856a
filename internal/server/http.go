package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/beichen-observer/internal/app"
	"github.com/MKhiriev/beichen-observer/internal/config"
	"github.com/MKhiriev/beichen-observer/internal/logger"
)

var timeoutBody = fmt.Sprintf(`{"success":false,"error":%q}`, app.MsgRequestTimedOut)

type httpServer struct {
	server          *http.Server
	shutdownTimeout time.Duration

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	var h http.Handler = handler
	if cfg.RequestTimeout > 0 {
		h = http.TimeoutHandler(handler, cfg.RequestTimeout, timeoutBody)
	}

	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           h,
			ReadHeaderTimeout: 10 * time.Second,
		},
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
}

// listen binds the configured address. Binding separately from serving lets
// the caller report the actual address when the port is 0.
func (h *httpServer) listen() (net.Listener, error) {
	return net.Listen("tcp", h.server.Addr)
}

func (h *httpServer) serve(listener net.Listener) {
	h.logger.Info().Str("address", listener.Addr().String()).Msg("HTTP server is listening")
	if err := h.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Error().Err(err).Msg("HTTP server Serve")
	}
}

func (h *httpServer) Shutdown() {
	ctx := context.Background()
	if h.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.shutdownTimeout)
		defer cancel()
	}

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Error().Err(err).Msg("HTTP server Shutdown")
	}
}
