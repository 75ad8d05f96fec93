package main

import (
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// adminServer exposes /metrics and /healthz on a separate listener from
// the one ehttpfeed parses HTTP traffic on, so scraping it never
// competes with the thing being measured.
type adminServer struct {
	cfg    AdminConfig
	log    *zap.SugaredLogger
	router *mux.Router
	server *http.Server
}

func newAdminServer(cfg AdminConfig, log *zap.SugaredLogger) *adminServer {
	router := mux.NewRouter()
	s := &adminServer{
		cfg:    cfg,
		log:    log,
		router: router,
		server: &http.Server{Handler: router},
	}
	router.Methods(http.MethodGet).Path("/metrics").Handler(promhttp.Handler())
	router.Methods(http.MethodGet).Path("/healthz").HandlerFunc(s.handleHealthz)
	return s
}

func (s *adminServer) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *adminServer) ListenAndServe() error {
	l, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return err
	}
	s.log.Infof("admin server listening on %s", s.cfg.Address)
	return s.server.Serve(l)
}

func (s *adminServer) Close() error {
	return s.server.Close()
}
