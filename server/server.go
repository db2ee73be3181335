// Package server exposes a loaded campus network over HTTP.
//
//	GET /buildings          building names in file order
//	GET /route?from=&to=    shortest path as JSON
//	GET /healthz            liveness
//	GET /metrics            Prometheus exposition
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/render"
)

// Server answers route queries against one network. The network is shared by
// all requests and never modified.
type Server struct {
	network *campus.Network
	router  *httprouter.Router
	logger  logrus.FieldLogger
	search  []dijkstra.Option
}

// New builds the router for n. A nil logger discards output.
func New(n *campus.Network, logger logrus.FieldLogger, search ...dijkstra.Option) *Server {
	if logger == nil {
		discard := logrus.New()
		discard.Out = io.Discard
		logger = discard
	}
	s := &Server{
		network: n,
		logger:  logger.WithField("module", "server"),
		search:  search,
	}

	router := httprouter.New()
	router.GET("/buildings", s.middleware("buildings", s.buildings))
	router.GET("/route", s.middleware("route", s.route))
	router.GET("/healthz", s.middleware("healthz", s.healthz))
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())
	s.router = router

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listener)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		ReadHeaderTimeout: 2 * time.Second,
		Handler:           s,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(listener)
	}()
	s.logger.Infof("listening on %s", listener.Addr())

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

type buildingsResponse struct {
	Name      string   `json:"name"`
	Buildings []string `json:"buildings"`
}

type routeResponse struct {
	Status      string   `json:"status"`
	Source      string   `json:"source"`
	Destination string   `json:"destination"`
	Path        []string `json:"path"`
	Distance    int64    `json:"distance"`
	Text        string   `json:"text"`
}

// GET /buildings
func (s *Server) buildings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.responseJSON(w, r, http.StatusOK, buildingsResponse{
		Name:      s.network.Name,
		Buildings: s.network.Buildings(),
	})
}

// GET /route?from=&to=
func (s *Server) route(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	start := time.Now()
	res := dijkstra.ShortestPath(s.network.Graph, from, to, s.search...)
	routeLatency.Observe(time.Since(start).Seconds())
	routeQueries.WithLabelValues(res.Status.String()).Inc()

	s.logger.WithFields(logrus.Fields{
		"from":   from,
		"to":     to,
		"status": res.Status,
		"pops":   res.Stats.Pops,
	}).Debug("route query")

	path := res.Path
	if path == nil {
		path = []string{}
	}
	code := http.StatusOK
	if res.Status == dijkstra.StatusInvalidInput {
		code = http.StatusBadRequest
	}
	s.responseJSON(w, r, code, routeResponse{
		Status:      res.Status.String(),
		Source:      res.Source,
		Destination: res.Destination,
		Path:        path,
		Distance:    res.Distance,
		Text:        render.Text(res),
	})
}

// GET /healthz
func (s *Server) healthz(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok")
}

func (s *Server) middleware(name string, handler httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
		s.logger.Debugf("%s %s", r.Method, r.RequestURI)
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		handler(rec, r, params)
		httpRequests.WithLabelValues(name, strconv.Itoa(rec.code)).Inc()
	}
}

func (s *Server) responseJSON(w http.ResponseWriter, r *http.Request, code int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Errorf("%v %v: %v", r.Method, r.RequestURI, err)
		code = http.StatusInternalServerError
		data, _ = json.Marshal(map[string]any{"error": err.Error()})
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(data)
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}
