package stream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/algotrace/core"
	"github.com/katalvlaran/algotrace/dp"
	"github.com/katalvlaran/algotrace/internal/scenario"
	"github.com/katalvlaran/algotrace/trace"
)

// Message types sent to websocket clients.
const (
	TypeStep   = "step"
	TypeResult = "result"
	TypeError  = "error"
)

// Message is one websocket frame sent by the server.
type Message struct {
	Type     string             `json:"type"`
	Step     *trace.Step        `json:"step,omitempty"`
	Envelope *scenario.Envelope `json:"envelope,omitempty"`
	Error    string             `json:"error,omitempty"`
}

// Catalog is the body of GET /engines.
type Catalog struct {
	Engines    []string      `json:"engines"`
	Graphs     []string      `json:"graphs"`
	Items      []string      `json:"items"`
	Strategies []dp.Strategy `json:"strategies"`
}

// Config configures a Server.
type Config struct {
	// Delay paces the stream: the server waits this long after every step.
	Delay time.Duration

	// MaxSteps bounds every run (0 = unlimited).
	MaxSteps int

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Registry receives the server metrics. A fresh registry is used if nil.
	Registry *prometheus.Registry
}

// Server is an http.Handler streaming engine runs.
type Server struct {
	cfg      Config
	log      *slog.Logger
	router   *mux.Router
	upgrader websocket.Upgrader

	runsStarted   *prometheus.CounterVec
	runsFailed    *prometheus.CounterVec
	stepsStreamed prometheus.Counter
}

// NewServer builds a Server and registers its routes and metrics.
func NewServer(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}
	factory := promauto.With(cfg.Registry)

	s := &Server{
		cfg:    cfg,
		log:    cfg.Logger.With(slog.String("component", "stream")),
		router: mux.NewRouter(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		runsStarted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "algotrace",
			Name:      "runs_started_total",
			Help:      "Total number of streamed engine runs",
		}, []string{"engine"}),
		runsFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "algotrace",
			Name:      "runs_failed_total",
			Help:      "Total number of streamed runs that ended in an error",
		}, []string{"engine"}),
		stepsStreamed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "algotrace",
			Name:      "steps_streamed_total",
			Help:      "Total number of steps sent to websocket clients",
		}),
	}

	s.router.HandleFunc("/engines", s.handleEngines).Methods(http.MethodGet)
	s.router.HandleFunc("/ws/{engine}", s.handleStream).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleEngines(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(Catalog{
		Engines:    scenario.Engines(),
		Graphs:     core.PresetNames(),
		Items:      dp.ItemPresetNames(),
		Strategies: dp.Strategies(),
	})
	if err != nil {
		s.log.Warn("write catalog", slog.String("error", err.Error()))
	}
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	engine := mux.Vars(r)["engine"]

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		s.log.Debug("upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer ws.Close()

	log := s.log.With(slog.String("engine", engine), slog.String("remote", r.RemoteAddr))

	_, body, err := ws.ReadMessage()
	if err != nil {
		log.Debug("client left before sending a scenario", slog.String("error", err.Error()))
		return
	}

	c := &conn{ws: ws}
	sc, err := decodeScenario(body, engine)
	if err != nil {
		s.runsFailed.WithLabelValues(engine).Inc()
		c.send(Message{Type: TypeError, Error: err.Error()})
		c.close(websocket.CloseUnsupportedData, "invalid scenario")
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go func() {
		// Drain control frames; a read error means the client is gone.
		defer cancel()
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ctx, span := otel.Tracer("algotrace/stream").Start(ctx, "stream.Run",
		oteltrace.WithAttributes(
			attribute.String("engine", engine),
			attribute.String("scenario", sc.Name),
		))
	defer span.End()

	s.runsStarted.WithLabelValues(engine).Inc()
	log.Info("run started", slog.String("scenario", sc.Name))

	env, err := sc.Run(ctx,
		trace.WithDiscard(),
		trace.WithMaxSteps(s.cfg.MaxSteps),
		trace.WithOnStep(func(step trace.Step) error {
			if err := c.send(Message{Type: TypeStep, Step: &step}); err != nil {
				return err
			}
			s.stepsStreamed.Inc()
			return nil
		}),
		trace.Pace(ctx, s.cfg.Delay),
	)
	if err != nil {
		s.runsFailed.WithLabelValues(engine).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, context.Canceled) {
			log.Info("run cancelled")
			return
		}
		log.Warn("run failed", slog.String("error", err.Error()))
		c.send(Message{Type: TypeError, Error: err.Error()})
		c.close(websocket.CloseNormalClosure, "run failed")
		return
	}

	span.SetAttributes(attribute.Int("step_count", env.StepCount))
	log.Info("run finished", slog.String("run_id", env.RunID), slog.Int("steps", env.StepCount))
	c.send(Message{Type: TypeResult, Envelope: env})
	c.close(websocket.CloseNormalClosure, "done")
}

// decodeScenario reads a JSON scenario for engine. The engine comes from the
// route; a different engine in the body is rejected.
func decodeScenario(body []byte, engine string) (*scenario.Scenario, error) {
	var sc scenario.Scenario
	if len(bytes.TrimSpace(body)) > 0 {
		dec := json.NewDecoder(bytes.NewReader(body))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&sc); err != nil {
			return nil, err
		}
	}
	if sc.Engine != "" && sc.Engine != engine {
		return nil, errors.New("scenario engine " + sc.Engine + " does not match route " + engine)
	}
	sc.Engine = engine
	return &sc, nil
}

// conn serialises writes: concurrent engines call the step sink from several
// goroutines and a websocket allows only one writer at a time.
type conn struct {
	mu sync.Mutex
	ws *websocket.Conn
}

func (c *conn) send(m Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteJSON(m)
}

func (c *conn) close(code int, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.ws.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(code, text), time.Now().Add(time.Second))
}
