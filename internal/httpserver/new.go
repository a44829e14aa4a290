package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"nl-task-parser/internal/middleware"
	"nl-task-parser/internal/parser"
	"nl-task-parser/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Middleware
	cors middleware.CORSConfig

	// Metrics
	gatherer prometheus.Gatherer

	// Parser domain
	parserUC parser.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Host        string
	Port        int
	Mode        string
	Environment string

	CORS middleware.CORSConfig

	// Gatherer backs GET /metrics; nil disables the route.
	Gatherer prometheus.Gatherer

	ParserUseCase parser.UseCase
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		cors:        cfg.CORS,
		gatherer:    cfg.Gatherer,
		parserUC:    cfg.ParserUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.parserUC == nil {
		return errors.New("parser usecase is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
