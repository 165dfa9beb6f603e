package apiserver

import (
	goctx "context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/netrixframework/proptest/context"
	"github.com/netrixframework/proptest/log"
	"github.com/netrixframework/proptest/types"
)

// DefaultAddr is the default address of the APIServer
const DefaultAddr = "0.0.0.0:7074"

// APIServer runs a HTTP server exposing the run reports recorded by the
// engine
type APIServer struct {
	router *gin.Engine
	ctx    *context.RootContext

	server *http.Server
	addr   string

	*types.BaseService
}

// NewAPIServer instantiates APIServer
func NewAPIServer(ctx *context.RootContext) *APIServer {
	addr := ctx.Config.APIServerAddr
	if addr == "" {
		addr = DefaultAddr
	}
	server := &APIServer{
		ctx:         ctx,
		addr:        addr,
		BaseService: types.NewBaseService("APIServer", ctx.Logger),
	}
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(server.logMiddleware)

	router.GET("/health", server.HandleHealth)
	router.GET("/runs", server.HandleRuns)
	router.GET("/runs/:name", server.HandleRun)
	router.DELETE("/runs", server.HandleRunsDelete)
	router.DELETE("/runs/:name", server.HandleRunDelete)

	server.router = router
	server.server = &http.Server{
		Addr:    server.addr,
		Handler: router,
	}

	return server
}

func (a *APIServer) logMiddleware(c *gin.Context) {
	start := time.Now()
	path := c.Request.URL.Path
	raw := c.Request.URL.RawQuery

	c.Next()

	end := time.Now()
	if raw != "" {
		path = path + "?" + raw
	}
	a.Logger.With(log.LogParams{
		"latency":     end.Sub(start).String(),
		"client_ip":   c.ClientIP(),
		"method":      c.Request.Method,
		"status_code": c.Writer.Status(),
		"path":        path,
	}).Debug("Handled request")
}

// Start starts the APIServer in the background. It returns no error, so
// APIServer does not satisfy types.Service
func (a *APIServer) Start() {
	a.StartRunning()
	go func() {
		a.Logger.With(log.LogParams{
			"addr": a.addr,
		}).Info("API server starting!")
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Logger.With(log.LogParams{
				"addr": a.addr,
				"err":  err,
			}).Fatal("API server closed!")
		}
	}()
}

// Stop shuts the APIServer down, waiting up to 5 seconds
func (a *APIServer) Stop() {
	a.StopRunning()
	ctx, cancel := goctx.WithTimeout(goctx.Background(), 5*time.Second)
	defer cancel()
	if err := a.server.Shutdown(ctx); err != nil {
		a.Logger.Error("API server forcefully shutdown")
	}
	a.Logger.Info("API server stopped!")
}
