// Copyright © 2026 antareswinjobs contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package driver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jorritvm/antareswinjobs/common"
	"github.com/jorritvm/antareswinjobs/jobqueue"
)

// Server wraps the driver's HTTP surface around a JobQueue.
type Server struct {
	cfg    common.DriverConfig
	queue  *jobqueue.JobQueue
	logger common.ILogger

	httpServer *http.Server
}

// NewServer builds a Server listening on cfg.ListenAddress. Call Start to
// begin serving.
func NewServer(cfg common.DriverConfig, queue *jobqueue.JobQueue, logger common.ILogger) *Server {
	if logger == nil {
		logger = common.NopLogger{}
	}
	s := &Server{cfg: cfg, queue: queue, logger: logger}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	s.httpServer = &http.Server{
		Addr:         cfg.ListenAddress,
		Handler:      s.loggingMiddleware(mux),
		ReadTimeout:  5 * time.Minute, // bounds the whole request body; large study archives can take a while to upload
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}
	return s
}

// Handler exposes the configured http.Handler, mainly for tests that want
// to drive the server with httptest without binding a socket.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves HTTP until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.logger.Log(common.ELogLevel.Info(), fmt.Sprintf("driver listening on %s", s.cfg.ListenAddress))
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Log(common.ELogLevel.Debug(), fmt.Sprintf("%s %s %s", r.Method, r.URL.Path, time.Since(start)))
	})
}
