package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	brandsightgin "github.com/fwojciec/brandsight/gin"
)

// shutdownTimeout bounds graceful shutdown on interrupt.
const shutdownTimeout = 10 * time.Second

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	s := brandsightgin.NewServer(deps.Logger)
	s.Fetcher = deps.Fetcher
	s.Analyzer = deps.Analyzer
	s.Gateway = deps.Gateway
	s.Extractor = deps.Extractor
	s.Converter = deps.Converter
	s.Detector = deps.Detector
	s.Profiler = deps.Profiler

	if c.Addr != "" {
		s.Addr = c.Addr
	} else if deps.Config.Addr != "" {
		s.Addr = deps.Config.Addr
	}

	ctx, stop := signal.NotifyContext(deps.Ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- s.Open() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Close(shutdownCtx)
}
