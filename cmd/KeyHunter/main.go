package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Jx2f/KeyHunter/internal/config"
	"github.com/Jx2f/KeyHunter/internal/core"
	"github.com/Jx2f/KeyHunter/pkg/logger"
)

func main() {
	Execute()
}

type exit struct {
	result *core.Result
	err    error
}

// runService runs the search until it ends or a signal asks it to stop.
// A stopped search still reports its result.
func runService(c *config.Config) (*core.Result, error) {
	s, err := core.NewService(c)
	if err != nil {
		return nil, err
	}

	exited := make(chan exit, 1)
	go func() {
		result, err := s.Start()
		exited <- exit{result, err}
	}()

	// Wait for a signal to quit:
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case e := <-exited:
		return e.result, e.err
	case <-sig:
		logger.Info().Msg("Signal received, stopping search")
		if err := s.Stop(); err != nil {
			logger.Error().Err(err).Msg("Search stop failed")
		}
	}
	e := <-exited
	return e.result, e.err
}
