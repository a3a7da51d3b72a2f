package core

import (
	"github.com/Jx2f/KeyHunter/internal/config"
)

type Service struct {
	config *config.Config
	forcer *BruteForcer
}

func NewService(c *config.Config) (*Service, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	forcer, err := NewBruteForcer(c.Search)
	if err != nil {
		return nil, err
	}
	return &Service{config: c, forcer: forcer}, nil
}

// Start runs the configured search and blocks until it ends.
func (s *Service) Start() (*Result, error) {
	req, err := NewRequest(s.config.Search)
	if err != nil {
		return nil, err
	}
	return s.forcer.BruteForce(req)
}

func (s *Service) Stop() error {
	s.forcer.Stop()
	return nil
}
