package poller

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Poller runs a poll function at a fixed interval until the context is
// cancelled or Stop is called. The first poll runs immediately so a fresh
// deployment does not wait a full interval for its first market cycle.
type Poller struct {
	interval time.Duration
	quit     chan struct{}
	pollFn   func(ctx context.Context) error
}

func NewPoller(interval time.Duration, pollFn func(ctx context.Context) error) *Poller {
	return &Poller{
		interval: interval,
		quit:     make(chan struct{}),
		pollFn:   pollFn,
	}
}

func (p *Poller) Start(ctx context.Context) {
	log.Info().Msgf("Starting poller with interval %s", p.interval)

	p.poll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.poll(ctx)
		case <-ctx.Done():
			log.Info().Msg("Poller stopped due to context cancellation")
			return
		case <-p.quit:
			log.Info().Msg("Poller stopped")
			return
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	if err := p.pollFn(ctx); err != nil {
		log.Error().Err(err).Msg("Error polling")
	}
}

func (p *Poller) Stop() {
	close(p.quit)
}
