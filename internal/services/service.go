package services

import (
	"context"

	"github.com/CrossChainLabs-FIL/filmarket-registry/consumer"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/clients/marketclient"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/config"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/db"
)

type Service struct {
	cfg            *config.Config
	db             db.DbInterface
	market         marketclient.MarketInterface
	eventPublisher consumer.EventPublisher
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	market marketclient.MarketInterface,
	eventPublisher consumer.EventPublisher,
) *Service {
	return &Service{
		cfg:            cfg,
		db:             db,
		market:         market,
		eventPublisher: eventPublisher,
	}
}

func (s *Service) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
