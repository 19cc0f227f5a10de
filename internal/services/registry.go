package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/CrossChainLabs-FIL/filmarket-registry/consumer"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/auth"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/observability/metrics"
)

// InitRegistry stores the calling account as the registry owner. It
// succeeds at most once for the lifetime of the database; any later call
// fails with a duplicate key error.
func (s *Service) InitRegistry(ctx context.Context) error {
	account := auth.Account(ctx)
	if account == "" {
		return fmt.Errorf("caller account required to initialize the registry")
	}

	if err := s.db.InitRegistryOwner(ctx, account); err != nil {
		return fmt.Errorf("failed to initialize registry: %w", err)
	}

	log.Ctx(ctx).Info().Str("owner", account).Msg("Registry initialized")

	return nil
}

// authorizeOwner reports whether the calling account matches the stored
// registry owner. A mismatch is not an error: the mutation is skipped,
// the caller sees success and only the log and metrics record the
// rejected attempt.
func (s *Service) authorizeOwner(ctx context.Context, op string) (bool, error) {
	owner, err := s.db.GetRegistryOwner(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get registry owner: %w", err)
	}

	account := auth.Account(ctx)
	if !auth.IsOwner(account, owner) {
		log.Ctx(ctx).Warn().
			Str("account", account).
			Str("op", op).
			Msg("Skipping mutation from non-owner account")
		metrics.IncUnauthorizedMutation(op)
		return false, nil
	}

	return true, nil
}

func (s *Service) publishRegistryEvent(ctx context.Context, eventType consumer.EventType, count int) {
	if s.eventPublisher == nil {
		return
	}

	event := &consumer.RegistryEvent{
		Type:      eventType,
		Account:   auth.Account(ctx),
		Count:     count,
		Timestamp: time.Now().Unix(),
	}

	if err := s.eventPublisher.PublishRegistryEvent(ctx, event); err != nil {
		log.Ctx(ctx).Error().
			Err(err).
			Str("type", eventType.String()).
			Msg("Failed to publish registry event")
		metrics.RecordQueueSendError()
	}
}
