package publisher

import (
	"context"
	"fmt"
	"time"

	"boxscore/internal/config"
	"boxscore/internal/constants"
	"boxscore/internal/domain"
	"boxscore/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// StreamPublisher appends every refreshed feed to a per-sport Redis stream.
type StreamPublisher struct {
	client redis.Cmdable
}

func NewStreamPublisher(client redis.Cmdable) *StreamPublisher {
	return &StreamPublisher{client: client}
}

func (p *StreamPublisher) Refreshed(ctx context.Context, record domain.CacheRecord) error {
	return p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamKey(record.Key),
		MaxLen: constants.RefreshStreamMaxLen,
		Approx: true,
		Values: map[string]interface{}{
			"sport":     string(record.Key),
			"stored_at": record.StoredAt.UTC().Format(time.RFC3339Nano),
			"data":      string(record.Data),
		},
	}).Err()
}

func StreamKey(sport domain.Sport) string {
	return constants.RefreshStreamPrefix + string(sport)
}

// Nop drops refresh notifications; used when no Redis URL is configured.
type Nop struct{}

func (Nop) Refreshed(context.Context, domain.CacheRecord) error { return nil }

// NewNotifier connects to Redis when REDIS_URL is set and registers the client
// for shutdown. Without a URL it returns Nop.
func NewNotifier(lc fx.Lifecycle, cfg *config.Config, logger zerolog.Logger) (service.RefreshNotifier, error) {
	if cfg.RedisURL == "" {
		logger.Info().Msg("REDIS_URL not set, refresh publishing disabled")
		return Nop{}, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	client := redis.NewClient(opts)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("failed to connect to Redis: %w", err)
			}
			logger.Info().Str("addr", opts.Addr).Msg("connected to Redis")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return NewStreamPublisher(client), nil
}
