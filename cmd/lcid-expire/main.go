// Command lcid-expire marks every LCID_ISSUED intake whose LCID expiration
// date has passed as LCID_EXPIRED and records an EXPIRE_LCID action for each.
// It is intended to be invoked by an external cron job, not as an in-process
// goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/easi-app/easi-server/internal/adapter/postgres"
	"github.com/easi-app/easi-server/internal/adapter/postgres/intake"
	"github.com/easi-app/easi-server/internal/app"
	"github.com/easi-app/easi-server/internal/config"
	"github.com/easi-app/easi-server/internal/domain"
)

const actorName = "EASi System"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	now := time.Now().UTC()
	expired, err := expire(ctx, postgres.NewTxManager(pool), intake.New(pool), now)
	if err != nil {
		logger.Error("lcid expiration failed",
			slog.String("error", err.Error()),
			slog.Time("now", now),
		)
		os.Exit(1)
	}

	logger.Info("lcid expiration completed",
		slog.Int("expired", expired),
		slog.Time("now", now),
	)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type lcidRepo interface {
	ExpireLCIDs(ctx context.Context, now time.Time) ([]uuid.UUID, error)
	CreateActions(ctx context.Context, actions []domain.Action) error
}

// expire flips every overdue LCID to expired and records one EXPIRE_LCID
// action per intake, all in one transaction. It returns the number of
// intakes expired.
func expire(ctx context.Context, tx txRunner, repo lcidRepo, now time.Time) (int, error) {
	var expired int
	err := tx.RunInTx(ctx, func(ctx context.Context) error {
		ids, err := repo.ExpireLCIDs(ctx, now)
		if err != nil {
			return fmt.Errorf("expire lcids: %w", err)
		}
		if len(ids) == 0 {
			return nil
		}

		actions := make([]domain.Action, 0, len(ids))
		for _, id := range ids {
			actions = append(actions, domain.Action{
				ID:             uuid.New(),
				SystemIntakeID: id,
				Type:           domain.ActionTypeExpireLCID,
				ActorName:      actorName,
				CreatedAt:      now,
			})
		}
		if err := repo.CreateActions(ctx, actions); err != nil {
			return fmt.Errorf("record expire actions: %w", err)
		}
		expired = len(ids)
		return nil
	})
	return expired, err
}
