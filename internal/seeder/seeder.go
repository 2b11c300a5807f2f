// Package seeder bulk-replaces the stored leads with a generated batch.
package seeder

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/jocross/leadboard/internal/model"
	"github.com/jocross/leadboard/internal/store"
)

// LeadWriter is the slice of the store the seeder needs.
type LeadWriter interface {
	DeleteAll(ctx context.Context) error
	InsertLeads(ctx context.Context, leads []model.Lead) error
}

// Config tunes the reseed write path.
type Config struct {
	// ChunkSize caps leads per insert call. Values outside
	// (0, store.MaxInsertBatch] fall back to store.MaxInsertBatch.
	ChunkSize int
	// RatePerSec paces insert calls; 0 disables pacing.
	RatePerSec float64
}

// Seeder replaces every stored lead with a new batch, inserting in
// strictly ordered chunks. The operation is not atomic: a failure partway
// through leaves the store partially seeded and the error is propagated
// for the caller to report.
type Seeder struct {
	store   LeadWriter
	chunk   int
	limiter *rate.Limiter
}

// New creates a Seeder.
func New(w LeadWriter, cfg Config) *Seeder {
	chunk := cfg.ChunkSize
	if chunk <= 0 || chunk > store.MaxInsertBatch {
		chunk = store.MaxInsertBatch
	}
	var limiter *rate.Limiter
	if cfg.RatePerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSec), 1)
	}
	return &Seeder{store: w, chunk: chunk, limiter: limiter}
}

// Reseed deletes every existing lead, then inserts the batch in chunks.
// Chunk N+1 is only sent after chunk N succeeds; the first failure aborts
// the loop.
func (s *Seeder) Reseed(ctx context.Context, leads []model.Lead) error {
	batchID := uuid.New().String()
	start := time.Now()

	zap.L().Info("seeder: reseed started",
		zap.String("batch_id", batchID),
		zap.Int("leads", len(leads)),
		zap.Int("chunk_size", s.chunk),
	)

	if err := s.store.DeleteAll(ctx); err != nil {
		return eris.Wrap(err, "seeder: delete existing leads")
	}

	chunks := 0
	for off := 0; off < len(leads); off += s.chunk {
		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				return eris.Wrap(err, "seeder: rate limit wait")
			}
		}

		end := off + s.chunk
		if end > len(leads) {
			end = len(leads)
		}
		if err := s.store.InsertLeads(ctx, leads[off:end]); err != nil {
			return eris.Wrapf(err, "seeder: insert chunk %d", chunks+1)
		}
		chunks++
	}

	zap.L().Info("seeder: reseed complete",
		zap.String("batch_id", batchID),
		zap.Int("leads", len(leads)),
		zap.Int("chunks", chunks),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}
