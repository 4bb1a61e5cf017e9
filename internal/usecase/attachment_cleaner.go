package usecase

import (
	"context"
	"sync"
	"time"

	"uavops-service/internal/domain/repository"
	"uavops-service/pkg/logger"
	"uavops-service/pkg/metrics"
)

const cleanupTimeout = 30 * time.Second

// attachmentCleaner removes stale attachments after a record stops
// referencing them. Cleanup is best-effort and runs detached from the
// request: a failure is logged and counted, never returned, and never blocks
// the primary entity write. Drain lets shutdown (and tests) wait for
// in-flight cleanups.
type attachmentCleaner struct {
	attachments repository.AttachmentRepository
	metrics     *metrics.Metrics
	logger      logger.Logger
	wg          sync.WaitGroup
}

func newAttachmentCleaner(attachments repository.AttachmentRepository, m *metrics.Metrics, logger logger.Logger) *attachmentCleaner {
	return &attachmentCleaner{
		attachments: attachments,
		metrics:     m,
		logger:      logger,
	}
}

// removeStale deletes oldURL's object once a record points elsewhere. The
// write that triggered it has already committed, so the deletion runs on its
// own context rather than the request's.
func (c *attachmentCleaner) removeStale(oldURL, newURL string) {
	if c == nil || c.attachments == nil {
		return
	}
	if oldURL == "" || oldURL == newURL {
		return
	}
	key, ok := c.attachments.KeyForURL(oldURL)
	if !ok {
		c.logger.Debug("Skipping cleanup of foreign attachment URL", "url", oldURL)
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
		defer cancel()

		if err := c.attachments.Delete(ctx, key); err != nil {
			if c.metrics != nil {
				c.metrics.CleanupFailures.Inc()
			}
			c.logger.Warn("Best-effort attachment cleanup failed", "key", key, "error", err)
		}
	}()
}

// Drain blocks until all spawned cleanups finished.
func (c *attachmentCleaner) Drain() {
	if c == nil {
		return
	}
	c.wg.Wait()
}
