package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/payflow/internal/adapter/csvio"
	"github.com/iho/payflow/internal/adapter/http/dto"
	"github.com/iho/payflow/internal/adapter/repository/memory"
	"github.com/iho/payflow/internal/infrastructure/metrics"
	"github.com/iho/payflow/internal/usecase"
)

// BatchHandler processes uploaded transaction batches. Every request
// runs through a fresh engine with its own stores, so requests share
// no mutable state and the single-threaded processing contract holds
// per batch.
type BatchHandler struct {
	idGen    usecase.IDGenerator
	metrics  *metrics.Metrics
	logger   zerolog.Logger
	maxBytes int64
}

// NewBatchHandler creates a new BatchHandler.
func NewBatchHandler(idGen usecase.IDGenerator, m *metrics.Metrics, logger zerolog.Logger, maxBytes int64) *BatchHandler {
	return &BatchHandler{
		idGen:    idGen,
		metrics:  m,
		logger:   logger,
		maxBytes: maxBytes,
	}
}

// Create streams the request body (transaction CSV) through the engine
// and returns the final account snapshot, as JSON by default or as CSV
// when the client asks for text/csv.
func (h *BatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	batchID := h.idGen.Generate()
	start := time.Now()

	body := http.MaxBytesReader(w, r.Body, h.maxBytes)
	feed := csvio.NewFeed(body)

	accounts := memory.NewAccountStore()
	ledger := memory.NewDepositLedger()
	processor := usecase.NewProcessorUseCase(accounts, ledger)

	stats, err := processor.Run(r.Context(), feed)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read batch", err.Error())
		return
	}

	h.observe(stats, feed.Skipped(), accounts, time.Since(start))
	h.logger.Info().
		Str("batch_id", batchID).
		Int("processed", stats.Processed).
		Int("applied", stats.Applied).
		Int("dropped", stats.TotalDropped()).
		Int("skipped_rows", feed.Skipped()).
		Int("accounts", accounts.Len()).
		Dur("duration", time.Since(start)).
		Msg("batch processed")

	if strings.Contains(r.Header.Get("Accept"), "text/csv") {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("X-Batch-ID", batchID)
		snapshot := csvio.NewSnapshot(w)
		if err := processor.WriteSnapshot(snapshot); err != nil {
			return
		}
		snapshot.Flush()
		return
	}

	writeJSON(w, http.StatusOK, dto.BatchResponse{
		BatchID:  batchID,
		Stats:    dto.StatsFromUseCase(stats, feed.Skipped()),
		Accounts: dto.AccountsFromDomain(accounts.Accounts()),
	})
}

func (h *BatchHandler) observe(stats usecase.Stats, skippedRows int, accounts usecase.AccountStore, elapsed time.Duration) {
	if h.metrics == nil {
		return
	}

	for recordType, n := range stats.ByType {
		h.metrics.RecordsApplied.WithLabelValues(string(recordType)).Add(float64(n))
	}
	for reason, n := range stats.Dropped {
		h.metrics.RecordsDropped.WithLabelValues(reason).Add(float64(n))
	}
	h.metrics.RowsSkipped.Add(float64(skippedRows))

	h.metrics.BatchesProcessed.Inc()
	h.metrics.BatchDuration.Observe(elapsed.Seconds())

	locked := 0
	for _, account := range accounts.Accounts() {
		if account.Locked {
			locked++
		}
	}
	h.metrics.AccountsSeen.Add(float64(accounts.Len()))
	h.metrics.AccountsLocked.Add(float64(locked))
}
