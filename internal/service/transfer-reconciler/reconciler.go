package reconciler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hangpay/internal/model"
	"hangpay/internal/provider/flutterwave"
	"hangpay/internal/service/withdrawals"
)

const (
	// Withdrawals younger than this are left alone so the poller never
	// races a webhook that is already in flight.
	minPendingAge = 2 * time.Minute

	batchSize = 50
)

//go:generate mockgen -package mocks -destination ./mocks/reconciler_repo.go . ReconcilerRepository
type ReconcilerRepository interface {
	// PendingBatch claims up to limit pending withdrawals older than
	// olderThan, touching their last-checked timestamp so concurrent runs
	// never pick the same rows.
	PendingBatch(
		ctx context.Context,
		olderThan time.Duration,
		limit int,
	) ([]model.Withdrawal, error)
}

//go:generate mockgen -package mocks -destination ./mocks/verifier.go . TransferVerifier
type TransferVerifier interface {
	VerifyTransfer(ctx context.Context, id int64) (*flutterwave.Transfer, error)
	TransferByReference(ctx context.Context, reference string) (*flutterwave.Transfer, error)
}

//go:generate mockgen -package mocks -destination ./mocks/finalizer.go . Finalizer
type Finalizer interface {
	HandleTransferEvent(ctx context.Context, ev withdrawals.TransferEvent) error
	ResolveUnconfirmed(ctx context.Context, w *model.Withdrawal) error
}

// Report is the accounting for one reconciliation run.
type Report struct {
	TotalFound     int
	TotalProcessed int
	TotalFailed    int
	TotalSkipped   int
	Audit          []AuditItem
}

type AuditItem struct {
	Reference string
	Outcome   string
	Detail    string
}

// Reconciler is the safety net for lost webhooks: it re-verifies stale
// pending withdrawals against the provider and funnels terminal outcomes
// through the same finalizer the webhook uses.
type Reconciler struct {
	PollInterval time.Duration

	repo      ReconcilerRepository
	verifier  TransferVerifier
	finalizer Finalizer
}

func NewReconciler(
	interval time.Duration,
	repo ReconcilerRepository,
	verifier TransferVerifier,
	finalizer Finalizer,
) *Reconciler {
	return &Reconciler{
		PollInterval: interval,
		repo:         repo,
		verifier:     verifier,
		finalizer:    finalizer,
	}
}

func (r *Reconciler) Run(ctx context.Context) error {
	tick := time.NewTicker(r.PollInterval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick.C:
			if ctx.Err() != nil {
				continue
			}

			report, err := r.Execute(ctx)
			if err != nil {
				return fmt.Errorf("reconciler error: %w", err)
			}
			if report.TotalFound > 0 {
				slog.Info(
					"reconciliation run complete",
					slog.Int("found", report.TotalFound),
					slog.Int("processed", report.TotalProcessed),
					slog.Int("failed", report.TotalFailed),
					slog.Int("skipped", report.TotalSkipped),
				)
			}
		}
	}
}

// Execute performs one reconciliation pass. A verification failure on one
// withdrawal never aborts the batch; it is counted and the run moves on.
func (r *Reconciler) Execute(ctx context.Context) (*Report, error) {
	batch, err := r.repo.PendingBatch(ctx, minPendingAge, batchSize)
	if err != nil {
		return nil, fmt.Errorf("fetch pending batch: %w", err)
	}

	report := &Report{TotalFound: len(batch)}

	for i := range batch {
		if ctx.Err() != nil {
			break
		}

		w := &batch[i]
		item := r.reconcileOne(ctx, w)
		report.Audit = append(report.Audit, item)

		switch item.Outcome {
		case "processed":
			report.TotalProcessed++
		case "skipped":
			report.TotalSkipped++
		default:
			report.TotalFailed++
		}
	}

	return report, nil
}

func (r *Reconciler) reconcileOne(
	ctx context.Context,
	w *model.Withdrawal,
) AuditItem {
	slog.Debug(
		"reconciling withdrawal",
		slog.String("reference", w.PayoutReference),
		slog.Bool("transfer_confirmed", w.TransferConfirmed),
	)

	var transfer *flutterwave.Transfer
	var err error
	if w.TransferConfirmed {
		transfer, err = r.verifier.VerifyTransfer(ctx, w.TransferID)
	} else {
		transfer, err = r.verifier.TransferByReference(ctx, w.PayoutReference)
	}

	if err != nil {
		if !w.TransferConfirmed && errors.Is(err, flutterwave.ErrTransferNotFound) {
			// The timed-out create never went through: fail the
			// withdrawal and return the money.
			if err := r.finalizer.ResolveUnconfirmed(ctx, w); err != nil {
				return AuditItem{
					Reference: w.PayoutReference,
					Outcome:   "failed",
					Detail:    fmt.Sprintf("resolve unconfirmed: %v", err),
				}
			}
			return AuditItem{
				Reference: w.PayoutReference,
				Outcome:   "processed",
				Detail:    "transfer never created, withdrawal failed and reversed",
			}
		}

		slog.Warn(
			"transfer verification failed",
			slog.String("reference", w.PayoutReference),
			slog.Any("error", err),
		)
		return AuditItem{
			Reference: w.PayoutReference,
			Outcome:   "failed",
			Detail:    err.Error(),
		}
	}

	if !flutterwave.TerminalStatus(transfer.Status) {
		return AuditItem{
			Reference: w.PayoutReference,
			Outcome:   "skipped",
			Detail:    fmt.Sprintf("still %s at provider", transfer.Status),
		}
	}

	ev := withdrawals.TransferEvent{
		OK:         transfer.Status == flutterwave.StatusSuccessful,
		Provider:   flutterwave.ProviderName,
		Type:       "transfer",
		Reference:  w.PayoutReference,
		TransferID: transfer.ID,
		Status:     transfer.Status,
	}
	if !ev.OK {
		ev.FailureReason = transfer.CompleteMessage
	}

	if err := r.finalizer.HandleTransferEvent(ctx, ev); err != nil {
		return AuditItem{
			Reference: w.PayoutReference,
			Outcome:   "failed",
			Detail:    fmt.Sprintf("finalize: %v", err),
		}
	}

	return AuditItem{
		Reference: w.PayoutReference,
		Outcome:   "processed",
		Detail:    fmt.Sprintf("finalized as %s", transfer.Status),
	}
}
