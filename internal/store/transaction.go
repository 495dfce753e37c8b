// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-user-bff/internal/adapter"
	"github.com/MKhiriev/go-user-bff/internal/logger"
	"github.com/MKhiriev/go-user-bff/internal/metrics"
	"github.com/MKhiriev/go-user-bff/internal/utils"
	"github.com/MKhiriev/go-user-bff/models"
	"github.com/sethvargo/go-retry"
)

// Names of the transaction-control procedures of the remote store.
const (
	rpcBeginTransaction    = "begin_transaction"
	rpcCommitTransaction   = "commit_transaction"
	rpcRollbackTransaction = "rollback_transaction"
)

// mutation is the single domain write executed inside a transaction.
type mutation func(ctx context.Context, tx models.TransactionHandle) (adapter.Response, error)

// commitPolicy controls how a failed commit_transaction is retried.
type commitPolicy struct {
	retries uint64
	delay   time.Duration
}

// transactor runs mutations through the begin/mutate/commit protocol with a
// compensating rollback when the mutation fails. It keeps no state between
// calls: every run opens and owns its own transaction handle.
type transactor struct {
	remote adapter.RemoteStore
	policy commitPolicy
	logger *logger.Logger
}

func newTransactor(remote adapter.RemoteStore, policy commitPolicy, logger *logger.Logger) *transactor {
	if policy.delay <= 0 {
		policy.delay = 100 * time.Millisecond
	}
	return &transactor{remote: remote, policy: policy, logger: logger}
}

// run executes mutate inside a fresh remote transaction.
//
//   - begin fails: ErrTransactionBegin, nothing to roll back.
//   - mutate fails: rollback is attempted, its outcome is logged, and the
//     mutation error is returned wrapped in ErrDatabase.
//   - commit keeps failing: ErrCommitIndeterminate, no rollback.
func (t *transactor) run(ctx context.Context, operation string, mutate mutation) (adapter.Response, error) {
	log := &logger.Logger{Logger: t.logger.With().
		Str("operation", operation).
		Str("trace_id", utils.GetTraceIDFromContext(ctx)).
		Logger()}

	tx, err := t.begin(ctx)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		metrics.RecordTransaction(operation, metrics.OutcomeBeginFailed)
		return adapter.Response{}, err
	}
	log = &logger.Logger{Logger: log.With().Str("transaction_id", tx.ID).Logger()}

	resp, err := mutate(ctx, tx)
	if err != nil {
		t.rollback(ctx, log, tx, err)
		metrics.RecordTransaction(operation, metrics.OutcomeRolledBack)
		return adapter.Response{}, fmt.Errorf("%w: %s failed: %w", ErrDatabase, operation, err)
	}

	if err = t.commit(ctx, log, tx); err != nil {
		metrics.RecordTransaction(operation, metrics.OutcomeIndeterminate)
		return adapter.Response{}, err
	}

	metrics.RecordTransaction(operation, metrics.OutcomeCommitted)
	log.Debug().Msg("transaction committed")

	return resp, nil
}

func (t *transactor) begin(ctx context.Context) (models.TransactionHandle, error) {
	resp, err := t.remote.RPC(ctx, rpcBeginTransaction, struct{}{})
	if err != nil {
		return models.TransactionHandle{}, fmt.Errorf("%w: %w", ErrTransactionBegin, err)
	}

	tx, err := decodeTransactionHandle(resp.Body)
	if err != nil {
		return models.TransactionHandle{}, fmt.Errorf("%w: %v", ErrTransactionBegin, err)
	}

	return tx, nil
}

// commit closes tx, retrying transient failures with exponential backoff.
// It is detached from the caller's cancellation: once the mutation has been
// applied remotely, the transaction is closed even if the caller went away.
func (t *transactor) commit(ctx context.Context, log *logger.Logger, tx models.TransactionHandle) error {
	ctx = context.WithoutCancel(ctx)
	backoff := retry.WithMaxRetries(t.policy.retries, retry.NewExponential(t.policy.delay))

	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if attempt > 1 {
			metrics.RecordCommitRetry()
			log.Warn().Int("attempt", attempt).Msg("retrying transaction commit")
		}

		_, err := t.remote.RPC(ctx, rpcCommitTransaction, tx)
		if err != nil && isRetryable(err) {
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		log.Error().
			Err(err).
			Int("attempts", attempt).
			Msg("transaction commit failed after the mutation was applied, remote state is indeterminate")
		return fmt.Errorf("%w: transaction %s: %w", ErrCommitIndeterminate, tx.ID, err)
	}

	return nil
}

// rollback asks the remote store to discard tx. Its outcome is logged and
// never replaces cause.
func (t *transactor) rollback(ctx context.Context, log *logger.Logger, tx models.TransactionHandle, cause error) {
	_, err := t.remote.RPC(context.WithoutCancel(ctx), rpcRollbackTransaction, tx)
	if err != nil {
		metrics.RecordRollbackFailure()
		log.Warn().
			Err(err).
			AnErr("cause", cause).
			Msg("compensating rollback failed")
		return
	}

	log.Info().
		AnErr("cause", cause).
		Msg("transaction rolled back")
}

// isRetryable reports whether a failed commit may succeed on another attempt:
// transport failures, 429 and 5xx responses.
func isRetryable(err error) bool {
	if errors.Is(err, adapter.ErrTransport) {
		return true
	}

	var statusErr *adapter.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == http.StatusTooManyRequests || statusErr.StatusCode >= http.StatusInternalServerError
	}

	return false
}
