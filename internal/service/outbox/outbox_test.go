package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hangpay/internal/model"
	mocks "hangpay/internal/service/outbox/mocks"
)

func TestDispatchBatch(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockDispatcherRepository(ctrl)
	mailer := mocks.NewMockMailer(ctrl)

	payload := json.RawMessage(`{"reference":"ref-1"}`)
	messages := []model.OutboxMessage{
		{ID: 1, Kind: model.OutboxKindWithdrawalRequested, Payload: payload, Attempts: 1},
		{ID: 2, Kind: model.OutboxKindWithdrawalFailed, Payload: payload, Attempts: 2},
		{ID: 3, Kind: model.OutboxKindWalletAdjusted, Payload: payload, Attempts: 5},
	}
	repo.EXPECT().
		ClaimDue(gomock.Any(), defaultBatch).
		Return(messages, nil)

	// 1 delivers, 2 fails with attempts left, 3 fails on its last attempt.
	mailer.EXPECT().
		Deliver(gomock.Any(), model.OutboxKindWithdrawalRequested, gomock.Any()).
		Return(nil)
	mailer.EXPECT().
		Deliver(gomock.Any(), model.OutboxKindWithdrawalFailed, gomock.Any()).
		Return(errors.New("mail service unavailable"))
	mailer.EXPECT().
		Deliver(gomock.Any(), model.OutboxKindWalletAdjusted, gomock.Any()).
		Return(errors.New("mail service unavailable"))

	repo.EXPECT().MarkSent(gomock.Any(), int64(1)).Return(nil)
	repo.EXPECT().
		Reschedule(gomock.Any(), int64(2), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, next time.Time) error {
			assert.WithinDuration(t, time.Now().Add(time.Minute), next, 5*time.Second)
			return nil
		})
	repo.EXPECT().MarkFailed(gomock.Any(), int64(3)).Return(nil)

	d := NewDispatcher(time.Second, repo, mailer)

	err := d.dispatchBatch(t.Context())
	assert.NoError(t, err)
}

func TestDispatchBatch_Empty(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockDispatcherRepository(ctrl)
	repo.EXPECT().
		ClaimDue(gomock.Any(), defaultBatch).
		Return(nil, nil)

	d := NewDispatcher(time.Second, repo, mocks.NewMockMailer(ctrl))

	assert.NoError(t, d.dispatchBatch(t.Context()))
}

func TestDispatchBatch_ClaimError(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockDispatcherRepository(ctrl)
	repo.EXPECT().
		ClaimDue(gomock.Any(), defaultBatch).
		Return(nil, errors.New("db error"))

	d := NewDispatcher(time.Second, repo, mocks.NewMockMailer(ctrl))

	assert.Error(t, d.dispatchBatch(t.Context()))
}

func TestBackoff(t *testing.T) {
	tests := []struct {
		attempts int
		want     time.Duration
	}{
		{attempts: 0, want: 30 * time.Second},
		{attempts: 1, want: 30 * time.Second},
		{attempts: 2, want: time.Minute},
		{attempts: 3, want: 2 * time.Minute},
		{attempts: 4, want: 4 * time.Minute},
		{attempts: 5, want: 8 * time.Minute},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, backoff(tc.attempts), "attempts=%d", tc.attempts)
	}
}
