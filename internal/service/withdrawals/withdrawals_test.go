package withdrawals

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hangpay/internal/model"
	"hangpay/internal/provider/flutterwave"
	"hangpay/internal/service/wallets"
	mocks "hangpay/internal/service/withdrawals/mocks"
)

type serviceMocks struct {
	funds        *mocks.MockFunds
	provider     *mocks.MockPayoutProvider
	withdrawals  *mocks.MockWithdrawalsRepository
	bankAccounts *mocks.MockBankAccountsRepository
	outbox       *mocks.MockOutboxRepository
}

func newTestService(ctrl *gomock.Controller) (*Service, serviceMocks) {
	m := serviceMocks{
		funds:        mocks.NewMockFunds(ctrl),
		provider:     mocks.NewMockPayoutProvider(ctrl),
		withdrawals:  mocks.NewMockWithdrawalsRepository(ctrl),
		bankAccounts: mocks.NewMockBankAccountsRepository(ctrl),
		outbox:       mocks.NewMockOutboxRepository(ctrl),
	}
	svc := NewService(m.funds, m.provider, m.withdrawals, m.bankAccounts, m.outbox)
	return svc, m
}

var testAccount = &model.BankAccount{
	ID:            3,
	UserID:        10,
	BankCode:      "044",
	BankName:      "Access Bank",
	AccountNumber: "0690000040",
	AccountName:   "Jane Doe",
	IsDefault:     true,
}

func TestRequest_Bounds(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	tests := []struct {
		name   string
		amount model.Amount
	}{
		{name: "below minimum", amount: 5_000},
		{name: "above maximum", amount: 600_000},
		{name: "zero", amount: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, _ := newTestService(ctrl)

			_, err := svc.Request(t.Context(), Request{
				Owner:       model.WalletOwner{Type: model.OwnerTypeEvent, ID: 1},
				RequestedBy: 10,
				Amount:      tc.amount,
			})
			assert.ErrorIs(t, err, model.ErrAmountOutOfBounds)
		})
	}
}

func TestRequest_RateLimit(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl)

	m.withdrawals.EXPECT().
		CountForUserSince(gomock.Any(), int64(10), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, since time.Time) (int, error) {
			assert.Equal(t, time.UTC, since.Location())
			assert.WithinDuration(t, time.Now().UTC().Truncate(24*time.Hour), since, time.Second)
			return 2, nil
		})

	_, err := svc.Request(t.Context(), Request{
		Owner:       model.WalletOwner{Type: model.OwnerTypeEvent, ID: 1},
		RequestedBy: 10,
		Amount:      100_000,
	})
	assert.ErrorIs(t, err, model.ErrRateLimited)
}

func TestRequest_Success(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl)
	owner := model.WalletOwner{Type: model.OwnerTypeEvent, ID: 1}

	m.withdrawals.EXPECT().
		CountForUserSince(gomock.Any(), int64(10), gomock.Any()).
		Return(0, nil)
	m.bankAccounts.EXPECT().
		DefaultForUser(gomock.Any(), int64(10)).
		Return(testAccount, nil)

	var reference string
	m.funds.EXPECT().
		RequestWithdrawal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req wallets.WithdrawalRequest) (*wallets.WithdrawalQuote, error) {
			assert.Equal(t, owner, req.Owner)
			assert.Equal(t, model.Amount(100_000), req.Amount)
			assert.NotEmpty(t, req.Reference)
			reference = req.Reference
			return &wallets.WithdrawalQuote{
				WalletID:     7,
				FeeAmount:    5_000,
				PayoutAmount: 95_000,
				BalanceAfter: 50_000,
			}, nil
		})

	m.provider.EXPECT().
		CreateTransfer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req flutterwave.TransferRequest) (*flutterwave.Transfer, error) {
			assert.Equal(t, int64(95_000), req.Amount)
			assert.Equal(t, "044", req.BankCode)
			assert.Equal(t, reference, req.Reference)
			return &flutterwave.Transfer{
				ID:        123,
				Reference: req.Reference,
				Status:    flutterwave.StatusNew,
			}, nil
		})

	m.withdrawals.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, w *model.Withdrawal) (*model.Withdrawal, error) {
			assert.Equal(t, model.WithdrawalPending, w.Status)
			assert.True(t, w.TransferConfirmed)
			assert.Equal(t, int64(123), w.TransferID)
			created := *w
			created.ID = 55
			created.CreatedAt = time.Now()
			return &created, nil
		})

	m.outbox.EXPECT().
		Enqueue(gomock.Any(), model.OutboxKindWithdrawalRequested, gomock.Any()).
		Return(nil)

	result, err := svc.Request(t.Context(), Request{
		Owner:       owner,
		RequestedBy: 10,
		Amount:      100_000,
	})

	assert.NoError(t, err)
	assert.NotNil(t, result.Transfer)
	assert.Equal(t, model.Amount(50_000), result.BalanceAfter)
	assert.Equal(t, "******0040", result.AccountNumber)
	assert.Equal(t, "Access Bank", result.BankName)
	assert.Equal(t, reference, result.Withdrawal.PayoutReference)
}

func TestRequest_ProviderRejectionReversesDebit(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl)
	owner := model.WalletOwner{Type: model.OwnerTypeGroup, ID: 4}

	m.withdrawals.EXPECT().
		CountForUserSince(gomock.Any(), int64(10), gomock.Any()).
		Return(0, nil)
	m.bankAccounts.EXPECT().
		ForUser(gomock.Any(), int64(3), int64(10)).
		Return(testAccount, nil)

	var reference string
	m.funds.EXPECT().
		RequestWithdrawal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req wallets.WithdrawalRequest) (*wallets.WithdrawalQuote, error) {
			reference = req.Reference
			return &wallets.WithdrawalQuote{
				WalletID:     7,
				PayoutAmount: 50_000,
				BalanceAfter: 0,
			}, nil
		})

	apiErr := &flutterwave.APIError{
		StatusCode: 400,
		Message:    "insufficient balance in payout wallet",
	}
	m.provider.EXPECT().
		CreateTransfer(gomock.Any(), gomock.Any()).
		Return(nil, apiErr)

	m.funds.EXPECT().
		ReverseDebit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p wallets.ReversalParams) (*model.LedgerEntry, error) {
			assert.Equal(t, owner, p.Owner)
			assert.Equal(t, model.Amount(50_000), p.Amount)
			assert.Equal(t, reference, p.Reference)
			return &model.LedgerEntry{BalanceAfter: 50_000}, nil
		})

	_, err := svc.Request(t.Context(), Request{
		Owner:         owner,
		RequestedBy:   10,
		Amount:        50_000,
		BankAccountID: 3,
	})

	var gotAPIErr *flutterwave.APIError
	assert.ErrorAs(t, err, &gotAPIErr)
}

func TestRequest_UnknownOutcome(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl)
	owner := model.WalletOwner{Type: model.OwnerTypeEvent, ID: 1}

	m.withdrawals.EXPECT().
		CountForUserSince(gomock.Any(), int64(10), gomock.Any()).
		Return(1, nil)
	m.bankAccounts.EXPECT().
		DefaultForUser(gomock.Any(), int64(10)).
		Return(testAccount, nil)
	m.funds.EXPECT().
		RequestWithdrawal(gomock.Any(), gomock.Any()).
		Return(&wallets.WithdrawalQuote{
			WalletID:     7,
			FeeAmount:    5_000,
			PayoutAmount: 95_000,
			BalanceAfter: 50_000,
		}, nil)

	m.provider.EXPECT().
		CreateTransfer(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: context deadline exceeded", flutterwave.ErrOutcomeUnknown))

	m.withdrawals.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, w *model.Withdrawal) (*model.Withdrawal, error) {
			assert.False(t, w.TransferConfirmed)
			assert.Zero(t, w.TransferID)
			assert.Equal(t, model.WithdrawalPending, w.Status)
			return w, nil
		})

	result, err := svc.Request(t.Context(), Request{
		Owner:       owner,
		RequestedBy: 10,
		Amount:      100_000,
	})

	assert.NoError(t, err)
	assert.Nil(t, result.Transfer)
	assert.Equal(t, model.Amount(50_000), result.BalanceAfter)
}

func TestHandleTransferEvent(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	pending := &model.Withdrawal{
		ID:              55,
		OwnerType:       model.OwnerTypeEvent,
		OwnerID:         1,
		UserID:          10,
		Amount:          100_000,
		FeeAmount:       5_000,
		PayoutAmount:    95_000,
		Status:          model.WithdrawalSuccessful,
		PayoutReference: "ref-1",
		BankAccountID:   3,
	}

	t.Run("successful transfer finalizes and notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl)

		m.withdrawals.EXPECT().
			Finalize(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p model.FinalizeWithdrawalParams) (bool, error) {
				assert.Equal(t, "ref-1", p.Reference)
				assert.Equal(t, model.WithdrawalSuccessful, p.Status)
				assert.Equal(t, int64(123), p.TransferID)
				return true, nil
			})
		m.withdrawals.EXPECT().
			ByReference(gomock.Any(), "ref-1").
			Return(pending, nil)
		m.bankAccounts.EXPECT().
			ForUser(gomock.Any(), int64(3), int64(10)).
			Return(testAccount, nil)
		m.outbox.EXPECT().
			Enqueue(gomock.Any(), model.OutboxKindWithdrawalSuccessful, gomock.Any()).
			Return(nil)

		err := svc.HandleTransferEvent(t.Context(), TransferEvent{
			OK:         true,
			Reference:  "ref-1",
			TransferID: 123,
			Status:     flutterwave.StatusSuccessful,
		})
		assert.NoError(t, err)
	})

	t.Run("failed transfer does not credit the wallet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl)

		m.withdrawals.EXPECT().
			Finalize(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p model.FinalizeWithdrawalParams) (bool, error) {
				assert.Equal(t, model.WithdrawalFailed, p.Status)
				assert.Equal(t, "DISBURSE FAILED", p.FailureReason)
				return true, nil
			})
		m.withdrawals.EXPECT().
			ByReference(gomock.Any(), "ref-1").
			Return(pending, nil)
		m.bankAccounts.EXPECT().
			ForUser(gomock.Any(), int64(3), int64(10)).
			Return(testAccount, nil)
		m.outbox.EXPECT().
			Enqueue(gomock.Any(), model.OutboxKindWithdrawalFailed, gomock.Any()).
			Return(nil)

		// No funds.ReverseDebit expectation: a provider-reported failure is
		// settled manually, not auto-credited.
		err := svc.HandleTransferEvent(t.Context(), TransferEvent{
			OK:            false,
			Reference:     "ref-1",
			TransferID:    123,
			Status:        flutterwave.StatusFailed,
			FailureReason: "DISBURSE FAILED",
		})
		assert.NoError(t, err)
	})

	t.Run("duplicate event is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl)

		m.withdrawals.EXPECT().
			Finalize(gomock.Any(), gomock.Any()).
			Return(false, nil)

		// No ByReference, no notification: the first finalizer already did it.
		err := svc.HandleTransferEvent(t.Context(), TransferEvent{
			OK:        true,
			Reference: "ref-1",
			Status:    flutterwave.StatusSuccessful,
		})
		assert.NoError(t, err)
	})

	t.Run("unknown reference surfaces the error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl)

		m.withdrawals.EXPECT().
			Finalize(gomock.Any(), gomock.Any()).
			Return(false, model.ErrWithdrawalNotFound)

		err := svc.HandleTransferEvent(t.Context(), TransferEvent{
			OK:        true,
			Reference: "no-such-ref",
			Status:    flutterwave.StatusSuccessful,
		})
		assert.ErrorIs(t, err, model.ErrWithdrawalNotFound)
	})
}

func TestResolveUnconfirmed(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	unconfirmed := &model.Withdrawal{
		ID:              56,
		OwnerType:       model.OwnerTypeGroup,
		OwnerID:         4,
		UserID:          10,
		Amount:          50_000,
		PayoutAmount:    50_000,
		Status:          model.WithdrawalPending,
		PayoutReference: "ref-2",
		BankAccountID:   3,
	}

	t.Run("fails the withdrawal and reverses the debit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl)

		m.withdrawals.EXPECT().
			Finalize(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p model.FinalizeWithdrawalParams) (bool, error) {
				assert.Equal(t, "ref-2", p.Reference)
				assert.Equal(t, model.WithdrawalFailed, p.Status)
				return true, nil
			})
		m.funds.EXPECT().
			ReverseDebit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p wallets.ReversalParams) (*model.LedgerEntry, error) {
				assert.Equal(t, model.Amount(50_000), p.Amount)
				assert.Equal(t, "ref-2", p.Reference)
				return &model.LedgerEntry{BalanceAfter: 50_000}, nil
			})
		m.bankAccounts.EXPECT().
			ForUser(gomock.Any(), int64(3), int64(10)).
			Return(testAccount, nil)
		m.outbox.EXPECT().
			Enqueue(gomock.Any(), model.OutboxKindWithdrawalFailed, gomock.Any()).
			Return(nil)

		err := svc.ResolveUnconfirmed(t.Context(), unconfirmed)
		assert.NoError(t, err)
	})

	t.Run("lost race skips the reversal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl)

		m.withdrawals.EXPECT().
			Finalize(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.ResolveUnconfirmed(t.Context(), unconfirmed)
		assert.NoError(t, err)
	})

	t.Run("confirmed transfer is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newTestService(ctrl)

		confirmed := *unconfirmed
		confirmed.TransferConfirmed = true

		err := svc.ResolveUnconfirmed(t.Context(), &confirmed)
		assert.Error(t, err)
	})

	t.Run("failed reversal surfaces the error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl)

		m.withdrawals.EXPECT().
			Finalize(gomock.Any(), gomock.Any()).
			Return(true, nil)
		m.funds.EXPECT().
			ReverseDebit(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db error"))

		err := svc.ResolveUnconfirmed(t.Context(), unconfirmed)
		assert.Error(t, err)
	})
}
