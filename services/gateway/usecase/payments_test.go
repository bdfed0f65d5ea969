package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiuber/gateway/internal/pkg/models"
)

func TestPayments(t *testing.T) {
	t.Run("balance is wrapped with the caller's uid", func(t *testing.T) {
		paymentsGW := &fakePaymentsGW{
			GetBalanceFn: func(ctx context.Context, uid string) (float64, error) {
				assert.Equal(t, "u1", uid)
				return 320.5, nil
			},
		}
		uc := NewPaymentsUC(&fakeAuth{UID: "u1"}, paymentsGW)

		balance, err := uc.GetBalance(context.Background(), "tok")
		require.NoError(t, err)
		assert.Equal(t, "u1", balance.UID)
		assert.Equal(t, 320.5, balance.Balance)
	})

	t.Run("withdraw injects the validated uid and requires the driver role", func(t *testing.T) {
		var got *models.WithdrawRequest
		paymentsGW := &fakePaymentsGW{
			WithdrawFn: func(ctx context.Context, req *models.WithdrawRequest) (interface{}, error) {
				got = req
				return map[string]interface{}{"status": "done"}, nil
			},
		}
		auth := &fakeAuth{UID: "d1"}
		uc := NewPaymentsUC(auth, paymentsGW)

		_, err := uc.Withdraw(context.Background(), "tok", &models.WithdrawRequest{
			UID:     "someone-else",
			Amount:  50,
			Address: "0xabc",
		})
		require.NoError(t, err)
		assert.Equal(t, "d1", got.UID)
		assert.Equal(t, models.RoleDriver, auth.Role)
	})

	t.Run("wallet creation targets the caller", func(t *testing.T) {
		var got string
		paymentsGW := &fakePaymentsGW{
			CreateWalletFn: func(ctx context.Context, uid string) (interface{}, error) {
				got = uid
				return map[string]interface{}{"uid": uid}, nil
			},
		}
		uc := NewPaymentsUC(&fakeAuth{UID: "u1"}, paymentsGW)

		_, err := uc.CreateWallet(context.Background(), "tok")
		require.NoError(t, err)
		assert.Equal(t, "u1", got)
	})
}
