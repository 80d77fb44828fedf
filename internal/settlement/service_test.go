package settlement

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateRejectsBadRequests(t *testing.T) {
	svc := NewService(nil, nil)

	t.Run("non-positive amount", func(t *testing.T) {
		_, err := svc.Create(context.Background(), &CreateSettlementRequest{
			GroupID: "g1", FromUserID: "alice", ToUserID: "bob", Amount: 0,
		})
		assert.ErrorIs(t, err, ErrInvalidAmount)

		_, err = svc.Create(context.Background(), &CreateSettlementRequest{
			GroupID: "g1", FromUserID: "alice", ToUserID: "bob", Amount: -5,
		})
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("self settlement", func(t *testing.T) {
		_, err := svc.Create(context.Background(), &CreateSettlementRequest{
			GroupID: "g1", FromUserID: "alice", ToUserID: "alice", Amount: 10,
		})
		assert.ErrorIs(t, err, ErrSameMember)
	})
}
