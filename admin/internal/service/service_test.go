package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookmart/admin-service/admin/internal/model"
)

func TestTaxAmount(t *testing.T) {
	t.Parallel()
	// an 8% inclusive rate backed out of a 10.80 total is exactly 0.80
	require.InDelta(t, 0.80, TaxAmount(10.80), 1e-9)
	require.InDelta(t, 0, TaxAmount(0), 1e-9)
}

func Test_splitName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		in        string
		firstName string
		lastName  string
	}{
		{name: "first and last", in: "Jane Roe", firstName: "Jane", lastName: "Roe"},
		{name: "multi-part last name", in: "Ana de la Cruz", firstName: "Ana", lastName: "de la Cruz"},
		{name: "single token", in: "Prince", firstName: "Prince", lastName: ""},
		{name: "surrounding spaces", in: "  Jane Roe ", firstName: "Jane", lastName: "Roe"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			first, last := splitName(tt.in)
			require.Equal(t, tt.firstName, first)
			require.Equal(t, tt.lastName, last)
		})
	}
}

func TestService_avatar(t *testing.T) {
	t.Parallel()
	s := &Service{avatarURL: "https://ui-avatars.com/api/"}

	got := s.avatar("Jane", "Roe")
	require.Equal(t, "https://ui-avatars.com/api/?background=6366f1&color=fff&name=Jane+Roe", got)

	// unsafe characters must be query-encoded, not interpolated raw
	got = s.avatar("Ann & Bob", "O'Hara")
	require.Equal(t, "https://ui-avatars.com/api/?background=6366f1&color=fff&name=Ann+%26+Bob+O%27Hara", got)
}

func Test_shapeOrder(t *testing.T) {
	t.Parallel()

	t.Run("full row", func(t *testing.T) {
		t.Parallel()
		row := model.OrderRow{
			ID:                 7,
			OrderNumber:        "ORD-2024-0007",
			TotalAmount:        10.80,
			PaymentStatus:      "pending",
			FirstName:          sql.NullString{String: "Jane", Valid: true},
			LastName:           sql.NullString{String: "Roe", Valid: true},
			Email:              sql.NullString{String: "jane@example.com", Valid: true},
			Phone:              sql.NullString{String: "555-0100", Valid: true},
			ShippingAddress:    sql.NullString{String: "1 Main St", Valid: true},
			ShippingCity:       sql.NullString{String: "Springfield", Valid: true},
			ShippingPostalCode: sql.NullString{String: "12345", Valid: true},
		}
		items := []model.OrderItem{{ID: 1, Quantity: 2, PricePerItem: 5.40, TotalPrice: 10.80, Title: "t"}}

		detail := shapeOrder(row, items)

		require.Equal(t, "Jane Roe", detail.Customer.FullName)
		require.Equal(t, "1 Main St, Springfield 12345", detail.Shipping.FullAddress)
		require.Equal(t, 10.80, detail.Totals.Subtotal)
		require.Equal(t, 10.80, detail.Totals.TotalAmount)
		require.InDelta(t, 0.80, detail.Totals.TaxAmount, 1e-9)
		require.Equal(t, 5.99, detail.Totals.ShippingCost)
		require.Equal(t, "pending", detail.Payment.Status)
		require.Len(t, detail.Items, 1)
	})

	t.Run("deleted customer", func(t *testing.T) {
		t.Parallel()
		detail := shapeOrder(model.OrderRow{ID: 8, PaymentStatus: "completed"}, nil)

		require.Equal(t, "", detail.Customer.FullName)
		require.Equal(t, "", detail.Customer.Email)
	})
}

func TestService_audit(t *testing.T) {
	t.Parallel()

	t.Run("nil enqueuer is a no-op", func(t *testing.T) {
		t.Parallel()
		s := &Service{log: zap.NewNop()}
		require.NotPanics(t, func() {
			s.audit(context.Background(), actionCreate, "book", "978-0134190440")
		})
	})

	t.Run("publishes to the audit topic", func(t *testing.T) {
		t.Parallel()
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageAndSucceed()

		s := &Service{log: zap.NewNop(), enqueuer: NewEnqueuer(producer)}
		s.audit(context.Background(), actionDelete, "category", "Fiction")

		require.NoError(t, producer.Close())
	})
}
