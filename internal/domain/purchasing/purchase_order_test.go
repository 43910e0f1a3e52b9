package purchasing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func newTestPO(t *testing.T, quantities ...string) *PurchaseOrder {
	t.Helper()
	lines := make([]LineInput, len(quantities))
	for i, q := range quantities {
		lines[i] = LineInput{ItemID: uuid.New(), ItemName: "Item " + q, Quantity: dec(q)}
	}
	po, err := NewPurchaseOrder(uuid.New(), nil, "Fresh Farms", "PO-1", lines)
	require.NoError(t, err)
	return po
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusCounted, true},
		{StatusPending, StatusReceived, true},
		{StatusPending, StatusCancelled, true},
		{StatusCounted, StatusReceived, true},
		{StatusCounted, StatusCancelled, true},
		{StatusCounted, StatusPending, false},
		{StatusCounted, StatusCounted, false},
		{StatusReceived, StatusCancelled, false},
		{StatusCancelled, StatusReceived, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestNewPurchaseOrder_Validation(t *testing.T) {
	biz := uuid.New()
	line := []LineInput{{ItemID: uuid.New(), Quantity: dec("1")}}

	_, err := NewPurchaseOrder(biz, nil, "", "PO-1", line)
	assert.ErrorIs(t, err, shared.ErrValidation)

	_, err = NewPurchaseOrder(biz, nil, "Vendor", "PO-1", nil)
	assert.ErrorIs(t, err, shared.ErrValidation)

	_, err = NewPurchaseOrder(biz, nil, "Vendor", "PO-1", []LineInput{{ItemID: uuid.New(), Quantity: decimal.Zero}})
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestPurchaseOrder_Count(t *testing.T) {
	t.Run("shortfall without reason is rejected", func(t *testing.T) {
		po := newTestPO(t, "100")
		err := po.Count([]LineCount{{LineID: po.Lines[0].ID, CountedQuantity: dec("80"), BarcodeScans: 1}}, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrValidation)
		assert.Contains(t, err.Error(), "Item 100")
		assert.Equal(t, StatusPending, po.Status)
	})

	t.Run("excess without note is rejected", func(t *testing.T) {
		po := newTestPO(t, "10")
		err := po.Count([]LineCount{{LineID: po.Lines[0].ID, CountedQuantity: dec("12"), BarcodeScans: 1}}, nil)
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("missing scan is rejected", func(t *testing.T) {
		po := newTestPO(t, "10")
		err := po.Count([]LineCount{{LineID: po.Lines[0].ID, CountedQuantity: dec("10")}}, nil)
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("every line must be counted", func(t *testing.T) {
		po := newTestPO(t, "10", "5")
		err := po.Count([]LineCount{{LineID: po.Lines[0].ID, CountedQuantity: dec("10"), BarcodeScans: 1}}, nil)
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("unknown line", func(t *testing.T) {
		po := newTestPO(t, "10")
		err := po.Count([]LineCount{{LineID: uuid.New(), CountedQuantity: dec("10"), BarcodeScans: 1}}, nil)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("valid count", func(t *testing.T) {
		po := newTestPO(t, "100", "10", "4")
		actor := uuid.New()
		err := po.Count([]LineCount{
			{LineID: po.Lines[0].ID, CountedQuantity: dec("80"), VarianceReason: VarianceRejected, BarcodeScans: 2},
			{LineID: po.Lines[1].ID, CountedQuantity: dec("12"), VarianceNote: "bonus case", BarcodeScans: 1},
			{LineID: po.Lines[2].ID, CountedQuantity: dec("4"), BarcodeScans: 1},
		}, &actor)
		require.NoError(t, err)

		assert.Equal(t, StatusCounted, po.Status)
		assert.Equal(t, actor, *po.CountedBy)
		assert.Equal(t, VarianceRejected, *po.Lines[0].VarianceReason)
		assert.Nil(t, po.Lines[1].VarianceReason)
		assert.Equal(t, "bonus case", po.Lines[1].VarianceNote)

		err = po.Count(nil, nil)
		assert.ErrorIs(t, err, shared.ErrInvalidState)
	})
}

func TestPurchaseOrder_Receive_Counted(t *testing.T) {
	po := newTestPO(t, "50", "10")
	require.NoError(t, po.Count([]LineCount{
		{LineID: po.Lines[0].ID, CountedQuantity: dec("50"), BarcodeScans: 1},
		{LineID: po.Lines[1].ID, CountedQuantity: dec("8"), VarianceReason: VarianceMissing, BarcodeScans: 1},
	}, nil))

	lines, err := po.Receive("invoices/po-1.jpg", []LineReceipt{
		{LineID: po.Lines[0].ID, TotalCost: decPtr("625"), ReceivedQuantity: decPtr("999")},
		{LineID: po.Lines[1].ID, TotalCost: decPtr("40")},
	}, dec("0.1"), nil)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.True(t, dec("50").Equal(lines[0].Quantity), "counted quantity wins over supplied")
	assert.True(t, dec("12.5").Equal(lines[0].UnitCost))
	assert.True(t, dec("8").Equal(lines[1].Quantity))
	assert.True(t, dec("5").Equal(lines[1].UnitCost))

	assert.Equal(t, StatusReceived, po.Status)
	assert.True(t, dec("665").Equal(po.Subtotal))
	assert.True(t, dec("66.5").Equal(po.TaxAmount))
	assert.True(t, dec("731.5").Equal(po.Total))
	assert.Equal(t, "invoices/po-1.jpg", po.InvoiceImageRef)

	_, err = po.Receive("invoices/po-1.jpg", nil, decimal.Zero, nil)
	assert.ErrorIs(t, err, shared.ErrInvalidState)
}

func TestPurchaseOrder_Receive_Pending(t *testing.T) {
	po := newTestPO(t, "10")

	_, err := po.Receive("inv.jpg", []LineReceipt{{LineID: po.Lines[0].ID, TotalCost: decPtr("20")}}, decimal.Zero, nil)
	assert.ErrorIs(t, err, shared.ErrValidation, "legacy path needs a supplied quantity")

	lines, err := po.Receive("inv.jpg", []LineReceipt{
		{LineID: po.Lines[0].ID, TotalCost: decPtr("20"), ReceivedQuantity: decPtr("0")},
	}, decimal.Zero, nil)
	require.NoError(t, err)
	assert.True(t, lines[0].UnitCost.IsZero(), "zero quantity gives zero unit cost")
}

func TestPurchaseOrder_Receive_Validation(t *testing.T) {
	po := newTestPO(t, "10")
	id := po.Lines[0].ID

	tests := []struct {
		name     string
		invoice  string
		receipts []LineReceipt
		wantErr  error
	}{
		{"missing invoice", " ", []LineReceipt{{LineID: id, TotalCost: decPtr("1"), ReceivedQuantity: decPtr("1")}}, shared.ErrValidation},
		{"missing total cost", "inv", []LineReceipt{{LineID: id, ReceivedQuantity: decPtr("1")}}, shared.ErrValidation},
		{"negative total cost", "inv", []LineReceipt{{LineID: id, TotalCost: decPtr("-1"), ReceivedQuantity: decPtr("1")}}, shared.ErrValidation},
		{"negative quantity", "inv", []LineReceipt{{LineID: id, TotalCost: decPtr("1"), ReceivedQuantity: decPtr("-1")}}, shared.ErrValidation},
		{"unknown line", "inv", []LineReceipt{{LineID: uuid.New(), TotalCost: decPtr("1")}}, shared.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := po.Receive(tt.invoice, tt.receipts, decimal.Zero, nil)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, StatusPending, po.Status)
		})
	}
}

func TestPurchaseOrder_Cancel(t *testing.T) {
	po := newTestPO(t, "10")
	require.NoError(t, po.Cancel(" vendor closed "))
	assert.Equal(t, "vendor closed", po.CancelReason)
	assert.ErrorIs(t, po.Cancel(""), shared.ErrInvalidState)
}
