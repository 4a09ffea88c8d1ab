package costbasis

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestCalculator_LedgerContract(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := NewMockLedger(ctrl)
	cutoff := day("2021-01-01")

	splits := []Split{
		{Date: day("2020-07-01"), Security: "MSFT", Numerator: 2, Denominator: 1},
	}
	activities := []*Activity{
		{Date: day("2020-01-01"), Type: Buy, Security: "MSFT", Account: Ameritrade, Units: Q(100), Amount: USD(1000)},
		{Date: day("2020-08-01"), Type: Sell, Security: "MSFT", Account: Ameritrade, Units: Q(150), Amount: USD(3000)},
	}

	// Securities are processed in ticker order, each asked once for its
	// activities up to the cutoff and its splits.
	gomock.InOrder(
		ledger.EXPECT().Securities().Return([]Security{VFIAX, MSFT}),
		ledger.EXPECT().Splits("MSFT").Return(splits),
		ledger.EXPECT().Activities("MSFT", cutoff).Return(activities),
		ledger.EXPECT().Splits("VFIAX").Return(nil),
		ledger.EXPECT().Activities("VFIAX", cutoff).Return(nil),
	)

	calc := NewCalculator(ledger, cutoff)

	sales := calc.Sales()
	require.Len(t, sales, 1)
	require.True(t, sales[0].UnitsSold.Equal(Q(150)))
	require.True(t, sales[0].Gain().Equal(USD(2250)))

	// The calculator never modifies what the ledger returns.
	require.Len(t, splits, 1)
	require.True(t, activities[0].Units.Equal(Q(100)))
}
