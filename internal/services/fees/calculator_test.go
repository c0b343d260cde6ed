package fees

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paygate/internal/models"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func schedule(fixed, percent, gst, minimum string) models.FeeSchedule {
	return models.FeeSchedule{
		FixedFee:         dec(fixed),
		PercentFee:       dec(percent),
		GSTPercentOnFee:  dec(gst),
		MinimumPrincipal: dec(minimum),
	}
}

func TestComputePayment_ZeroFees(t *testing.T) {
	calc := NewCalculator()

	b, err := calc.ComputePayment(dec("1000"), schedule("0", "0", "0", "1"))
	require.NoError(t, err)

	assert.True(t, b.TotalDebit.Equal(dec("1000.00")), "got %s", b.TotalDebit)
	assert.True(t, b.Fee.IsZero())
	assert.True(t, b.GST.IsZero())
}

// The per-component rounding order is load-bearing: an implementation that
// sums first and rounds once computes 366.75 here, not 366.76.
func TestComputePayment_RoundsEachComponent(t *testing.T) {
	calc := NewCalculator()

	b, err := calc.ComputePayment(dec("333.33"), schedule("20", "2.5", "18", "1"))
	require.NoError(t, err)

	// percent fee: round2(333.33 * 2.5%) = round2(8.33325) = 8.33
	// fee total:   round2(20 + 8.33)                       = 28.33
	// gst:         round2(28.33 * 18%)  = round2(5.0994)   = 5.10
	assert.True(t, b.Fee.Equal(dec("28.33")), "fee %s", b.Fee)
	assert.True(t, b.GST.Equal(dec("5.10")), "gst %s", b.GST)
	assert.True(t, b.TotalDebit.Equal(dec("366.76")), "total %s", b.TotalDebit)
	assert.True(t, b.NetCredit.Equal(dec("333.33")))
}

func TestComputePayout_FeeAddedToDebitNotCredit(t *testing.T) {
	calc := NewCalculator()

	b, err := calc.ComputePayout(dec("500"), schedule("20", "0", "0", "100"))
	require.NoError(t, err)

	assert.True(t, b.TotalDebit.Equal(dec("520.00")), "total %s", b.TotalDebit)
	assert.True(t, b.NetCredit.Equal(dec("500")), "net %s", b.NetCredit)
	assert.True(t, b.GST.IsZero(), "payout fee carries no GST line")
}

func TestComputePayout_GSTNeverAppliesEvenWhenConfigured(t *testing.T) {
	calc := NewCalculator()

	b, err := calc.ComputePayout(dec("500"), schedule("20", "0", "18", "100"))
	require.NoError(t, err)

	assert.True(t, b.GST.IsZero())
	assert.True(t, b.TotalDebit.Equal(dec("520.00")))
}

func TestCompute_BelowMinimum(t *testing.T) {
	calc := NewCalculator()

	_, err := calc.ComputePayout(dec("50"), schedule("20", "0", "0", "100"))
	assert.ErrorIs(t, err, ErrBelowMinimum)

	_, err = calc.ComputePayment(dec("0.99"), schedule("0", "2.5", "18", "1"))
	assert.ErrorIs(t, err, ErrBelowMinimum)
}

func TestCompute_InvalidAmount(t *testing.T) {
	calc := NewCalculator()

	_, err := calc.ComputePayment(dec("-1"), schedule("0", "0", "0", "1"))
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount("123.45")
	require.NoError(t, err)
	assert.True(t, d.Equal(dec("123.45")))

	for _, raw := range []string{"", "abc", "12,50", "NaN"} {
		_, err := ParseAmount(raw)
		assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", raw)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	calc := NewCalculator()
	s := schedule("20", "2.5", "18", "1")

	first, err := calc.ComputePayment(dec("333.33"), s)
	require.NoError(t, err)
	second, err := calc.ComputePayment(dec("333.33"), s)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
