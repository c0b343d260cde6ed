// Package fees computes payment and payout amounts from an injected fee
// schedule. All arithmetic is decimal with round-half-up to two places
// applied per fee component, so repeated computation of the same inputs is
// byte-identical.
package fees

import (
	"fmt"

	"github.com/shopspring/decimal"

	"paygate/internal/models"
)

var oneHundred = decimal.NewFromInt(100)

type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// ParseAmount converts user input into a decimal principal. Anything that is
// not a plain decimal number is ErrInvalidAmount.
func ParseAmount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return d, nil
}

// ComputePayment computes the breakdown for a gateway payment. The customer
// is debited principal + fee + GST; the stated principal is what lands in
// the wallet.
func (c *Calculator) ComputePayment(principal decimal.Decimal, schedule models.FeeSchedule) (models.MonetaryBreakdown, error) {
	return c.compute(principal, schedule, true)
}

// ComputePayout computes the breakdown for a bank payout. The wallet is
// debited principal + fee and the bank receives exactly the principal; no
// GST line applies to payout fees.
func (c *Calculator) ComputePayout(principal decimal.Decimal, schedule models.FeeSchedule) (models.MonetaryBreakdown, error) {
	return c.compute(principal, schedule, false)
}

// compute applies the fee steps in a fixed order, rounding each component
// to two places before it is summed. Rounding only the final total produces
// different money on real inputs, so the order here is load-bearing.
func (c *Calculator) compute(principal decimal.Decimal, schedule models.FeeSchedule, withGST bool) (models.MonetaryBreakdown, error) {
	if principal.IsNegative() {
		return models.MonetaryBreakdown{}, fmt.Errorf("%w: negative principal", ErrInvalidAmount)
	}
	if principal.LessThan(schedule.MinimumPrincipal) {
		return models.MonetaryBreakdown{}, fmt.Errorf("%w: minimum is %s", ErrBelowMinimum, schedule.MinimumPrincipal.StringFixed(2))
	}

	percentFee := round2(principal.Mul(schedule.PercentFee).Div(oneHundred))
	feeTotal := round2(schedule.FixedFee.Add(percentFee))

	gst := decimal.Zero
	if withGST {
		gst = round2(feeTotal.Mul(schedule.GSTPercentOnFee).Div(oneHundred))
	}

	return models.MonetaryBreakdown{
		Principal:  principal,
		Fee:        feeTotal,
		GST:        gst,
		TotalDebit: principal.Add(feeTotal).Add(gst),
		NetCredit:  principal,
	}, nil
}

// round2 rounds half up to two fractional digits.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
