package models

import "github.com/shopspring/decimal"

// FeeSchedule is the immutable fee configuration for one transaction type.
// Payments and payouts carry separate schedules; values are injected from
// configuration, never embedded in calling code.
type FeeSchedule struct {
	FixedFee         decimal.Decimal `json:"fixed_fee"`
	PercentFee       decimal.Decimal `json:"percent_fee"`
	GSTPercentOnFee  decimal.Decimal `json:"gst_percent_on_fee"`
	MinimumPrincipal decimal.Decimal `json:"minimum_principal"`
}

// MonetaryBreakdown is the exact line-item result of a fee computation.
//
// Payments: TotalDebit = Principal + Fee + GST (the customer pays more than
// the stated amount). Payouts: TotalDebit = Principal + Fee and
// NetCredit = Principal — the fee is added to the wallet debit, never
// subtracted from the amount the bank receives.
type MonetaryBreakdown struct {
	Principal  decimal.Decimal `json:"principal"`
	Fee        decimal.Decimal `json:"fee"`
	GST        decimal.Decimal `json:"gst"`
	TotalDebit decimal.Decimal `json:"total_debit"`
	NetCredit  decimal.Decimal `json:"net_credit"`
}
