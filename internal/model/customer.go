package model

import (
	"encoding/json"
	"time"

	"github.com/dradle/my-bike-rent/internal/dates"
)

// PaymentPeriodDays is the offset from the last payment to the next due date.
const PaymentPeriodDays = 7

// PaymentRecord is the latest payment found in the history rows.
type PaymentRecord struct {
	DisplayDate string    `json:"display_date"` // DD.MM.YYYY
	Date        time.Time `json:"date"`
	Amount      float64   `json:"amount"`
}

// CustomerRecord is the read-only rental status of one customer.
type CustomerRecord struct {
	Identifier   string         `json:"identifier"`
	BikeName     string         `json:"bike_name"`
	Tariff       float64        `json:"tariff"`
	DebtFlag     float64        `json:"debt_flag"` // negative => debt
	AdminMessage string         `json:"admin_message"`
	DebtAmount   float64        `json:"debt_amount"`
	LastPayment  *PaymentRecord `json:"last_payment"`
}

// HasDebt is true only for a negative debt flag; zero and positive mean no debt.
func (r CustomerRecord) HasDebt() bool { return r.DebtFlag < 0 }

// NextPaymentDue has no storage of its own: it exists iff LastPayment does.
func (r CustomerRecord) NextPaymentDue() (time.Time, bool) {
	if r.LastPayment == nil {
		return time.Time{}, false
	}
	return dates.AddDays(r.LastPayment.Date, PaymentPeriodDays), true
}

func (r CustomerRecord) MarshalJSON() ([]byte, error) {
	type plain CustomerRecord
	out := struct {
		plain
		HasDebt        bool    `json:"has_debt"`
		NextPaymentDue *string `json:"next_payment_due"`
	}{plain: plain(r), HasDebt: r.HasDebt()}

	if due, ok := r.NextPaymentDue(); ok {
		s := dates.FormatCanonical(due)
		out.NextPaymentDue = &s
	}
	return json.Marshal(out)
}
