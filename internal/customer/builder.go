package customer

import (
	"strconv"
	"strings"

	"github.com/dradle/my-bike-rent/internal/dates"
	"github.com/dradle/my-bike-rent/internal/model"
	"github.com/dradle/my-bike-rent/internal/sheet"
)

// Build validates the table's identity and extracts the customer record.
// Field-level problems never fail the build; they fall back to defaults.
func Build(t *sheet.Table, identifier string) (model.CustomerRecord, error) {
	if err := Validate(t, identifier); err != nil {
		return model.CustomerRecord{}, err
	}

	return model.CustomerRecord{
		Identifier:   identifier,
		BikeName:     textOr(t.Cell(headerRow, colBikeName), defaultBikeName),
		Tariff:       numberOrZero(t.Cell(headerRow, colTariff)),
		DebtFlag:     numberOrZero(t.Cell(headerRow, colDebtFlag)),
		AdminMessage: textOr(t.Cell(headerRow, colAdminMessage), ""),
		DebtAmount:   numberOrZero(t.Cell(debtAmountRow, colDebtAmount)),
		LastPayment:  LastPayment(t),
	}, nil
}

// LastPayment walks the history rows bottom-up and stops at the first row
// with a non-empty amount. If that row's date is unusable there is no last
// payment; earlier rows are not considered.
func LastPayment(t *sheet.Table) *model.PaymentRecord {
	for i := t.Len() - 1; i >= firstHistoryRow; i-- {
		amount := t.Cell(i, colPaymentSum)
		if amount.IsEmpty() {
			continue
		}

		display := dates.ExtractDisplayText(t.Cell(i, colPaymentDate).Text())
		d, ok := dates.ParseCanonicalOrIso(display)
		if !ok {
			return nil
		}
		return &model.PaymentRecord{
			DisplayDate: dates.FormatCanonical(d),
			Date:        d,
			Amount:      amountOf(amount),
		}
	}
	return nil
}

func textOr(c model.Cell, def string) string {
	if !c.Truthy() {
		return def
	}
	return c.Text()
}

func numberOrZero(c model.Cell) float64 {
	if n, ok := c.Number(); ok {
		return n
	}
	return 0
}

// amountOf accepts numbers and numeric text; anything else is 0.
func amountOf(c model.Cell) float64 {
	if n, ok := c.Number(); ok {
		return n
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(c.Text()), 64)
	if err != nil {
		return 0
	}
	return n
}
