package customer

// Fixed sheet positions (zero-based). Columns: A=0 B=1 C=2 D=3 E=4 F=5.
const (
	headerRow = 0

	colBikeName     = 0 // A1
	colTariff       = 1 // B1
	colDebtFlag     = 2 // C1
	colAdminMessage = 3 // D1
	colIdentity     = 5 // F1

	debtAmountRow = 1 // E2
	colDebtAmount = 4

	// History rows start at row 3 of the sheet.
	firstHistoryRow = 2
	colPaymentDate  = 0
	colPaymentSum   = 2
)

const defaultBikeName = "Unknown Bike"
