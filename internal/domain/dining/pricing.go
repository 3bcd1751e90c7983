package dining

import (
	"github.com/RayLight-369/rms/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// TaxRate is the fixed sales tax applied to every order. It is not
// configurable per order.
var TaxRate = decimal.NewFromFloat(0.08)

// Totals breaks an order amount into its components
type Totals struct {
	Subtotal valueobject.Money
	Tax      valueobject.Money
	Total    valueobject.Money
}

// ComputeTotals prices a set of lines: subtotal is the sum of line
// subtotals, tax is applied on top, total is their sum. Called once at
// submission; orders store only the resulting total.
func ComputeTotals(lines []OrderLine) Totals {
	subtotal := valueobject.ZeroUSD()
	for _, line := range lines {
		subtotal = subtotal.MustAdd(line.Subtotal())
	}

	tax := subtotal.Multiply(TaxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.MustAdd(tax),
	}
}

// SplitTotal reconstructs subtotal and tax from a stored total for
// receipt display. It inverts ComputeTotals exactly (subtotal equals
// total divided by 1.08) so the two derivations agree to the cent.
func SplitTotal(total valueobject.Money) Totals {
	divisor := decimal.NewFromInt(1).Add(TaxRate)
	subtotal, err := total.Divide(divisor)
	if err != nil {
		// divisor is a constant greater than one
		panic(err)
	}
	tax, err := total.Subtract(subtotal)
	if err != nil {
		panic(err)
	}

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    total,
	}
}
