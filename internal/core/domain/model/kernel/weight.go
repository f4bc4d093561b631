package kernel

import (
	"fmt"

	"shopdelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Weight is a non-negative mass in kilograms. Sums are exact, so package loads compare
// reliably. The zero value is a valid zero weight.
type Weight struct {
	kg decimal.Decimal
}

func NewWeight(kg decimal.Decimal) (Weight, error) {
	if kg.IsNegative() {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%s is negative", kg))
	}
	return Weight{kg: kg}, nil
}

func NewWeightFromFloat(kg float64) (Weight, error) {
	return NewWeight(decimal.NewFromFloat(kg))
}

func (w Weight) Add(other Weight) Weight {
	return Weight{kg: w.kg.Add(other.kg)}
}

func (w Weight) Decimal() decimal.Decimal {
	return w.kg
}

func (w Weight) Float64() float64 {
	return w.kg.InexactFloat64()
}

func (w Weight) Cmp(other Weight) int {
	return w.kg.Cmp(other.kg)
}

func (w Weight) Equal(other Weight) bool {
	return w.kg.Equal(other.kg)
}

func (w Weight) String() string {
	return w.kg.String() + "kg"
}
