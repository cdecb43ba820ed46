// README: Common money value object used across modules (amounts in centavos).
package types

import (
	"fmt"
	"math"
)

const CurrencyBRL = "BRL"

type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// BRL builds a Money from a value in reais, rounded to the nearest centavo.
func BRL(reais float64) Money {
	return Money{Amount: int64(math.Round(reais * 100)), Currency: CurrencyBRL}
}

func (m Money) Reais() float64 {
	return float64(m.Amount) / 100
}

// Scale multiplies the amount by f and rounds to the nearest centavo.
func (m Money) Scale(f float64) Money {
	return Money{Amount: int64(math.Round(float64(m.Amount) * f)), Currency: m.currency()}
}

func (m Money) Max(o Money) Money {
	if o.Amount > m.Amount {
		return Money{Amount: o.Amount, Currency: m.currency()}
	}
	return Money{Amount: m.Amount, Currency: m.currency()}
}

func (m Money) IsZero() bool {
	return m.Amount == 0
}

func (m Money) String() string {
	sign := ""
	amount := m.Amount
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	prefix := "R$"
	if m.currency() != CurrencyBRL {
		prefix = m.Currency + " "
	}
	return fmt.Sprintf("%s%s%d.%02d", sign, prefix, amount/100, amount%100)
}

func (m Money) currency() string {
	if m.Currency == "" {
		return CurrencyBRL
	}
	return m.Currency
}
