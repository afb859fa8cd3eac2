package dto

import "stellarstay/internal/domain/shared/money"

// MoneyDTO serializes amounts as exact decimal strings with two fractional
// digits, never as binary floats.
type MoneyDTO struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

func MapMoney(value money.Money) MoneyDTO {
	return MoneyDTO{
		Amount:   value.Decimal(),
		Currency: value.Currency,
	}
}
