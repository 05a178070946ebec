package dto

import (
	"time"

	"finance-tracker/internal/core/domain"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-day wire format used by the API and the rate feed.
const DateLayout = "2006-01-02"

// RatesResponse carries the resolved rate table with its provenance.
type RatesResponse struct {
	Rates        map[string]decimal.Decimal `json:"rates"`
	Date         string                     `json:"date"`
	Source       domain.RateProvenance      `json:"source"`
	BaseCurrency string                     `json:"baseCurrency"`
}

// ToRatesResponse converts a domain.RateTable to RatesResponse DTO.
func ToRatesResponse(table *domain.RateTable) RatesResponse {
	return RatesResponse{
		Rates:        table.Rates,
		Date:         table.Date.Format(DateLayout),
		Source:       table.Provenance,
		BaseCurrency: domain.BaseCurrency,
	}
}

// ConvertRequest defines the payload for a currency conversion.
type ConvertRequest struct {
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	FromCurrency string          `json:"fromCurrency" binding:"required,currencycode"`
	ToCurrency   string          `json:"toCurrency" binding:"required,currencycode"`
}

// ConvertResponse echoes the conversion inputs alongside the result.
type ConvertResponse struct {
	OriginalAmount  decimal.Decimal `json:"originalAmount"`
	FromCurrency    string          `json:"fromCurrency"`
	ToCurrency      string          `json:"toCurrency"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	Timestamp       time.Time       `json:"timestamp"`
}

// PreferenceResponse carries the user's display currency.
type PreferenceResponse struct {
	DisplayCurrency string `json:"displayCurrency"`
}

// UpdatePreferenceRequest defines the payload for changing the display currency.
type UpdatePreferenceRequest struct {
	DisplayCurrency string `json:"displayCurrency" binding:"required,currencycode"`
}

// UpdatePreferenceResponse echoes the stored value.
type UpdatePreferenceResponse struct {
	DisplayCurrency string `json:"displayCurrency"`
	Message         string `json:"message"`
}

// UpdateRatesResponse reports the outcome of a forced refresh cycle.
type UpdateRatesResponse struct {
	Message       string `json:"message"`
	Date          string `json:"date"`
	CurrencyCount int    `json:"currencyCount"`
}
