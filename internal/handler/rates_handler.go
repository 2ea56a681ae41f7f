package handler

import (
	"errors"
	"net/http"

	"github.com/artkov/lancer/lancer-backend/internal/domain"
	"github.com/artkov/lancer/lancer-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// RatesHandler exposes the exchange-rate cache and conversion to the
// presentation layer
type RatesHandler struct {
	currencyService *service.CurrencyService
}

// NewRatesHandler creates a new RatesHandler
func NewRatesHandler(currencyService *service.CurrencyService) *RatesHandler {
	return &RatesHandler{currencyService: currencyService}
}

// RatesResponse represents the rate snapshot in API responses
type RatesResponse struct {
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	Timestamp int64              `json:"timestamp"`
}

// ConvertResponse reports the outcome of one conversion. Main is the amount
// in the source currency, Converted the amount in the target currency; the
// rendering layer decides markup.
type ConvertResponse struct {
	Main      string `json:"main"`
	Converted string `json:"converted"`
	From      string `json:"from"`
	To        string `json:"to"`
}

// GetRates handles GET /api/rates
func (h *RatesHandler) GetRates(c echo.Context) error {
	snapshot := h.currencyService.Rates()
	return c.JSON(http.StatusOK, RatesResponse{
		Base:      snapshot.Base,
		Rates:     snapshot.Rates,
		Timestamp: snapshot.FetchedAt.UnixMilli(),
	})
}

// Convert handles GET /api/rates/convert?amount=&from=&to=
func (h *RatesHandler) Convert(c echo.Context) error {
	amountStr := c.QueryParam("amount")
	from := c.QueryParam("from")
	to := c.QueryParam("to")
	if amountStr == "" || from == "" || to == "" {
		return NewValidationError(c, "amount, from and to query parameters are required")
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return NewValidationError(c, "amount must be a valid decimal number")
	}

	snapshot := h.currencyService.Rates()
	converted, err := h.currencyService.Convert(amount, from, to, snapshot.Rates)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownCurrency) {
			return NewValidationError(c, "unknown currency code")
		}
		return NewInternalError(c, "Failed to convert amount")
	}

	return c.JSON(http.StatusOK, ConvertResponse{
		Main:      amount.StringFixed(2),
		Converted: converted.StringFixed(2),
		From:      from,
		To:        to,
	})
}
