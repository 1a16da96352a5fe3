package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
)

const (
	CurrencyBase   = "EUR"
	CurrencyTarget = "TRY"
	RateSourceName = "Frankfurter API"
)

var (
	ErrRateUnavailable = errors.New("exchange rate unavailable")
	ErrInvalidAmount   = errors.New("amount must be a finite number")
	ErrAmountTooLarge  = errors.New("converted amount out of range")
)

// HTTPDoer is the part of *http.Client the converter needs.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Conversion is a EUR amount converted to TRY.
type Conversion struct {
	Amount    float64
	Rate      float64
	Converted float64
}

// CurrencyService converts EUR to TRY using a Frankfurter-style rate
// endpoint. Every call fetches the rate again.
type CurrencyService struct {
	client HTTPDoer
	url    string
}

func NewCurrencyService(client HTTPDoer, url string) *CurrencyService {
	if client == nil {
		client = http.DefaultClient
	}
	return &CurrencyService{client: client, url: url}
}

type rateResponse struct {
	Rates map[string]*float64 `json:"rates"`
}

// Convert fetches the current EUR→TRY rate and applies it to amount.
// All upstream failures are reported as ErrRateUnavailable.
func (s *CurrencyService) Convert(ctx context.Context, amount float64) (*Conversion, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, ErrInvalidAmount
	}

	rate, err := s.fetchRate(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRateUnavailable, err)
	}

	converted := amount * rate
	if math.IsInf(converted, 0) || math.IsNaN(converted) {
		return nil, ErrAmountTooLarge
	}

	return &Conversion{
		Amount:    amount,
		Rate:      rate,
		Converted: RoundCents(converted),
	}, nil
}

func (s *CurrencyService) fetchRate(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body rateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode rate response: %w", err)
	}

	rate, ok := body.Rates[CurrencyTarget]
	if !ok || rate == nil {
		return 0, fmt.Errorf("rate for %s missing", CurrencyTarget)
	}
	return *rate, nil
}

// centsLimit is where float64 stops resolving whole cents.
const centsLimit = 1e15

// RoundCents rounds to two decimal places, halves away from zero. Values
// too large to carry cents are returned unchanged.
func RoundCents(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) || math.Abs(v) >= centsLimit {
		return v
	}
	return math.Round(v*100) / 100
}
