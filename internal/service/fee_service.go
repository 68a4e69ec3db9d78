package service

import (
	"errors"

	"hustleke/internal/dto"
	"hustleke/internal/tariff"

	"go.uber.org/zap"
)

const currencyKES = "KES"

var ErrInvalidAmount = errors.New("amount must be between 1 and 150000 KES")

type FeeService struct {
	logger *zap.Logger
}

func NewFeeService(logger *zap.Logger) *FeeService {
	return &FeeService{logger: logger}
}

// Quote returns the withdrawal fee breakdown for amount.
func (s *FeeService) Quote(amount int) (*dto.FeeQuoteResponse, error) {
	b := tariff.ComputeBreakdown(amount)
	if b == nil {
		s.logger.Debug("Fee quote rejected", zap.Int("amount", amount))
		return nil, ErrInvalidAmount
	}

	return &dto.FeeQuoteResponse{
		Amount:     b.Amount,
		Charge:     b.Charge,
		Received:   b.Received,
		Percentage: b.Percentage,
		Currency:   currencyKES,
	}, nil
}

// Charge returns the raw band charge. Out-of-range amounts report 0, unlike Quote.
func (s *FeeService) Charge(amount int) *dto.ChargeResponse {
	return &dto.ChargeResponse{
		Amount:   amount,
		Charge:   tariff.Charge(amount),
		Currency: currencyKES,
	}
}

func (s *FeeService) Tariff() []dto.TariffBandResponse {
	bands := tariff.Bands()
	out := make([]dto.TariffBandResponse, 0, len(bands))
	for _, b := range bands {
		out = append(out, dto.TariffBandResponse{Min: b.Min, Max: b.Max, Charge: b.Charge})
	}
	return out
}
