package handlers

import (
	"strconv"
	"strings"

	"hustleke/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type FeeHandler struct {
	feeService *service.FeeService
	logger     *zap.Logger
}

func NewFeeHandler(feeService *service.FeeService, logger *zap.Logger) *FeeHandler {
	return &FeeHandler{
		feeService: feeService,
		logger:     logger,
	}
}

// Quote godoc
// @Summary Withdrawal fee breakdown
// @Description Charge, amount received and fee percentage for an M-Pesa withdrawal of 1 to 150000 KES.
// @Tags fees
// @Produce json
// @Param amount query int true "Amount in KES"
// @Success 200 {object} dto.FeeQuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /fees/quote [get]
func (h *FeeHandler) Quote(c *fiber.Ctx) error {
	amount, ok := parseAmount(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "amount must be a whole number",
		})
	}

	quote, err := h.feeService.Quote(amount)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Enter a valid amount between 1 and 150000 KES",
		})
	}

	return c.JSON(quote)
}

// Charge godoc
// @Summary Raw tariff-band charge
// @Description Charge of the band containing amount. Amounts outside every band report 0.
// @Tags fees
// @Produce json
// @Param amount query int true "Amount in KES"
// @Success 200 {object} dto.ChargeResponse
// @Failure 400 {object} map[string]string
// @Router /fees/charge [get]
func (h *FeeHandler) Charge(c *fiber.Ctx) error {
	amount, ok := parseAmount(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "amount must be a whole number",
		})
	}
	return c.JSON(h.feeService.Charge(amount))
}

// Tariff godoc
// @Summary M-Pesa tariff table
// @Tags fees
// @Produce json
// @Success 200 {array} dto.TariffBandResponse
// @Router /fees/tariff [get]
func (h *FeeHandler) Tariff(c *fiber.Ctx) error {
	return c.JSON(h.feeService.Tariff())
}

func parseAmount(c *fiber.Ctx) (int, bool) {
	amount, err := strconv.Atoi(strings.TrimSpace(c.Query("amount")))
	if err != nil {
		return 0, false
	}
	return amount, true
}
