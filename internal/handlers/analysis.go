package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/emreglvibecoder/darth-vader-api/internal/constants"
	"github.com/emreglvibecoder/darth-vader-api/internal/dto"
	apierrors "github.com/emreglvibecoder/darth-vader-api/internal/errors"
	"github.com/emreglvibecoder/darth-vader-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	conversionUnit         = "Euro"
	conversionErrorMessage = "Veri çekilemedi, internet bağlantınızı kontrol edin."
)

// AnalysisHandler serves the sentiment and currency endpoints. Neither
// touches the database.
type AnalysisHandler struct {
	sentiment *services.SentimentService
	currency  *services.CurrencyService
	log       logrus.FieldLogger
}

func NewAnalysisHandler(sentiment *services.SentimentService, currency *services.CurrencyService, log logrus.FieldLogger) *AnalysisHandler {
	return &AnalysisHandler{
		sentiment: sentiment,
		currency:  currency,
		log:       log,
	}
}

// Sentiment scores the text given in the path
func (h *AnalysisHandler) Sentiment(c *gin.Context) {
	result := h.sentiment.Analyze(c.Param("text"))

	c.JSON(http.StatusOK, dto.SentimentResponse{
		Text:  result.Text,
		Score: result.Score,
		Label: result.Label,
	})
}

// ConvertCurrency converts a EUR amount to TRY. Upstream failures produce
// the "hata" payload with 200 instead of a server error.
func (h *AnalysisHandler) ConvertCurrency(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.Param("amount"), 64)
	if err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid amount", map[string]string{"amount": "must be a number"})
		return
	}

	conv, err := h.currency.Convert(c.Request.Context(), amount)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) {
			apierrors.BadRequestWithDetails(c, "Invalid amount", map[string]string{"amount": "must be a finite number"})
			return
		}
		if errors.Is(err, services.ErrAmountTooLarge) {
			apierrors.BadRequestWithDetails(c, "Invalid amount", map[string]string{"amount": "is too large to convert"})
			return
		}
		h.log.WithFields(logrus.Fields{
			"request_id": c.GetString(constants.ContextKeyRequestID),
			"error":      err.Error(),
		}).Warn("exchange rate lookup failed")
		c.JSON(http.StatusOK, dto.ConversionErrorResponse{Error: conversionErrorMessage})
		return
	}

	c.JSON(http.StatusOK, dto.ConversionResponse{
		Unit:      conversionUnit,
		Amount:    conv.Amount,
		Rate:      conv.Rate,
		Converted: conv.Converted,
		Source:    services.RateSourceName,
	})
}
