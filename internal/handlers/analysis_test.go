package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/emreglvibecoder/darth-vader-api/internal/dto"
	"github.com/emreglvibecoder/darth-vader-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedScorer float64

func (f fixedScorer) Polarity(string) float64 { return float64(f) }

type unreachableDoer struct{}

func (unreachableDoer) Do(*http.Request) (*http.Response, error) {
	return nil, errors.New("dial tcp: no route to host")
}

type fixedRateDoer string

func (d fixedRateDoer) Do(*http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(string(d))),
	}, nil
}

func newAnalysisRouter(scorer services.PolarityScorer, doer services.HTTPDoer, log *logrus.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAnalysisHandler(
		services.NewSentimentService(scorer),
		services.NewCurrencyService(doer, "http://rates.invalid/latest?from=EUR&to=TRY"),
		log,
	)
	r := gin.New()
	r.GET("/analiz/:text", h.Sentiment)
	r.GET("/doviz-hesapla/:amount", h.ConvertCurrency)
	return r
}

func TestAnalysisHandler_SentimentLabels(t *testing.T) {
	log, _ := test.NewNullLogger()

	tests := []struct {
		score float64
		label string
	}{
		{0.6, "Pozitif / Mutlu 😊"},
		{-0.6, "Negatif / Üzgün 😔"},
		{0, "Nötr / Belirsiz 😐"},
	}

	for _, tt := range tests {
		r := newAnalysisRouter(fixedScorer(tt.score), unreachableDoer{}, log)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/analiz/merhaba", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.SentimentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "merhaba", resp.Text)
		assert.Equal(t, tt.score, resp.Score)
		assert.Equal(t, tt.label, resp.Label)
	}
}

func TestAnalysisHandler_CurrencyUpstreamDown(t *testing.T) {
	log, hook := test.NewNullLogger()
	r := newAnalysisRouter(fixedScorer(0), unreachableDoer{}, log)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/doviz-hesapla/100", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"hata":"Veri çekilemedi, internet bağlantınızı kontrol edin."}`, w.Body.String())
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestAnalysisHandler_CurrencyBadAmount(t *testing.T) {
	log, _ := test.NewNullLogger()
	r := newAnalysisRouter(fixedScorer(0), unreachableDoer{}, log)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/doviz-hesapla/on-euro", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalysisHandler_CurrencyHugeAmount(t *testing.T) {
	log, _ := test.NewNullLogger()
	r := newAnalysisRouter(fixedScorer(0), fixedRateDoer(`{"rates":{"TRY":35.5}}`), log)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/doviz-hesapla/1e306", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ConversionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, math.IsInf(resp.Converted, 0))
	assert.Equal(t, 1e306*35.5, resp.Converted)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/doviz-hesapla/1e308", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, w.Body.String())
}
