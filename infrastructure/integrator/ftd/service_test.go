package ftd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/capex-consolidado/infrastructure/integrator/ftd/ftdclient"
	"github.com/vfg2006/capex-consolidado/internal/config"
)

func TestFTDService_GetFeedRates(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		validate func(t *testing.T, err error, rates int)
	}{
		{
			name:   "Converte taxas numéricas e textuais",
			status: http.StatusOK,
			body: `{"datos":[
				{"fecha_vigencia":"2026-01-30","tasa_bcv":36.5,"tasa_farmatodo":"40","tasa_referencial":null},
				{"fecha_vigencia":"2026-02-02T00:00:00","tasa_bcv":"37","tasa_farmatodo":41,"tasa_referencial":38},
				{"fecha_vigencia":"sem data","tasa_bcv":1,"tasa_farmatodo":1}
			]}`,
			validate: func(t *testing.T, err error, rates int) {
				require.NoError(t, err)
				assert.Equal(t, 2, rates)
			},
		},
		{
			name:   "Resposta sem datos é erro",
			status: http.StatusOK,
			body:   `{"mensaje":"ok"}`,
			validate: func(t *testing.T, err error, rates int) {
				assert.ErrorIs(t, err, ftdclient.ErrMissingData)
			},
		},
		{
			name:   "Status diferente de 200 é erro",
			status: http.StatusBadGateway,
			body:   `upstream`,
			validate: func(t *testing.T, err error, rates int) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "502")
				assert.Contains(t, err.Error(), "upstream")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			service := New(ftdclient.NewClient(config.Feed{Timeout: time.Second}))
			rates, err := service.GetFeedRates(context.Background(), server.URL)
			tt.validate(t, err, len(rates))
		})
	}
}

func TestFTDService_GetFeedRates_Values(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"datos":[{"fecha_vigencia":"2026-01-30","tasa_bcv":36.5,"tasa_farmatodo":"40.25","tasa_referencial":39}]}`))
	}))
	defer server.Close()

	service := New(ftdclient.NewClient(config.Feed{}))
	rates, err := service.GetFeedRates(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, rates, 1)

	assert.Equal(t, time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC), rates[0].Date)
	assert.True(t, rates[0].FeedRate.Equal(decimal.RequireFromString("40.25")))
	assert.True(t, rates[0].CentralBankRate.Equal(decimal.RequireFromString("36.5")))
	assert.True(t, rates[0].ReferenceRate.Equal(decimal.NewFromInt(39)))
}
