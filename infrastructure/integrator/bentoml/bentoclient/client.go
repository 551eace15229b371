package bentoclient

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-prediction-api/internal/config"
)

type Client interface {
	PredictCSV(params PredictCSVParams) (PredictCSVResponse, error)
}

type BentoClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente HTTP do BentoML.
func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.BentoML.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 45 * time.Second
	}

	return &BentoClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}
