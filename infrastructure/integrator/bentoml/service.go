package bentoml

import (
	"context"

	"github.com/vfg2006/sales-prediction-api/infrastructure/integrator/bentoml/bentoclient"
	"github.com/vfg2006/sales-prediction-api/internal/config"
)

// Predictor define a interface para obter predições de vendas do serviço
// de scoring. O retorno é posicionalmente alinhado com as linhas do CSV.
type Predictor interface {
	PredictCSV(ctx context.Context, filename string, csv []byte, rowCount int) ([]float64, error)
}

type BentoMLService struct {
	cfg    *config.Config
	Client bentoclient.Client
}

func New(cfg *config.Config, client bentoclient.Client) Predictor {
	return &BentoMLService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *BentoMLService) PredictCSV(ctx context.Context, filename string, csv []byte, rowCount int) ([]float64, error) {
	resp, err := s.Client.PredictCSV(bentoclient.PredictCSVParams{
		Ctx:      ctx,
		Filename: filename,
		CSV:      csv,
		RowCount: rowCount,
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}
