// Package analyzing orquestra o pipeline de um envio: carga do CSV,
// predição, enriquecimento e, a cada combinação de filtros, agregação e
// projeção sobre o dataset enriquecido mantido em memória.
package analyzing

import (
	"bytes"
	"context"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-prediction-api/infrastructure/integrator/bentoml"
	"github.com/vfg2006/sales-prediction-api/infrastructure/repository"
	"github.com/vfg2006/sales-prediction-api/internal/domain"
	"github.com/vfg2006/sales-prediction-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-prediction-api/internal/usecases/enriching"
	"github.com/vfg2006/sales-prediction-api/internal/usecases/filtering"
	"github.com/vfg2006/sales-prediction-api/internal/usecases/ingesting"
	"github.com/vfg2006/sales-prediction-api/internal/usecases/reporting"
)

const (
	submissionIDLength   = 12
	submissionIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

type Analyzer interface {
	// CreateSubmission executa o pipeline completo para um dataset: valida
	// o esquema, chama o serviço de predição uma única vez, enriquece e
	// armazena o resultado sob um identificador exclusivo do envio.
	CreateSubmission(ctx context.Context, filename string, csv []byte) (*domain.SubmissionReceipt, error)

	// FilterOptions retorna os valores de seleção por dimensão do envio.
	FilterOptions(id string) (*domain.FilterOptions, error)

	// Analyze aplica os filtros sobre o dataset enriquecido já armazenado
	// e calcula KPIs, série temporal e visão detalhada. Nunca reinvoca o
	// serviço de predição.
	Analyze(id string, criteria domain.FilterCriteria) (*domain.AnalysisResponse, error)
}

type Service struct {
	loader     ingesting.Loader
	predictor  bentoml.Predictor
	merger     enriching.Merger
	filterer   filtering.Filterer
	summarizer aggregating.Summarizer
	projector  reporting.Projector

	submissionRepository repository.SubmissionRepository

	// Cache por envio: cada dataset enriquecido pertence exclusivamente ao
	// seu envio; nenhum buffer compartilhado entre submissões.
	mu    sync.RWMutex
	cache map[string]*domain.Submission
}

func NewService(
	loader ingesting.Loader,
	predictor bentoml.Predictor,
	merger enriching.Merger,
	filterer filtering.Filterer,
	summarizer aggregating.Summarizer,
	projector reporting.Projector,
) *Service {
	return &Service{
		loader:     loader,
		predictor:  predictor,
		merger:     merger,
		filterer:   filterer,
		summarizer: summarizer,
		projector:  projector,
		cache:      make(map[string]*domain.Submission),
	}
}

// WithStore habilita a persistência dos envios, permitindo refiltragem
// após reinício do processo e a varredura de retenção.
func (s *Service) WithStore(submissionRepo repository.SubmissionRepository) *Service {
	s.submissionRepository = submissionRepo
	return s
}

func (s *Service) CreateSubmission(ctx context.Context, filename string, csv []byte) (*domain.SubmissionReceipt, error) {
	// Rejeitar esquema inválido antes de qualquer chamada de rede.
	records, err := s.loader.Load(bytes.NewReader(csv))
	if err != nil {
		return nil, err
	}

	predictions, err := s.predictor.PredictCSV(ctx, filename, csv, len(records))
	if err != nil {
		return nil, err
	}

	// O enriquecimento só prossegue com uma resposta completa e alinhada;
	// chamada abandonada ou desalinhada não deixa estado parcial.
	enriched, err := s.merger.Merge(records, predictions)
	if err != nil {
		return nil, err
	}

	id, err := gonanoid.Generate(submissionIDAlphabet, submissionIDLength)
	if err != nil {
		return nil, err
	}

	submission := &domain.Submission{
		ID:        id,
		Filename:  filename,
		RowCount:  len(enriched),
		Records:   enriched,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.cache[id] = submission
	s.mu.Unlock()

	if s.submissionRepository != nil {
		if err := s.submissionRepository.Save(submission); err != nil {
			// O envio continua utilizável pelo cache; a persistência é
			// necessária apenas para sobreviver a reinícios.
			logrus.WithError(err).WithField("submission_id", id).Error("analyzing: erro ao persistir o envio")
		}
	}

	return &domain.SubmissionReceipt{
		ID:        submission.ID,
		Filename:  submission.Filename,
		RowCount:  submission.RowCount,
		CreatedAt: submission.CreatedAt,
		Options:   s.filterer.Options(submission.Records),
	}, nil
}

func (s *Service) FilterOptions(id string) (*domain.FilterOptions, error) {
	submission, err := s.getSubmission(id)
	if err != nil {
		return nil, err
	}

	options := s.filterer.Options(submission.Records)
	return &options, nil
}

func (s *Service) Analyze(id string, criteria domain.FilterCriteria) (*domain.AnalysisResponse, error) {
	submission, err := s.getSubmission(id)
	if err != nil {
		return nil, err
	}

	filtered := s.filterer.Apply(submission.Records, criteria)

	kpis, timeSeries, err := s.summarizer.Summarize(filtered)
	if err != nil {
		return nil, err
	}

	details, err := s.projector.DetailView(filtered)
	if err != nil {
		return nil, err
	}

	return &domain.AnalysisResponse{
		SubmissionID: submission.ID,
		Filters:      criteria,
		RecordCount:  len(filtered),
		KPIs:         *kpis,
		TimeSeries:   timeSeries,
		Details:      details,
	}, nil
}

// getSubmission resolve o envio pelo cache e, em falta, pelo repositório.
func (s *Service) getSubmission(id string) (*domain.Submission, error) {
	s.mu.RLock()
	submission, ok := s.cache[id]
	s.mu.RUnlock()

	if ok {
		return submission, nil
	}

	if s.submissionRepository != nil {
		stored, err := s.submissionRepository.GetByID(id)
		if err != nil {
			return nil, err
		}
		if stored != nil {
			s.mu.Lock()
			s.cache[id] = stored
			s.mu.Unlock()
			return stored, nil
		}
	}

	return nil, domain.ErrSubmissionNotFound
}

// Evict remove envios do cache em memória; chamado pela varredura de
// retenção junto com a limpeza do repositório.
func (s *Service) Evict(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, submission := range s.cache {
		if submission.CreatedAt.Before(cutoff) {
			delete(s.cache, id)
			removed++
		}
	}

	return removed
}
