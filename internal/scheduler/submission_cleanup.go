// Package scheduler contém os serviços de agendamento da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-prediction-api/infrastructure/repository"
	"github.com/vfg2006/sales-prediction-api/internal/config"
)

// CacheEvictor remove do cache em memória os envios anteriores ao corte.
type CacheEvictor interface {
	Evict(cutoff time.Time) int
}

type SubmissionCleanupConfig struct {
	CronSchedule string
	TTL          time.Duration
	Enabled      bool
}

// SubmissionCleanupService varre periodicamente os envios expirados,
// garantindo que os artefatos temporários de cada submissão sejam
// removidos em todos os caminhos, não apenas no desligamento.
type SubmissionCleanupService struct {
	scheduler           *gocron.Scheduler
	submissionRepo      repository.SubmissionRepository
	evictor             CacheEvictor
	config              SubmissionCleanupConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewSubmissionCleanupService(
	submissionRepo repository.SubmissionRepository,
	evictor CacheEvictor,
	cfg *config.Config,
) *SubmissionCleanupService {
	cleanupConfig := SubmissionCleanupConfig{
		CronSchedule: cfg.SubmissionCleanup.CronSchedule,
		TTL:          time.Duration(cfg.SubmissionCleanup.TTLHours) * time.Hour,
		Enabled:      cfg.SubmissionCleanup.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cleanupConfig.CronSchedule,
		"ttl":           cleanupConfig.TTL,
	}).Info("Configuração da varredura de retenção de envios carregada")

	return &SubmissionCleanupService{
		scheduler:      scheduler,
		submissionRepo: submissionRepo,
		evictor:        evictor,
		config:         cleanupConfig,
	}
}

func (s *SubmissionCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Varredura de retenção de envios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando varredura de retenção de envios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.CleanupExpiredSubmissions(); err != nil {
			logrus.WithError(err).Error("Erro na varredura de retenção de envios")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar a varredura de retenção de envios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando varredura de retenção de envios")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara a varredura fora do agendamento.
func (s *SubmissionCleanupService) TriggerManualSync() {
	go func() {
		if err := s.CleanupExpiredSubmissions(); err != nil {
			logrus.WithError(err).Error("Erro na varredura manual de retenção de envios")
		}
	}()
}

// Status retorna o estado corrente da varredura para o endpoint de cron.
func (s *SubmissionCleanupService) Status() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"running":           s.syncRunning,
		"last_started_at":   s.lastSyncStartedAt,
		"last_completed_at": s.lastSyncCompletedAt,
		"cron_schedule":     s.config.CronSchedule,
		"ttl_hours":         s.config.TTL.Hours(),
		"enabled":           s.config.Enabled,
	}
}

func (s *SubmissionCleanupService) CleanupExpiredSubmissions() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Varredura de retenção de envios já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	cutoff := time.Now().UTC().Add(-s.config.TTL)

	logrus.WithField("cutoff", cutoff).Info("Iniciando varredura de retenção de envios")

	evicted := 0
	if s.evictor != nil {
		evicted = s.evictor.Evict(cutoff)
	}

	var removed int64
	if s.submissionRepo != nil {
		var err error
		removed, err = s.submissionRepo.DeleteOlderThan(cutoff)
		if err != nil {
			logrus.WithError(err).Error("Erro ao remover envios expirados do repositório")
			return err
		}
	}

	logrus.WithFields(logrus.Fields{
		"evicted_from_cache":   evicted,
		"removed_from_storage": removed,
	}).Info("Varredura de retenção de envios concluída")

	return nil
}
