package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

// SalesProber é a parte do integrador de vendas usada pela sonda
type SalesProber interface {
	CheckConnection(ctx context.Context) (int, error)
}

// UpstreamProbeConfig representa a configuração da sonda da API de vendas
type UpstreamProbeConfig struct {
	CronSchedule string
	Enabled      bool
	Timeout      time.Duration
}

// UpstreamProbeService consulta a API de vendas periodicamente e guarda o resultado da última consulta
type UpstreamProbeService struct {
	scheduler *gocron.Scheduler
	config    UpstreamProbeConfig
	prober    SalesProber

	mutex            sync.Mutex
	running          bool
	lastStartedAt    time.Time
	lastCompletedAt  time.Time
	lastRecordCount  int
	lastError        string
	consecutiveFails int
}

// NewUpstreamProbeService cria a sonda com base na config global
func NewUpstreamProbeService(prober SalesProber, appConfig *config.Config) *UpstreamProbeService {
	probeConfig := UpstreamProbeConfig{
		CronSchedule: appConfig.SalesAPIProbe.CronSchedule,
		Enabled:      appConfig.SalesAPIProbe.Enabled,
		Timeout:      appConfig.SalesAPI.Timeout,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": probeConfig.CronSchedule,
		"enabled":       probeConfig.Enabled,
	}).Info("Configuração da sonda da API de vendas carregada")

	return &UpstreamProbeService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    probeConfig,
		prober:    prober,
	}
}

// Start inicia o agendador
func (s *UpstreamProbeService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Sonda da API de vendas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da sonda da API de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.probe(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sonda da API de vendas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da sonda da API de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *UpstreamProbeService) probe(ctx context.Context) {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Sonda da API de vendas já em andamento, ignorando")
		return
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.mutex.Unlock()

	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	count, err := s.prober.CheckConnection(ctx)

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.running = false
	s.lastCompletedAt = time.Now()
	s.lastRecordCount = count
	elapsed := s.lastCompletedAt.Sub(s.lastStartedAt)

	if err != nil {
		s.lastError = err.Error()
		s.consecutiveFails++
		logrus.WithFields(logrus.Fields{
			"duration":          elapsed.String(),
			"consecutive_fails": s.consecutiveFails,
		}).WithError(err).Error("API de vendas indisponível")
		return
	}

	s.lastError = ""
	s.consecutiveFails = 0
	logrus.WithFields(logrus.Fields{
		"duration": elapsed.String(),
		"records":  count,
	}).Info("API de vendas respondeu com sucesso")
}

// TriggerManualSync executa a sonda fora do agendamento
func (s *UpstreamProbeService) TriggerManualSync() {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Sonda da API de vendas já em andamento, ignorando solicitação manual")
		return
	}
	s.mutex.Unlock()

	logrus.Info("Iniciando execução manual da sonda da API de vendas")
	go s.probe(context.Background())
}

// GetStatus retorna o status atual da sonda
func (s *UpstreamProbeService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"probe_enabled":           s.config.Enabled,
		"probe_cron":              s.config.CronSchedule,
		"running":                 s.running,
		"healthy":                 !s.lastCompletedAt.IsZero() && s.lastError == "",
		"last_error":              s.lastError,
		"last_record_count":       s.lastRecordCount,
		"consecutive_failures":    s.consecutiveFails,
		"last_probe_started_at":   s.lastStartedAt,
		"last_probe_completed_at": s.lastCompletedAt,
	}
}
