// Package scheduler contém os serviços agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/chocolate-forecast-api/internal/config"
)

// Reloader recarrega os artefatos de previsão
type Reloader interface {
	Reload() error
}

type ArtifactReloadConfig struct {
	CronSchedule string
	Enabled      bool
}

type ArtifactReloadService struct {
	scheduler             *gocron.Scheduler
	reloader              Reloader
	config                ArtifactReloadConfig
	reloadRunning         bool
	reloadMutex           sync.Mutex
	lastReloadStartedAt   time.Time
	lastReloadCompletedAt time.Time
	lastReloadError       string
	reloadCount           int
}

func NewArtifactReloadService(reloader Reloader, cfg *config.Config) *ArtifactReloadService {
	reloadConfig := ArtifactReloadConfig{
		CronSchedule: cfg.ArtifactReload.CronSchedule, // Default: a cada hora
		Enabled:      cfg.ArtifactReload.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reloadConfig.CronSchedule,
		"enabled":       reloadConfig.Enabled,
	}).Info("Configuração do agendador de recarga de artefatos carregada")

	return &ArtifactReloadService{
		scheduler: gocron.NewScheduler(time.Local),
		reloader:  reloader,
		config:    reloadConfig,
	}
}

func (s *ArtifactReloadService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de recarga de artefatos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de recarga de artefatos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.ReloadArtifacts(); err != nil {
			logrus.WithError(err).Error("Erro na recarga agendada dos artefatos")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga de artefatos: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de recarga de artefatos")
		s.scheduler.Stop()
	}()

	return nil
}

// ReloadArtifacts recarrega os artefatos; chamadas concorrentes são ignoradas
func (s *ArtifactReloadService) ReloadArtifacts() error {
	if !s.beginReload() {
		logrus.Warn("Recarga de artefatos já está em execução")
		return nil
	}

	return s.runReload()
}

// TriggerManualReload inicia manualmente uma recarga em background.
// A recarga é marcada como em execução antes de retornar, então chamadas
// simultâneas recebem false.
func (s *ArtifactReloadService) TriggerManualReload() bool {
	if !s.beginReload() {
		logrus.Info("Recarga de artefatos já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando recarga manual de artefatos")
	go func() {
		if err := s.runReload(); err != nil {
			logrus.WithError(err).Error("Erro na recarga manual dos artefatos")
		}
	}()

	return true
}

// beginReload marca a recarga como em execução; retorna false se já houver uma
func (s *ArtifactReloadService) beginReload() bool {
	s.reloadMutex.Lock()
	defer s.reloadMutex.Unlock()

	if s.reloadRunning {
		return false
	}
	s.reloadRunning = true
	s.lastReloadStartedAt = time.Now()

	return true
}

func (s *ArtifactReloadService) runReload() error {
	logrus.Info("Iniciando recarga dos artefatos de previsão")

	err := s.reloader.Reload()

	s.reloadMutex.Lock()
	defer s.reloadMutex.Unlock()

	s.reloadRunning = false
	s.lastReloadCompletedAt = time.Now()
	if err != nil {
		s.lastReloadError = err.Error()
		return err
	}

	s.lastReloadError = ""
	s.reloadCount++
	logrus.Info("Recarga dos artefatos de previsão concluída")

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *ArtifactReloadService) GetStatus() map[string]any {
	s.reloadMutex.Lock()
	defer s.reloadMutex.Unlock()

	return map[string]any{
		"reload_enabled":           s.config.Enabled,
		"reload_cron":              s.config.CronSchedule,
		"reload_running":           s.reloadRunning,
		"reload_count":             s.reloadCount,
		"last_reload_started_at":   s.lastReloadStartedAt,
		"last_reload_completed_at": s.lastReloadCompletedAt,
		"last_reload_error":        s.lastReloadError,
	}
}
