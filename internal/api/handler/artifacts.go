package handler

import (
	"net/http"

	"github.com/vfg2006/chocolate-forecast-api/internal/domain"
	"github.com/vfg2006/chocolate-forecast-api/pkg/apiErrors"
	"github.com/vfg2006/chocolate-forecast-api/pkg/log"
)

// ArtifactReloader dispara e acompanha a recarga dos artefatos
type ArtifactReloader interface {
	TriggerManualReload() bool
	GetStatus() map[string]any
}

// ArtifactStatusProvider descreve os artefatos em uso
type ArtifactStatusProvider interface {
	Status() domain.ArtifactStatus
}

// ReloadArtifacts inicia manualmente a recarga do modelo e dos rótulos
func ReloadArtifacts(reloader ArtifactReloader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !reloader.TriggerManualReload() {
			apiErrors.WriteError(w, apiErrors.ErrReloadBusy, "Artifact reload already running", nil)
			return
		}

		log.ForContext(r.Context()).Info("artifacts: recarga manual iniciada")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"status":  "success",
			"message": "Artifact reload started",
		})
	}
}

// GetArtifactStatus retorna os artefatos carregados e o status da recarga
func GetArtifactStatus(store ArtifactStatusProvider, reloader ArtifactReloader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]any{
			"artifacts": store.Status(),
			"reload":    reloader.GetStatus(),
		})
	}
}
