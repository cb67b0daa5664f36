package forecasting

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/chocolate-forecast-api/internal/domain"
)

// Artifacts é o par imutável (rótulos, modelo) usado por uma chamada de ranking
type Artifacts struct {
	Labels   LabelDecoder
	Model    Scorer
	LoadedAt time.Time
	Version  int
}

// ArtifactProvider fornece o par de artefatos corrente
type ArtifactProvider interface {
	Snapshot() Artifacts
}

// ArtifactStore carrega o modelo e o mapeamento de rótulos uma vez na
// inicialização e permite recarregá-los em tempo de execução.
type ArtifactStore struct {
	modelPath        string
	labelMappingPath string

	mu       sync.RWMutex
	labels   *LabelMap
	model    *ModelStore
	loadedAt time.Time
	version  int
}

// NewArtifactStore cria o store e faz a primeira carga dos artefatos
func NewArtifactStore(modelPath, labelMappingPath string) (*ArtifactStore, error) {
	store := &ArtifactStore{
		modelPath:        modelPath,
		labelMappingPath: labelMappingPath,
	}

	if err := store.Reload(); err != nil {
		return nil, err
	}

	return store, nil
}

// Reload relê os dois artefatos. A troca só acontece se ambos carregarem;
// em caso de erro os artefatos anteriores continuam em uso.
func (s *ArtifactStore) Reload() error {
	labels, err := LoadLabelMap(s.labelMappingPath)
	if err != nil {
		return err
	}

	model, err := LoadModelStore(s.modelPath)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.labels = labels
	s.model = model
	s.loadedAt = time.Now()
	s.version++
	version := s.version
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"model_path":         s.modelPath,
		"label_mapping_path": s.labelMappingPath,
		"labels":             labels.Len(),
		"features":           model.Features(),
		"version":            version,
	}).Info("Artefatos de previsão carregados")

	return nil
}

// Snapshot retorna os artefatos correntes
func (s *ArtifactStore) Snapshot() Artifacts {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Artifacts{
		Labels:   s.labels,
		Model:    s.model,
		LoadedAt: s.loadedAt,
		Version:  s.version,
	}
}

// Status descreve os artefatos carregados
func (s *ArtifactStore) Status() domain.ArtifactStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.ArtifactStatus{
		ModelPath:        s.modelPath,
		LabelMappingPath: s.labelMappingPath,
		Labels:           s.labels.Len(),
		Products:         s.labels.Products(),
		Features:         s.model.Features(),
		LoadedAt:         s.loadedAt,
		Version:          s.version,
	}
}

// StaticArtifacts é um ArtifactProvider fixo, sem recarga
type StaticArtifacts struct {
	Labels LabelDecoder
	Model  Scorer
}

// Snapshot retorna sempre o mesmo par
func (a StaticArtifacts) Snapshot() Artifacts {
	return Artifacts{Labels: a.Labels, Model: a.Model}
}
