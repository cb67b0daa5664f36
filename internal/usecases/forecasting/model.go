package forecasting

import (
	"math"
	"os"
)

// Ordem fixa das features combinada com o artefato do modelo
const (
	FeatureProductCode = iota
	FeatureBoxes
	FeatureMonth
	FeatureYear
	FeatureCount
)

const linearRegressionType = "linear_regression"

// Scorer pontua um vetor de features ordenado
type Scorer interface {
	Score(features []float64) (float64, error)
}

// modelArtifact é o formato em disco do modelo de regressão
type modelArtifact struct {
	ModelType    string    `json:"model_type"`
	NFeaturesIn  int       `json:"n_features_in"`
	FeatureNames []string  `json:"feature_names"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

// ModelStore expõe a função de pontuação do modelo pré-treinado.
// O conteúdo do artefato não é exposto: só é possível pontuar.
type ModelStore struct {
	coefficients []float64
	intercept    float64
	featureNames []string
}

// LoadModelStore lê o artefato do modelo
func LoadModelStore(path string) (*ModelStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewModelLoadError(err, "model artifact %s", path)
	}

	var artifact modelArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, NewModelLoadError(err, "model artifact %s is corrupt", path)
	}

	if artifact.ModelType != linearRegressionType {
		return nil, NewModelLoadError(nil, "model artifact %s has unsupported type %q", path, artifact.ModelType)
	}

	if artifact.NFeaturesIn == 0 {
		artifact.NFeaturesIn = len(artifact.Coefficients)
	}

	if artifact.NFeaturesIn == 0 || len(artifact.Coefficients) != artifact.NFeaturesIn {
		return nil, NewModelLoadError(nil, "model artifact %s declares %d features but has %d coefficients",
			path, artifact.NFeaturesIn, len(artifact.Coefficients))
	}

	if len(artifact.FeatureNames) != 0 && len(artifact.FeatureNames) != artifact.NFeaturesIn {
		return nil, NewModelLoadError(nil, "model artifact %s declares %d feature names for %d features",
			path, len(artifact.FeatureNames), artifact.NFeaturesIn)
	}

	return NewModelStore(artifact.Coefficients, artifact.Intercept, artifact.FeatureNames...), nil
}

// NewModelStore cria um modelo linear em memória
func NewModelStore(coefficients []float64, intercept float64, featureNames ...string) *ModelStore {
	return &ModelStore{
		coefficients: append([]float64(nil), coefficients...),
		intercept:    intercept,
		featureNames: append([]string(nil), featureNames...),
	}
}

// Features retorna a aridade esperada pelo modelo
func (m *ModelStore) Features() int {
	return len(m.coefficients)
}

// Score aplica o modelo ao vetor de features
func (m *ModelStore) Score(features []float64) (float64, error) {
	if len(features) != len(m.coefficients) {
		return 0, NewPredictionError(nil, "model expects %d features, got %d", len(m.coefficients), len(features))
	}

	score := m.intercept
	for i, value := range features {
		score += m.coefficients[i] * value
	}

	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, NewPredictionError(nil, "model produced a non-finite score for %v", features)
	}

	return score, nil
}
