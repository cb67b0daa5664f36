package forecasting

import (
	"os"
	"sort"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/chocolate-forecast-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LabelDecoder converte um código inteiro no nome do produto
type LabelDecoder interface {
	Lookup(code int) string
}

// LabelMap é o mapeamento código -> nome carregado do artefato de rótulos
type LabelMap struct {
	labels map[int]string
}

// NewLabelMap cria um LabelMap a partir de um mapa já normalizado
func NewLabelMap(labels map[int]string) *LabelMap {
	copied := make(map[int]string, len(labels))
	for code, name := range labels {
		copied[code] = name
	}
	return &LabelMap{labels: copied}
}

// LoadLabelMap lê o arquivo JSON {"<código>": "<nome>"}.
// As chaves são normalizadas para inteiros independente do formato em disco.
func LoadLabelMap(path string) (*LabelMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewDataLoadError(err, "label mapping %s", path)
	}

	raw := make(map[string]string)
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, NewDataLoadError(err, "label mapping %s is not valid JSON", path)
	}

	labels := make(map[int]string, len(raw))
	for key, name := range raw {
		code, err := parseCode(key)
		if err != nil {
			return nil, NewDataLoadError(err, "label mapping %s has invalid key %q", path, key)
		}
		labels[code] = name
	}

	return &LabelMap{labels: labels}, nil
}

// parseCode aceita "3" e também "3.0", como gravado por alguns exportadores
func parseCode(key string) (int, error) {
	key = strings.TrimSpace(key)
	if code, err := strconv.Atoi(key); err == nil {
		return code, nil
	}

	f, err := strconv.ParseFloat(key, 64)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, strconv.ErrSyntax
	}
	return int(f), nil
}

// Lookup é total: códigos ausentes retornam domain.UnknownProduct
func (m *LabelMap) Lookup(code int) string {
	if name, ok := m.labels[code]; ok {
		return name
	}
	return domain.UnknownProduct
}

// Len retorna o número de rótulos conhecidos
func (m *LabelMap) Len() int {
	return len(m.labels)
}

// Products lista os produtos do mapeamento ordenados por código
func (m *LabelMap) Products() []domain.Product {
	products := make([]domain.Product, 0, len(m.labels))
	for code, name := range m.labels {
		products = append(products, domain.Product{Code: code, Name: name})
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].Code < products[j].Code
	})
	return products
}
