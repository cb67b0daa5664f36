package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters         = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	predictionIDPrefix = "pred_"
	predictionIDLength = 10
)

// GeneratePredictionID gera o identificador curto de uma previsão (ex: pred_aZ3k9QwE1x)
func GeneratePredictionID() (string, error) {
	id, err := gonanoid.Generate(characters, predictionIDLength)
	if err != nil {
		return "", err
	}
	return predictionIDPrefix + id, nil
}
