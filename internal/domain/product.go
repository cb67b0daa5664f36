// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// Product é um item do catálogo identificado por um código inteiro
type Product struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

const (
	DarkChocolate     = "Dark Chocolate"
	MilkChocolate     = "Milk Chocolate"
	WhiteChocolate    = "White Chocolate"
	HazelnutChocolate = "Hazelnut Chocolate"
	AlmondChocolate   = "Almond Chocolate"
)

// UnknownProduct é o rótulo devolvido para códigos ausentes do mapeamento
const UnknownProduct = "Unknown Product"

// Season é a estação usada para enviesar as médias históricas
type Season string

const (
	Summer Season = "summer"
	Winter Season = "winter"
	Spring Season = "spring"
	Autumn Season = "autumn"
)

// IsCanonical indica se a estação é uma das quatro conhecidas
func (s Season) IsCanonical() bool {
	switch s {
	case Summer, Winter, Spring, Autumn:
		return true
	}
	return false
}
