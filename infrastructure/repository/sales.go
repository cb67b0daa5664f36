// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/chocolate-forecast-api/internal/domain"
	"github.com/vfg2006/chocolate-forecast-api/pkg/utils"
)

// Colunas do histórico de vendas
const (
	columnProduct      = "product"
	columnAmount       = "amount_in_dh"
	columnBoxesShipped = "boxes_shipped"
	columnDate         = "date"
	columnSalesPerson  = "sales_person"
	columnClientName   = "client_name"
)

// SalesRepository fornece o histórico de vendas (somente leitura)
type SalesRepository interface {
	ListSales() ([]domain.SalesRecord, error)
}

type csvSalesRepository struct {
	path string
}

// NewCSVSalesRepository lê o histórico de um arquivo CSV com cabeçalho
func NewCSVSalesRepository(path string) SalesRepository {
	return &csvSalesRepository{
		path: path,
	}
}

func (r *csvSalesRepository) ListSales() ([]domain.SalesRecord, error) {
	file, err := os.Open(r.path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir histórico de vendas %s", r.path)
	}
	defer file.Close()

	records, err := ReadSalesCSV(file)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler histórico de vendas %s", r.path)
	}

	logrus.WithFields(logrus.Fields{
		"path":    r.path,
		"records": len(records),
	}).Debug("Histórico de vendas carregado do CSV")

	return records, nil
}

// ReadSalesCSV interpreta o CSV localizando as colunas pelo nome do cabeçalho
func ReadSalesCSV(reader io.Reader) ([]domain.SalesRecord, error) {
	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true

	header, err := csvReader.Read()
	if err == io.EOF {
		return []domain.SalesRecord{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler cabeçalho")
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}

	for _, required := range []string{columnProduct, columnAmount, columnBoxesShipped} {
		if _, ok := columns[required]; !ok {
			return nil, errors.Errorf("coluna obrigatória ausente: %s", required)
		}
	}

	clientColumn, hasClient := columns[columnSalesPerson]
	if !hasClient {
		clientColumn, hasClient = columns[columnClientName]
	}
	dateColumn, hasDate := columns[columnDate]

	records := make([]domain.SalesRecord, 0)
	line := 1
	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Wrapf(err, "linha %d", line)
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(row[columns[columnAmount]]))
		if err != nil {
			return nil, errors.Wrapf(err, "linha %d: valor inválido em %s", line, columnAmount)
		}

		boxes, err := parseBoxes(row[columns[columnBoxesShipped]])
		if err != nil {
			return nil, errors.Wrapf(err, "linha %d: valor inválido em %s", line, columnBoxesShipped)
		}

		record := domain.SalesRecord{
			ProductName:  strings.TrimSpace(row[columns[columnProduct]]),
			Amount:       amount,
			BoxesShipped: boxes,
		}

		if hasClient {
			record.Client = strings.TrimSpace(row[clientColumn])
		}

		// A data não participa dos agregados; valores ilegíveis são ignorados
		if hasDate {
			if date, err := utils.ParseDate(strings.TrimSpace(row[dateColumn])); err == nil && !date.IsZero() {
				record.Date = date
			}
		}

		records = append(records, record)
	}

	return records, nil
}

// parseBoxes aceita inteiros e também "12.0", como gravado por planilhas.
// Quantidades fracionárias como "12.7" são rejeitadas em vez de truncadas.
func parseBoxes(value string) (int, error) {
	value = strings.TrimSpace(value)
	if boxes, err := strconv.Atoi(value); err == nil {
		return boxes, nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, errors.Errorf("quantidade de caixas não inteira: %s", value)
	}
	return int(f), nil
}
