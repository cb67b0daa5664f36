package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/chocolate-forecast-api/infrastructure/database/postgres"
	"github.com/vfg2006/chocolate-forecast-api/internal/domain"
)

const (
	salesTable = "sales s"
)

type postgresSalesRepository struct {
	conn postgres.Queryer
}

// NewPostgresSalesRepository lê o histórico de vendas da tabela sales
func NewPostgresSalesRepository(conn postgres.Queryer) SalesRepository {
	return &postgresSalesRepository{
		conn: conn,
	}
}

func listSalesQuery() squirrel.SelectBuilder {
	return squirrel.
		Select("s.client_name", "s.product", "s.sale_date", "s.amount_in_dh", "s.boxes_shipped").
		From(salesTable).
		OrderBy("s.sale_date ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *postgresSalesRepository) ListSales() ([]domain.SalesRecord, error) {
	query, args, err := listSalesQuery().ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	records := make([]domain.SalesRecord, 0)
	for rows.Next() {
		record, err := r.scanSalesRecord(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear venda")
		}
		records = append(records, *record)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return records, nil
}

func (r *postgresSalesRepository) scanSalesRecord(rows *sql.Rows) (*domain.SalesRecord, error) {
	record := &domain.SalesRecord{}
	var client sql.NullString
	var date sql.NullTime

	err := rows.Scan(
		&client,
		&record.ProductName,
		&date,
		&record.Amount,
		&record.BoxesShipped,
	)
	if err != nil {
		return nil, err
	}

	record.Client = client.String
	if date.Valid {
		record.Date = &date.Time
	}

	return record, nil
}
