package utils

import "time"

// dateLayouts são os formatos aceitos para datas do histórico de vendas
var dateLayouts = []string{
	time.DateOnly,
	"02/01/2006",
	"02-Jan-06",
	"2006/01/02",
}

// ParseDate interpreta uma data; string vazia resulta na data zero
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr == "" {
		return &date, nil
	}

	var err error
	for _, layout := range dateLayouts {
		var incomingDate time.Time
		incomingDate, err = time.Parse(layout, dateStr)
		if err == nil {
			date = incomingDate
			return &date, nil
		}
	}

	return nil, err
}

// AddApproximateMonths soma meses como blocos fixos de 30 dias
func AddApproximateMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, 0, 30*months)
}
