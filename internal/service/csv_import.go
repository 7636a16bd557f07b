package service

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/nkritika/prepforge/internal/apperr"
	"github.com/nkritika/prepforge/internal/dto"
)

// csvColumns is the admin upload layout. text_secondary and explanation may be
// blank; everything else must survive question validation.
var csvColumns = []string{
	"text_primary", "text_secondary",
	"option_a", "option_b", "option_c", "option_d",
	"correct_option", "explanation",
}

// ParseQuestionCSV reads an admin CSV upload into question DTOs. A header row
// matching the first column name is skipped. Structural problems (wrong column
// count) are reported per row index so they surface the same way validation
// failures do in BulkAdd.
func ParseQuestionCSV(r io.Reader) ([]dto.QuestionCreateDTO, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // column count is checked per row below

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, apperr.Validationf("malformed CSV: %v", err)
	}
	if len(rows) > 0 && strings.EqualFold(strings.TrimSpace(rows[0][0]), csvColumns[0]) {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return nil, apperr.Validationf("CSV contains no question rows")
	}

	var bad []apperr.BatchItemError
	items := make([]dto.QuestionCreateDTO, 0, len(rows))
	for i, row := range rows {
		if len(row) != len(csvColumns) {
			bad = append(bad, apperr.BatchItemError{
				Index:  i,
				Reason: apperr.Validationf("expected %d columns, got %d", len(csvColumns), len(row)).Error(),
			})
			continue
		}
		items = append(items, dto.QuestionCreateDTO{
			TextPrimary:   strings.TrimSpace(row[0]),
			TextSecondary: strings.TrimSpace(row[1]),
			OptionA:       strings.TrimSpace(row[2]),
			OptionB:       strings.TrimSpace(row[3]),
			OptionC:       strings.TrimSpace(row[4]),
			OptionD:       strings.TrimSpace(row[5]),
			CorrectOption: strings.ToUpper(strings.TrimSpace(row[6])),
			Explanation:   strings.TrimSpace(row[7]),
		})
	}
	if len(bad) > 0 {
		return nil, &apperr.BatchValidationError{Items: bad}
	}
	return items, nil
}
