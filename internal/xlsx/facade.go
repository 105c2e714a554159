package xlsx

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Facade for xlsx datasets.
type Facade struct {
}

// NewFacade ...
func NewFacade() *Facade {
	return &Facade{}
}

// Rows reads the first sheet of an xlsx file. The first row is the
// column set, every following row is keyed by column name. Cells
// missing at the end of a row default to the empty string.
func (f *Facade) Rows(data []byte) (rows []map[string]string, columns []string, err error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		err = fmt.Errorf("open dataset: %s", err)
		return
	}

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		err = fmt.Errorf("dataset file has wrong number of sheets: %d", len(sheets))
		return
	}

	raw, err := file.GetRows(sheets[0])
	if err != nil {
		err = fmt.Errorf("read dataset rows: %s", err)
		return
	}
	if len(raw) == 0 {
		return
	}

	columns = raw[0]
	rows = make([]map[string]string, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		row := make(map[string]string, len(columns))
		for i, column := range columns {
			value := ""
			if i < len(cells) {
				value = cells[i]
			}
			row[column] = value
		}
		rows = append(rows, row)
	}
	return
}
