package panel

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	Columns   []string // Column names to load (default: all numeric columns)
	HasHeader bool     // Whether CSV has header row (default: true)
	Delimiter rune     // Field delimiter (default: ',')
	SkipRows  int      // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		HasHeader: true,
		Delimiter: ',',
	}
}

// LoadCSV loads a panel from a CSV file. Cells that are empty or marked
// NA/NaN/null become missing values.
func LoadCSV(filename string, opts *CSVOptions) (*Panel, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a panel from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Panel, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	var headers []string
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		headers = make([]string, len(header))
		for i, h := range header {
			headers[i] = strings.TrimSpace(strings.Trim(h, "\""))
		}
	}

	// Resolve which column indices to load.
	var colIdx []int
	var names []string
	if len(opts.Columns) > 0 {
		if headers == nil {
			return nil, errors.New("panel: named columns require a header row")
		}
		for _, want := range opts.Columns {
			found := -1
			for i, h := range headers {
				if h == want {
					found = i
					break
				}
			}
			if found == -1 {
				return nil, errors.New("panel: column not found: " + want)
			}
			colIdx = append(colIdx, found)
			names = append(names, want)
		}
	}

	var rows [][]float64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		// Without explicit columns, take every field on the first data row
		// and keep that width for the rest of the file.
		if colIdx == nil {
			for i := range record {
				colIdx = append(colIdx, i)
				if headers != nil && i < len(headers) {
					names = append(names, headers[i])
				}
			}
			if len(names) != len(colIdx) {
				names = nil
			}
		}

		row := make([]float64, len(colIdx))
		for k, idx := range colIdx {
			row[k] = math.NaN()
			if idx >= len(record) {
				continue
			}
			valStr := strings.TrimSpace(strings.Trim(record[idx], "\""))
			if valStr == "" || valStr == "NA" || valStr == "NaN" || valStr == "null" {
				continue
			}
			if val, err := strconv.ParseFloat(valStr, 64); err == nil {
				row[k] = val
			}
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, errors.New("panel: no data found in CSV")
	}

	p := Filled(len(rows), len(colIdx), 0)
	p.Names = names
	for i, row := range rows {
		copy(p.Values[i*p.Cols:(i+1)*p.Cols], row)
	}
	return p, nil
}

// SaveCSV saves a panel to a CSV file. Missing cells are written as NA.
func SaveCSV(p *Panel, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	for j := 0; j < p.Cols; j++ {
		if j > 0 {
			writer.WriteString(",")
		}
		writer.WriteString(p.Name(j))
	}
	writer.WriteString("\n")

	for i := 0; i < p.Rows; i++ {
		for j := 0; j < p.Cols; j++ {
			if j > 0 {
				writer.WriteString(",")
			}
			v := p.At(i, j)
			if math.IsNaN(v) {
				writer.WriteString("NA")
			} else {
				writer.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
			}
		}
		writer.WriteString("\n")
	}

	return nil
}
