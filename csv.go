package paginate

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

var EncName = "utf-8"

func init() {
	EncName = os.Getenv("LANG")
	if i := strings.IndexByte(EncName, '.'); i >= 0 {
		EncName = strings.ToLower(EncName[i+1:])
	}
	if EncName == "" {
		EncName = "utf-8"
	}
}

func GetEncoding(encName string) (encoding.Encoding, error) {
	encName = strings.ToLower(encName)
	if encName == "" || encName == "utf-8" || encName == "utf8" {
		return nil, nil
	}
	enc, err := htmlindex.Get(encName)
	if err != nil {
		err = fmt.Errorf("%q: %w", encName, err)
	}
	return enc, err
}

type csvReadCloser struct {
	*csv.Reader
	io.Closer
}

func OpenCsv(fn, encName string) (csvReadCloser, error) {
	var enc encoding.Encoding
	if encName != "" {
		var err error
		if enc, err = GetEncoding(encName); err != nil {
			return csvReadCloser{}, err
		}
	}
	fh := os.Stdin
	if !(fn == "" || fn == "-") {
		var err error
		if fh, err = os.Open(fn); err != nil {
			return csvReadCloser{}, err
		}
	}
	r := io.ReadCloser(fh)
	if enc != nil {
		r = struct {
			io.Reader
			io.Closer
		}{enc.NewDecoder().Reader(r), r}
	}
	br := bufio.NewReaderSize(r, 1<<20)
	b, err := br.Peek(1024)
	if err != nil && len(b) == 0 {
		return csvReadCloser{}, err
	}
	sep := rune(',')
	for _, r := range string(b) {
		if r == '"' || r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) {
			continue
		}
		sep = r
		break
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.Comma = sep
	return csvReadCloser{cr, r}, nil
}

// CSVSource is a Source over a CSV export. CSV carries no break
// markers, so the break rows come from the caller.
type CSVSource struct {
	records [][]string
	width   int
	breaks  []int
}

// OpenCSVSource reads the whole file (charset-decoded as encName) and
// wires in the given break rows.
func OpenCSVSource(fn, encName string, breaks []int) (*CSVSource, error) {
	cr, err := OpenCsv(fn, encName)
	if err != nil {
		return nil, err
	}
	defer cr.Close()
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", fn, err)
	}
	src := CSVSource{records: records, breaks: breaks}
	for _, rec := range records {
		if len(rec) > src.width {
			src.width = len(rec)
		}
	}
	return &src, nil
}

func (s *CSVSource) Dimension() (string, error) {
	if len(s.records) == 0 || s.width == 0 {
		return "", fmt.Errorf("empty csv: %w", ErrMalformedRange)
	}
	return fmt.Sprintf("A1:%s%d", colName(s.width), len(s.records)), nil
}

func (s *CSVSource) BreakRows() []int { return s.breaks }

func (s *CSVSource) CellValue(row, col int) (any, error) {
	if row < 1 || row > len(s.records) {
		return nil, nil
	}
	rec := s.records[row-1]
	if col < 1 || col > len(rec) {
		return nil, nil
	}
	return ParseValue(rec[col-1]), nil
}

func (s *CSVSource) CellFont(row, col int) (Font, error) {
	return Font{Name: defaultFontName, Bold: row == 1}, nil
}
