package hclust

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadMatrix parses a tab-delimited lower-triangular distance table:
//
//	'	id1	id2	id3'
//	'id2	2.0'
//	'id3	1.5	3.0'
//	'id4	2.5	1.0	4.5'
//
// The header row starts with a tab and names every observation except the
// last; each following row names one observation and lists its distances
// to the observations before it. Header fields are tab-separated; the
// values of a data row may be separated by any whitespace. Blank lines
// are skipped.
func ReadMatrix(r io.Reader) (*DistanceMatrix, error) {
	sc := newLineScanner(r)
	var header []string
	var rows []Row
	sawHeader := false
	for sc.scan() {
		if !sawHeader {
			if sc.line[0] != '\t' {
				return nil, fmt.Errorf("hclust: line %d: expected a header row starting with a tab", sc.num)
			}
			header = strings.Split(sc.line[1:], "\t")
			sawHeader = true
			continue
		}
		if sc.line[0] == '\t' {
			return nil, fmt.Errorf("hclust: line %d: unexpected second header row", sc.num)
		}
		fields := strings.Fields(sc.line)
		dists, err := parseDistances(fields[1:], sc.num)
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{Label: fields[0], Distances: dists})
	}
	if err := sc.err(); err != nil {
		return nil, err
	}
	if !sawHeader {
		return nil, fmt.Errorf("hclust: missing header row")
	}
	return NewDistanceMatrix(header, rows)
}

// ReadFullMatrix parses a tab-delimited full symmetric distance matrix:
//
//	'title	id1	id2	id3	id4'
//	'id1	0.0	2.0	1.5	2.5'
//	'id2	2.0	0.0	3.0	1.0'
//	'id3	1.5	3.0	0.0	4.5'
//	'id4	2.5	1.0	4.5	0.0'
//
// The matrix is reduced to its lower triangle before construction: the
// title cell and the final header id are dropped, the first data row is
// skipped, and data row i keeps only its first i-1 distances. Symmetry
// across the diagonal is trusted, not validated.
func ReadFullMatrix(r io.Reader) (*DistanceMatrix, error) {
	sc := newLineScanner(r)
	var header []string
	var rows []Row
	content := 0
	for sc.scan() {
		content++
		switch {
		case content == 1:
			cells := strings.Split(sc.line, "\t")
			if len(cells) < 2 {
				return nil, fmt.Errorf("hclust: line %d: header row has no observations", sc.num)
			}
			header = cells[1 : len(cells)-1]
		case content == 2:
			// the first observation's row holds no lower-triangle entries
		default:
			fields := strings.Fields(sc.line)
			keep := content - 1
			if keep > len(fields) {
				keep = len(fields)
			}
			dists, err := parseDistances(fields[1:keep], sc.num)
			if err != nil {
				return nil, err
			}
			rows = append(rows, Row{Label: fields[0], Distances: dists})
		}
	}
	if err := sc.err(); err != nil {
		return nil, err
	}
	if content == 0 {
		return nil, fmt.Errorf("hclust: missing header row")
	}
	return NewDistanceMatrix(header, rows)
}

func parseDistances(fields []string, lineNum int) ([]float64, error) {
	dists := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("hclust: line %d: bad distance %q", lineNum, f)
		}
		dists[i] = v
	}
	return dists, nil
}

// lineScanner yields right-trimmed non-blank lines with 1-based line numbers.
type lineScanner struct {
	sc   *bufio.Scanner
	line string
	num  int
}

func newLineScanner(r io.Reader) *lineScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &lineScanner{sc: sc}
}

func (l *lineScanner) scan() bool {
	for l.sc.Scan() {
		l.num++
		line := strings.TrimRight(l.sc.Text(), " \t\r")
		if line == "" {
			continue
		}
		l.line = line
		return true
	}
	return false
}

func (l *lineScanner) err() error {
	if err := l.sc.Err(); err != nil {
		return fmt.Errorf("hclust: %w", err)
	}
	return nil
}
