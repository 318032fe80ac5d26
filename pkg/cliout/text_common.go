package cliout

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/cholcombe973/charms.gluster/pkg/errors"
	"github.com/cholcombe973/charms.gluster/pkg/metrics"

	log "github.com/sirupsen/logrus"
)

// maxLine bounds a single line of CLI output.
const maxLine = 1024 * 1024

// lines returns the lines of data with surrounding blanks removed. A line
// longer than maxLine fails the whole reply.
func lines(data []byte) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for sc.Scan() {
		out = append(out, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, &errors.FormatError{Where: "line", Reason: "unreadable output", Err: err}
	}
	return out, nil
}

// isSeparator reports whether line is a run of dashes or equal signs, as
// printed under table headers.
func isSeparator(line string) bool {
	if line == "" {
		return false
	}
	for _, r := range line {
		if r != '-' && r != '=' {
			return false
		}
	}
	return true
}

// isHeader reports whether the first field of a row is the column title.
func isHeader(fields []string, title string) bool {
	return len(fields) > 0 && strings.EqualFold(fields[0], title)
}

// skipRow logs and counts a row ignored by a text extractor.
func skipRow(extractor, line, reason string) {
	metrics.RowsSkipped.WithLabelValues(extractor).Inc()
	log.WithFields(log.Fields{
		"extractor": extractor,
		"line":      line,
	}).Debug(reason)
}
