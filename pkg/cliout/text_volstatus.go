package cliout

import (
	"regexp"
	"strings"

	"github.com/cholcombe973/charms.gluster/pkg/api"
	"github.com/cholcombe973/charms.gluster/pkg/errors"
)

var (
	brickRowRe = regexp.MustCompile(`^Brick\s+(\S+)\s+(\d+|N/A)\s+(\d+|N/A)\s+([YN])\s+(\d+|N/A)$`)
	// gluster wraps a long brick name onto the next line, leaving the name
	// alone on the first one
	brickNameOnlyRe = regexp.MustCompile(`^Brick\s+\S+$`)
)

// volumeStatusText reads the brick rows of "gluster volume status <vol>".
// Daemon rows, headers and task sections are skipped.
func (p *Parser) volumeStatusText(data []byte) ([]api.BrickStatus, error) {
	var statuses []api.BrickStatus
	rows, err := lines(data)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(rows); i++ {
		line := rows[i]
		if line == "" || isSeparator(line) {
			continue
		}
		for brickNameOnlyRe.MatchString(line) && continuesBrick(rows, i+1) {
			line += rows[i+1]
			i++
		}

		m := brickRowRe.FindStringSubmatch(line)
		if m == nil {
			skipRow("volume status", line, "not a brick row")
			continue
		}

		s, err := p.brickRow(m)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	return statuses, nil
}

// continuesBrick reports whether rows[i] is the tail of a wrapped brick name.
func continuesBrick(rows []string, i int) bool {
	return i < len(rows) && rows[i] != "" && !strings.HasPrefix(rows[i], "Brick ")
}

func (p *Parser) brickRow(m []string) (api.BrickStatus, error) {
	brick, err := p.brick(m[1], nil, false)
	if err != nil {
		return api.BrickStatus{}, err
	}

	var ports [3]int
	for i, s := range []string{m[2], m[3], m[5]} {
		if ports[i], err = portValue(s); err != nil {
			return api.BrickStatus{}, &errors.FormatError{Where: s, Reason: "invalid number", Err: err}
		}
	}

	return api.BrickStatus{
		Brick:    brick,
		TCPPort:  ports[0],
		RDMAPort: ports[1],
		Online:   m[4] == "Y",
		Pid:      ports[2],
	}, nil
}
