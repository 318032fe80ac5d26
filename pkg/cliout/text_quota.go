package cliout

import (
	"math"
	"strings"

	"github.com/cholcombe973/charms.gluster/pkg/api"
	"github.com/cholcombe973/charms.gluster/pkg/errors"
	"github.com/cholcombe973/charms.gluster/pkg/size"
)

// quota list rows: path hard soft used available sl-exceeded hl-exceeded
const quotaFields = 7

// quotaListText reads the table printed by "gluster volume quota <vol> list".
func quotaListText(data []byte) ([]api.Quota, error) {
	var quotas []api.Quota
	rows, err := lines(data)
	if err != nil {
		return nil, err
	}
	for _, line := range rows {
		if line == "" || isSeparator(line) {
			continue
		}
		fields := strings.Fields(line)
		if isHeader(fields, "Path") {
			continue
		}
		if len(fields) < quotaFields {
			skipRow("quota list", line, "short quota row")
			continue
		}

		q, err := quotaRow(fields)
		if err != nil {
			return nil, err
		}
		quotas = append(quotas, q)
	}
	return quotas, nil
}

func quotaRow(fields []string) (api.Quota, error) {
	q := api.Quota{Path: fields[0]}

	var err error
	if q.HardLimit, err = bytesField(fields[1]); err != nil {
		return api.Quota{}, err
	}
	if q.SoftLimitPercent, q.SoftLimit, err = softLimit(fields[2], q.HardLimit); err != nil {
		return api.Quota{}, err
	}
	if q.Used, err = bytesField(fields[3]); err != nil {
		return api.Quota{}, err
	}
	if q.Available, err = bytesField(fields[4]); err != nil {
		return api.Quota{}, err
	}
	q.SoftLimitExceeded = strings.EqualFold(fields[5], "yes")
	q.HardLimitExceeded = strings.EqualFold(fields[6], "yes")
	return q, nil
}

func bytesField(token string) (uint64, error) {
	s, err := size.Parse(token)
	if err != nil {
		return 0, &errors.FormatError{Where: token, Reason: "invalid size", Err: err}
	}
	return s.Bytes(), nil
}

// softLimit reads "80%(8.0KB)" or a bare "80%". The absolute value of the
// latter is derived from the hard limit.
func softLimit(token string, hard uint64) (float64, uint64, error) {
	pct, abs := token, ""
	if i := strings.Index(token, "("); i >= 0 {
		if !strings.HasSuffix(token, ")") {
			return 0, 0, errors.NewFormatError(token, "unbalanced soft limit")
		}
		pct, abs = token[:i], token[i+1:len(token)-1]
	}

	p, err := percent(pct)
	if err != nil {
		if _, ok := err.(*errors.FormatError); ok {
			return 0, 0, err
		}
		return 0, 0, &errors.FormatError{Where: token, Reason: "invalid soft limit", Err: err}
	}

	if abs == "" {
		return p, uint64(math.Round(float64(hard) * p / 100)), nil
	}
	v, err := bytesField(abs)
	if err != nil {
		return 0, 0, err
	}
	return p, v, nil
}
