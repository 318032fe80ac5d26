package cliout

import (
	"math"
	"strconv"
	"strings"

	"github.com/cholcombe973/charms.gluster/pkg/api"
	"github.com/cholcombe973/charms.gluster/pkg/errors"
	"github.com/cholcombe973/charms.gluster/pkg/xmltree"
)

const quotaPath = "volQuota/limit"

func quotaListXML(data []byte) ([]api.Quota, error) {
	root, err := parseReply(data)
	if err != nil {
		return nil, err
	}

	var quotas []api.Quota
	for _, n := range root.FindAll(quotaPath) {
		q, err := limitXML(n)
		if err != nil {
			return nil, err
		}
		quotas = append(quotas, q)
	}
	return quotas, nil
}

func limitXML(n *xmltree.Node) (api.Quota, error) {
	var q api.Quota

	size := func(dst *uint64) func(*xmltree.Node) error {
		return func(c *xmltree.Node) (err error) {
			*dst, err = xmlUint(c)
			return
		}
	}
	exceeded := func(dst *bool) func(*xmltree.Node) error {
		return func(c *xmltree.Node) error {
			*dst = strings.EqualFold(c.Text, "yes")
			return nil
		}
	}

	tags := map[string]func(*xmltree.Node) error{
		"path": func(c *xmltree.Node) error {
			q.Path = c.Text
			return nil
		},
		"hard_limit":       size(&q.HardLimit),
		"soft_limit_value": size(&q.SoftLimit),
		"used_space":       size(&q.Used),
		"avail_space":      size(&q.Available),
		"soft_limit_percent": func(c *xmltree.Node) (err error) {
			q.SoftLimitPercent, err = percent(c.Text)
			return
		},
		"sl_exceeded": exceeded(&q.SoftLimitExceeded),
		"hl_exceeded": exceeded(&q.HardLimitExceeded),
	}
	if err := applyTags(n, tags); err != nil {
		return api.Quota{}, err
	}

	if q.Path == "" {
		return api.Quota{}, missing("limit/path")
	}
	return q, nil
}

// percent reads "80%" or "80" into 80.
func percent(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || v < 0 || v > 100 {
		return 0, errors.NewFormatError(s, "percentage out of range")
	}
	return v, nil
}
