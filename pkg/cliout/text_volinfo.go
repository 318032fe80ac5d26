package cliout

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cholcombe973/charms.gluster/pkg/api"
	"github.com/cholcombe973/charms.gluster/pkg/errors"

	"github.com/pborman/uuid"
	log "github.com/sirupsen/logrus"
)

type infoSection int

const (
	sectionRoot infoSection = iota
	sectionBricks
	sectionOptions
)

const (
	noVolumesPresent = "No volumes present"
	arbiterSuffix    = "(arbiter)"
)

var (
	volumeMissingRe = regexp.MustCompile(`(?m)^\s*Volume (\S+) does not exist`)
	brickKeyRe      = regexp.MustCompile(`^Brick\d+$`)

	// Number of Bricks: 3
	brickTotalRe = regexp.MustCompile(`^(\d+)$`)
	// Number of Bricks: 2 x 3 = 6
	brickSubvolRe = regexp.MustCompile(`^(\d+) x (\d+) = (\d+)$`)
	// Number of Bricks: 1 x (2 + 1) = 3
	brickPlusRe = regexp.MustCompile(`^(\d+) x \((\d+) \+ (\d+)\) = (\d+)$`)
	// Number of Bricks: 1 x 2 x 2 = 4
	brickStripeReplicaRe = regexp.MustCompile(`^(\d+) x (\d+) x (\d+) = (\d+)$`)
)

// volumeInfoText parses "gluster volume info" with a small state machine
// over the ROOT, BRICKS and OPTIONS sections of every volume block.
func (p *Parser) volumeInfoText(data []byte) ([]api.Volume, error) {
	if err := infoSentinel(data); err != nil {
		return nil, err
	}

	var (
		vols    []api.Volume
		cur     *api.Volume
		bricks  brickSet
		counts  string
		section = sectionRoot
	)

	finish := func() {
		if cur == nil {
			return
		}
		applyBrickCounts(cur, counts)
		vols = append(vols, *cur)
	}

	rows, err := lines(data)
	if err != nil {
		return nil, err
	}
	for _, line := range rows {
		if line == "" {
			continue
		}

		key, value, hasValue := splitField(line)
		switch {
		case key == "Volume Name":
			if value == "" {
				return nil, errors.NewFormatError(line, "empty volume name")
			}
			finish()
			cur = &api.Volume{
				Name:         value,
				ReplicaCount: 1,
				StripeCount:  1,
				Options:      make(map[string]string),
			}
			bricks = brickSet{}
			counts = ""
			section = sectionRoot
			continue
		case line == "Bricks:":
			section = sectionBricks
			continue
		case line == "Options Reconfigured:":
			section = sectionOptions
			continue
		}

		if cur == nil {
			log.WithField("line", line).Debug("skipping line before first volume")
			continue
		}

		switch section {
		case sectionRoot:
			if !hasValue {
				continue
			}
			if err := setRootField(cur, key, value, &counts); err != nil {
				return nil, err
			}
		case sectionBricks:
			if !brickKeyRe.MatchString(key) {
				log.WithField("line", line).Debug("skipping unknown line in bricks section")
				continue
			}
			brick, err := p.brickText(value)
			if err != nil {
				return nil, err
			}
			if err := bricks.add(brick); err != nil {
				return nil, err
			}
			cur.Bricks = append(cur.Bricks, brick)
		case sectionOptions:
			if !hasValue {
				log.WithField("line", line).Debug("skipping option line without a value")
				continue
			}
			cur.Options[key] = value
		}
	}
	finish()

	if len(vols) == 0 {
		return nil, errors.NewFormatError("Volume Name", "no volume found in reply")
	}
	return vols, nil
}

// infoSentinel recognizes the replies gluster prints instead of a volume.
func infoSentinel(data []byte) error {
	text := strings.TrimSpace(string(data))
	if strings.HasPrefix(text, noVolumesPresent) {
		return &errors.NotFoundError{}
	}
	if m := volumeMissingRe.FindStringSubmatch(text); m != nil {
		return &errors.NotFoundError{Volume: m[1]}
	}
	return nil
}

// splitField splits "Key: value" on the first ": ". A line ending in ':'
// is a key with an empty value.
func splitField(line string) (string, string, bool) {
	if i := strings.Index(line, ": "); i >= 0 {
		return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+2:]), true
	}
	if strings.HasSuffix(line, ":") {
		return strings.TrimSuffix(line, ":"), "", true
	}
	return line, "", false
}

func setRootField(vol *api.Volume, key, value string, counts *string) error {
	switch key {
	case "Type":
		vol.Type = api.ParseVolType(value)
	case "Volume ID":
		id := uuid.Parse(value)
		if id == nil {
			return errors.NewFormatError(value, "invalid volume id")
		}
		vol.ID = id
	case "Status":
		vol.Status = value
	case "Snapshot Count":
		n, err := atoiField(value, key)
		if err != nil {
			return err
		}
		vol.SnapshotCount = n
	case "Number of Bricks":
		*counts = value
	case "Transport-type":
		vol.Transport = api.ParseTransport(value)
	}
	return nil
}

// applyBrickCounts fills the subvolume counts from the "Number of Bricks"
// value. It runs once the whole block is read since the layout depends on
// the volume type.
func applyBrickCounts(vol *api.Volume, counts string) {
	num := func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	}

	switch {
	case counts == "" || brickTotalRe.MatchString(counts):
	case brickStripeReplicaRe.MatchString(counts):
		m := brickStripeReplicaRe.FindStringSubmatch(counts)
		vol.StripeCount = num(m[2])
		vol.ReplicaCount = num(m[3])
	case brickPlusRe.MatchString(counts):
		m := brickPlusRe.FindStringSubmatch(counts)
		data, extra := num(m[2]), num(m[3])
		if vol.Type.IsDispersed() {
			vol.DisperseCount = data + extra
			vol.RedundancyCount = extra
		} else {
			vol.ReplicaCount = data + extra
			vol.ArbiterCount = extra
		}
	case brickSubvolRe.MatchString(counts):
		m := brickSubvolRe.FindStringSubmatch(counts)
		n := num(m[2])
		switch {
		case vol.Type.IsDispersed():
			vol.DisperseCount = n
		case vol.Type.IsStriped() && !vol.Type.IsReplicated():
			vol.StripeCount = n
		default:
			vol.ReplicaCount = n
		}
	default:
		log.WithFields(log.Fields{
			"volume": vol.Name,
			"value":  counts,
		}).Debug("unrecognized Number of Bricks layout")
	}
}

func (p *Parser) brickText(value string) (api.Brick, error) {
	arbiter := false
	if strings.HasSuffix(value, arbiterSuffix) {
		arbiter = true
		value = strings.TrimSpace(strings.TrimSuffix(value, arbiterSuffix))
	}
	return p.brick(value, nil, arbiter)
}

// volumeListText reads "gluster volume list": one name per line.
func volumeListText(data []byte) ([]string, error) {
	var names []string
	rows, err := lines(data)
	if err != nil {
		return nil, err
	}
	for _, line := range rows {
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, noVolumesPresent) {
			return nil, nil
		}
		if strings.ContainsAny(line, " \t") {
			return nil, errors.NewFormatError(line, "volume name contains blanks")
		}
		names = append(names, line)
	}
	return names, nil
}

func atoiField(s, where string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &errors.FormatError{Where: where, Reason: "not an integer", Err: err}
	}
	return v, nil
}
