package cmd

import (
	"context"
	"io/ioutil"

	"github.com/cholcombe973/charms.gluster/pkg/api"
	"github.com/cholcombe973/charms.gluster/pkg/cliout"
	"github.com/cholcombe973/charms.gluster/pkg/errors"
	"github.com/cholcombe973/charms.gluster/pkg/gluster"
	"github.com/cholcombe973/charms.gluster/pkg/resolver"

	pkgerrors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// topology is what the commands read. *gluster.Client provides it by running
// gluster, capture by parsing output saved in a file.
type topology interface {
	PeerStatus(ctx context.Context) ([]api.Peer, error)
	PeerList(ctx context.Context) ([]api.Peer, error)
	VolumeList(ctx context.Context) ([]string, error)
	VolumeInfo(ctx context.Context, volume string) ([]api.Volume, error)
	VolumeStatus(ctx context.Context, volume string) ([]api.BrickStatus, error)
	QuotaList(ctx context.Context, volume string) ([]api.Quota, error)
}

// newTopology is replaced in tests
var newTopology = defaultTopology

func defaultTopology() (topology, error) {
	format, err := cliout.ParseFormat(config.GetString(keyFormat))
	if err != nil {
		return nil, err
	}
	r := resolver.New(resolveTimeout())

	if flagInput == "" {
		return gluster.NewClient(gluster.Config{
			Binary: config.GetString(keyBinary),
			Format: format,
			Sudo:   config.GetBool(keySudo),
		}, nil, r), nil
	}
	return loadCapture(flagInput, flagPool, format, r)
}

// capture answers every listing from one saved reply; the caller picks the
// listing matching what was captured.
type capture struct {
	format cliout.Format
	data   []byte
	parser *cliout.Parser
}

func loadCapture(input, pool string, format cliout.Format, r cliout.Resolver) (*capture, error) {
	data, err := ioutil.ReadFile(input)
	if err != nil {
		return nil, err
	}

	var peers cliout.PeerLookup
	if pool != "" {
		poolData, err := ioutil.ReadFile(pool)
		if err != nil {
			return nil, err
		}
		members, err := cliout.New(r, nil).PoolList(format, poolData)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "unable to parse pool list in %s", pool)
		}
		peers = cliout.PeerTable(members)
	}

	log.WithFields(log.Fields{
		"input":  input,
		"pool":   pool,
		"format": format,
		"bytes":  len(data),
	}).Debug("parsing captured output")

	return &capture{
		format: format,
		data:   data,
		parser: cliout.New(r, peers),
	}, nil
}

func (c *capture) PeerStatus(ctx context.Context) ([]api.Peer, error) {
	return c.parser.PeerStatus(c.format, c.data)
}

func (c *capture) PeerList(ctx context.Context) ([]api.Peer, error) {
	return c.parser.PoolList(c.format, c.data)
}

func (c *capture) VolumeList(ctx context.Context) ([]string, error) {
	return c.parser.VolumeList(c.format, c.data)
}

func (c *capture) VolumeInfo(ctx context.Context, volume string) ([]api.Volume, error) {
	vols, err := c.parser.VolumeInfo(c.format, c.data)
	if err != nil || volume == "" {
		return vols, err
	}
	for _, v := range vols {
		if v.Name == volume {
			return []api.Volume{v}, nil
		}
	}
	return nil, &errors.NotFoundError{Volume: volume}
}

// VolumeStatus ignores volume; a capture holds the status of one volume.
func (c *capture) VolumeStatus(ctx context.Context, volume string) ([]api.BrickStatus, error) {
	return c.parser.VolumeStatus(c.format, c.data)
}

// QuotaList ignores volume like VolumeStatus.
func (c *capture) QuotaList(ctx context.Context, volume string) ([]api.Quota, error) {
	return c.parser.QuotaList(c.format, c.data)
}
