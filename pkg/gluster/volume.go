package gluster

import (
	"context"
	stderrors "errors"
	"strconv"

	"github.com/cholcombe973/charms.gluster/pkg/api"
	"github.com/cholcombe973/charms.gluster/pkg/cliout"
	"github.com/cholcombe973/charms.gluster/pkg/errors"

	log "github.com/sirupsen/logrus"
)

// Translator is a layout keyword of "volume create" with its count, such as
// replica 3.
type Translator struct {
	Name  string
	Count int
}

// Layout keywords understood by "volume create"
const (
	TranslatorReplica    = "replica"
	TranslatorArbiter    = "arbiter"
	TranslatorStripe     = "stripe"
	TranslatorDisperse   = "disperse"
	TranslatorRedundancy = "redundancy"
)

// Option is a volume option set with "volume set".
type Option struct {
	Name  string
	Value string
}

// VolumeList returns the names of all volumes.
func (c *Client) VolumeList(ctx context.Context) ([]string, error) {
	out, err := c.query(ctx, "volume", "list")
	if err != nil {
		return nil, err
	}
	names, err := cliout.New(c.resolver, nil).VolumeList(c.cfg.Format, out)
	return names, parseErr(err, "volume list")
}

// VolumeInfo describes volume, or every volume when volume is empty.
func (c *Client) VolumeInfo(ctx context.Context, volume string) ([]api.Volume, error) {
	args := []string{"volume", "info"}
	if volume != "" {
		args = append(args, volume)
	}
	out, err := c.query(ctx, args...)
	if err != nil {
		return nil, err
	}
	p, err := c.parser(ctx)
	if err != nil {
		return nil, err
	}
	vols, err := p.VolumeInfo(c.cfg.Format, out)
	return vols, parseErr(err, "volume info")
}

// VolumeStatus returns the state of every brick process of volume.
func (c *Client) VolumeStatus(ctx context.Context, volume string) ([]api.BrickStatus, error) {
	if volume == "" {
		return nil, errors.ErrEmptyVolName
	}
	out, err := c.query(ctx, "volume", "status", volume)
	if err != nil {
		return nil, err
	}
	p, err := c.parser(ctx)
	if err != nil {
		return nil, err
	}
	statuses, err := p.VolumeStatus(c.cfg.Format, out)
	return statuses, parseErr(err, "volume status")
}

// VolumeSet sets one option on volume.
func (c *Client) VolumeSet(ctx context.Context, volume string, opt Option) error {
	if volume == "" {
		return errors.ErrEmptyVolName
	}
	_, err := c.exec(ctx, true, "volume", "set", volume, opt.Name, opt.Value)
	return err
}

// VolumeSetOptions sets every option in turn. All options are attempted;
// the failures are returned together.
func (c *Client) VolumeSetOptions(ctx context.Context, volume string, opts []Option) error {
	var errs []error
	for _, opt := range opts {
		if err := c.VolumeSet(ctx, volume, opt); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

// VolumeStart starts a created or stopped volume.
func (c *Client) VolumeStart(ctx context.Context, volume string, force bool) error {
	return c.volumeOp(ctx, "start", volume, force)
}

// VolumeStop stops a running volume.
func (c *Client) VolumeStop(ctx context.Context, volume string, force bool) error {
	return c.volumeOp(ctx, "stop", volume, force)
}

// VolumeDelete deletes a stopped volume.
func (c *Client) VolumeDelete(ctx context.Context, volume string) error {
	return c.volumeOp(ctx, "delete", volume, false)
}

// VolumeRebalance starts a rebalance of volume. It does not wait for the
// rebalance to complete.
func (c *Client) VolumeRebalance(ctx context.Context, volume string) error {
	if volume == "" {
		return errors.ErrEmptyVolName
	}
	_, err := c.exec(ctx, true, "volume", "rebalance", volume, "start")
	return err
}

func (c *Client) volumeOp(ctx context.Context, op, volume string, force bool) error {
	if volume == "" {
		return errors.ErrEmptyVolName
	}
	args := []string{"volume", op, volume}
	if force {
		args = append(args, "force")
	}
	_, err := c.exec(ctx, true, args...)
	return err
}

// VolumeCreate creates volume from bricks with the given layout.
func (c *Client) VolumeCreate(ctx context.Context, volume string, layout []Translator, transport api.Transport, bricks []api.Brick, force bool) error {
	if volume == "" {
		return errors.ErrEmptyVolName
	}
	if len(bricks) == 0 {
		return errors.ErrEmptyBrickList
	}

	args := []string{"volume", "create", volume}
	for _, t := range layout {
		args = append(args, t.Name, strconv.Itoa(t.Count))
	}
	if transport != api.TransportUnknown {
		args = append(args, "transport", transport.String())
	}
	for _, b := range bricks {
		args = append(args, b.String())
	}
	if force {
		args = append(args, "force")
	}

	log.WithFields(log.Fields{
		"volume": volume,
		"bricks": len(bricks),
	}).Info("creating volume")
	_, err := c.exec(ctx, true, args...)
	return err
}

// VolumeCreateReplicated creates a replicated volume.
func (c *Client) VolumeCreateReplicated(ctx context.Context, volume string, replica int, transport api.Transport, bricks []api.Brick, force bool) error {
	return c.VolumeCreate(ctx, volume, []Translator{{TranslatorReplica, replica}}, transport, bricks, force)
}

// VolumeCreateArbiter creates a replicated volume whose last brick of every
// replica set only holds metadata.
func (c *Client) VolumeCreateArbiter(ctx context.Context, volume string, replica, arbiter int, transport api.Transport, bricks []api.Brick, force bool) error {
	return c.VolumeCreate(ctx, volume, []Translator{
		{TranslatorReplica, replica},
		{TranslatorArbiter, arbiter},
	}, transport, bricks, force)
}

// VolumeCreateStriped creates a striped volume.
func (c *Client) VolumeCreateStriped(ctx context.Context, volume string, stripe int, transport api.Transport, bricks []api.Brick, force bool) error {
	return c.VolumeCreate(ctx, volume, []Translator{{TranslatorStripe, stripe}}, transport, bricks, force)
}

// VolumeCreateStripedReplicated creates a striped volume of replica sets.
func (c *Client) VolumeCreateStripedReplicated(ctx context.Context, volume string, stripe, replica int, transport api.Transport, bricks []api.Brick, force bool) error {
	return c.VolumeCreate(ctx, volume, []Translator{
		{TranslatorStripe, stripe},
		{TranslatorReplica, replica},
	}, transport, bricks, force)
}

// VolumeCreateDistributed creates a plain distribute volume.
func (c *Client) VolumeCreateDistributed(ctx context.Context, volume string, transport api.Transport, bricks []api.Brick, force bool) error {
	return c.VolumeCreate(ctx, volume, nil, transport, bricks, force)
}

// VolumeCreateErasure creates an erasure coded volume.
func (c *Client) VolumeCreateErasure(ctx context.Context, volume string, disperse, redundancy int, transport api.Transport, bricks []api.Brick, force bool) error {
	return c.VolumeCreate(ctx, volume, []Translator{
		{TranslatorDisperse, disperse},
		{TranslatorRedundancy, redundancy},
	}, transport, bricks, force)
}

// VolumeAddBrick expands volume with bricks.
func (c *Client) VolumeAddBrick(ctx context.Context, volume string, bricks []api.Brick, force bool) error {
	if volume == "" {
		return errors.ErrEmptyVolName
	}
	if len(bricks) == 0 {
		return errors.ErrEmptyBrickList
	}
	args := []string{"volume", "add-brick", volume}
	for _, b := range bricks {
		args = append(args, b.String())
	}
	if force {
		args = append(args, "force")
	}
	_, err := c.exec(ctx, true, args...)
	return err
}

// VolumeRemoveBrick starts removing bricks from volume, one brick at a
// time. Every brick must show up in the volume status first.
func (c *Client) VolumeRemoveBrick(ctx context.Context, volume string, bricks []api.Brick, force bool) error {
	if len(bricks) == 0 {
		return errors.ErrEmptyBrickList
	}
	statuses, err := c.VolumeStatus(ctx, volume)
	if err != nil {
		return err
	}
	present := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		present[s.Brick.String()] = true
	}

	for _, b := range bricks {
		if !present[b.String()] {
			log.WithFields(log.Fields{
				"volume": volume,
				"brick":  b.String(),
			}).Error("refusing to remove brick")
			return errors.ErrBrickNotFound
		}
		args := []string{"volume", "remove-brick", volume, b.String()}
		if force {
			args = append(args, "force")
		}
		args = append(args, "start")
		if _, err := c.exec(ctx, true, args...); err != nil {
			return err
		}
	}
	return nil
}

// LocalBricks returns the bricks of volume served by this node.
func (c *Client) LocalBricks(ctx context.Context, volume string) ([]api.Brick, error) {
	vols, err := c.VolumeInfo(ctx, volume)
	if err != nil {
		return nil, err
	}
	ip, err := c.localIP()
	if err != nil {
		return nil, err
	}

	var local []api.Brick
	for _, v := range vols {
		for _, b := range v.Bricks {
			if b.Peer.Address == ip.String() {
				local = append(local, b)
			}
		}
	}
	return local, nil
}
