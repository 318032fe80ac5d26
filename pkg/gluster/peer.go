package gluster

import (
	"context"

	"github.com/cholcombe973/charms.gluster/pkg/api"
	"github.com/cholcombe973/charms.gluster/pkg/cliout"
	"github.com/cholcombe973/charms.gluster/pkg/errors"
	"github.com/cholcombe973/charms.gluster/pkg/utils"

	log "github.com/sirupsen/logrus"
)

// PeerStatus returns the peers of this node, excluding the node itself.
func (c *Client) PeerStatus(ctx context.Context) ([]api.Peer, error) {
	out, err := c.query(ctx, "peer", "status")
	if err != nil {
		return nil, err
	}
	peers, err := cliout.New(c.resolver, nil).PeerStatus(c.cfg.Format, out)
	return peers, parseErr(err, "peer status")
}

// PeerList returns every member of the pool, including this node.
func (c *Client) PeerList(ctx context.Context) ([]api.Peer, error) {
	out, err := c.query(ctx, "pool", "list")
	if err != nil {
		return nil, err
	}
	peers, err := cliout.New(c.resolver, nil).PoolList(c.cfg.Format, out)
	return peers, parseErr(err, "pool list")
}

// GetPeer returns the pool member with the given address.
func (c *Client) GetPeer(ctx context.Context, address string) (api.Peer, error) {
	peers, err := c.PeerList(ctx)
	if err != nil {
		return api.Peer{}, err
	}
	if p, ok := cliout.PeerTable(peers).LookupPeer(address); ok {
		return p, nil
	}
	return api.Peer{}, errors.ErrPeerNotFound
}

// PeerProbe adds host to the pool. Probing a current member is a no-op.
func (c *Client) PeerProbe(ctx context.Context, host string) error {
	peers, err := c.PeerList(ctx)
	if err != nil {
		return err
	}

	addr := host
	if ip, err := c.resolver.Resolve(host); err == nil && ip != nil {
		addr = ip.String()
	}
	members := make([]string, 0, len(peers))
	for _, p := range peers {
		members = append(members, p.Address)
	}
	if utils.StringInSlice(host, members) || utils.StringInSlice(addr, members) {
		log.WithField("peer", host).Info("peer already in pool, not probing")
		return nil
	}

	_, err = c.exec(ctx, false, "peer", "probe", host)
	return err
}

// PeerDetach removes host from the pool.
func (c *Client) PeerDetach(ctx context.Context, host string, force bool) error {
	args := []string{"peer", "detach", host}
	if force {
		args = append(args, "force")
	}
	_, err := c.exec(ctx, true, args...)
	return err
}
