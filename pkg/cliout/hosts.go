package cliout

import (
	"net"
	"strings"

	"github.com/cholcombe973/charms.gluster/pkg/api"
	"github.com/cholcombe973/charms.gluster/pkg/errors"
	"github.com/cholcombe973/charms.gluster/pkg/utils"

	"github.com/pborman/uuid"
	log "github.com/sirupsen/logrus"
)

// Resolver turns a hostname into an address.
type Resolver interface {
	Resolve(host string) (net.IP, error)
}

// ResolverFunc adapts a function to the Resolver interface
type ResolverFunc func(host string) (net.IP, error)

// Resolve calls f(host)
func (f ResolverFunc) Resolve(host string) (net.IP, error) {
	return f(host)
}

// PeerLookup finds the pool member owning an address.
type PeerLookup interface {
	LookupPeer(address string) (api.Peer, bool)
}

// PeerTable is a PeerLookup over a fixed list of peers, typically the result
// of a pool list.
type PeerTable []api.Peer

// LookupPeer returns the first peer whose address equals address
func (t PeerTable) LookupPeer(address string) (api.Peer, bool) {
	for _, p := range t {
		if p.Address == address {
			return p, true
		}
	}
	return api.Peer{}, false
}

// noResolver fails every lookup; used when a Parser is built without one.
type noResolver struct{}

func (noResolver) Resolve(host string) (net.IP, error) {
	return nil, &errors.ResolutionError{Host: host}
}

// address returns host unchanged when it already is a literal IP and
// otherwise asks the resolver.
func (p *Parser) address(host string) (string, error) {
	if utils.IsIPAddress(host) {
		return strings.Trim(host, "[]"), nil
	}

	ip, err := p.resolver.Resolve(host)
	if err != nil {
		if _, ok := err.(*errors.ResolutionError); ok {
			return "", err
		}
		return "", &errors.ResolutionError{Host: host, Err: err}
	}
	if ip == nil {
		return "", &errors.ResolutionError{Host: host}
	}
	return ip.String(), nil
}

// brickPeer finds the pool member for a brick address. A miss is not an
// error: the brick gets a peer carrying only what the reply told us.
func (p *Parser) brickPeer(address string, hostID uuid.UUID) api.Peer {
	if peer, ok := p.peers.LookupPeer(address); ok {
		return peer
	}
	log.WithField("address", address).Debug("brick host not found in peer pool")
	return api.Peer{ID: hostID, Address: address}
}

// brick builds a Brick from a "host:path" name.
func (p *Parser) brick(name string, hostID uuid.UUID, arbiter bool) (api.Brick, error) {
	host, path, err := utils.ParseHostAndBrickPath(name)
	if err != nil {
		return api.Brick{}, &errors.FormatError{Where: name, Reason: "brick is not in host:path form"}
	}
	addr, err := p.address(host)
	if err != nil {
		return api.Brick{}, err
	}
	return api.Brick{
		Peer:      p.brickPeer(addr, hostID),
		Path:      path,
		IsArbiter: arbiter,
	}, nil
}

// brickSet rejects a second brick with the same peer address and path.
type brickSet map[string]struct{}

func (s brickSet) add(b api.Brick) error {
	key := b.String()
	if _, ok := s[key]; ok {
		return &errors.FormatError{Where: key, Reason: "duplicate brick"}
	}
	s[key] = struct{}{}
	return nil
}
