// Package resolver turns the hostnames printed by gluster into addresses.
package resolver

import (
	"context"
	"net"
	"strings"
	"time"

	"github.com/cholcombe973/charms.gluster/pkg/errors"
	"github.com/cholcombe973/charms.gluster/pkg/utils"

	log "github.com/sirupsen/logrus"
)

// DefaultTimeout bounds a single DNS lookup
const DefaultTimeout = 5 * time.Second

// Resolver resolves hostnames through the system resolver. "localhost" is
// mapped to the address of a local non-loopback interface, which is how
// the other pool members see this node.
type Resolver struct {
	timeout time.Duration
	lookup  func(ctx context.Context, host string) ([]net.IPAddr, error)
	localIP func() (net.IP, error)
}

// New returns a Resolver using net.DefaultResolver. A zero timeout selects
// DefaultTimeout.
func New(timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Resolver{
		timeout: timeout,
		lookup:  net.DefaultResolver.LookupIPAddr,
		localIP: utils.GetLocalIP,
	}
}

// Resolve returns the address of host, preferring IPv4.
func (r *Resolver) Resolve(host string) (net.IP, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	return r.ResolveContext(ctx, host)
}

// ResolveContext is Resolve with a caller supplied context.
func (r *Resolver) ResolveContext(ctx context.Context, host string) (net.IP, error) {
	host = strings.TrimSpace(host)
	if ip := net.ParseIP(strings.Trim(host, "[]")); ip != nil {
		return ip, nil
	}

	if host == "localhost" {
		ip, err := r.localIP()
		if err != nil {
			return nil, &errors.ResolutionError{Host: host, Err: err}
		}
		return ip, nil
	}

	addrs, err := r.lookup(ctx, host)
	if err != nil {
		log.WithError(err).WithField("host", host).Debug("hostname lookup failed")
		return nil, &errors.ResolutionError{Host: host, Err: err}
	}

	var first net.IP
	for _, a := range addrs {
		if a.IP.To4() != nil {
			return a.IP, nil
		}
		if first == nil {
			first = a.IP
		}
	}
	if first == nil {
		return nil, &errors.ResolutionError{Host: host, Err: errors.ErrIPAddressNotFound}
	}
	return first, nil
}
