// Package utils holds small helpers shared by the gluster client and the
// output parsers.
package utils

import (
	"net"
	"strings"

	"github.com/cholcombe973/charms.gluster/pkg/errors"

	log "github.com/sirupsen/logrus"
)

// ParseHostAndBrickPath splits a "host:path" brick name on its last colon,
// so IPv6 hosts keep their colons. Both parts must be non-empty.
func ParseHostAndBrickPath(brick string) (string, string, error) {
	i := strings.LastIndex(brick, ":")
	if i <= 0 || i == len(brick)-1 {
		log.WithField("brick", brick).Debug(errors.ErrInvalidBrickPath.Error())
		return "", "", errors.ErrInvalidBrickPath
	}
	return brick[:i], brick[i+1:], nil
}

// IsIPAddress returns true if host is a literal IPv4 or IPv6 address
func IsIPAddress(host string) bool {
	return net.ParseIP(strings.Trim(host, "[]")) != nil
}

// GetLocalIP returns the first non-loopback address of this node, preferring
// IPv4.
func GetLocalIP() (net.IP, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return nil, err
	}
	return pickLocalIP(addrs)
}

func pickLocalIP(addrs []net.Addr) (net.IP, error) {
	var v6 net.IP
	for _, addr := range addrs {
		ipnet, ok := addr.(*net.IPNet)
		if !ok || ipnet.IP.IsLoopback() || ipnet.IP.IsLinkLocalUnicast() {
			continue
		}
		if ip4 := ipnet.IP.To4(); ip4 != nil {
			return ip4, nil
		}
		if v6 == nil {
			v6 = ipnet.IP
		}
	}
	if v6 != nil {
		return v6, nil
	}
	return nil, errors.ErrIPAddressNotFound
}

// StringInSlice reports whether query is one of list
func StringInSlice(query string, list []string) bool {
	for _, s := range list {
		if s == query {
			return true
		}
	}
	return false
}
