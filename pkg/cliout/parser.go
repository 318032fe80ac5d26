// Package cliout interprets the output of the gluster command line tool.
//
// Every listing can be read either from the XML reply printed with --xml or
// from the legacy human readable text. Both forms produce the same pkg/api
// values for equivalent input.
package cliout

import (
	"fmt"
	"strings"

	"github.com/cholcombe973/charms.gluster/pkg/api"
	"github.com/cholcombe973/charms.gluster/pkg/errors"
	"github.com/cholcombe973/charms.gluster/pkg/metrics"
)

// Format is the shape of a gluster reply.
type Format uint8

const (
	// FormatXML is the reply printed with --xml
	FormatXML Format = iota
	// FormatText is the legacy line oriented reply
	FormatText
)

func (f Format) String() string {
	switch f {
	case FormatXML:
		return "xml"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// ParseFormat maps "xml" or "text" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xml":
		return FormatXML, nil
	case "text", "plain":
		return FormatText, nil
	}
	return FormatXML, fmt.Errorf("unknown output format %q, expected xml or text", s)
}

// Parser turns gluster replies into topology values. A Parser holds no state
// besides its collaborators and is safe for concurrent use.
type Parser struct {
	resolver Resolver
	peers    PeerLookup
}

// New returns a Parser. A nil resolver fails every hostname lookup; a nil
// peer lookup never finds a peer.
func New(r Resolver, peers PeerLookup) *Parser {
	if r == nil {
		r = noResolver{}
	}
	if peers == nil {
		peers = PeerTable(nil)
	}
	return &Parser{resolver: r, peers: peers}
}

// PeerStatus parses the reply of "gluster peer status".
func (p *Parser) PeerStatus(f Format, data []byte) ([]api.Peer, error) {
	var (
		peers []api.Peer
		err   error
	)
	switch f {
	case FormatXML:
		peers, err = p.peerStatusXML(data)
	case FormatText:
		peers, err = p.peerStatusText(data)
	default:
		err = unknownFormat(f)
	}
	return peers, countFailure("peer status", err)
}

// PoolList parses the reply of "gluster pool list".
func (p *Parser) PoolList(f Format, data []byte) ([]api.Peer, error) {
	var (
		peers []api.Peer
		err   error
	)
	switch f {
	case FormatXML:
		peers, err = p.poolListXML(data)
	case FormatText:
		peers, err = p.poolListText(data)
	default:
		err = unknownFormat(f)
	}
	return peers, countFailure("pool list", err)
}

// VolumeList parses the reply of "gluster volume list".
func (p *Parser) VolumeList(f Format, data []byte) ([]string, error) {
	var (
		names []string
		err   error
	)
	switch f {
	case FormatXML:
		names, err = volumeListXML(data)
	case FormatText:
		names, err = volumeListText(data)
	default:
		err = unknownFormat(f)
	}
	return names, countFailure("volume list", err)
}

// VolumeInfo parses the reply of "gluster volume info [name]".
func (p *Parser) VolumeInfo(f Format, data []byte) ([]api.Volume, error) {
	var (
		vols []api.Volume
		err  error
	)
	switch f {
	case FormatXML:
		vols, err = p.volumeInfoXML(data)
	case FormatText:
		vols, err = p.volumeInfoText(data)
	default:
		err = unknownFormat(f)
	}
	return vols, countFailure("volume info", err)
}

// VolumeStatus parses the reply of "gluster volume status <name>".
func (p *Parser) VolumeStatus(f Format, data []byte) ([]api.BrickStatus, error) {
	var (
		statuses []api.BrickStatus
		err      error
	)
	switch f {
	case FormatXML:
		statuses, err = p.volumeStatusXML(data)
	case FormatText:
		statuses, err = p.volumeStatusText(data)
	default:
		err = unknownFormat(f)
	}
	return statuses, countFailure("volume status", err)
}

// QuotaList parses the reply of "gluster volume quota <name> list".
func (p *Parser) QuotaList(f Format, data []byte) ([]api.Quota, error) {
	var (
		quotas []api.Quota
		err    error
	)
	switch f {
	case FormatXML:
		quotas, err = quotaListXML(data)
	case FormatText:
		quotas, err = quotaListText(data)
	default:
		err = unknownFormat(f)
	}
	return quotas, countFailure("quota list", err)
}

func unknownFormat(f Format) error {
	return fmt.Errorf("unsupported output format %d", f)
}

// countFailure records err in the parse failure counter and hands it back.
// A NotFound reply is an answer, not a failure, and is not counted.
func countFailure(listing string, err error) error {
	if err == nil {
		return nil
	}
	kind := errors.KindOf(err)
	if kind != errors.KindNotFound {
		metrics.ParseFailures.WithLabelValues(listing, kind.String()).Inc()
	}
	return err
}

// ParsePeerStatusXML parses "gluster peer status --xml".
func ParsePeerStatusXML(data []byte, r Resolver) ([]api.Peer, error) {
	return New(r, nil).peerStatusXML(data)
}

// ParsePeerStatusText parses "gluster peer status".
func ParsePeerStatusText(data []byte, r Resolver) ([]api.Peer, error) {
	return New(r, nil).peerStatusText(data)
}

// ParsePoolListXML parses "gluster pool list --xml".
func ParsePoolListXML(data []byte, r Resolver) ([]api.Peer, error) {
	return New(r, nil).poolListXML(data)
}

// ParsePoolListText parses "gluster pool list".
func ParsePoolListText(data []byte, r Resolver) ([]api.Peer, error) {
	return New(r, nil).poolListText(data)
}

// ParseVolumeListXML parses "gluster volume list --xml".
func ParseVolumeListXML(data []byte) ([]string, error) {
	return volumeListXML(data)
}

// ParseVolumeListText parses "gluster volume list".
func ParseVolumeListText(data []byte) ([]string, error) {
	return volumeListText(data)
}

// ParseVolumeInfoXML parses "gluster volume info --xml".
func ParseVolumeInfoXML(data []byte, r Resolver, peers PeerLookup) ([]api.Volume, error) {
	return New(r, peers).volumeInfoXML(data)
}

// ParseVolumeInfoText parses "gluster volume info".
func ParseVolumeInfoText(data []byte, r Resolver, peers PeerLookup) ([]api.Volume, error) {
	return New(r, peers).volumeInfoText(data)
}

// ParseVolumeStatusXML parses "gluster volume status <name> --xml".
func ParseVolumeStatusXML(data []byte, r Resolver, peers PeerLookup) ([]api.BrickStatus, error) {
	return New(r, peers).volumeStatusXML(data)
}

// ParseVolumeStatusText parses "gluster volume status <name>".
func ParseVolumeStatusText(data []byte, r Resolver, peers PeerLookup) ([]api.BrickStatus, error) {
	return New(r, peers).volumeStatusText(data)
}

// ParseQuotaListXML parses "gluster volume quota <name> list --xml".
func ParseQuotaListXML(data []byte) ([]api.Quota, error) {
	return quotaListXML(data)
}

// ParseQuotaListText parses "gluster volume quota <name> list".
func ParseQuotaListText(data []byte) ([]api.Quota, error) {
	return quotaListText(data)
}
