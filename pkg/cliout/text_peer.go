package cliout

import (
	"regexp"
	"strings"

	"github.com/cholcombe973/charms.gluster/pkg/api"
	"github.com/cholcombe973/charms.gluster/pkg/errors"

	"github.com/pborman/uuid"
)

// peerStatusRe matches one peer block of "gluster peer status", on one line
// or spread over the usual three.
var peerStatusRe = regexp.MustCompile(`Hostname:\s*(\S+)\s+Uuid:\s*(\S+)\s+State:\s*([^(\n]*?)\s*\(([^)\n]*)\)`)

func (p *Parser) peerStatusText(data []byte) ([]api.Peer, error) {
	var peers []api.Peer
	for _, m := range peerStatusRe.FindAllStringSubmatch(string(data), -1) {
		id := uuid.Parse(m[2])
		if id == nil {
			return nil, errors.NewFormatError(m[2], "invalid peer uuid")
		}
		addr, err := p.address(m[1])
		if err != nil {
			return nil, err
		}
		peers = append(peers, api.Peer{
			ID:        id,
			Address:   addr,
			State:     api.ParsePeerState(m[3]),
			Connected: api.ParsePeerState(m[4]) == api.Connected,
		})
	}
	return peers, nil
}

// poolListText reads the UUID/Hostname/State table of "gluster pool list".
func (p *Parser) poolListText(data []byte) ([]api.Peer, error) {
	var peers []api.Peer
	rows, err := lines(data)
	if err != nil {
		return nil, err
	}
	for _, line := range rows {
		if line == "" || isSeparator(line) {
			continue
		}
		fields := strings.Fields(line)
		if isHeader(fields, "UUID") {
			continue
		}
		if len(fields) < 3 {
			skipRow("pool list", line, "short pool list row")
			continue
		}

		id := uuid.Parse(fields[0])
		if id == nil {
			return nil, errors.NewFormatError(fields[0], "invalid peer uuid")
		}
		addr, err := p.address(fields[1])
		if err != nil {
			return nil, err
		}
		state := api.ParsePeerState(strings.Join(fields[2:], " "))
		peers = append(peers, api.Peer{
			ID:        id,
			Address:   addr,
			State:     state,
			Connected: state == api.Connected,
		})
	}
	return peers, nil
}
