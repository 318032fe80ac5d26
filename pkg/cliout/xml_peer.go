package cliout

import (
	"github.com/cholcombe973/charms.gluster/pkg/api"
	"github.com/cholcombe973/charms.gluster/pkg/xmltree"
)

// peerStatus/peer is shared by "peer status" and "pool list"
const peerPath = "peerStatus/peer"

func (p *Parser) peerStatusXML(data []byte) ([]api.Peer, error) {
	return p.peersXML(data)
}

func (p *Parser) poolListXML(data []byte) ([]api.Peer, error) {
	return p.peersXML(data)
}

func (p *Parser) peersXML(data []byte) ([]api.Peer, error) {
	root, err := parseReply(data)
	if err != nil {
		return nil, err
	}

	var peers []api.Peer
	for _, n := range root.FindAll(peerPath) {
		peer, err := p.peerXML(n)
		if err != nil {
			return nil, err
		}
		peers = append(peers, peer)
	}
	return peers, nil
}

func (p *Parser) peerXML(n *xmltree.Node) (api.Peer, error) {
	var (
		peer     api.Peer
		hostname string
	)

	tags := map[string]func(*xmltree.Node) error{
		"uuid": func(c *xmltree.Node) (err error) {
			peer.ID, err = xmlUUID(c)
			return
		},
		"hostname": func(c *xmltree.Node) error {
			hostname = c.Text
			return nil
		},
		"connected": func(c *xmltree.Node) (err error) {
			peer.Connected, err = xmlFlag(c)
			return
		},
		"stateStr": func(c *xmltree.Node) error {
			peer.State = api.ParsePeerState(c.Text)
			return nil
		},
	}
	if err := applyTags(n, tags); err != nil {
		return api.Peer{}, err
	}

	if peer.ID == nil {
		return api.Peer{}, missing("peer/uuid")
	}
	if hostname == "" {
		return api.Peer{}, missing("peer/hostname")
	}

	addr, err := p.address(hostname)
	if err != nil {
		return api.Peer{}, err
	}
	peer.Address = addr
	return peer, nil
}
