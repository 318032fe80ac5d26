package cliout

import (
	"strings"

	"github.com/cholcombe973/charms.gluster/pkg/api"
	"github.com/cholcombe973/charms.gluster/pkg/errors"
	"github.com/cholcombe973/charms.gluster/pkg/xmltree"

	"github.com/pborman/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	volListPath   = "volList/volume"
	volInfoPath   = "volInfo/volumes/volume"
	volStatusPath = "volStatus/volumes/volume/node"
)

// volumeStates maps the numeric status of older replies lacking statusStr
var volumeStates = map[string]string{
	"0": "Created",
	"1": "Started",
	"2": "Stopped",
}

func volumeListXML(data []byte) ([]string, error) {
	root, err := parseReply(data)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, n := range root.FindAll(volListPath) {
		if n.Text == "" {
			return nil, missing("volList/volume")
		}
		names = append(names, n.Text)
	}
	return names, nil
}

func (p *Parser) volumeInfoXML(data []byte) ([]api.Volume, error) {
	root, err := parseReply(data)
	if err != nil {
		return nil, err
	}

	var vols []api.Volume
	for _, n := range root.FindAll(volInfoPath) {
		vol, err := p.volumeXML(n)
		if err != nil {
			return nil, err
		}
		vols = append(vols, vol)
	}
	if len(vols) == 0 {
		return nil, &errors.NotFoundError{}
	}
	return vols, nil
}

func (p *Parser) volumeXML(n *xmltree.Node) (api.Volume, error) {
	vol := api.Volume{Options: make(map[string]string)}
	var numericStatus string
	bricks := brickSet{}

	count := func(dst *int) func(*xmltree.Node) error {
		return func(c *xmltree.Node) (err error) {
			*dst, err = xmlInt(c)
			return
		}
	}

	tags := map[string]func(*xmltree.Node) error{
		"name": func(c *xmltree.Node) error {
			vol.Name = c.Text
			return nil
		},
		"id": func(c *xmltree.Node) (err error) {
			vol.ID, err = xmlUUID(c)
			return
		},
		"status": func(c *xmltree.Node) error {
			numericStatus = c.Text
			return nil
		},
		"statusStr": func(c *xmltree.Node) error {
			vol.Status = c.Text
			return nil
		},
		"typeStr": func(c *xmltree.Node) error {
			vol.Type = api.ParseVolType(c.Text)
			return nil
		},
		"transport": func(c *xmltree.Node) error {
			vol.Transport = api.ParseTransport(c.Text)
			return nil
		},
		"snapshotCount":   count(&vol.SnapshotCount),
		"stripeCount":     count(&vol.StripeCount),
		"replicaCount":    count(&vol.ReplicaCount),
		"arbiterCount":    count(&vol.ArbiterCount),
		"disperseCount":   count(&vol.DisperseCount),
		"redundancyCount": count(&vol.RedundancyCount),
		"bricks": func(c *xmltree.Node) error {
			for _, b := range c.ChildrenNamed("brick") {
				brick, err := p.brickXML(b)
				if err != nil {
					return err
				}
				if err := bricks.add(brick); err != nil {
					return err
				}
				vol.Bricks = append(vol.Bricks, brick)
			}
			return nil
		},
		"options": func(c *xmltree.Node) error {
			for _, o := range c.ChildrenNamed("option") {
				name, _ := o.ChildText("name")
				if name == "" {
					return missing("option/name")
				}
				value, _ := o.ChildText("value")
				vol.Options[name] = value
			}
			return nil
		},
	}
	if err := applyTags(n, tags); err != nil {
		return api.Volume{}, err
	}

	if vol.Name == "" {
		return api.Volume{}, missing("volume/name")
	}
	if vol.Status == "" {
		vol.Status = volumeStates[numericStatus]
	}
	return vol, nil
}

func (p *Parser) brickXML(n *xmltree.Node) (api.Brick, error) {
	var (
		name    string
		hostID  uuid.UUID
		arbiter bool
	)

	tags := map[string]func(*xmltree.Node) error{
		"name": func(c *xmltree.Node) error {
			name = c.Text
			return nil
		},
		"hostUuid": func(c *xmltree.Node) (err error) {
			hostID, err = xmlUUID(c)
			return
		},
		"isArbiter": func(c *xmltree.Node) (err error) {
			arbiter, err = xmlFlag(c)
			return
		},
	}
	if err := applyTags(n, tags); err != nil {
		return api.Brick{}, err
	}

	// <brick> repeats the name as its own character data
	if name == "" {
		name = n.Text
	}
	if name == "" {
		return api.Brick{}, missing("brick/name")
	}
	return p.brick(name, hostID, arbiter)
}

func (p *Parser) volumeStatusXML(data []byte) ([]api.BrickStatus, error) {
	root, err := parseReply(data)
	if err != nil {
		return nil, err
	}

	var statuses []api.BrickStatus
	for _, n := range root.FindAll(volStatusPath) {
		path, _ := n.ChildText("path")
		if !strings.HasPrefix(path, "/") {
			hostname, _ := n.ChildText("hostname")
			log.WithFields(log.Fields{
				"hostname": hostname,
				"path":     path,
			}).Debug("skipping non brick node in volume status")
			continue
		}
		status, err := p.nodeXML(n)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

func (p *Parser) nodeXML(n *xmltree.Node) (api.BrickStatus, error) {
	var (
		status           api.BrickStatus
		hostname, path   string
		peerID           uuid.UUID
		port             int
		tcp, rdma        int
		hasPorts, online bool
	)

	tags := map[string]func(*xmltree.Node) error{
		"hostname": func(c *xmltree.Node) error {
			hostname = c.Text
			return nil
		},
		"path": func(c *xmltree.Node) error {
			path = c.Text
			return nil
		},
		"peerid": func(c *xmltree.Node) (err error) {
			peerID, err = xmlUUID(c)
			return
		},
		"status": func(c *xmltree.Node) (err error) {
			online, err = xmlFlag(c)
			return
		},
		"port": func(c *xmltree.Node) (err error) {
			port, err = xmlPort(c)
			return
		},
		"ports": func(c *xmltree.Node) error {
			hasPorts = true
			return applyTags(c, map[string]func(*xmltree.Node) error{
				"tcp": func(c *xmltree.Node) (err error) {
					tcp, err = xmlPort(c)
					return
				},
				"rdma": func(c *xmltree.Node) (err error) {
					rdma, err = xmlPort(c)
					return
				},
			})
		},
		"pid": func(c *xmltree.Node) (err error) {
			status.Pid, err = xmlPort(c)
			return
		},
	}
	if err := applyTags(n, tags); err != nil {
		return api.BrickStatus{}, err
	}

	if hostname == "" {
		return api.BrickStatus{}, missing("node/hostname")
	}
	brick, err := p.brick(hostname+":"+path, peerID, false)
	if err != nil {
		return api.BrickStatus{}, err
	}

	status.Brick = brick
	status.Online = online
	if hasPorts {
		status.TCPPort = tcp
		status.RDMAPort = rdma
	} else {
		status.TCPPort = port
	}
	return status, nil
}
