package api

import (
	"fmt"
)

// Brick is an export directory on a peer. The peer is a copy of the pool
// entry it was matched to, not an owned object.
type Brick struct {
	Peer      Peer   `json:"peer"`
	Path      string `json:"path"`
	IsArbiter bool   `json:"arbiter"`
}

// String returns the host:path form used on the gluster command line
func (b Brick) String() string {
	return b.Peer.Address + ":" + b.Path
}

// BrickStatus is the point in time state of a brick process.
type BrickStatus struct {
	Brick    Brick `json:"brick"`
	TCPPort  int   `json:"tcp-port"`
	RDMAPort int   `json:"rdma-port"`
	Online   bool  `json:"online"`
	Pid      int   `json:"pid"`
}

func (s BrickStatus) String() string {
	return fmt.Sprintf("BrickStatus %s tcp port: %d rdma port: %d online: %t pid: %d",
		s.Brick, s.TCPPort, s.RDMAPort, s.Online, s.Pid)
}
