// Package api contains the topology types produced by parsing gluster CLI
// output. All of them are plain values built fresh for every parse.
package api

import (
	"fmt"
	"strings"

	"github.com/pborman/uuid"
)

// PeerState is the state of a peer as reported by glusterd.
type PeerState uint16

const (
	// PeerStateUnknown is used for any state string not recognized below
	PeerStateUnknown PeerState = iota
	// Connected is the short state printed by pool list
	Connected
	// Disconnected is the short state printed by pool list
	Disconnected
	// EstablishingConnection means the handshake has not completed
	EstablishingConnection
	// ProbeSentToPeer means a probe was sent and is unanswered
	ProbeSentToPeer
	// ProbeReceivedFromPeer means a probe arrived from the peer
	ProbeReceivedFromPeer
	// PeerInCluster is the steady state of a healthy member
	PeerInCluster
	// AcceptedPeerRequest means the peer accepted our request
	AcceptedPeerRequest
	// SentAndReceivedPeerRequest means both sides exchanged requests
	SentAndReceivedPeerRequest
	// PeerRejected means the peer was rejected from the cluster
	PeerRejected
	// PeerDetachInProgress means the peer is being removed
	PeerDetachInProgress
	// ConnectedToPeer means a transport connection exists
	ConnectedToPeer
	// PeerIsConnectedAndAccepted means connected and accepted
	PeerIsConnectedAndAccepted
	// InvalidState is glusterd's own "Invalid State"
	InvalidState
)

var peerStateNames = map[PeerState]string{
	PeerStateUnknown:           "Unknown",
	Connected:                  "Connected",
	Disconnected:               "Disconnected",
	EstablishingConnection:     "Establishing Connection",
	ProbeSentToPeer:            "Probe Sent to Peer",
	ProbeReceivedFromPeer:      "Probe Received from Peer",
	PeerInCluster:              "Peer in Cluster",
	AcceptedPeerRequest:        "Accepted peer in Cluster",
	SentAndReceivedPeerRequest: "Sent and Received peer request",
	PeerRejected:               "Peer Rejected",
	PeerDetachInProgress:       "Peer detach in progress",
	ConnectedToPeer:            "Connected to Peer",
	PeerIsConnectedAndAccepted: "Peer is connected and Accepted",
	InvalidState:               "Invalid State",
}

var peerStatesByName = func() map[string]PeerState {
	m := make(map[string]PeerState, len(peerStateNames))
	for state, name := range peerStateNames {
		if state != PeerStateUnknown {
			m[strings.ToLower(name)] = state
		}
	}
	return m
}()

func (s PeerState) String() string {
	if name, ok := peerStateNames[s]; ok {
		return name
	}
	return peerStateNames[PeerStateUnknown]
}

// ParsePeerState maps a state phrase to a PeerState. Matching ignores case
// and surrounding blanks. Unrecognized phrases yield PeerStateUnknown.
func ParsePeerState(s string) PeerState {
	return peerStatesByName[strings.ToLower(strings.TrimSpace(s))]
}

// MarshalJSON encodes the state as its display name
func (s PeerState) MarshalJSON() ([]byte, error) {
	return marshalEnum(s.String())
}

// UnmarshalJSON decodes a display name; unknown names become PeerStateUnknown
func (s *PeerState) UnmarshalJSON(data []byte) error {
	name, err := unmarshalEnum(data)
	if err != nil {
		return err
	}
	*s = ParsePeerState(name)
	return nil
}

// Peer is a member of the trusted storage pool.
type Peer struct {
	ID        uuid.UUID `json:"id"`
	Address   string    `json:"address"`
	State     PeerState `json:"state"`
	Connected bool      `json:"connected"`
}

// Equal reports whether p and o are the same peer. Peers are identified by
// their UUID alone.
func (p Peer) Equal(o Peer) bool {
	return uuid.Equal(p.ID, o.ID)
}

func (p Peer) String() string {
	return fmt.Sprintf("UUID: %s Hostname: %s Status: %s", p.ID, p.Address, p.State)
}
