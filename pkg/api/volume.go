package api

import (
	"fmt"
	"strings"

	"github.com/pborman/uuid"
)

// VolType is the type of volume.
type VolType uint16

const (
	// VolTypeUnknown is used for type strings not listed below
	VolTypeUnknown VolType = iota
	// Distribute is a plain distribute volume
	Distribute
	// Stripe is a plain striped volume
	Stripe
	// Replicate is plain replicate volume
	Replicate
	// StripedReplicate is a striped-replicate volume
	StripedReplicate
	// Disperse is a plain erasure coded volume
	Disperse
	// DistStripe is a distribute-stripe volume
	DistStripe
	// DistReplicate is a distribute-replicate volume
	DistReplicate
	// DistStripedReplicate is a distribute-striped-replicate volume
	DistStripedReplicate
	// DistDisperse is a distribute-'erasure coded' volume
	DistDisperse
	// Arbiter is a replicate volume with an arbiter brick
	Arbiter
)

var volTypeNames = map[VolType]string{
	VolTypeUnknown:       "Unknown",
	Distribute:           "Distribute",
	Stripe:               "Stripe",
	Replicate:            "Replicate",
	StripedReplicate:     "Striped-Replicate",
	Disperse:             "Disperse",
	DistStripe:           "Distributed-Stripe",
	DistReplicate:        "Distributed-Replicate",
	DistStripedReplicate: "Distributed-Striped-Replicate",
	DistDisperse:         "Distributed-Disperse",
	Arbiter:              "Arbiter",
}

func (t VolType) String() string {
	if name, ok := volTypeNames[t]; ok {
		return name
	}
	return volTypeNames[VolTypeUnknown]
}

// ParseVolType maps the typeStr/"Type:" value printed by gluster to a
// VolType. It never fails; unrecognized input yields VolTypeUnknown.
func ParseVolType(s string) VolType {
	s = strings.TrimSpace(s)
	for t, name := range volTypeNames {
		if t != VolTypeUnknown && strings.EqualFold(name, s) {
			return t
		}
	}
	return VolTypeUnknown
}

// IsReplicated returns true for types whose subvolumes are replica sets
func (t VolType) IsReplicated() bool {
	switch t {
	case Replicate, DistReplicate, StripedReplicate, DistStripedReplicate, Arbiter:
		return true
	}
	return false
}

// IsStriped returns true for types whose subvolumes are stripe sets
func (t VolType) IsStriped() bool {
	switch t {
	case Stripe, DistStripe, StripedReplicate, DistStripedReplicate:
		return true
	}
	return false
}

// IsDispersed returns true for erasure coded types
func (t VolType) IsDispersed() bool {
	return t == Disperse || t == DistDisperse
}

// MarshalJSON encodes the type as its display name
func (t VolType) MarshalJSON() ([]byte, error) {
	return marshalEnum(t.String())
}

// UnmarshalJSON decodes a display name
func (t *VolType) UnmarshalJSON(data []byte) error {
	name, err := unmarshalEnum(data)
	if err != nil {
		return err
	}
	*t = ParseVolType(name)
	return nil
}

// Transport is the transport a volume is exported over.
type Transport uint16

const (
	// TransportUnknown is used for transport strings not listed below
	TransportUnknown Transport = iota
	// TCP transport
	TCP
	// TCPAndRDMA exports over both transports
	TCPAndRDMA
	// RDMA transport
	RDMA
)

func (t Transport) String() string {
	switch t {
	case TCP:
		return "tcp"
	case TCPAndRDMA:
		return "tcp,rdma"
	case RDMA:
		return "rdma"
	default:
		return "unknown"
	}
}

// ParseTransport maps "tcp", "rdma", "tcp,rdma" and the numeric codes found
// in XML replies (0 tcp, 1 rdma, 2 tcp,rdma) to a Transport.
func ParseTransport(s string) Transport {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tcp", "0":
		return TCP
	case "rdma", "1":
		return RDMA
	case "tcp,rdma", "rdma,tcp", "2":
		return TCPAndRDMA
	default:
		return TransportUnknown
	}
}

// MarshalJSON encodes the transport as its CLI name
func (t Transport) MarshalJSON() ([]byte, error) {
	return marshalEnum(t.String())
}

// UnmarshalJSON decodes a CLI name
func (t *Transport) UnmarshalJSON(data []byte) error {
	name, err := unmarshalEnum(data)
	if err != nil {
		return err
	}
	*t = ParseTransport(name)
	return nil
}

// Volume is a logical collection of bricks.
type Volume struct {
	Name            string            `json:"name"`
	ID              uuid.UUID         `json:"id"`
	Type            VolType           `json:"type"`
	Status          string            `json:"status"`
	SnapshotCount   int               `json:"snapshot-count"`
	ReplicaCount    int               `json:"replica-count"`
	StripeCount     int               `json:"stripe-count"`
	DisperseCount   int               `json:"disperse-count"`
	ArbiterCount    int               `json:"arbiter-count"`
	RedundancyCount int               `json:"redundancy-count"`
	Transport       Transport         `json:"transport"`
	Bricks          []Brick           `json:"bricks"`
	Options         map[string]string `json:"options"`
}

func (v Volume) String() string {
	return fmt.Sprintf("name:%s type:%s id:%s status:%s bricks:%d options:%d",
		v.Name, v.Type, v.ID, v.Status, len(v.Bricks), len(v.Options))
}
