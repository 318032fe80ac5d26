package api

import (
	"encoding/json"
	"testing"

	"github.com/pborman/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeerState(t *testing.T) {
	assert.Equal(t, PeerInCluster, ParsePeerState("Peer in Cluster"))
	assert.Equal(t, PeerInCluster, ParsePeerState("PEER IN CLUSTER "))
	assert.Equal(t, Connected, ParsePeerState("Connected"))
	assert.Equal(t, AcceptedPeerRequest, ParsePeerState("accepted peer in cluster"))
	assert.Equal(t, PeerStateUnknown, ParsePeerState("Peer in Orbit"))
	assert.Equal(t, PeerStateUnknown, ParsePeerState(""))

	for state := range peerStateNames {
		if state == PeerStateUnknown {
			continue
		}
		assert.Equal(t, state, ParsePeerState(state.String()))
	}
}

func TestPeerStateJSON(t *testing.T) {
	out, err := json.Marshal(PeerInCluster)
	require.NoError(t, err)
	assert.Equal(t, `"Peer in Cluster"`, string(out))

	var s PeerState
	require.NoError(t, json.Unmarshal([]byte(`"Peer Rejected"`), &s))
	assert.Equal(t, PeerRejected, s)

	require.NoError(t, json.Unmarshal([]byte(`"whatever"`), &s))
	assert.Equal(t, PeerStateUnknown, s)

	assert.Error(t, json.Unmarshal([]byte(`3`), &s))
}

func TestPeerEqual(t *testing.T) {
	id := uuid.Parse("663bbc5b-c9b4-4a02-8b56-85e05e1b01c8")
	p1 := Peer{ID: id, Address: "172.31.12.7", State: PeerInCluster}
	p2 := Peer{ID: uuid.Parse(id.String()), Address: "10.0.0.1"}
	p3 := Peer{ID: uuid.NewRandom(), Address: "172.31.12.7", State: PeerInCluster}

	assert.True(t, p1.Equal(p2))
	assert.False(t, p1.Equal(p3))
}

func TestParseVolType(t *testing.T) {
	assert.Equal(t, Replicate, ParseVolType("Replicate"))
	assert.Equal(t, DistReplicate, ParseVolType("Distributed-Replicate"))
	assert.Equal(t, DistDisperse, ParseVolType("distributed-disperse"))
	assert.Equal(t, StripedReplicate, ParseVolType("Striped-Replicate"))
	assert.Equal(t, VolTypeUnknown, ParseVolType("Tier"))

	for vt := range volTypeNames {
		if vt == VolTypeUnknown {
			continue
		}
		assert.Equal(t, vt, ParseVolType(vt.String()))
	}
}

func TestVolTypeKinds(t *testing.T) {
	assert.True(t, DistReplicate.IsReplicated())
	assert.False(t, Disperse.IsReplicated())
	assert.True(t, DistStripe.IsStriped())
	assert.True(t, DistDisperse.IsDispersed())
	assert.False(t, Distribute.IsDispersed())
}

func TestParseTransport(t *testing.T) {
	assert.Equal(t, TCP, ParseTransport("tcp"))
	assert.Equal(t, TCP, ParseTransport("0"))
	assert.Equal(t, RDMA, ParseTransport("1"))
	assert.Equal(t, TCPAndRDMA, ParseTransport("tcp,rdma"))
	assert.Equal(t, TCPAndRDMA, ParseTransport("2"))
	assert.Equal(t, TransportUnknown, ParseTransport("udp"))
}

func TestVolumeJSON(t *testing.T) {
	v := Volume{
		Name:      "test",
		ID:        uuid.Parse("cae6868d-b080-4ea3-927b-93b5f1e3fe69"),
		Type:      Replicate,
		Transport: TCP,
		Bricks: []Brick{
			{Peer: Peer{Address: "172.31.41.9"}, Path: "/mnt/xvdb"},
		},
	}
	out, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "Replicate", m["type"])
	assert.Equal(t, "tcp", m["transport"])
	assert.Equal(t, "cae6868d-b080-4ea3-927b-93b5f1e3fe69", m["id"])
}

func TestBrickString(t *testing.T) {
	b := Brick{Peer: Peer{Address: "172.31.41.9"}, Path: "/mnt/xvdb"}
	assert.Equal(t, "172.31.41.9:/mnt/xvdb", b.String())
}
