package cliout

import (
	"testing"

	"github.com/cholcombe973/charms.gluster/pkg/api"
	"github.com/cholcombe973/charms.gluster/pkg/errors"
	"github.com/cholcombe973/charms.gluster/pkg/xmltree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOpStatus(t *testing.T) {
	ok := xmltree.New("cliOutput", "",
		xmltree.New("opRet", "0"),
		xmltree.New("opErrno", "0"),
		xmltree.New("opErrstr", ""),
	)
	assert.NoError(t, readOpStatus(ok))

	failed := xmltree.New("cliOutput", "",
		xmltree.New("opRet", "-1"),
		xmltree.New("opErrno", "30806"),
		xmltree.New("opErrstr", "Volume nosuch does not exist"),
	)
	err := readOpStatus(failed)
	require.Error(t, err)
	protoErr, isProto := err.(*errors.ProtocolError)
	require.True(t, isProto)
	assert.Equal(t, -1, protoErr.OpRet)
	assert.Equal(t, 30806, protoErr.OpErrno)
	assert.Equal(t, "Volume nosuch does not exist", err.Error())

	err = readOpStatus(xmltree.New("cliOutput", ""))
	assert.Equal(t, errors.KindFormat, errors.KindOf(err))

	err = readOpStatus(xmltree.New("cliOutput", "", xmltree.New("opRet", "zero")))
	assert.Equal(t, errors.KindFormat, errors.KindOf(err))
}

func TestProtocolErrorYieldsNoRecords(t *testing.T) {
	reply := []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cliOutput>
  <opRet>-1</opRet>
  <opErrno>30806</opErrno>
  <opErrstr>Volume nosuch does not exist</opErrstr>
  <volInfo>
    <volumes>
      <volume><name>ghost</name></volume>
    </volumes>
  </volInfo>
</cliOutput>`)

	vols, err := testParser().VolumeInfo(FormatXML, reply)
	assert.Nil(t, vols)
	assert.Equal(t, errors.KindProtocol, errors.KindOf(err))
	assert.Contains(t, err.Error(), "Volume nosuch does not exist")
}

func TestMalformedReplies(t *testing.T) {
	p := testParser()

	_, err := p.PeerStatus(FormatXML, []byte("<cliOutput><opRet>0</opRet>"))
	assert.Equal(t, errors.KindFormat, errors.KindOf(err))

	_, err = p.PeerStatus(FormatXML, []byte(""))
	assert.Equal(t, errors.KindFormat, errors.KindOf(err))

	_, err = p.PeerStatus(FormatXML, []byte("<reply><opRet>0</opRet></reply>"))
	assert.Equal(t, errors.KindFormat, errors.KindOf(err))
}

func TestPeerXMLErrors(t *testing.T) {
	p := testParser()

	_, err := p.peerXML(xmltree.New("peer", "", xmltree.New("hostname", "gluster-1")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "peer/uuid")

	_, err = p.peerXML(xmltree.New("peer", "", xmltree.New("uuid", "a8d1ea88-7e1c-4a4c-9cbc-bc0a0d8bf1f9")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "peer/hostname")

	_, err = p.peerXML(xmltree.New("peer", "", xmltree.New("uuid", "not-a-uuid"), xmltree.New("hostname", "gluster-1")))
	assert.Equal(t, errors.KindFormat, errors.KindOf(err))

	_, err = p.peerXML(xmltree.New("peer", "",
		xmltree.New("uuid", "a8d1ea88-7e1c-4a4c-9cbc-bc0a0d8bf1f9"),
		xmltree.New("hostname", "gluster-9"),
	))
	require.Error(t, err)
	assert.Equal(t, errors.KindResolution, errors.KindOf(err))
	assert.Contains(t, err.Error(), "gluster-9")
}

func TestPeerXMLDefaults(t *testing.T) {
	peer, err := testParser().peerXML(xmltree.New("peer", "",
		xmltree.New("uuid", "a8d1ea88-7e1c-4a4c-9cbc-bc0a0d8bf1f9"),
		xmltree.New("hostname", "localhost"),
		xmltree.New("somethingNew", "42"),
	))
	require.NoError(t, err)
	assert.Equal(t, "172.31.12.7", peer.Address)
	assert.Equal(t, api.PeerStateUnknown, peer.State)
	assert.False(t, peer.Connected)
}

func TestPoolListXML(t *testing.T) {
	peers, err := testParser().PoolList(FormatXML, []byte(poolListXMLReply))
	require.NoError(t, err)
	require.Len(t, peers, 2)
	assert.Equal(t, peer2, peers[0])
	assert.Equal(t, "172.31.12.7", peers[1].Address)
	assert.True(t, peers[1].Equal(peer1))
	assert.True(t, peers[1].Connected)
}

func volumeNode(children ...*xmltree.Node) *xmltree.Node {
	return xmltree.New("volume", "", children...)
}

func TestVolumeXMLErrors(t *testing.T) {
	p := testParser()

	_, err := p.volumeXML(volumeNode(xmltree.New("id", "cae6868d-b080-4ea3-927b-93b5f1e3fe69")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "volume/name")

	_, err = p.volumeXML(volumeNode(xmltree.New("name", "test"), xmltree.New("replicaCount", "three")))
	require.Error(t, err)
	assert.Equal(t, errors.KindFormat, errors.KindOf(err))
	assert.Contains(t, err.Error(), "volume/replicaCount")

	_, err = p.volumeXML(volumeNode(
		xmltree.New("name", "test"),
		xmltree.New("bricks", "",
			xmltree.New("brick", "", xmltree.New("name", "no-colon")),
		),
	))
	assert.Equal(t, errors.KindFormat, errors.KindOf(err))

	_, err = p.volumeXML(volumeNode(
		xmltree.New("name", "test"),
		xmltree.New("bricks", "",
			xmltree.New("brick", "", xmltree.New("name", "gluster-1:/b")),
			xmltree.New("brick", "", xmltree.New("name", "172.31.12.7:/b")),
		),
	))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate brick")

	_, err = p.volumeXML(volumeNode(
		xmltree.New("name", "test"),
		xmltree.New("options", "", xmltree.New("option", "", xmltree.New("value", "on"))),
	))
	assert.Equal(t, errors.KindFormat, errors.KindOf(err))
}

func TestVolumeXMLDefaults(t *testing.T) {
	vol, err := testParser().volumeXML(volumeNode(
		xmltree.New("name", "bare"),
		xmltree.New("status", "2"),
		xmltree.New("bricks", "",
			xmltree.New("brick", "gluster-9.example.com:/ignored", xmltree.New("name", "10.9.9.9:/b")),
			xmltree.New("brick", "172.31.12.7:/c"),
		),
	))
	require.NoError(t, err)
	assert.Equal(t, "bare", vol.Name)
	assert.Equal(t, "Stopped", vol.Status)
	assert.Equal(t, api.VolTypeUnknown, vol.Type)
	assert.Equal(t, api.TransportUnknown, vol.Transport)
	assert.Empty(t, vol.Options)
	require.Len(t, vol.Bricks, 2)
	assert.Equal(t, api.Peer{Address: "10.9.9.9"}, vol.Bricks[0].Peer)
	assert.Equal(t, peer1, vol.Bricks[1].Peer)
	assert.Equal(t, "/c", vol.Bricks[1].Path)
}

func TestVolumeListXMLEmpty(t *testing.T) {
	names, err := testParser().VolumeList(FormatXML, []byte(`<cliOutput><opRet>0</opRet><opErrno>0</opErrno><opErrstr/><volList><count>0</count></volList></cliOutput>`))
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestVolumeInfoXMLEmpty(t *testing.T) {
	p := testParser()
	fromXML, err := p.VolumeInfo(FormatXML, []byte(`<cliOutput><opRet>0</opRet><opErrno>0</opErrno><opErrstr/><volInfo><volumes><count>0</count></volumes></volInfo></cliOutput>`))
	assert.Nil(t, fromXML)
	assert.True(t, errors.IsNotFound(err))

	_, textErr := p.VolumeInfo(FormatText, []byte("No volumes present\n"))
	assert.Equal(t, textErr, err)
}

func TestVolumeStatusXMLWithoutPorts(t *testing.T) {
	statuses, err := testParser().VolumeStatus(FormatXML, []byte(`<cliOutput><opRet>0</opRet><volStatus><volumes><volume>
<node><hostname>NFS Server</hostname><path>localhost</path><status>0</status><port>N/A</port><pid>-1</pid></node>
<node><hostname>gluster-2</hostname><path>/srv/b</path><status>1</status><port>49155</port><pid>99</pid></node>
</volume></volumes></volStatus></cliOutput>`))
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Equal(t, api.BrickStatus{
		Brick:   api.Brick{Peer: peer2, Path: "/srv/b"},
		TCPPort: 49155,
		Online:  true,
		Pid:     99,
	}, statuses[0])
}

func TestVolumeStatusXMLBadPort(t *testing.T) {
	_, err := testParser().VolumeStatus(FormatXML, []byte(`<cliOutput><opRet>0</opRet><volStatus><volumes><volume>
<node><hostname>gluster-2</hostname><path>/srv/b</path><status>1</status><port>lots</port></node>
</volume></volumes></volStatus></cliOutput>`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "node/port")
}

func TestQuotaXMLErrors(t *testing.T) {
	_, err := limitXML(xmltree.New("limit", "", xmltree.New("hard_limit", "10")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit/path")

	_, err = limitXML(xmltree.New("limit", "", xmltree.New("path", "/"), xmltree.New("used_space", "-5")))
	assert.Equal(t, errors.KindFormat, errors.KindOf(err))

	_, err = limitXML(xmltree.New("limit", "", xmltree.New("path", "/"), xmltree.New("soft_limit_percent", "180%")))
	assert.Equal(t, errors.KindFormat, errors.KindOf(err))

	_, err = limitXML(xmltree.New("limit", "", xmltree.New("path", "/"), xmltree.New("soft_limit_percent", "NaN%")))
	assert.Equal(t, errors.KindFormat, errors.KindOf(err))

	q, err := limitXML(xmltree.New("limit", "", xmltree.New("path", "/only")))
	require.NoError(t, err)
	assert.Equal(t, api.Quota{Path: "/only"}, q)
}
