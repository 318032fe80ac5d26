package cliout

import (
	"fmt"
	"net"

	"github.com/cholcombe973/charms.gluster/pkg/api"

	"github.com/pborman/uuid"
)

var testHosts = map[string]string{
	"gluster-1": "172.31.12.7",
	"gluster-2": "172.31.21.242",
	"gluster-3": "172.31.41.9",
	"localhost": "172.31.12.7",
}

var testResolver = ResolverFunc(func(host string) (net.IP, error) {
	if ip, ok := testHosts[host]; ok {
		return net.ParseIP(ip), nil
	}
	return nil, fmt.Errorf("lookup %s: no such host", host)
})

var (
	peer1 = api.Peer{
		ID:        uuid.Parse("a8d1ea88-7e1c-4a4c-9cbc-bc0a0d8bf1f9"),
		Address:   "172.31.12.7",
		State:     api.PeerInCluster,
		Connected: true,
	}
	peer2 = api.Peer{
		ID:        uuid.Parse("663bbc5b-c9b4-4a02-8b56-85e05e1b01c8"),
		Address:   "172.31.21.242",
		State:     api.PeerInCluster,
		Connected: true,
	}
	peer3 = api.Peer{
		ID:        uuid.Parse("15af92ad-ae64-4aba-89db-73730f2ca6ec"),
		Address:   "172.31.41.9",
		State:     api.PeerInCluster,
		Connected: false,
	}
	testPeers = PeerTable{peer1, peer2, peer3}
)

const peerStatusXMLReply = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cliOutput>
  <opRet>0</opRet>
  <opErrno>0</opErrno>
  <opErrstr/>
  <peerStatus>
    <peer>
      <uuid>663bbc5b-c9b4-4a02-8b56-85e05e1b01c8</uuid>
      <hostname>gluster-2</hostname>
      <hostnames>
        <hostname>gluster-2</hostname>
      </hostnames>
      <connected>1</connected>
      <state>3</state>
      <stateStr>Peer in Cluster</stateStr>
    </peer>
    <peer>
      <uuid>15af92ad-ae64-4aba-89db-73730f2ca6ec</uuid>
      <hostname>172.31.41.9</hostname>
      <hostnames>
        <hostname>172.31.41.9</hostname>
      </hostnames>
      <connected>0</connected>
      <state>3</state>
      <stateStr>Peer in Cluster</stateStr>
    </peer>
  </peerStatus>
</cliOutput>
`

const peerStatusTextReply = `Number of Peers: 2

Hostname: gluster-2
Uuid: 663bbc5b-c9b4-4a02-8b56-85e05e1b01c8
State: Peer in Cluster (Connected)

Hostname: 172.31.41.9
Uuid: 15af92ad-ae64-4aba-89db-73730f2ca6ec
State: Peer in Cluster (Disconnected)
Other names:
gluster-3
`

const poolListXMLReply = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cliOutput>
  <opRet>0</opRet>
  <opErrno>0</opErrno>
  <opErrstr/>
  <peerStatus>
    <peer>
      <uuid>663bbc5b-c9b4-4a02-8b56-85e05e1b01c8</uuid>
      <hostname>gluster-2</hostname>
      <connected>1</connected>
      <state>3</state>
      <stateStr>Peer in Cluster</stateStr>
    </peer>
    <peer>
      <uuid>a8d1ea88-7e1c-4a4c-9cbc-bc0a0d8bf1f9</uuid>
      <hostname>localhost</hostname>
      <connected>1</connected>
    </peer>
  </peerStatus>
</cliOutput>
`

const poolListTextReply = `UUID					Hostname 	State
663bbc5b-c9b4-4a02-8b56-85e05e1b01c8	gluster-2	Connected
15af92ad-ae64-4aba-89db-73730f2ca6ec	172.31.41.9	Disconnected
a8d1ea88-7e1c-4a4c-9cbc-bc0a0d8bf1f9	localhost	Connected
`

const volumeListXMLReply = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cliOutput>
  <opRet>0</opRet>
  <opErrno>0</opErrno>
  <opErrstr/>
  <volList>
    <count>3</count>
    <volume>test</volume>
    <volume>arb</volume>
    <volume>ec</volume>
  </volList>
</cliOutput>
`

const volumeListTextReply = `test
arb
ec
`

const volumeInfoXMLReply = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cliOutput>
  <opRet>0</opRet>
  <opErrno>0</opErrno>
  <opErrstr/>
  <volInfo>
    <volumes>
      <volume>
        <name>test</name>
        <id>cae6868d-b080-4ea3-927b-93b5f1e3fe69</id>
        <status>1</status>
        <statusStr>Started</statusStr>
        <snapshotCount>0</snapshotCount>
        <brickCount>3</brickCount>
        <distCount>3</distCount>
        <stripeCount>1</stripeCount>
        <replicaCount>3</replicaCount>
        <arbiterCount>0</arbiterCount>
        <disperseCount>0</disperseCount>
        <redundancyCount>0</redundancyCount>
        <type>2</type>
        <typeStr>Replicate</typeStr>
        <transport>0</transport>
        <xlators/>
        <bricks>
          <brick uuid="a8d1ea88-7e1c-4a4c-9cbc-bc0a0d8bf1f9">gluster-1:/mnt/xvdb<name>gluster-1:/mnt/xvdb</name><hostUuid>a8d1ea88-7e1c-4a4c-9cbc-bc0a0d8bf1f9</hostUuid><isArbiter>0</isArbiter></brick>
          <brick uuid="663bbc5b-c9b4-4a02-8b56-85e05e1b01c8">172.31.21.242:/mnt/xvdb<name>172.31.21.242:/mnt/xvdb</name><hostUuid>663bbc5b-c9b4-4a02-8b56-85e05e1b01c8</hostUuid><isArbiter>0</isArbiter></brick>
          <brick uuid="15af92ad-ae64-4aba-89db-73730f2ca6ec">gluster-3:/mnt/xvdb<name>gluster-3:/mnt/xvdb</name><hostUuid>15af92ad-ae64-4aba-89db-73730f2ca6ec</hostUuid><isArbiter>0</isArbiter></brick>
        </bricks>
        <optCount>3</optCount>
        <options>
          <option>
            <name>transport.address-family</name>
            <value>inet</value>
          </option>
          <option>
            <name>nfs.disable</name>
            <value>on</value>
          </option>
          <option>
            <name>features.quota</name>
            <value>on</value>
          </option>
        </options>
      </volume>
      <volume>
        <name>arb</name>
        <id>5e2a0a3d-9a36-4b06-8c4b-2f3c5f0e9b11</id>
        <status>0</status>
        <statusStr>Created</statusStr>
        <snapshotCount>2</snapshotCount>
        <brickCount>3</brickCount>
        <distCount>3</distCount>
        <stripeCount>1</stripeCount>
        <replicaCount>3</replicaCount>
        <arbiterCount>1</arbiterCount>
        <disperseCount>0</disperseCount>
        <redundancyCount>0</redundancyCount>
        <type>2</type>
        <typeStr>Replicate</typeStr>
        <transport>0</transport>
        <bricks>
          <brick uuid="a8d1ea88-7e1c-4a4c-9cbc-bc0a0d8bf1f9">gluster-1:/srv/arb<name>gluster-1:/srv/arb</name><hostUuid>a8d1ea88-7e1c-4a4c-9cbc-bc0a0d8bf1f9</hostUuid><isArbiter>0</isArbiter></brick>
          <brick uuid="663bbc5b-c9b4-4a02-8b56-85e05e1b01c8">gluster-2:/srv/arb<name>gluster-2:/srv/arb</name><hostUuid>663bbc5b-c9b4-4a02-8b56-85e05e1b01c8</hostUuid><isArbiter>0</isArbiter></brick>
          <brick uuid="15af92ad-ae64-4aba-89db-73730f2ca6ec">gluster-3:/srv/arb<name>gluster-3:/srv/arb</name><hostUuid>15af92ad-ae64-4aba-89db-73730f2ca6ec</hostUuid><isArbiter>1</isArbiter></brick>
        </bricks>
        <optCount>0</optCount>
        <options/>
      </volume>
      <volume>
        <name>ec</name>
        <id>0b6ff4f6-1d0e-4f53-a2f5-1c0d6d2b7c44</id>
        <status>2</status>
        <statusStr>Stopped</statusStr>
        <snapshotCount>0</snapshotCount>
        <brickCount>3</brickCount>
        <distCount>1</distCount>
        <stripeCount>1</stripeCount>
        <replicaCount>1</replicaCount>
        <arbiterCount>0</arbiterCount>
        <disperseCount>3</disperseCount>
        <redundancyCount>1</redundancyCount>
        <type>4</type>
        <typeStr>Disperse</typeStr>
        <transport>2</transport>
        <bricks>
          <brick uuid="a8d1ea88-7e1c-4a4c-9cbc-bc0a0d8bf1f9">gluster-1:/srv/ec<name>gluster-1:/srv/ec</name><hostUuid>a8d1ea88-7e1c-4a4c-9cbc-bc0a0d8bf1f9</hostUuid><isArbiter>0</isArbiter></brick>
          <brick uuid="663bbc5b-c9b4-4a02-8b56-85e05e1b01c8">gluster-2:/srv/ec<name>gluster-2:/srv/ec</name><hostUuid>663bbc5b-c9b4-4a02-8b56-85e05e1b01c8</hostUuid><isArbiter>0</isArbiter></brick>
          <brick uuid="15af92ad-ae64-4aba-89db-73730f2ca6ec">gluster-3:/srv/ec<name>gluster-3:/srv/ec</name><hostUuid>15af92ad-ae64-4aba-89db-73730f2ca6ec</hostUuid><isArbiter>0</isArbiter></brick>
        </bricks>
        <optCount>1</optCount>
        <options>
          <option>
            <name>auth.allow</name>
            <value></value>
          </option>
        </options>
      </volume>
      <count>3</count>
    </volumes>
  </volInfo>
</cliOutput>
`

const volumeInfoTextReply = `
Volume Name: test
Type: Replicate
Volume ID: cae6868d-b080-4ea3-927b-93b5f1e3fe69
Status: Started
Snapshot Count: 0
Number of Bricks: 1 x 3 = 3
Transport-type: tcp
Bricks:
Brick1: gluster-1:/mnt/xvdb
Brick2: 172.31.21.242:/mnt/xvdb
Brick3: gluster-3:/mnt/xvdb
Options Reconfigured:
transport.address-family: inet
nfs.disable: on
features.quota: on

Volume Name: arb
Type: Replicate
Volume ID: 5e2a0a3d-9a36-4b06-8c4b-2f3c5f0e9b11
Status: Created
Snapshot Count: 2
Number of Bricks: 1 x (2 + 1) = 3
Transport-type: tcp
Bricks:
Brick1: gluster-1:/srv/arb
Brick2: gluster-2:/srv/arb
Brick3: gluster-3:/srv/arb (arbiter)

Volume Name: ec
Type: Disperse
Volume ID: 0b6ff4f6-1d0e-4f53-a2f5-1c0d6d2b7c44
Status: Stopped
Snapshot Count: 0
Number of Bricks: 1 x (2 + 1) = 3
Transport-type: tcp,rdma
Bricks:
Brick1: gluster-1:/srv/ec
Brick2: gluster-2:/srv/ec
Brick3: gluster-3:/srv/ec
Options Reconfigured:
auth.allow:
`

const volumeStatusXMLReply = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cliOutput>
  <opRet>0</opRet>
  <opErrno>0</opErrno>
  <opErrstr/>
  <volStatus>
    <volumes>
      <volume>
        <volName>test</volName>
        <nodeCount>4</nodeCount>
        <node>
          <hostname>gluster-1</hostname>
          <path>/mnt/xvdb</path>
          <peerid>a8d1ea88-7e1c-4a4c-9cbc-bc0a0d8bf1f9</peerid>
          <status>1</status>
          <port>49152</port>
          <ports>
            <tcp>49152</tcp>
            <rdma>N/A</rdma>
          </ports>
          <pid>1522</pid>
        </node>
        <node>
          <hostname>172.31.21.242</hostname>
          <path>/mnt/xvdb</path>
          <peerid>663bbc5b-c9b4-4a02-8b56-85e05e1b01c8</peerid>
          <status>0</status>
          <port>N/A</port>
          <ports>
            <tcp>N/A</tcp>
            <rdma>N/A</rdma>
          </ports>
          <pid>-1</pid>
        </node>
        <node>
          <hostname>Self-heal Daemon</hostname>
          <path>localhost</path>
          <peerid>a8d1ea88-7e1c-4a4c-9cbc-bc0a0d8bf1f9</peerid>
          <status>1</status>
          <port>N/A</port>
          <ports>
            <tcp>N/A</tcp>
            <rdma>N/A</rdma>
          </ports>
          <pid>1543</pid>
        </node>
        <node>
          <hostname>gluster-3</hostname>
          <path>/mnt/xvdb</path>
          <peerid>15af92ad-ae64-4aba-89db-73730f2ca6ec</peerid>
          <status>1</status>
          <port>49153</port>
          <ports>
            <tcp>49153</tcp>
            <rdma>N/A</rdma>
          </ports>
          <pid>1600</pid>
        </node>
        <tasks/>
      </volume>
    </volumes>
  </volStatus>
</cliOutput>
`

const volumeStatusTextReply = `Status of volume: test
Gluster process                             TCP Port  RDMA Port  Online  Pid
------------------------------------------------------------------------------
Brick gluster-1:/mnt/xvdb                   49152     0          Y       1522
Brick 172.31.21.242:/mnt/xvdb               N/A       N/A        N       N/A
Self-heal Daemon on localhost               N/A       N/A        Y       1543
Brick gluster-3:/mnt/xvdb                   49153     0          Y       1600

Task Status of Volume test
------------------------------------------------------------------------------
There are no active volume tasks

`

const quotaListXMLReply = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cliOutput>
  <opRet>0</opRet>
  <opErrno>0</opErrno>
  <opErrstr/>
  <volQuota>
    <limit>
      <path>/</path>
      <hard_limit>10240</hard_limit>
      <soft_limit_percent>80%</soft_limit_percent>
      <soft_limit_value>8192</soft_limit_value>
      <used_space>0</used_space>
      <avail_space>10240</avail_space>
      <sl_exceeded>No</sl_exceeded>
      <hl_exceeded>No</hl_exceeded>
    </limit>
    <limit>
      <path>/data</path>
      <hard_limit>1073741824</hard_limit>
      <soft_limit_percent>50%</soft_limit_percent>
      <soft_limit_value>536870912</soft_limit_value>
      <used_space>629145600</used_space>
      <avail_space>444596224</avail_space>
      <sl_exceeded>Yes</sl_exceeded>
      <hl_exceeded>No</hl_exceeded>
    </limit>
  </volQuota>
</cliOutput>
`

const quotaListTextReply = `                  Path                   Hard-limit  Soft-limit      Used  Available  Soft-limit exceeded? Hard-limit exceeded?
-------------------------------------------------------------------------------------------------------------------------------
/                                         10.0KB     80%(8.0KB)   0Bytes  10.0KB              No                   No
/data                                      1.0GB   50%(512.0MB) 600.0MB 424.0MB             Yes                   No
`
