package gluster

import (
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/cholcombe973/charms.gluster/pkg/api"
)

const xattropIndex = ".glusterfs/indices/xattrop"

// SelfHealCount returns the number of entries of brick waiting to be healed.
// It reads the brick's xattrop index and must run on the brick's host.
func SelfHealCount(brick api.Brick) (int, error) {
	entries, err := ioutil.ReadDir(filepath.Join(brick.Path, xattropIndex))
	if err != nil {
		return 0, err
	}

	count := 0
	for _, e := range entries {
		// the base xattrop-<gfid> file is not a pending heal
		if !strings.HasPrefix(e.Name(), "xattrop") {
			count++
		}
	}
	return count, nil
}
