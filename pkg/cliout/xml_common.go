package cliout

import (
	"strconv"
	"strings"

	"github.com/cholcombe973/charms.gluster/pkg/errors"
	"github.com/cholcombe973/charms.gluster/pkg/xmltree"

	"github.com/pborman/uuid"
)

const xmlRoot = "cliOutput"

// parseReply decodes an XML reply and checks its status block. Records are
// only read from the returned root when opRet is zero.
func parseReply(data []byte) (*xmltree.Node, error) {
	root, err := xmltree.Parse(data)
	if err != nil {
		return nil, &errors.FormatError{Reason: "malformed xml reply", Err: err}
	}
	if root.Name != xmlRoot {
		return nil, errors.NewFormatError(root.Name, "unexpected root element")
	}
	if err := readOpStatus(root); err != nil {
		return nil, err
	}
	return root, nil
}

func readOpStatus(root *xmltree.Node) error {
	retStr, ok := root.ChildText("opRet")
	if !ok {
		return errors.NewFormatError("opRet", "missing mandatory element")
	}
	ret, err := strconv.Atoi(retStr)
	if err != nil {
		return &errors.FormatError{Where: "opRet", Reason: "not an integer", Err: err}
	}

	errno := 0
	if s, ok := root.ChildText("opErrno"); ok && s != "" {
		if errno, err = strconv.Atoi(s); err != nil {
			return &errors.FormatError{Where: "opErrno", Reason: "not an integer", Err: err}
		}
	}
	errstr, _ := root.ChildText("opErrstr")

	if ret != 0 {
		return &errors.ProtocolError{OpRet: ret, OpErrno: errno, OpErrstr: errstr}
	}
	return nil
}

// applyTags calls set for every child of n that has an entry in tags. Unknown
// children are ignored. Errors are reported against the tag name.
func applyTags(n *xmltree.Node, tags map[string]func(*xmltree.Node) error) error {
	for _, c := range n.Children {
		set, ok := tags[c.Name]
		if !ok {
			continue
		}
		if err := set(c); err != nil {
			if _, isFormat := err.(*errors.FormatError); isFormat {
				return err
			}
			if _, isResolve := err.(*errors.ResolutionError); isResolve {
				return err
			}
			return &errors.FormatError{Where: n.Name + "/" + c.Name, Reason: "invalid value", Err: err}
		}
	}
	return nil
}

func missing(where string) error {
	return errors.NewFormatError(where, "missing mandatory element")
}

func xmlInt(n *xmltree.Node) (int, error) {
	return strconv.Atoi(n.Text)
}

func xmlUint(n *xmltree.Node) (uint64, error) {
	return strconv.ParseUint(n.Text, 10, 64)
}

func xmlUUID(n *xmltree.Node) (uuid.UUID, error) {
	id := uuid.Parse(n.Text)
	if id == nil {
		return nil, errors.NewFormatError(n.Name, "invalid uuid "+strconv.Quote(n.Text))
	}
	return id, nil
}

// xmlFlag reads the 0/1 booleans used throughout the XML replies.
func xmlFlag(n *xmltree.Node) (bool, error) {
	switch strings.ToLower(n.Text) {
	case "1", "true", "yes":
		return true, nil
	case "0", "false", "no", "":
		return false, nil
	}
	return false, errors.NewFormatError(n.Name, "invalid flag "+strconv.Quote(n.Text))
}

// xmlPort reads a port or pid that gluster prints as N/A or -1 when the
// process is down.
func xmlPort(n *xmltree.Node) (int, error) {
	return portValue(n.Text)
}

func portValue(s string) (int, error) {
	if s == "" || strings.EqualFold(s, "N/A") {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, nil
	}
	return v, nil
}
