// Package errors defines the failures reported while running gluster commands
// and interpreting their output.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Different error macros
var (
	ErrEmptyVolName        = errors.New("volume name is empty")
	ErrEmptyBrickList      = errors.New("brick list is empty")
	ErrUnknownQuotaSetting = errors.New("unknown features.quota setting")
	ErrVolNotFound         = errors.New("volume not found")
	ErrInvalidBrickPath    = errors.New("invalid brick path, brick path should be in host:<brickpath> format")
	ErrIPAddressNotFound   = errors.New("failed to find IP address")
	ErrPeerNotFound        = errors.New("peer not found in pool")
	ErrBrickNotFound       = errors.New("brick is not part of the volume")
)

// Kind classifies a failure crossing the parser boundary.
type Kind uint16

const (
	// KindOther is any error not produced by this module
	KindOther Kind = iota
	// KindCommand is a failed gluster invocation
	KindCommand
	// KindProtocol is an XML reply carrying a non-zero opRet
	KindProtocol
	// KindFormat is output that does not have the expected shape
	KindFormat
	// KindResolution is a hostname that could not be resolved
	KindResolution
	// KindNotFound is a recognized "no such volume" reply
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindProtocol:
		return "protocol"
	case KindFormat:
		return "format"
	case KindResolution:
		return "resolution"
	case KindNotFound:
		return "notfound"
	default:
		return "other"
	}
}

// CommandError is returned when the gluster binary exits with a non-zero
// status. Output of such a command is never handed to a parser.
type CommandError struct {
	Command    string
	Args       []string
	ExitStatus int
	Stderr     string
	Err        error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s %s failed with exit status %d", e.Command, strings.Join(e.Args, " "), e.ExitStatus)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

// Unwrap returns the underlying execution error
func (e *CommandError) Unwrap() error { return e.Err }

// ProtocolError carries the opRet/opErrno/opErrstr triple of an XML reply
// that reports failure.
type ProtocolError struct {
	OpRet    int
	OpErrno  int
	OpErrstr string
}

func (e *ProtocolError) Error() string {
	if e.OpErrstr == "" {
		return fmt.Sprintf("gluster returned opRet %d (errno %d)", e.OpRet, e.OpErrno)
	}
	return e.OpErrstr
}

// FormatError is returned when output violates the expected shape. Where names
// the offending tag, line or token.
type FormatError struct {
	Where  string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	msg := e.Reason
	if e.Where != "" {
		msg = fmt.Sprintf("%s: %q", e.Reason, e.Where)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the cause, if any
func (e *FormatError) Unwrap() error { return e.Err }

// NewFormatError returns a FormatError without a cause
func NewFormatError(where, reason string) error {
	return &FormatError{Where: where, Reason: reason}
}

// ResolutionError is returned when a hostname cannot be turned into an
// address.
type ResolutionError struct {
	Host string
	Err  error
}

func (e *ResolutionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("unable to resolve %s", e.Host)
	}
	return fmt.Sprintf("unable to resolve %s: %s", e.Host, e.Err)
}

// Unwrap returns the resolver error
func (e *ResolutionError) Unwrap() error { return e.Err }

// NotFoundError is returned for the "No volumes present" and
// "Volume <name> does not exist" replies. Volume is empty for the former.
type NotFoundError struct {
	Volume string
}

func (e *NotFoundError) Error() string {
	if e.Volume == "" {
		return "no volumes present"
	}
	return fmt.Sprintf("volume %s does not exist", e.Volume)
}

// Is lets errors.Is(err, ErrVolNotFound) match any NotFoundError
func (e *NotFoundError) Is(target error) bool {
	return target == ErrVolNotFound
}

// KindOf reports the category of err, looking through wrapped errors.
func KindOf(err error) Kind {
	var (
		cmdErr   *CommandError
		protoErr *ProtocolError
		fmtErr   *FormatError
		resErr   *ResolutionError
		nfErr    *NotFoundError
	)
	switch {
	case err == nil:
		return KindOther
	case errors.As(err, &cmdErr):
		return KindCommand
	case errors.As(err, &protoErr):
		return KindProtocol
	case errors.As(err, &nfErr):
		return KindNotFound
	case errors.As(err, &resErr):
		return KindResolution
	case errors.As(err, &fmtErr):
		return KindFormat
	default:
		return KindOther
	}
}

// IsNotFound returns true if err reports a missing volume
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
