package api

import (
	"fmt"
)

// Quota is a usage limit set on a directory of a volume. All sizes are in
// bytes.
type Quota struct {
	Path              string  `json:"path"`
	HardLimit         uint64  `json:"hard-limit"`
	SoftLimit         uint64  `json:"soft-limit"`
	SoftLimitPercent  float64 `json:"soft-limit-percent"`
	Used              uint64  `json:"used"`
	Available         uint64  `json:"available"`
	SoftLimitExceeded bool    `json:"soft-limit-exceeded"`
	HardLimitExceeded bool    `json:"hard-limit-exceeded"`
}

func (q Quota) String() string {
	return fmt.Sprintf("path:%s hard limit:%d soft limit percentage:%g%% soft limit:%d used:%d available:%d soft limit exceeded:%t hard limit exceeded:%t",
		q.Path, q.HardLimit, q.SoftLimitPercent, q.SoftLimit, q.Used, q.Available,
		q.SoftLimitExceeded, q.HardLimitExceeded)
}
