package gluster

import (
	"context"

	"github.com/cholcombe973/charms.gluster/pkg/errors"
)

// ScrubThrottle controls how much of the system the scrubber may use
type ScrubThrottle string

// ScrubFrequency is how often the scrubber runs
type ScrubFrequency string

// ScrubControl drives a running scrubber
type ScrubControl string

// Scrub settings accepted by "volume bitrot"
const (
	ScrubAggressive ScrubThrottle = "aggressive"
	ScrubLazy       ScrubThrottle = "lazy"
	ScrubNormal     ScrubThrottle = "normal"

	ScrubHourly   ScrubFrequency = "hourly"
	ScrubDaily    ScrubFrequency = "daily"
	ScrubWeekly   ScrubFrequency = "weekly"
	ScrubBiWeekly ScrubFrequency = "biweekly"
	ScrubMonthly  ScrubFrequency = "monthly"

	ScrubPause    ScrubControl = "pause"
	ScrubResume   ScrubControl = "resume"
	ScrubStatus   ScrubControl = "status"
	ScrubOnDemand ScrubControl = "ondemand"
)

// BitrotOption is one "volume bitrot <vol> <name> <value>" setting.
type BitrotOption struct {
	Name  string
	Value string
}

// ThrottleOption returns the scrub-throttle setting
func ThrottleOption(t ScrubThrottle) BitrotOption {
	return BitrotOption{Name: "scrub-throttle", Value: string(t)}
}

// FrequencyOption returns the scrub-frequency setting
func FrequencyOption(f ScrubFrequency) BitrotOption {
	return BitrotOption{Name: "scrub-frequency", Value: string(f)}
}

// ScrubOption returns the scrub control setting
func ScrubOption(s ScrubControl) BitrotOption {
	return BitrotOption{Name: "scrub", Value: string(s)}
}

// VolumeEnableBitrot turns on bitrot detection for volume.
func (c *Client) VolumeEnableBitrot(ctx context.Context, volume string) error {
	return c.bitrotOp(ctx, false, volume, "enable")
}

// VolumeDisableBitrot turns off bitrot detection for volume.
func (c *Client) VolumeDisableBitrot(ctx context.Context, volume string) error {
	return c.bitrotOp(ctx, false, volume, "disable")
}

// VolumeSetBitrotOption applies one scrubber setting.
func (c *Client) VolumeSetBitrotOption(ctx context.Context, volume string, opt BitrotOption) error {
	return c.bitrotOp(ctx, true, volume, opt.Name, opt.Value)
}

func (c *Client) bitrotOp(ctx context.Context, scriptMode bool, volume string, args ...string) error {
	if volume == "" {
		return errors.ErrEmptyVolName
	}
	_, err := c.exec(ctx, scriptMode, append([]string{"volume", "bitrot", volume}, args...)...)
	return err
}
