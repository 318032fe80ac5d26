package gluster

import (
	"context"
	"strconv"

	"github.com/cholcombe973/charms.gluster/pkg/api"
	"github.com/cholcombe973/charms.gluster/pkg/cliout"
	"github.com/cholcombe973/charms.gluster/pkg/errors"

	pkgerrors "github.com/pkg/errors"
)

const quotaOption = "features.quota"

// QuotaList returns the usage limits configured on volume.
func (c *Client) QuotaList(ctx context.Context, volume string) ([]api.Quota, error) {
	if volume == "" {
		return nil, errors.ErrEmptyVolName
	}
	out, err := c.query(ctx, "volume", "quota", volume, "list")
	if err != nil {
		return nil, err
	}
	quotas, err := cliout.New(c.resolver, nil).QuotaList(c.cfg.Format, out)
	return quotas, parseErr(err, "quota list")
}

// QuotasEnabled reports whether the quota feature is on for volume.
func (c *Client) QuotasEnabled(ctx context.Context, volume string) (bool, error) {
	vols, err := c.VolumeInfo(ctx, volume)
	if err != nil {
		return false, err
	}
	for _, v := range vols {
		if v.Name != volume {
			continue
		}
		switch setting, ok := v.Options[quotaOption]; {
		case !ok, setting == "off":
			return false, nil
		case setting == "on":
			return true, nil
		default:
			return false, pkgerrors.Wrapf(errors.ErrUnknownQuotaSetting, "%s is %q", quotaOption, setting)
		}
	}
	return false, &errors.NotFoundError{Volume: volume}
}

// VolumeEnableQuotas turns the quota feature on.
func (c *Client) VolumeEnableQuotas(ctx context.Context, volume string) error {
	return c.quotaOp(ctx, false, volume, "enable")
}

// VolumeDisableQuotas turns the quota feature off, dropping every limit.
func (c *Client) VolumeDisableQuotas(ctx context.Context, volume string) error {
	return c.quotaOp(ctx, true, volume, "disable")
}

// VolumeAddQuota limits path of volume to bytes.
func (c *Client) VolumeAddQuota(ctx context.Context, volume, path string, bytes uint64) error {
	return c.quotaOp(ctx, false, volume, "limit-usage", path, strconv.FormatUint(bytes, 10))
}

// VolumeRemoveQuota drops the limit set on path.
func (c *Client) VolumeRemoveQuota(ctx context.Context, volume, path string) error {
	return c.quotaOp(ctx, false, volume, "remove", path)
}

func (c *Client) quotaOp(ctx context.Context, scriptMode bool, volume string, args ...string) error {
	if volume == "" {
		return errors.ErrEmptyVolName
	}
	_, err := c.exec(ctx, scriptMode, append([]string{"volume", "quota", volume}, args...)...)
	return err
}
