package client

import (
	"encoding/json"
	"net/url"
	"strconv"

	pkgerrors "github.com/pkg/errors"

	"phased/pkg/phasechange"
	"phased/pkg/types"
)

func (c *Client) GetPhaseChangeDiagram(pressure float64) (*phasechange.Result, error) {
	q := url.Values{}
	q.Set("pressure", strconv.FormatFloat(pressure, 'f', -1, 64))

	ret, err := c.Get("/phase-change-diagram?" + q.Encode())
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get phase change volumes")
	}

	result := &phasechange.Result{}
	if err := json.Unmarshal([]byte(ret), result); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal phase change volumes")
	}
	return result, nil
}

func (c *Client) GetConstants() (*types.ConstantsResponse, error) {
	ret, err := c.Get("/constants")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get constants")
	}

	constants := &types.ConstantsResponse{}
	if err := json.Unmarshal([]byte(ret), constants); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal constants")
	}
	return constants, nil
}

func (c *Client) GetHealth() (*types.HealthResponse, error) {
	ret, err := c.Get("/health")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get daemon health")
	}

	health := &types.HealthResponse{}
	if err := json.Unmarshal([]byte(ret), health); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal daemon health")
	}
	return health, nil
}

func (c *Client) GetVersion() (string, error) {
	ret, err := c.Get("/version")
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to get daemon version")
	}

	var version string
	if err := json.Unmarshal([]byte(ret), &version); err != nil {
		return "", pkgerrors.Wrapf(err, "failed to unmarshal daemon version")
	}
	return version, nil
}
