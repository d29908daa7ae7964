// Package client talks to a running phased daemon over HTTP.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

// Client is a struct for communicating with the phased daemon
type Client struct {
	address    string
	httpClient *http.Client
}

// NewClient is a constructor for creating a new Client. address is the
// host:port the daemon listens on.
func NewClient(address string) *Client {
	return &Client{
		address: address,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				DialContext: func(ctx context.Context, network, _ string) (net.Conn, error) {
					var d net.Dialer
					conn, err := d.DialContext(ctx, network, address)
					if err != nil {
						if errors.Is(err, syscall.ECONNREFUSED) {
							return nil, ErrDaemonNotRunning
						}
						logrus.Errorf("failed to connect to daemon: %v", err)
						return nil, err
					}
					return conn, err
				},
			},
		},
	}
}

// Get is a method for sending a GET request to the phased daemon
func (c *Client) Get(path string) (string, error) {
	logrus.WithFields(logrus.Fields{
		"path":    path,
		"address": c.address,
	}).Debug("sending request")

	resp, err := c.httpClient.Get("http://" + c.address + path)
	if err != nil {
		if errors.Is(err, ErrDaemonNotRunning) {
			return "", ErrDaemonNotRunning
		}
		return "", fmt.Errorf("failed to send request: %w", err)
	}

	defer func() {
		if err := resp.Body.Close(); err != nil {
			logrus.Errorf("failed to close response body: %v", err)
		}
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	body := string(b)

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("got %d: %s", resp.StatusCode, body)
	}

	return body, nil
}
