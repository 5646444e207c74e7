// Package client reproduces the front end's orchestration against the
// record API: fetch-on-load, the two-step add-device flow, and in-memory
// mirrors of both tables.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"energy-tracker-backend/internal/energy"
	"energy-tracker-backend/internal/model"
)

// Client talks to the record API and keeps local mirrors of the device and
// consumption lists. Mirrors are refreshed only by Load and appended to by
// AddDevice; they are never reconciled against the server.
type Client struct {
	baseURL string
	http    *http.Client
	now     func() time.Time

	devices      []model.Device
	consumptions []model.Consumption
}

// New creates a client for the record API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		now:     time.Now,
	}
}

// Devices returns the local device mirror.
func (c *Client) Devices() []model.Device {
	return c.devices
}

// Consumptions returns the local consumption mirror.
func (c *Client) Consumptions() []model.Consumption {
	return c.consumptions
}

// Load fetches all devices and then all consumptions, sequentially. A
// failure in either fetch aborts both and leaves previously loaded mirrors
// untouched.
func (c *Client) Load(ctx context.Context) error {
	var devices []model.Device
	if err := c.getJSON(ctx, "/devices", &devices); err != nil {
		return fmt.Errorf("failed to load devices: %w", err)
	}

	var consumptions []model.Consumption
	if err := c.getJSON(ctx, "/consumptions", &consumptions); err != nil {
		return fmt.Errorf("failed to load consumptions: %w", err)
	}

	c.devices = devices
	c.consumptions = consumptions
	return nil
}

// AddDevice submits a new device, derives its consumption snapshot from the
// server-assigned identifier, and submits that too. If the device write
// fails nothing else happens. If the consumption write fails the device is
// already persisted and stays in the local mirror with no matching
// consumption; there is no compensating delete.
func (c *Client) AddDevice(ctx context.Context, name string, wattage float64, startTime, endTime string) (*model.Device, *model.Consumption, error) {
	device := model.Device{
		Name:      name,
		Wattage:   wattage,
		StartTime: startTime,
		EndTime:   endTime,
	}
	var created model.Device
	if err := c.postJSON(ctx, "/devices", device, &created); err != nil {
		return nil, nil, fmt.Errorf("failed to save device: %w", err)
	}

	consumption := energy.Snapshot(created.Wattage, created.StartTime, created.EndTime, c.now())
	consumption.DeviceID = created.ID

	var createdConsumption model.Consumption
	if err := c.postJSON(ctx, "/consumptions", consumption, &createdConsumption); err != nil {
		c.devices = append(c.devices, created)
		return &created, nil, fmt.Errorf("failed to save consumption: %w", err)
	}

	c.devices = append(c.devices, created)
	c.consumptions = append(c.consumptions, createdConsumption)
	return &created, &createdConsumption, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
