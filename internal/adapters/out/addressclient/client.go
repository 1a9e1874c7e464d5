// Package addressclient provides an AddressChecker backed by a remote
// address checking HTTP service.
package addressclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
)

// Client verifies addresses against the address checking service's
// POST /check endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the address checking service at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type checkRequest struct {
	AddressLine1 string  `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2,omitempty"`
	AddressLine3 *string `json:"addressLine3,omitempty"`
	AddressLine4 *string `json:"addressLine4,omitempty"`
	City         string  `json:"city"`
	ZipCode      string  `json:"zipCode"`
}

// CheckAddressExists verifies the raw address with the remote service.
//
// A 404 maps to ports.ErrAddressNotFound and a 422 to
// ports.ErrAddressInvalidFormat; both are validation outcomes, not
// infrastructure failures. Any other non-200 status is an infrastructure
// failure.
func (c *Client) CheckAddressExists(
	ctx context.Context,
	address order.UnvalidatedAddress,
) (order.CheckedAddress, error) {
	body, err := json.Marshal(checkRequest{
		AddressLine1: address.AddressLine1,
		AddressLine2: address.AddressLine2,
		AddressLine3: address.AddressLine3,
		AddressLine4: address.AddressLine4,
		City:         address.City,
		ZipCode:      address.ZipCode,
	})
	if err != nil {
		return order.CheckedAddress{}, fmt.Errorf("encode address check request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/check", bytes.NewReader(body))
	if err != nil {
		return order.CheckedAddress{}, fmt.Errorf("build address check request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return order.CheckedAddress{}, fmt.Errorf("call address checking service: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return order.CheckedAddress{Address: address}, nil
	case http.StatusNotFound:
		return order.CheckedAddress{}, ports.ErrAddressNotFound
	case http.StatusUnprocessableEntity:
		return order.CheckedAddress{}, ports.ErrAddressInvalidFormat
	default:
		return order.CheckedAddress{}, fmt.Errorf(
			"address checking service returned status %d", resp.StatusCode)
	}
}
