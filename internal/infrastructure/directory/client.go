// Package directory implements the client for the remote read-only person
// directory consumed by the user store.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/adminhub/console-api/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// Client fetches person records over HTTP and flattens the nested wire shape
// into ports.DirectoryRecord.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client for the given endpoint. A default timeout is
// applied when none is provided.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// wirePerson mirrors the directory's JSON document.
type wirePerson struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company struct {
		Name string `json:"name"`
	} `json:"company"`
	Address struct {
		City string `json:"city"`
	} `json:"address"`
	Website string `json:"website"`
	Phone   string `json:"phone"`
}

// FetchUsers retrieves the full person list.
func (c *Client) FetchUsers(ctx context.Context) ([]ports.DirectoryRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("directory request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directory fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directory fetch: unexpected status %d", resp.StatusCode)
	}

	var people []wirePerson
	if err := json.NewDecoder(resp.Body).Decode(&people); err != nil {
		return nil, fmt.Errorf("directory decode: %w", err)
	}

	records := make([]ports.DirectoryRecord, 0, len(people))
	for _, p := range people {
		records = append(records, ports.DirectoryRecord{
			ID:      p.ID,
			Name:    p.Name,
			Email:   p.Email,
			Company: p.Company.Name,
			City:    p.Address.City,
			Website: p.Website,
			Phone:   p.Phone,
		})
	}
	return records, nil
}
