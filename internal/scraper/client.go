package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/kmazur/tweetvault/internal/models"
)

// Client calls the external scraping service over HTTP. The service answers
// with a JSON array of post records, each embedding the author's profile
// document under "user".
type Client struct {
	baseURL string
}

func NewClient(baseURL string) *Client {
	return &Client{baseURL: baseURL}
}

func (c *Client) ScrapeProfilePosts(ctx context.Context, profileURL string, limit int) ([]models.RawRecord, error) {
	reqUrl := fmt.Sprintf("%s/scrape?url=%s&limit=%s", c.baseURL, url.QueryEscape(profileURL), strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, "GET", reqUrl, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scraper returned status %d", resp.StatusCode)
	}

	var records []models.RawRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, err
	}

	return records, nil
}
