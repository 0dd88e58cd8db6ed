package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	tunnelAttempts = 10
	tunnelInterval = 3 * time.Second
)

// tunnelsResponse matches GET /api/tunnels on the ngrok local API.
type tunnelsResponse struct {
	Tunnels []struct {
		PublicURL string `json:"public_url"`
		Proto     string `json:"proto"`
	} `json:"tunnels"`
}

// detectTunnelURL returns the public URL of the first HTTPS tunnel exposed
// by a local ngrok agent, retrying while the agent starts up.
func detectTunnelURL(ctx context.Context, apiBase string) (string, error) {
	client := &http.Client{Timeout: 5 * time.Second}

	var lastErr error
	for attempt := 1; attempt <= tunnelAttempts; attempt++ {
		publicURL, err := fetchTunnelURL(ctx, client, apiBase+"/api/tunnels")
		if err == nil {
			return publicURL, nil
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(tunnelInterval):
		}
	}
	return "", fmt.Errorf("no tunnel after %d attempts: %w", tunnelAttempts, lastErr)
}

func fetchTunnelURL(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out tunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode tunnels: %w", err)
	}
	for _, t := range out.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(out.Tunnels) > 0 {
		return out.Tunnels[0].PublicURL, nil
	}
	return "", fmt.Errorf("no active tunnels")
}
