package main

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/pchavezmanzano/bonificacion-ief/config"
)

// FetchData issues the single datastore_search GET and decodes the JSON
// body. Every failure mode (network, timeout, non-2xx, malformed body) logs
// a diagnostic and returns an empty result; the caller never sees an error.
func FetchData(cfg *config.Config) map[string]any {
	client := &http.Client{Timeout: cfg.FetchTimeout}

	req, err := http.NewRequest(http.MethodGet, cfg.APIURL, nil)
	if err != nil {
		log.Printf("Error API: %v", err)
		return map[string]any{}
	}
	q := req.URL.Query()
	q.Set("resource_id", cfg.ResourceID)
	q.Set("limit", strconv.Itoa(cfg.RecordLimit))
	req.URL.RawQuery = q.Encode()

	resp, err := client.Do(req)
	if err != nil {
		log.Printf("Error API: %v", err)
		return map[string]any{}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("Error API: status %s", resp.Status)
		return map[string]any{}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("Error API: %v", err)
		return map[string]any{}
	}

	data := map[string]any{}
	if err := json.Unmarshal(body, &data); err != nil {
		log.Printf("Error API: %v", err)
		return map[string]any{}
	}
	return data
}
