// Package e2e provides end-to-end API tests against a running deployment.
// Set E2E_BASE_URL to point the suite at an environment; tests are skipped
// when it is unset so the package stays out of normal unit runs.
package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"
)

func baseURL(t *testing.T) string {
	t.Helper()
	url := os.Getenv("E2E_BASE_URL")
	if url == "" {
		t.Skip("E2E_BASE_URL not set, skipping end-to-end tests")
	}
	return url
}

func httpClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}

func postJSON(t *testing.T, url, token string, payload interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Failed to marshal payload: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := httpClient().Do(req)
	if err != nil {
		t.Fatalf("Request to %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	var decoded map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func TestHealthEndpoint(t *testing.T) {
	base := baseURL(t)

	resp, err := httpClient().Get(base + "/healthz")
	if err != nil {
		t.Fatalf("Failed to reach health endpoint: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 from /healthz, got %d", resp.StatusCode)
	}

	var health struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("Failed to decode health response: %v", err)
	}
	if health.Status != "healthy" {
		t.Fatalf("Expected healthy status, got %q", health.Status)
	}
}

func TestRegisterLoginAndLeadFlow(t *testing.T) {
	base := baseURL(t)

	email := fmt.Sprintf("e2e-%d@example.com", time.Now().UnixNano())

	resp, body := postJSON(t, base+"/api/auth/register", "", map[string]interface{}{
		"email":        email,
		"password":     "e2e-test-password",
		"name":         "E2E",
		"company_name": "E2E Test Org",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Registration failed with status %d: %v", resp.StatusCode, body)
	}
	token, _ := body["access_token"].(string)
	if token == "" {
		t.Fatal("Registration returned no access token")
	}

	resp, body = postJSON(t, base+"/api/leads", token, map[string]interface{}{
		"company_name":   "E2E Lead",
		"industry":       "fintech",
		"funding_amount": "Series A, $10 million",
		"email":          "lead@example.com",
		"phone":          "+966500000000",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Lead creation failed with status %d: %v", resp.StatusCode, body)
	}
	leadID, _ := body["id"].(string)
	if leadID == "" {
		t.Fatal("Lead creation returned no id")
	}

	resp, body = postJSON(t, base+"/api/ai/score-lead", token, map[string]interface{}{
		"lead_id": leadID,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Scoring failed with status %d: %v", resp.StatusCode, body)
	}
	score, _ := body["score"].(float64)
	if score < 1 || score > 10 {
		t.Fatalf("Score out of range: %v", score)
	}
}
