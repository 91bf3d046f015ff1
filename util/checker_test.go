package util

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/dixieflatline76/Starpaper/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockRoundTripper implements http.RoundTripper
type MockRoundTripper struct {
	StatusCode int
	Body       string
	Requested  string
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	m.Requested = req.URL.Path
	return &http.Response{
		StatusCode: m.StatusCode,
		Body:       io.NopCloser(bytes.NewBufferString(m.Body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Request:    req,
	}, nil
}

func TestCheckForUpdates(t *testing.T) {
	originalVersion := config.AppVersion
	defer func() { config.AppVersion = originalVersion }()

	tests := []struct {
		name            string
		currentVersion  string
		responseBody    string
		statusCode      int
		expectUpdate    bool
		expectError     bool
		expectedVersion string
	}{
		{
			name:            "Update Available",
			currentVersion:  "1.0.0",
			responseBody:    `{"tag_name": "v1.1.0", "html_url": "http://release"}`,
			statusCode:      200,
			expectUpdate:    true,
			expectedVersion: "v1.1.0",
		},
		{
			name:            "No Update Available",
			currentVersion:  "v1.1.0",
			responseBody:    `{"tag_name": "1.1.0", "html_url": "http://release"}`,
			statusCode:      200,
			expectedVersion: "v1.1.0",
		},
		{
			name:            "Newer Local Version",
			currentVersion:  "v2.0.0",
			responseBody:    `{"tag_name": "v1.1.0", "html_url": "http://release"}`,
			statusCode:      200,
			expectedVersion: "v1.1.0",
		},
		{
			name:            "Development Build",
			currentVersion:  "",
			responseBody:    `{"tag_name": "v9.0.0", "html_url": "http://release"}`,
			statusCode:      200,
			expectedVersion: "v9.0.0",
		},
		{
			name:           "API Error",
			currentVersion: "v1.0.0",
			responseBody:   `{"message": "Not Found"}`,
			statusCode:     404,
			expectError:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config.AppVersion = tt.currentVersion
			transport := &MockRoundTripper{StatusCode: tt.statusCode, Body: tt.responseBody}

			result, err := CheckForUpdates(context.Background(), &http.Client{Transport: transport})
			assert.Equal(t, "/repos/dixieflatline76/Starpaper/releases/latest", transport.Requested)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectUpdate, result.UpdateAvailable)
			assert.Equal(t, tt.expectedVersion, result.LatestVersion)
			assert.Equal(t, "http://release", result.ReleaseURL)
		})
	}
}
