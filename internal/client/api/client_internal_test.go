package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_DefaultClientHasNoTimeout(t *testing.T) {
	c := New("")

	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Zero(t, c.httpClient.Timeout)

	custom := &http.Client{Timeout: time.Second}
	c = New("http://bookings.local/api/", WithHTTPClient(custom))

	assert.Equal(t, "http://bookings.local/api", c.baseURL)
	assert.Same(t, custom, c.httpClient)
}
