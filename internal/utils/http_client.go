package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient bound to baseURL.
//
// Every request made through the client is limited by timeout (zero means no
// limit) and carries the given default headers. Each call returns an
// independent client with its own connection pool.
//
//	client := utils.NewHTTPClient("https://x.supabase.co/rest/v1", 10*time.Second, map[string]string{"apikey": key})
//	resp, err := client.R().SetContext(ctx).Get("/trans_users")
func NewHTTPClient(baseURL string, timeout time.Duration, headers map[string]string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeaders(headers)

	return &HTTPClient{Client: client}
}
