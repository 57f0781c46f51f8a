package rest

import (
	"net/http"
	"time"
)

// Options are the REST repository settings.
type Options struct {
	// BaseURL is the root URL of the remote API, i.e.
	// 'https://api.example.com/v1'. Required.
	BaseURL string

	// Client is the HTTP client used for the requests. When nil a client
	// with the Timeout is created.
	Client *http.Client

	// Timeout is the per request timeout of the default client.
	Timeout time.Duration

	// Headers are set on every outgoing request.
	Headers map[string]string
}

// DefaultOptions creates the default REST repository settings.
func DefaultOptions() *Options {
	return &Options{
		Timeout: time.Second * 30,
		Headers: map[string]string{},
	}
}

// Option is the function that changes the repository options.
type Option func(o *Options)

// WithBaseURL sets the root URL of the remote API.
func WithBaseURL(baseURL string) Option {
	return func(o *Options) {
		o.BaseURL = baseURL
	}
}

// WithClient sets the HTTP client used for the requests.
func WithClient(client *http.Client) Option {
	return func(o *Options) {
		o.Client = client
	}
}

// WithTimeout sets the per request timeout of the default client.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		o.Timeout = timeout
	}
}

// WithHeader adds the header set on every outgoing request.
func WithHeader(key, value string) Option {
	return func(o *Options) {
		o.Headers[key] = value
	}
}
