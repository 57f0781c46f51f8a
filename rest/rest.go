package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/inflection"

	"github.com/kvokka/her/errors"
	"github.com/kvokka/her/errors/class"
	"github.com/kvokka/her/log"
	"github.com/kvokka/her/models"
)

// compile time check for the models.ResourceLoader interface.
var _ models.ResourceLoader = &Repository{}

// Repository is the JSON over HTTP resource loader. It composes the
// request URL from the base URL and the resolved resource path, decodes
// the JSON response and materializes the records with the requested
// model. Numbers are decoded with json.Number so that the integer
// identifiers survive the round trip untouched.
type Repository struct {
	baseURL *url.URL
	client  *http.Client
	headers http.Header
}

// New creates the REST repository with provided options.
func New(options ...Option) (*Repository, error) {
	o := DefaultOptions()
	for _, option := range options {
		option(o)
	}

	if o.BaseURL == "" {
		return nil, errors.New(class.ResourceURLInvalid, "provided empty base URL")
	}
	baseURL, err := url.Parse(o.BaseURL)
	if err != nil {
		return nil, errors.Newf(class.ResourceURLInvalid, "parsing base URL: '%s' failed: %v", o.BaseURL, err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, errors.Newf(class.ResourceURLInvalid, "base URL: '%s' misses the scheme or the host", o.BaseURL)
	}

	client := o.Client
	if client == nil {
		client = &http.Client{Timeout: o.Timeout}
	}

	headers := http.Header{}
	for key, value := range o.Headers {
		headers.Set(key, value)
	}

	return &Repository{
		baseURL: baseURL,
		client:  client,
		headers: headers,
	}, nil
}

// FetchCollection implements models.ResourceLoader interface. A not found
// response results in the empty collection.
func (r *Repository) FetchCollection(ctx context.Context, model *models.ModelStruct, path string, params models.Params) (*models.Collection, error) {
	payload, found, err := r.get(ctx, path, params)
	if err != nil {
		return nil, err
	}
	if !found {
		return model.NewCollection(nil)
	}

	items, err := unwrapCollection(model, payload)
	if err != nil {
		return nil, err
	}
	return model.NewCollection(items)
}

// FetchResource implements models.ResourceLoader interface. A not found
// response results in a nil record with a nil error.
func (r *Repository) FetchResource(ctx context.Context, model *models.ModelStruct, path string, params models.Params) (*models.Record, error) {
	payload, found, err := r.get(ctx, path, params)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	fields, err := unwrapResource(model, payload)
	if err != nil {
		return nil, err
	}
	return model.NewRecord(fields)
}

// Close closes the repository's idle connections.
func (r *Repository) Close(_ context.Context) error {
	r.client.CloseIdleConnections()
	return nil
}

// get performs the GET request. The false result marks the 404 response.
func (r *Repository) get(ctx context.Context, path string, params models.Params) (interface{}, bool, error) {
	u := *r.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + path
	if len(params) > 0 {
		values := url.Values{}
		for key, value := range params {
			values.Set(key, fmt.Sprint(value))
		}
		u.RawQuery = values.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, false, errors.Newf(class.ResourceURLInvalid, "creating request for: '%s' failed: %v", u.String(), err)
	}
	for key, values := range r.headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	req.Header.Set("Accept", "application/json")
	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)

	log.Debug3f("GET %s [%s]", u.String(), requestID)
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, false, errors.Newf(class.ResourceConnectionFailed, "GET '%s' failed: %v", u.String(), err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, false, nil
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, false, errors.Newf(class.ResourceStatus, "GET '%s' responded with the status: %d", u.String(), resp.StatusCode)
	}

	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()

	var payload interface{}
	if err = decoder.Decode(&payload); err != nil {
		return nil, false, errors.Newf(class.ResourceDecode, "decoding response of GET '%s' failed: %v", u.String(), err)
	}
	return payload, true, nil
}

// unwrapCollection extracts the raw items array from the decoded payload.
// Both the bare JSON array and the object with the array under the
// collection root key - i.e. {"users": [...]} - are accepted.
func unwrapCollection(model *models.ModelStruct, payload interface{}) ([]interface{}, error) {
	switch v := payload.(type) {
	case []interface{}:
		return v, nil
	case map[string]interface{}:
		if raw, ok := v[model.Collection()]; ok {
			if items, ok := raw.([]interface{}); ok {
				return items, nil
			}
		}
		if raw, ok := v["data"]; ok {
			if items, ok := raw.([]interface{}); ok {
				return items, nil
			}
		}
		return nil, errors.New(class.ResourceDecode, "collection response object misses the collection array")
	case nil:
		return nil, nil
	default:
		return nil, errors.Newf(class.ResourceDecode, "unexpected collection response type: %T", payload)
	}
}

// unwrapResource extracts the raw record mapping from the decoded
// payload. The single element object wrapped under the singular root key
// - i.e. {"user": {...}} - is unwrapped.
func unwrapResource(model *models.ModelStruct, payload interface{}) (map[string]interface{}, error) {
	fields, ok := payload.(map[string]interface{})
	if !ok {
		return nil, errors.Newf(class.ResourceDecode, "unexpected resource response type: %T", payload)
	}

	if len(fields) == 1 {
		root := inflection.Singular(model.Collection())
		if raw, ok := fields[root]; ok {
			if inner, ok := raw.(map[string]interface{}); ok {
				return inner, nil
			}
		}
	}
	return fields, nil
}
