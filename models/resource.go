package models

import (
	"context"
)

// Params are the optional request parameters passed through to the
// resource loader. When provided at a relationship accessor call they are
// merged over the parent's current data during path resolution and always
// force a fresh fetch.
type Params map[string]interface{}

// ResourceLoader is the collaborator performing the remote resource
// loading. Implementations own the transport, the response decoding and
// any retry or timeout policy. Returned values are already materialized
// with the provided model. A nil record with a nil error is a valid
// 'not found' result for a single resource.
type ResourceLoader interface {
	// FetchCollection gets the ordered collection of records under 'path'.
	FetchCollection(ctx context.Context, model *ModelStruct, path string, params Params) (*Collection, error)

	// FetchResource gets a single record under 'path'.
	FetchResource(ctx context.Context, model *ModelStruct, path string, params Params) (*Record, error)
}
