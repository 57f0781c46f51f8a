// Package rest implements the models.ResourceLoader over plain JSON REST
// endpoints. The repository issues GET requests against a base URL,
// tags each request with an X-Request-ID header and maps the common
// response envelopes - bare arrays, collection root keys and singular
// resource root keys - into model records and collections.
package rest
