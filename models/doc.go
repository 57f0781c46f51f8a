// Package models defines the runtime model mapping for REST backed
// resources. A ModelMap holds the registered model definitions, each
// with its collection, primary key, canonical resource path and declared
// relationships. Records carry mutable field mappings and resolve their
// relationships lazily through an injected ResourceLoader, caching the
// results - including explicit empty and nil results - per record.
package models
