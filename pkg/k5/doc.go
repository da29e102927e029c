// Package k5 provides the public types, interfaces, and configuration for
// the K5 cloud API client.
//
// The package defines resource types for the networking, cross-project
// networking, image, and block storage services, along with structured
// errors and per-region service endpoint templating. Use
// github.com/k5ops/k5go/pkg/k5client to construct a working client.
package k5
