// Package types defines the core types shared across mklnk: the link
// kinds the tool can create, the request that describes one link, and
// the platform filesystem interface the link creator runs against.
package types
