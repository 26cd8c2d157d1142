// Package types defines the data shared across gameshift: the install
// record read from the launcher catalog and the filesystem interface every
// component that touches disk works through.
package types
