// Package config provides configuration loading, merging, and validation
// facilities for the forum client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetClientConfig], which merges all sources,
// applies defaults, and validates the result.
package config
