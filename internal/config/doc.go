// Package config provides configuration loading, merging, and validation
// for the notes server and the command line client.
//
// Server configuration is assembled from the following sources, later
// sources overriding earlier non-zero fields:
//  1. Built-in defaults
//  2. JSON config file
//  3. Environment variables
//  4. Command-line flags
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
