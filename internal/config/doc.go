// Package config provides configuration loading, merging, and validation
// for the record service and the command-line client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Defaults declared with envDefault tags
//  2. A .env file in the working directory, when present
//  3. Environment variables
//  4. Command-line flags (server only)
//  5. A JSON or YAML config file
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
