// Package config provides configuration loading, merging, and validation
// facilities for encnotes.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources override later ones for non-zero fields):
//  1. Command-line flags
//  2. Environment variables (ENCNOTES_ prefix)
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
