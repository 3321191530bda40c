// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the gateway.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file and environment variables
//  2. Command-line flags
//  3. YAML or JSON config file
//
// Unset fields receive defaults. The entry point is [GetStructuredConfig].
package config
