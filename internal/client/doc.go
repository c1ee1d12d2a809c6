// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the encnotes command line.
//
// [CLI] is the cobra command tree. Before a subcommand runs it loads the
// configuration, opens the log file and builds an [App], which resolves the
// master password (session cache first, masked prompt otherwise) and calls
// the vault and note services. Command output goes to stdout, prompts to
// stderr.
package client
