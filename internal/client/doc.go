// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client application runtime.
//
// It parses subcommands, calls the recipe server through the adapter and
// renders results as styled terminal tables.
package client
