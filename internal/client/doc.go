// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It wires the upload cycle to a surface and picks the mode: a one-shot run
// that analyses a single file and prints the outcome, or the interactive
// terminal UI with the health worker running for its lifetime.
package client
