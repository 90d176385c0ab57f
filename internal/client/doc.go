// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive client application runtime.
//
// It wires terminal UI flows, forum services, and the background cache
// refresh worker into a single process lifecycle.
package client
