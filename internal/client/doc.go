// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive application runtime.
//
// It wires terminal UI flows, the service layer, and the background
// clipboard monitor into a single process lifecycle.
package client
