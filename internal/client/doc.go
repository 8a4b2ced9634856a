// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the record service.
//
// Records are read and written in display format: people, classes and
// campuses are given by name and translated through the reference cache.
// Output is rendered as terminal tables.
package client
