// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes 16-bit PCM AIFF files via go-audio/aiff.
//
// AIFF shows up in station libraries imported from older production
// systems. go-audio needs seekable input, so non-seekable readers are
// buffered in memory before decoding.
package aiff
