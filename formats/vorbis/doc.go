// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams via jfreymuth/oggvorbis.
//
// The decoder wraps the library's float output directly into an
// audio.Source, so Vorbis clips enter the render pipeline with no
// intermediate quantization.
package vorbis
