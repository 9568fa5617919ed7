// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio via jfreymuth/oggvorbis, which
// already produces float32 samples so no PCM conversion is needed.
package vorbis
