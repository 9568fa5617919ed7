// SPDX-License-Identifier: EPL-2.0

// Package spectral extracts frequency-domain data and scalar features
// from sample buffers.
//
// Analysis is frame-based: an Analyzer slides fixed windows over channel
// 0 and hands each frame to a Transformer. Two Transformers ship: FFT
// (gonum-backed, the default) and DFT (the direct O(n^2) reference the
// FFT is verified against). Because callers see only the interface, the
// implementations are interchangeable.
//
// AnalyzeBuffer yields raw magnitude spectra; CreateSpectrogram applies a
// Hann window and converts to dB for display. Scalar features cover peak
// frequency, spectral centroid, RMS, zero-crossing rate, clipping
// detection, silence segmentation with hysteresis, and spectral-flux
// onset detection with a BPM estimate.
package spectral
