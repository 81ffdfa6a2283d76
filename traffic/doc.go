// Package traffic generates per-security-level demand matrices.
//
// A traffic matrix holds, for every security level in SecurityLevels, an
// N×N matrix of connection requests between ordered node pairs. Generate
// fills every entry with one request. The matrices are produced for
// inspection and export only; the model does not consume them until a
// bandwidth-allocation constraint family exists (see model.Extension).
package traffic
