// Package topology describes the physical side of a WDM network instance:
// the node set, per-node transmitter and receiver budgets, the wavelength
// count, and the directed fiber capacity tensor Pw[m][n][w].
//
// An Instance is plain data. Validate enforces every shape and domain rule
// the model builder relies on, and never coerces or clamps values:
//
//	ErrNoNodes          - N < 1.
//	ErrNoWavelengths    - W < 1.
//	ErrShapeMismatch    - TR/RR length != N, or Pw not shaped [N][N][W].
//	ErrNegativeCapacity - any negative TR, RR or Pw entry.
//
// Every returned error wraps one of these sentinels and names the
// offending parameter and index, e.g. "topology: Pw[0][2][1]=-1: ...".
//
// # Constructors
//
// Deterministic builders for common layouts share functional options:
//
//	Line(n, w)     - 0-1-...-(n-1), both directions of every span.
//	Ring(n, w)     - Line plus the closing span (n-1)-0, n >= 3.
//	FullMesh(n, w) - every ordered pair m != n.
//	Uniform(n, w)  - every entry of Pw, including m == n.
//	Empty(n, w)    - no fibers at all.
//	Default()      - six nodes, three wavelengths, four transceivers per
//	                 node, all-ones Pw.
//
// Options (WithTransmitters, WithReceivers, WithFiberCapacity) panic on
// nonsensical values; builders return sentinel errors and never panic.
//
// # Files
//
// Load and Decode read a YAML description. Capacities may be given either
// as a dense "capacity" tensor or as a sparse "fibers" list:
//
//	nodes: 3
//	wavelengths: 1
//	transmitters: [1, 1, 1]
//	receivers: [1, 1, 1]
//	fibers:
//	  - {from: 0, to: 1, capacity: [1], bidirectional: true}
//	  - {from: 1, to: 2, capacity: [1], bidirectional: true}
//
// # Diagnostics
//
// Reachable runs a breadth-first search over the fibers that carry a given
// wavelength; Unroutable lists the node pairs that no wavelength connects.
package topology
