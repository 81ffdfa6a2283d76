// Package model formulates Routing and Wavelength Assignment (RWA) for a
// WDM network as a mixed-integer linear program.
//
// Build turns a validated *topology.Instance into an immutable *Model:
// three variable families, one objective and the constraint families that
// jointly encode how many lightpaths connect each node pair, which discrete
// wavelength each lightpath unit occupies, and how every wavelength-specific
// lightpath is routed fiber by fiber.
//
// # Variables
//
// Variables live in dense arenas addressed by small integer tuples. A VarID
// is a column index; the layout is
//
//	[ L[d] | X[d][w] | R[d][w][f] ]
//
// where d ranges over demands (ordered node pairs), w over wavelengths and
// f over directed fibers, each in row-major order.
//
//	LightpathCount       L[i][j]        integer, [0, +Inf)   "LPs_i_j"
//	WavelengthAssignment X[i][j][w]     binary               "LPs_on_wl_i_j_w"
//	RoutedSegment        R[i][j][w][m][n] binary             "phy_topo_route_i_j_w_m_n"
//
// # Objective
//
//	maximize Σ_i Σ_j L[i][j]
//
// # Constraints (emitted in this order)
//
//	transmitters(i)         Σ_j L[i][j] <= TR[i]
//	receivers(j)            Σ_i L[i][j] <= RR[j]
//	wavelength_split(i,j)   Σ_w X[i][j][w] - L[i][j] = 0
//	continuity(i,j,w,k)     Σ_m R[i][j][w][m][k] - Σ_n R[i][j][w][k][n] = 0,  k ∉ {i,j}
//	sink_in(i,j,w)          Σ_m R[i][j][w][m][j] - X[i][j][w] = 0
//	source_out(i,j,w)       Σ_n R[i][j][w][i][n] - X[i][j][w] = 0
//	source_in_zero(i,j,w)   Σ_m R[i][j][w][m][i] = 0
//	sink_out_zero(i,j,w)    Σ_n R[i][j][w][j][n] = 0
//	fiber_capacity(w,m,n)   Σ_{i,j} R[i][j][w][m][n] <= Pw[m][n][w]
//
// The routing families are a unit multi-commodity flow per (i,j,w); the
// solver picks routes and resolves wavelength clashes jointly. The
// O(N²·W·N) continuity family is part of the formulation, not an artifact.
//
// Expressions are normalized: duplicate terms are merged and zero
// coefficients dropped, so in continuity(i,j,w,k) the self-fiber term
// R[i][j][w][k][k] (which appears on both sides) vanishes and the inflow
// (+1) and outflow (-1) terms reference disjoint fibers.
//
// # Self demands
//
// By default every ordered pair (i,j), i == j included, is a demand and
// every ordered pair (m,n), m == n included, is a fiber. The self demands
// are generated but are always forced to zero by sink_in/source_in_zero.
// WithSelfDemands(false) drops both diagonals, giving N(N-1) demands and
// N(N-1) fibers.
//
// # Identifiers
//
// Every constraint carries a ConstraintID: a family tag plus an index tuple.
// It renders to text only at the boundary: String() gives
// "continuity(0,2,0,1)", Name() gives the LP-safe "continuity_0_2_0_1".
// Building twice from equal inputs yields identical variables, constraints
// and identifiers.
//
// # Extensions
//
// The traffic-bandwidth family is deliberately absent. WithExtension lets a
// caller append its own constraints under a custom family label once the
// core families are in place; none ship with this package.
//
// Build is pure: no I/O, no randomness, no logging.
package model
