package traffic

import "errors"

// ErrNoNodes is returned for a node count below one.
var ErrNoNodes = errors.New("traffic: need at least one node")
