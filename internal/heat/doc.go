// Package heat models the outputs of a provisioned infrastructure stack and
// attaches output values to cluster node groups.
package heat
