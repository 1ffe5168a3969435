// Package labels provides typed access to cluster label overrides.
//
// Cluster labels are a free-form string map used to customize template
// behavior without template changes. [Labels] wraps such a map and exposes
// typed getters with explicit defaults so callers never parse label values
// ad hoc.
package labels
