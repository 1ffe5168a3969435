// Package templatedef implements the Kubernetes Fedora template definition.
//
// A Definition translates a cluster template and a cluster into the flat
// parameter set consumed by the orchestration engine (Params), selects the
// environment overlays included with the stack (EnvFiles) and, once the
// stack is provisioned, binds its address outputs onto the cluster's node
// groups (UpdateOutputs).
//
// Collaborators (region lookup, default volume types, the CA record store)
// are injected as interfaces; a Definition holds no mutable state and is
// safe for concurrent use.
package templatedef
