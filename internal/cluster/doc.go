// Package cluster defines the records the template definition reads:
// cluster templates, clusters and their node groups.
//
// A [Template] is the reusable set of infrastructure choices (image, network
// and volume drivers, floating IP policy). A [Cluster] is one provisioning
// request created from a template, carrying free-form label overrides and
// exactly one master and one worker [NodeGroup]. These records are owned by
// the catalog that stores them; the template definition only reads them,
// except for node group addresses, which output binding fills in.
package cluster
