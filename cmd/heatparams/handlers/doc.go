// Package handlers implements the business logic of the heatparams CLI
// commands. Each handler reads its input documents, builds a template
// definition from the process configuration and renders the result.
package handlers
