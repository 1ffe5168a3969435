// Package config defines the process-wide configuration read by the
// template definition.
//
// The [Config] struct is loaded once at process start from a YAML file,
// overlaid with environment variables, validated, and treated as read-only
// afterwards. It carries scheduling defaults, default volume types and
// sizes, the keystone auth policy file location, and the settings for the
// cloud and certificate store collaborators.
package config
