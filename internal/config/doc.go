// Package config defines the format-agnostic model of a candidate file and
// the Loader interface for reading one.
//
// The plain-text format (one value per line, '#' comments) is implemented
// here. Structured formats live in their own packages (hcl, yamlconfig,
// tomlconfig) and are selected by file extension through a Dispatcher.
package config
