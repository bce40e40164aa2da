// Package hcl provides the HCL implementation of config.Loader. A candidate
// file in this format holds a single `values` list:
//
//	# font sizes
//	values = [9, 10, 11, 12, 14, 16, 20]
//
// Other top-level attributes and blocks are ignored, so a file may carry
// its own metadata alongside the list.
package hcl
