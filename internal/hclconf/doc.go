// Package hclconf provides the concrete HCL implementation of the
// configuration loading and settings decoding interfaces defined in the
// config package. It is responsible for all file parsing, HCL-to-model
// translation, and cty-to-Go settings binding.
package hclconf
