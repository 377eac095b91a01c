// Package libdiff compares device descriptions before and after patching.
package libdiff
