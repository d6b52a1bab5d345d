// Package internalcheck holds static policy tests for the ecf2m library.
//
// The tests load the core package through golang.org/x/tools/go/packages and
// reject patterns that tend to creep into crypto-adjacent code: direct ==
// comparison of byte slices (use crypto/subtle or bytes.Equal deliberately)
// and %x format verbs that would hex-dump potentially sensitive buffers into
// logs.
//
// Not intended for import by applications; the package exists for its tests.
package internalcheck
