// Package hashing provides the digest helpers the rest of the module and
// its callers delegate to: SHA-256, double SHA-256, the RIPEMD-160 of
// SHA-256 composition used for 20-byte key identifiers, and seeded Murmur3
// for non-cryptographic bucketing.
//
// All helpers are free functions over byte slices. Inputs are never
// mutated and every call returns a freshly allocated digest.
package hashing
