// Package xdh implements the X25519 and X448 Diffie-Hellman functions
// defined by RFC 7748: variable-base scalar multiplication on Curve25519
// and Curve448 using only the x-coordinate (the Montgomery ladder).
//
// The package exposes four operations: X25519KeyGen, X25519Shared,
// X448KeyGen and X448Shared. All four are pure functions — no shared
// state, no I/O, no allocation beyond the caller-supplied output buffer
// and automatic storage for the ladder's working set. The clamped scalar
// copy, the decoded input, the result and the ladder's working points and
// inverse are zeroed before the call returns; the temporaries inside each
// ladder step and inside field inversion are not cleared.
//
// Inputs and outputs are little-endian fixed-length byte strings: 32
// bytes for X25519, 56 bytes for X448. Output buffers may alias the
// secret-key or peer-public-key input; every entry point copies its
// inputs into local arrays before writing to out.
//
// Neither operation rejects low-order input points. Per RFC 7748 this is
// legitimate: an all-zero shared secret is a normal, value-carrying
// result, not an error. Callers that need contributory behaviour (for
// example some TLS profiles) must check the output for all-zero bytes
// themselves.
package xdh
