package xdh

// clamp25519 applies the RFC 7748 Section 5 clamping to a copy of a
// 32-byte X25519 scalar, discarding the low three bits (so the scalar is
// always a multiple of the cofactor 8), fixing the high bit of the last
// byte clear and the second-highest bit set (so the scalar's bit length
// is fixed, defeating variable-time ladder implementations that branch
// on it).
func clamp25519(k *[32]byte) {
	k[0] &= 248
	k[31] &= 127
	k[31] |= 64
}

// clamp448 applies the RFC 7748 Section 5 clamping to a copy of a 56-byte
// X448 scalar: the low two bits are cleared (cofactor 4) and the
// high bit of the last byte is set.
func clamp448(k *[56]byte) {
	k[0] &= 252
	k[55] |= 128
}
