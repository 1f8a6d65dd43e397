package xdh

import "math/bits"

// fieldElement25519 represents an element of GF(2^255-19) as five 51-bit
// limbs in radix 2^51, following the same lazy-reduction discipline as
// the teacher's 5x52 secp256k1 FieldElement: limbs may temporarily carry
// more than 51 bits of magnitude, and normalize brings a value back to
// its unique representative in [0, p).
type fieldElement25519 struct {
	n [5]uint64

	// magnitude bounds how many "units of p" the limbs might still hold
	// above their clean 51-bit width; mul/sqr re-normalize inputs whose
	// magnitude has grown past what the wide multiply was sized for.
	magnitude int
}

const (
	mask51 = (uint64(1) << 51) - 1

	// p25519Limb0 and p25519LimbN are the limbs of p = 2^255-19 in radix
	// 2^51: limb 0 carries the -19, limbs 1..4 are all-ones.
	p25519Limb0 = mask51 - 18
	p25519LimbN = mask51
)

func newFieldElement25519() fieldElement25519 {
	return fieldElement25519{magnitude: 1}
}

// setSmall sets r to a small non-negative integer.
func (r *fieldElement25519) setSmall(v uint32) {
	r.n = [5]uint64{uint64(v), 0, 0, 0, 0}
	r.magnitude = 1
}

// setBytes decodes a 32-byte little-endian u-coordinate per RFC 7748
// section 5: the top bit of the last byte is masked off before decoding,
// and non-canonical values (p..2^255-1) are accepted without rejection.
func (r *fieldElement25519) setBytes(b *[32]byte) {
	var buf [32]byte
	copy(buf[:], b[:])
	buf[31] &= 0x7f

	var d [4]uint64
	for i := 0; i < 4; i++ {
		d[i] = readLE64(buf[8*i : 8*i+8])
	}

	r.n[0] = d[0] & mask51
	r.n[1] = ((d[0] >> 51) | (d[1] << 13)) & mask51
	r.n[2] = ((d[1] >> 38) | (d[2] << 26)) & mask51
	r.n[3] = ((d[2] >> 25) | (d[3] << 39)) & mask51
	r.n[4] = (d[3] >> 12) & mask51
	r.magnitude = 1
}

// bytes encodes r, after normalization, as a canonical 32-byte
// little-endian u-coordinate.
func (r *fieldElement25519) bytes(out *[32]byte) {
	t := *r
	t.normalize()

	var d [4]uint64
	d[0] = t.n[0] | (t.n[1] << 51)
	d[1] = (t.n[1] >> 13) | (t.n[2] << 38)
	d[2] = (t.n[2] >> 26) | (t.n[3] << 25)
	d[3] = (t.n[3] >> 39) | (t.n[4] << 12)

	for i := 0; i < 4; i++ {
		writeLE64(out[8*i:8*i+8], d[i])
	}
}

// add computes r = a + b. Output magnitude is the sum of the inputs'.
func (r *fieldElement25519) add(a, b *fieldElement25519) {
	for i := range r.n {
		r.n[i] = a.n[i] + b.n[i]
	}
	r.magnitude = a.magnitude + b.magnitude
}

// sub computes r = a - b by adding a multiple of 2p large enough that no
// limb goes negative, mirroring the teacher's negate-then-add pattern.
func (r *fieldElement25519) sub(a, b *fieldElement25519) {
	m := uint64(b.magnitude)
	if m < 1 {
		m = 1
	}
	bias0 := 2 * m * p25519Limb0
	biasN := 2 * m * p25519LimbN
	r.n[0] = a.n[0] + bias0 - b.n[0]
	r.n[1] = a.n[1] + biasN - b.n[1]
	r.n[2] = a.n[2] + biasN - b.n[2]
	r.n[3] = a.n[3] + biasN - b.n[3]
	r.n[4] = a.n[4] + biasN - b.n[4]
	r.magnitude = a.magnitude + 2*int(m)
}

// mulSmall computes r = a * k for a small curve constant such as A24. The
// per-limb product is computed as a wide 128-bit accumulator (k can be up
// to 17 bits and a's limbs may still carry add/sub headroom) and then
// carry-propagated the same way mul folds its column sums.
func (r *fieldElement25519) mulSmall(a *fieldElement25519, k uint32) {
	kk := uint64(k)
	var hi, lo [5]uint64
	for i := range r.n {
		hi[i], lo[i] = bits.Mul64(a.n[i], kk)
	}

	var carry uint64
	for i := range r.n {
		l, c := bits.Add64(lo[i], carry, 0)
		h, _ := bits.Add64(hi[i], 0, c)
		r.n[i] = l & mask51
		carry = (h << 13) | (l >> 51)
	}
	r.n[0] += carry * 19
	c2 := r.n[0] >> 51
	r.n[0] &= mask51
	r.n[1] += c2
	r.magnitude = 1
}

// cswap conditionally swaps a and b in constant time; flag must be 0 or
// 1. flag is secret (it derives from the scalar bits in the ladder), so
// this must not branch on it: every call site in ladder.go holds both
// operands at magnitude 1, so the magnitudes never need swapping.
func (r *fieldElement25519) cswap(b *fieldElement25519, flag uint64) {
	mask := 0 - flag
	for i := range r.n {
		t := mask & (r.n[i] ^ b.n[i])
		r.n[i] ^= t
		b.n[i] ^= t
	}
}

// clear zeroes r so no secret field element outlives the call that
// produced it.
func (r *fieldElement25519) clear() {
	for i := range r.n {
		r.n[i] = 0
	}
	r.magnitude = 0
}

// normalizeWeak carry-propagates limbs down to 51 bits without the final
// conditional subtraction of p; the result may still be p <= x < 2p.
func (r *fieldElement25519) normalizeWeak() {
	c0 := r.n[0] >> 51
	r.n[0] &= mask51
	r.n[1] += c0
	c1 := r.n[1] >> 51
	r.n[1] &= mask51
	r.n[2] += c1
	c2 := r.n[2] >> 51
	r.n[2] &= mask51
	r.n[3] += c2
	c3 := r.n[3] >> 51
	r.n[3] &= mask51
	r.n[4] += c3
	c4 := r.n[4] >> 51
	r.n[4] &= mask51
	r.n[0] += c4 * 19
	c5 := r.n[0] >> 51
	r.n[0] &= mask51
	r.n[1] += c5
	r.magnitude = 1
}

// normalize brings r to its unique canonical representative in [0, p)
// using a branchless conditional subtraction so the final reduction does
// not take a data-dependent path on the element's value.
func (r *fieldElement25519) normalize() {
	r.normalizeWeak()

	var diff [5]uint64
	var borrow uint64
	p := [5]uint64{p25519Limb0, p25519LimbN, p25519LimbN, p25519LimbN, p25519LimbN}
	for i := range r.n {
		d := r.n[i] - p[i] - borrow
		diff[i] = d & mask51
		borrow = (d >> 63) & 1
	}
	// borrow == 1 means r < p: keep r. borrow == 0 means r >= p: use diff.
	mask := borrow - 1
	for i := range r.n {
		r.n[i] = (r.n[i] &^ mask) | (diff[i] & mask)
	}
	r.magnitude = 1
}

// isZero reports whether the normalized value of r is zero.
func (r *fieldElement25519) isZero() bool {
	t := *r
	t.normalize()
	return t.n[0] == 0 && t.n[1] == 0 && t.n[2] == 0 && t.n[3] == 0 && t.n[4] == 0
}

// mul computes r = a*b modulo p, via schoolbook cross-products folded
// with the identity 2^255 ≡ 19 (mod p). This is the generalization of the
// teacher's field_mul.go wide-multiply to F25519's radix and reduction.
func (r *fieldElement25519) mul(a, b *fieldElement25519) {
	aN, bN := *a, *b
	if aN.magnitude > 4 {
		aN.normalizeWeak()
	}
	if bN.magnitude > 4 {
		bN.normalizeWeak()
	}

	a0, a1, a2, a3, a4 := aN.n[0], aN.n[1], aN.n[2], aN.n[3], aN.n[4]
	b0, b1, b2, b3, b4 := bN.n[0], bN.n[1], bN.n[2], bN.n[3], bN.n[4]

	b1_19 := b1 * 19
	b2_19 := b2 * 19
	b3_19 := b3 * 19
	b4_19 := b4 * 19

	var hi0, lo0, hi1, lo1, hi2, lo2, hi3, lo3, hi4, lo4 uint64

	hi0, lo0 = mulAcc(hi0, lo0, a0, b0)
	hi0, lo0 = mulAcc(hi0, lo0, a1, b4_19)
	hi0, lo0 = mulAcc(hi0, lo0, a2, b3_19)
	hi0, lo0 = mulAcc(hi0, lo0, a3, b2_19)
	hi0, lo0 = mulAcc(hi0, lo0, a4, b1_19)

	hi1, lo1 = mulAcc(hi1, lo1, a0, b1)
	hi1, lo1 = mulAcc(hi1, lo1, a1, b0)
	hi1, lo1 = mulAcc(hi1, lo1, a2, b4_19)
	hi1, lo1 = mulAcc(hi1, lo1, a3, b3_19)
	hi1, lo1 = mulAcc(hi1, lo1, a4, b2_19)

	hi2, lo2 = mulAcc(hi2, lo2, a0, b2)
	hi2, lo2 = mulAcc(hi2, lo2, a1, b1)
	hi2, lo2 = mulAcc(hi2, lo2, a2, b0)
	hi2, lo2 = mulAcc(hi2, lo2, a3, b4_19)
	hi2, lo2 = mulAcc(hi2, lo2, a4, b3_19)

	hi3, lo3 = mulAcc(hi3, lo3, a0, b3)
	hi3, lo3 = mulAcc(hi3, lo3, a1, b2)
	hi3, lo3 = mulAcc(hi3, lo3, a2, b1)
	hi3, lo3 = mulAcc(hi3, lo3, a3, b0)
	hi3, lo3 = mulAcc(hi3, lo3, a4, b4_19)

	hi4, lo4 = mulAcc(hi4, lo4, a0, b4)
	hi4, lo4 = mulAcc(hi4, lo4, a1, b3)
	hi4, lo4 = mulAcc(hi4, lo4, a2, b2)
	hi4, lo4 = mulAcc(hi4, lo4, a3, b1)
	hi4, lo4 = mulAcc(hi4, lo4, a4, b0)

	r.n[0], hi0 = lo0&mask51, (hi0<<13)|(lo0>>51)
	lo1, c := bits.Add64(lo1, hi0, 0)
	hi1, _ = bits.Add64(hi1, 0, c)
	r.n[1], hi1 = lo1&mask51, (hi1<<13)|(lo1>>51)
	lo2, c = bits.Add64(lo2, hi1, 0)
	hi2, _ = bits.Add64(hi2, 0, c)
	r.n[2], hi2 = lo2&mask51, (hi2<<13)|(lo2>>51)
	lo3, c = bits.Add64(lo3, hi2, 0)
	hi3, _ = bits.Add64(hi3, 0, c)
	r.n[3], hi3 = lo3&mask51, (hi3<<13)|(lo3>>51)
	lo4, c = bits.Add64(lo4, hi3, 0)
	hi4, _ = bits.Add64(hi4, 0, c)
	r.n[4], hi4 = lo4&mask51, (hi4<<13)|(lo4>>51)

	r.n[0] += hi4 * 19
	carry := r.n[0] >> 51
	r.n[0] &= mask51
	r.n[1] += carry

	r.magnitude = 1
}

// sqr computes r = a^2. Squaring halves the number of distinct
// cross-products versus a general multiply, per the teacher's note that
// a dedicated sqr should be "40-50% cheaper" than mul.
func (r *fieldElement25519) sqr(a *fieldElement25519) {
	aN := *a
	if aN.magnitude > 4 {
		aN.normalizeWeak()
	}

	a0, a1, a2, a3, a4 := aN.n[0], aN.n[1], aN.n[2], aN.n[3], aN.n[4]
	d0, d1, d2, d3 := 2*a0, 2*a1, 2*a2, 2*a3

	a4_19 := a4 * 19
	a3_19 := a3 * 19

	var hi0, lo0, hi1, lo1, hi2, lo2, hi3, lo3, hi4, lo4 uint64

	hi0, lo0 = mulAcc(hi0, lo0, a0, a0)
	hi0, lo0 = mulAcc(hi0, lo0, d1, a4_19)
	hi0, lo0 = mulAcc(hi0, lo0, d2, a3_19)

	hi1, lo1 = mulAcc(hi1, lo1, d0, a1)
	hi1, lo1 = mulAcc(hi1, lo1, d2, a4_19)
	hi1, lo1 = mulAcc(hi1, lo1, a3, a3_19)

	hi2, lo2 = mulAcc(hi2, lo2, d0, a2)
	hi2, lo2 = mulAcc(hi2, lo2, a1, a1)
	hi2, lo2 = mulAcc(hi2, lo2, d3, a4_19)

	hi3, lo3 = mulAcc(hi3, lo3, d0, a3)
	hi3, lo3 = mulAcc(hi3, lo3, d1, a2)
	hi3, lo3 = mulAcc(hi3, lo3, a4, a4_19)

	hi4, lo4 = mulAcc(hi4, lo4, d0, a4)
	hi4, lo4 = mulAcc(hi4, lo4, d1, a3)
	hi4, lo4 = mulAcc(hi4, lo4, a2, a2)

	r.n[0], hi0 = lo0&mask51, (hi0<<13)|(lo0>>51)
	lo1, c := bits.Add64(lo1, hi0, 0)
	hi1, _ = bits.Add64(hi1, 0, c)
	r.n[1], hi1 = lo1&mask51, (hi1<<13)|(lo1>>51)
	lo2, c = bits.Add64(lo2, hi1, 0)
	hi2, _ = bits.Add64(hi2, 0, c)
	r.n[2], hi2 = lo2&mask51, (hi2<<13)|(lo2>>51)
	lo3, c = bits.Add64(lo3, hi2, 0)
	hi3, _ = bits.Add64(hi3, 0, c)
	r.n[3], hi3 = lo3&mask51, (hi3<<13)|(lo3>>51)
	lo4, c = bits.Add64(lo4, hi3, 0)
	hi4, _ = bits.Add64(hi4, 0, c)
	r.n[4], hi4 = lo4&mask51, (hi4<<13)|(lo4>>51)

	r.n[0] += hi4 * 19
	carry := r.n[0] >> 51
	r.n[0] &= mask51
	r.n[1] += carry

	r.magnitude = 1
}

// invert computes r = a^(p-2) mod p using Fermat's little theorem via the
// classic 254-squarings/11-multiplies addition chain (the same chain used
// by field/fe.go and fe51.go implementations across the ecosystem).
func (r *fieldElement25519) invert(a *fieldElement25519) {
	var z2, z9, z11, z2_5_0, z2_10_0, z2_20_0, z2_50_0, z2_100_0, t fieldElement25519

	z2.sqr(a)
	t.sqr(&z2)
	t.sqr(&t)
	z9.mul(&t, a)
	z11.mul(&z9, &z2)
	t.sqr(&z11)
	z2_5_0.mul(&t, &z9)

	t.sqr(&z2_5_0)
	for i := 0; i < 4; i++ {
		t.sqr(&t)
	}
	z2_10_0.mul(&t, &z2_5_0)

	t.sqr(&z2_10_0)
	for i := 0; i < 9; i++ {
		t.sqr(&t)
	}
	z2_20_0.mul(&t, &z2_10_0)

	t.sqr(&z2_20_0)
	for i := 0; i < 19; i++ {
		t.sqr(&t)
	}
	t.mul(&t, &z2_20_0)

	t.sqr(&t)
	for i := 0; i < 9; i++ {
		t.sqr(&t)
	}
	z2_50_0.mul(&t, &z2_10_0)

	t.sqr(&z2_50_0)
	for i := 0; i < 49; i++ {
		t.sqr(&t)
	}
	z2_100_0.mul(&t, &z2_50_0)

	t.sqr(&z2_100_0)
	for i := 0; i < 99; i++ {
		t.sqr(&t)
	}
	t.mul(&t, &z2_100_0)

	t.sqr(&t)
	for i := 0; i < 49; i++ {
		t.sqr(&t)
	}
	t.mul(&t, &z2_50_0)

	t.sqr(&t)
	t.sqr(&t)
	t.sqr(&t)
	t.sqr(&t)
	t.sqr(&t)

	r.mul(&t, &z11)
}

func readLE64(b []byte) uint64 {
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

func writeLE64(b []byte, v uint64) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}
