package xdh

// montgomeryLadder25519 implements the combined Montgomery double-and-add
// step from RFC 7748 section 5, walking the clamped scalar from its
// fixed top bit (254) down to bit 0. x1 is the input u-coordinate; out
// receives the resulting u-coordinate of scalar*[u1]. a24 is the curve's
// (A-2)/4 constant, 121665 for Curve25519.
func montgomeryLadder25519(out *fieldElement25519, scalar *[32]byte, x1 *fieldElement25519) {
	var x2, z2, x3, z3 fieldElement25519
	x2.setSmall(1)
	z2.setSmall(0)
	x3 = *x1
	z3.setSmall(1)

	var swap uint64

	for pos := 254; pos >= 0; pos-- {
		bit := uint64((scalar[pos/8] >> uint(pos%8)) & 1)
		swap ^= bit
		x2.cswap(&x3, swap)
		z2.cswap(&z3, swap)
		swap = bit

		ladderStep25519(&x2, &z2, &x3, &z3, x1)
	}
	x2.cswap(&x3, swap)
	z2.cswap(&z3, swap)

	var zInv fieldElement25519
	zInv.invert(&z2)
	out.mul(&x2, &zInv)

	x2.clear()
	z2.clear()
	x3.clear()
	z3.clear()
	zInv.clear()
}

// ladderStep25519 performs one combined double-and-differential-add step,
// following the variable names from RFC 7748 section 5 exactly (A, AA, B,
// BB, E, C, D, DA, CB) so the code can be checked line-by-line against
// the specification's pseudocode.
func ladderStep25519(x2, z2, x3, z3, x1 *fieldElement25519) {
	var a, aa, b, bb, e, c, d, da, cb fieldElement25519

	a.add(x2, z2)
	aa.sqr(&a)
	b.sub(x2, z2)
	bb.sqr(&b)
	e.sub(&aa, &bb)
	c.add(x3, z3)
	d.sub(x3, z3)
	da.mul(&d, &a)
	cb.mul(&c, &b)

	var t1, t2 fieldElement25519
	t1.add(&da, &cb)
	x3.sqr(&t1)

	t2.sub(&da, &cb)
	var t3 fieldElement25519
	t3.sqr(&t2)
	z3.mul(x1, &t3)

	x2.mul(&aa, &bb)

	var a24e, sum fieldElement25519
	a24e.mulSmall(&e, 121665)
	sum.add(&aa, &a24e)
	z2.mul(&e, &sum)
}

// montgomeryLadder448 is montgomeryLadder25519's Curve448 counterpart:
// same ladder shape, 448-bit scalar, a24 = 39081.
func montgomeryLadder448(out *fieldElement448, scalar *[56]byte, x1 *fieldElement448) {
	var x2, z2, x3, z3 fieldElement448
	x2.setSmall(1)
	z2.setSmall(0)
	x3 = *x1
	z3.setSmall(1)

	var swap uint64

	for pos := 447; pos >= 0; pos-- {
		bit := uint64((scalar[pos/8] >> uint(pos%8)) & 1)
		swap ^= bit
		x2.cswap(&x3, swap)
		z2.cswap(&z3, swap)
		swap = bit

		ladderStep448(&x2, &z2, &x3, &z3, x1)
	}
	x2.cswap(&x3, swap)
	z2.cswap(&z3, swap)

	var zInv fieldElement448
	zInv.invert(&z2)
	out.mul(&x2, &zInv)

	x2.clear()
	z2.clear()
	x3.clear()
	z3.clear()
	zInv.clear()
}

func ladderStep448(x2, z2, x3, z3, x1 *fieldElement448) {
	var a, aa, b, bb, e, c, d, da, cb fieldElement448

	a.add(x2, z2)
	aa.sqr(&a)
	b.sub(x2, z2)
	bb.sqr(&b)
	e.sub(&aa, &bb)
	c.add(x3, z3)
	d.sub(x3, z3)
	da.mul(&d, &a)
	cb.mul(&c, &b)

	var t1, t2 fieldElement448
	t1.add(&da, &cb)
	x3.sqr(&t1)

	t2.sub(&da, &cb)
	var t3 fieldElement448
	t3.sqr(&t2)
	z3.mul(x1, &t3)

	x2.mul(&aa, &bb)

	var a24e, sum fieldElement448
	a24e.mulSmall(&e, 39081)
	sum.add(&aa, &a24e)
	z2.mul(&e, &sum)
}
