package xdh

import "testing"

func TestMontgomeryLadder25519BasePointClampedScalar(t *testing.T) {
	var scalar [32]byte
	scalar[0] = 1
	clamp25519(&scalar)

	var x1, result fieldElement25519
	x1.setSmall(9)

	montgomeryLadder25519(&result, &scalar, &x1)

	var out [32]byte
	result.bytes(&out)
	if out == ([32]byte{}) {
		t.Error("clamp(1)*G should not collapse to the identity u-coordinate")
	}
}

func TestMontgomeryLadder448BasePointClampedScalar(t *testing.T) {
	var scalar [56]byte
	scalar[0] = 1
	clamp448(&scalar)

	var x1, result fieldElement448
	x1.setSmall(5)

	montgomeryLadder448(&result, &scalar, &x1)

	var out [56]byte
	result.bytes(&out)
	if out == ([56]byte{}) {
		t.Error("clamp(1)*G should not collapse to the identity u-coordinate")
	}
}

func TestMontgomeryLadder25519ZeroScalarGivesZero(t *testing.T) {
	// A genuinely all-zero scalar, bypassing clamp25519: RFC 7748
	// clamping always sets bit 254 (k[31] |= 64), so a clamped scalar
	// can never be zero. The ladder itself places no such constraint on
	// its input, so 0*P is exercised directly here.
	var scalar [32]byte

	var x1, result fieldElement25519
	x1.setSmall(9)

	montgomeryLadder25519(&result, &scalar, &x1)

	var out [32]byte
	result.bytes(&out)
	if out != ([32]byte{}) {
		t.Errorf("zero scalar should give the identity, got %x", out)
	}
}
