package xdh

import "errors"

const (
	// X25519Size is the byte length of every X25519 scalar, public key
	// and shared secret.
	X25519Size = 32
)

var x25519BasePoint = [X25519Size]byte{9}

// X25519KeyGen generates a fresh private/public key pair for Curve25519.
// priv and pub must each be X25519Size bytes. Both are outputs: if pub
// aliases priv, the public key overwrites the private key. The
// private scalar is drawn from crypto/rand and is not itself clamped in
// storage — clamping is applied to a local copy at use time by
// X25519Shared, matching RFC 7748's separation of "the 32 random bytes"
// from "the decoded-and-clamped scalar."
func X25519KeyGen(priv, pub []byte) error {
	if len(priv) != X25519Size {
		return errors.New("xdh: priv must be 32 bytes")
	}
	if len(pub) != X25519Size {
		return errors.New("xdh: pub must be 32 bytes")
	}
	if err := randomBytes(priv[:X25519Size]); err != nil {
		return err
	}
	return X25519Shared(pub, priv, x25519BasePoint[:])
}

// X25519Shared computes the X25519 function from RFC 7748 section 5:
// out = scalarMult(priv, peer). priv and peer must each be X25519Size
// bytes; out must be X25519Size bytes and may alias either input. The
// result is not checked for the all-zero low-order output described in
// section 6.1 — see the package documentation.
func X25519Shared(out, priv, peer []byte) error {
	if len(out) != X25519Size {
		return errors.New("xdh: out must be 32 bytes")
	}
	if len(priv) != X25519Size {
		return errors.New("xdh: priv must be 32 bytes")
	}
	if len(peer) != X25519Size {
		return errors.New("xdh: peer must be 32 bytes")
	}

	var scalar [X25519Size]byte
	copy(scalar[:], priv)
	clamp25519(&scalar)

	var u [X25519Size]byte
	copy(u[:], peer)

	var x1, result fieldElement25519
	x1.setBytes(&u)

	montgomeryLadder25519(&result, &scalar, &x1)

	var outBytes [X25519Size]byte
	result.bytes(&outBytes)
	copy(out, outBytes[:])

	for i := range scalar {
		scalar[i] = 0
	}
	result.clear()
	x1.clear()
	return nil
}
