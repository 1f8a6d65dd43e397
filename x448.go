package xdh

import "errors"

const (
	// X448Size is the byte length of every X448 scalar, public key and
	// shared secret.
	X448Size = 56
)

var x448BasePoint = [X448Size]byte{5}

// X448KeyGen generates a fresh private/public key pair for Curve448.
// priv and pub must each be X448Size bytes. Both are outputs: if pub
// aliases priv, the public key overwrites the private key.
func X448KeyGen(priv, pub []byte) error {
	if len(priv) != X448Size {
		return errors.New("xdh: priv must be 56 bytes")
	}
	if len(pub) != X448Size {
		return errors.New("xdh: pub must be 56 bytes")
	}
	if err := randomBytes(priv[:X448Size]); err != nil {
		return err
	}
	return X448Shared(pub, priv, x448BasePoint[:])
}

// X448Shared computes the X448 function from RFC 7748 section 5:
// out = scalarMult(priv, peer). priv and peer must each be X448Size
// bytes; out must be X448Size bytes and may alias either input.
func X448Shared(out, priv, peer []byte) error {
	if len(out) != X448Size {
		return errors.New("xdh: out must be 56 bytes")
	}
	if len(priv) != X448Size {
		return errors.New("xdh: priv must be 56 bytes")
	}
	if len(peer) != X448Size {
		return errors.New("xdh: peer must be 56 bytes")
	}

	var scalar [X448Size]byte
	copy(scalar[:], priv)
	clamp448(&scalar)

	var u [X448Size]byte
	copy(u[:], peer)

	var x1, result fieldElement448
	x1.setBytes(&u)

	montgomeryLadder448(&result, &scalar, &x1)

	var outBytes [X448Size]byte
	result.bytes(&outBytes)
	copy(out, outBytes[:])

	for i := range scalar {
		scalar[i] = 0
	}
	result.clear()
	x1.clear()
	return nil
}
