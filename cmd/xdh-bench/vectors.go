package main

import (
	"crypto/rand"
	"fmt"

	"github.com/templexxx/xhex"

	xdh "github.com/armfazh/x25519-x64"
)

// readRandom fills buf from the OS CSPRNG, the same chokepoint the
// library's own rand.go uses, for generating benchmark scalars and peer
// material.
func readRandom(buf []byte) (int, error) {
	return rand.Read(buf)
}

func decodeHex(s string) []byte {
	b, err := xhex.DecodeString(s)
	if err != nil {
		panic(fmt.Sprintf("xdh-bench: embedded vector is not valid hex: %v", err))
	}
	return b
}

type vector struct {
	name    string
	k, u    string
	want    string
	curve56 bool
}

func (v vector) run() error {
	k := decodeHex(v.k)
	u := decodeHex(v.u)
	want := decodeHex(v.want)

	size := xdh.X25519Size
	if v.curve56 {
		size = xdh.X448Size
	}
	if len(k) != size || len(u) != size || len(want) != size {
		return fmt.Errorf("malformed vector %q: wrong length", v.name)
	}

	out := make([]byte, size)
	var err error
	if v.curve56 {
		err = xdh.X448Shared(out, k, u)
	} else {
		err = xdh.X25519Shared(out, k, u)
	}
	if err != nil {
		return err
	}
	for i := range out {
		if out[i] != want[i] {
			return fmt.Errorf("got %s, want %s", xhex.EncodeToString(out), xhex.EncodeToString(want))
		}
	}
	return nil
}

// x25519Vectors are the RFC 7748 section 5.2 known-answer scalar
// multiplication vectors.
var x25519Vectors = []vector{
	{
		name: "x25519/vector0",
		k:    "a546e36bf0527c9d3b16154b82465edd62144c0ac1fc5a18506a2244ba449ac4",
		u:    "e6db6867583030db3594c1a424b15f7c726624ec26b3353b10a903a6d0ab1c4c",
		want: "c3da55379de9c6908e94ea4df28d084f32eccf03491c71f754b4075577a28552",
	},
	{
		name: "x25519/vector1",
		k:    "4b66e9d4d1b4673c5ad22691957d6af5c11b6421e0ea01d42ca4169e7918ba0d",
		u:    "e5210f12786811d3f4b7959d0538ae2c31dbe7106fc03c3efc4cd549c715a493",
		want: "95cbde9476e8907d7aade45cb4b873f88b595a68799fa152e6f8f7647aac7957",
	},
}

// x448Vectors are the RFC 7748 section 5.2 X448 known-answer vectors.
var x448Vectors = []vector{
	{
		name:    "x448/vector0",
		curve56: true,
		k: "3d262fddf9ec8e88495266fea19a34d28882acef045104d0d1aae121" +
			"700a779c984c24f8cdd78fbff44943eba368f54b29259a4f1c600ad3",
		u: "06fce640fa3487bfda5f6cf2d5263f8aad88334cbd07437f020f08f9" +
			"814dc031ddbdc38c19c6da2583fa5429db94ada18aa7a7fb4ef8a086",
		want: "ce3e4ff95a60dc6697da1db1d85e6afbdf79b50a2412d7546d5f239f" +
			"e14fbaadeb445fc66a01b0779d98223961111e21766282f73dd96b6f",
	},
	{
		name:    "x448/vector1",
		curve56: true,
		k: "203d494428b8399352665ddca42f9de8fef600908e0d461cb021f8c5" +
			"38345dd77c3e4806e25f46d3315c44e0a5b4371282dd2c8d5be3095f",
		u: "0fbcc2f993cd56d3305b0b7d9e55d4c1a8fb5dbb52f8e9a1e9b6201b1" +
			"65d015894e56c4d3570bee52fe205e28a78b91cdfbde71ce8d157db",
		want: "884a02576239ff7a2f2f63b2db6a9ff37047ac13568e1e30fe63c4a7" +
			"ad1b3ee3a5700df34321d62077e63633c575c1c954514e99da7c179d",
	},
}

const (
	want25519At1    = "422c8e7a6227d7bca1350b3e2bb7279f7897b87bb6854b783c60e80311ae3079"
	want25519At1000 = "684cf59ba83309552800ef566f2f4d3c1c3887c49360e3875f2eb94d99532c51"
	want25519At1M   = "7c3911e0ab2586fd864497297e575e6f3bc601c0883c30df5f4dd2d24f665424"

	want448At1    = "3f482c8a9f19b01e6c46ee9711d9dc14fd4bf67af30765c2ae2b846a4d23a8cd0db897086239492caf350b51f833868b9bc2b3bca9cf4113"
	want448At1000 = "aa3b4749d55b9daf1e5b00288826c467274ce3ebbdd5c17b975e09d4af6c67cf10d087202db88286e2b79fceea3ec353ef54faa26e219f38"
	want448At1M   = "077f453681caca3693198420bbe515cae0002472519b3e67661a7e89cab94695c8f4bcd66e61b9b9c946da8d524de3d69bd9d9d66b997e37"
)

// runIterated25519 applies (k, u) <- (X25519Shared(k, u), k), starting
// from k = u = {9, 0, ..., 0}, for n iterations, and checks the
// resulting k against want (hex-encoded).
func runIterated25519(n int, want string) error {
	var u, k [xdh.X25519Size]byte
	u[0], k[0] = 9, 9

	r := make([]byte, xdh.X25519Size)
	for i := 0; i < n; i++ {
		if err := xdh.X25519Shared(r, k[:], u[:]); err != nil {
			return err
		}
		copy(u[:], k[:])
		copy(k[:], r)
	}

	wantBytes := decodeHex(want)
	for i := range k {
		if k[i] != wantBytes[i] {
			return fmt.Errorf("after %d iterations: got %s, want %s", n, xhex.EncodeToString(k[:]), want)
		}
	}
	return nil
}

// runIterated448 is runIterated25519's Curve448 counterpart, starting
// from k = u = {5, 0, ..., 0}.
func runIterated448(n int, want string) error {
	var u, k [xdh.X448Size]byte
	u[0], k[0] = 5, 5

	r := make([]byte, xdh.X448Size)
	for i := 0; i < n; i++ {
		if err := xdh.X448Shared(r, k[:], u[:]); err != nil {
			return err
		}
		copy(u[:], k[:])
		copy(k[:], r)
	}

	wantBytes := decodeHex(want)
	for i := range k {
		if k[i] != wantBytes[i] {
			return fmt.Errorf("after %d iterations: got %s, want %s", n, xhex.EncodeToString(k[:]), want)
		}
	}
	return nil
}
