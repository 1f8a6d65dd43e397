package xdh

import (
	"bytes"
	"testing"
)

func TestX448RFC7748Vectors(t *testing.T) {
	cases := []struct {
		name       string
		k, u, want string
	}{
		{
			"vector0",
			"3d262fddf9ec8e88495266fea19a34d28882acef045104d0d1aae121700a779c984c24f8cdd78fbff44943eba368f54b29259a4f1c600ad3",
			"06fce640fa3487bfda5f6cf2d5263f8aad88334cbd07437f020f08f9814dc031ddbdc38c19c6da2583fa5429db94ada18aa7a7fb4ef8a086",
			"ce3e4ff95a60dc6697da1db1d85e6afbdf79b50a2412d7546d5f239fe14fbaadeb445fc66a01b0779d98223961111e21766282f73dd96b6f",
		},
		{
			"vector1",
			"203d494428b8399352665ddca42f9de8fef600908e0d461cb021f8c538345dd77c3e4806e25f46d3315c44e0a5b4371282dd2c8d5be3095f",
			"0fbcc2f993cd56d3305b0b7d9e55d4c1a8fb5dbb52f8e9a1e9b6201b165d015894e56c4d3570bee52fe205e28a78b91cdfbde71ce8d157db",
			"884a02576239ff7a2f2f63b2db6a9ff37047ac13568e1e30fe63c4a7ad1b3ee3a5700df34321d62077e63633c575c1c954514e99da7c179d",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			k := hexBytes(t, c.k)
			u := hexBytes(t, c.u)
			if len(k) != X448Size || len(u) != X448Size {
				t.Fatalf("malformed test vector: len(k)=%d len(u)=%d", len(k), len(u))
			}
			want := hexBytes(t, c.want)

			out := make([]byte, X448Size)
			if err := X448Shared(out, k, u); err != nil {
				t.Fatalf("shared: %v", err)
			}
			if !bytes.Equal(out, want) {
				t.Errorf("got %x, want %x", out, want)
			}
		})
	}
}

func TestX448RFC7748KeyPairs(t *testing.T) {
	aliceSK := hexBytes(t, "9a8f4925d1519f5775cf46b04b5800d4ee9ee8bae8bc5565d498c28dd9c9baf574a9419744897391006382a6f127ab1d9ac2d8c0a598726b")
	alicePKWant := hexBytes(t, "9b08f7cc31b7e3e67d22d5aea121074a273bd2b83de09c63faa73d2c22c5d9bbc836647241d953d40c5b12da88120d53177f80e532c41fa0")
	bobSK := hexBytes(t, "1c306a7ac2a0e2e0990b294470cba339e6453772b075811d8fad0d1d6927c120bb5ee8972b0d3e21374c9c921b09d1b0366f10b65173992d")
	bobPKWant := hexBytes(t, "3eb7a829b0cd20f5bcfc0b599b6feccf6da4627107bdb0d4f345b43027d8b972fc3e34fb4232a13ca706dcb57aec3dae07bdc1c67bf33609")
	wantShared := hexBytes(t, "07fff4181ac6cc95ec1c16a94a0f74d12da232ce40a77552281d282bb60c0b56fd2464c335543936521c24403085d59a449a5037514a879d")

	alicePK := make([]byte, X448Size)
	if err := X448Shared(alicePK, aliceSK, x448BasePoint[:]); err != nil {
		t.Fatalf("alice keygen: %v", err)
	}
	if !bytes.Equal(alicePK, alicePKWant) {
		t.Errorf("alice pubkey = %x, want %x", alicePK, alicePKWant)
	}

	bobPK := make([]byte, X448Size)
	if err := X448Shared(bobPK, bobSK, x448BasePoint[:]); err != nil {
		t.Fatalf("bob keygen: %v", err)
	}
	if !bytes.Equal(bobPK, bobPKWant) {
		t.Errorf("bob pubkey = %x, want %x", bobPK, bobPKWant)
	}

	aliceShared := make([]byte, X448Size)
	bobShared := make([]byte, X448Size)
	if err := X448Shared(aliceShared, aliceSK, bobPK); err != nil {
		t.Fatalf("alice shared: %v", err)
	}
	if err := X448Shared(bobShared, bobSK, alicePK); err != nil {
		t.Fatalf("bob shared: %v", err)
	}
	if !bytes.Equal(aliceShared, wantShared) {
		t.Errorf("alice shared = %x, want %x", aliceShared, wantShared)
	}
	if !bytes.Equal(bobShared, wantShared) {
		t.Errorf("bob shared = %x, want %x", bobShared, wantShared)
	}
}

func TestX448IteratedLadder(t *testing.T) {
	want1 := hexBytes(t, "3f482c8a9f19b01e6c46ee9711d9dc14fd4bf67af30765c2ae2b846a4d23a8cd0db897086239492caf350b51f833868b9bc2b3bca9cf4113")
	want1000 := hexBytes(t, "aa3b4749d55b9daf1e5b00288826c467274ce3ebbdd5c17b975e09d4af6c67cf10d087202db88286e2b79fceea3ec353ef54faa26e219f38")

	var u, k [X448Size]byte
	u[0], k[0] = 5, 5

	r := make([]byte, X448Size)
	if err := X448Shared(r, k[:], u[:]); err != nil {
		t.Fatalf("shared: %v", err)
	}
	if !bytes.Equal(r, want1) {
		t.Fatalf("after 1 iteration: got %x, want %x", r, want1)
	}

	copy(u[:], k[:])
	copy(k[:], r)
	for i := 1; i < 1000; i++ {
		if err := X448Shared(r, k[:], u[:]); err != nil {
			t.Fatalf("shared at iteration %d: %v", i, err)
		}
		copy(u[:], k[:])
		copy(k[:], r)
	}
	if !bytes.Equal(k[:], want1000) {
		t.Errorf("after 1000 iterations: got %x, want %x", k, want1000)
	}
}

func TestX448KeyGenRoundTrip(t *testing.T) {
	var priv, pub [X448Size]byte
	if err := X448KeyGen(priv[:], pub[:]); err != nil {
		t.Fatalf("keygen: %v", err)
	}
	if bytes.Equal(pub[:], make([]byte, X448Size)) {
		t.Fatal("public key is all zero")
	}

	clamped := priv
	clamp448(&clamped)
	if clamped[0]&0x03 != 0 {
		t.Error("low bits of clamped scalar not cleared")
	}
	if clamped[55]&0x80 == 0 {
		t.Error("high bit of clamped scalar not set")
	}
}

func TestX448SharedAliasing(t *testing.T) {
	var priv, pub [X448Size]byte
	if err := X448KeyGen(priv[:], pub[:]); err != nil {
		t.Fatalf("keygen: %v", err)
	}

	want := make([]byte, X448Size)
	if err := X448Shared(want, priv[:], x448BasePoint[:]); err != nil {
		t.Fatalf("shared: %v", err)
	}

	buf := make([]byte, X448Size)
	copy(buf, priv[:])
	if err := X448Shared(buf, buf, x448BasePoint[:]); err != nil {
		t.Fatalf("aliased shared: %v", err)
	}
	if !bytes.Equal(buf, want) {
		t.Errorf("aliased call diverged: got %x, want %x", buf, want)
	}
}

func TestX448BadLength(t *testing.T) {
	var ok [X448Size]byte
	short := make([]byte, X448Size-1)

	if err := X448Shared(short, ok[:], ok[:]); err == nil {
		t.Error("expected error for short out buffer")
	}
	if err := X448Shared(ok[:], short, ok[:]); err == nil {
		t.Error("expected error for short priv buffer")
	}
	if err := X448Shared(ok[:], ok[:], short); err == nil {
		t.Error("expected error for short peer buffer")
	}
}
