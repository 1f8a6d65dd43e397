package main

import "testing"

func TestEmbeddedX25519Vectors(t *testing.T) {
	for _, v := range x25519Vectors {
		t.Run(v.name, func(t *testing.T) {
			if err := v.run(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestEmbeddedX448Vectors(t *testing.T) {
	for _, v := range x448Vectors {
		t.Run(v.name, func(t *testing.T) {
			if err := v.run(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestIterated25519Short(t *testing.T) {
	if err := runIterated25519(1, want25519At1); err != nil {
		t.Error(err)
	}
	if err := runIterated25519(1000, want25519At1000); err != nil {
		t.Error(err)
	}
}

func TestIterated448Short(t *testing.T) {
	if err := runIterated448(1, want448At1); err != nil {
		t.Error(err)
	}
	if err := runIterated448(1000, want448At1000); err != nil {
		t.Error(err)
	}
}
