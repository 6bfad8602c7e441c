package aead

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// Known-answer vectors for AES-256-GCM with an all-zero key and nonce,
// from the GCM specification's validation set.
func TestKnownVectors(t *testing.T) {
	key := make([]byte, KeySize)
	nonce := make([]byte, NonceSize)

	t.Run("EmptyPlaintext", func(t *testing.T) {
		ciphertext, tag, err := Seal(nil, key, nonce, nil)
		if err != nil {
			t.Fatal(err)
		}
		if len(ciphertext) != 0 {
			t.Errorf("ciphertext length = %d, want 0", len(ciphertext))
		}
		if want := mustHex(t, "530f8afbc74536b9a963b4f1c4cb738b"); !bytes.Equal(tag, want) {
			t.Errorf("tag = %x, want %x", tag, want)
		}
	})

	t.Run("ZeroBlock", func(t *testing.T) {
		plaintext := make([]byte, 16)
		ciphertext, tag, err := Seal(plaintext, key, nonce, nil)
		if err != nil {
			t.Fatal(err)
		}
		if want := mustHex(t, "cea7403d4d606b6e074ec5d3baf39d18"); !bytes.Equal(ciphertext, want) {
			t.Errorf("ciphertext = %x, want %x", ciphertext, want)
		}
		if want := mustHex(t, "d0d1c8a799996bf0265b98b5d48ab919"); !bytes.Equal(tag, want) {
			t.Errorf("tag = %x, want %x", tag, want)
		}

		recovered, err := Open(nonce, ciphertext, tag, key, nil)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(recovered, plaintext) {
			t.Error("recovered plaintext differs")
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		ct1, tag1, err := Seal([]byte("fixed input"), key, nonce, nil)
		if err != nil {
			t.Fatal(err)
		}
		ct2, tag2, err := Seal([]byte("fixed input"), key, nonce, nil)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(ct1, ct2) || !bytes.Equal(tag1, tag2) {
			t.Error("same key, nonce, and plaintext produced different output")
		}
	})
}

func TestAdditionalData(t *testing.T) {
	key := make([]byte, KeySize)
	nonce := make([]byte, NonceSize)
	plaintext := []byte("payload")

	ciphertext, tag, err := Seal(plaintext, key, nonce, []byte("header"))
	if err != nil {
		t.Fatal(err)
	}

	t.Run("Match", func(t *testing.T) {
		recovered, err := Open(nonce, ciphertext, tag, key, []byte("header"))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(recovered, plaintext) {
			t.Error("recovered plaintext differs")
		}
	})

	t.Run("Mismatch", func(t *testing.T) {
		if _, err := Open(nonce, ciphertext, tag, key, []byte("othered")); !errors.Is(err, ErrAuthentication) {
			t.Errorf("got %v, want ErrAuthentication", err)
		}
	})

	t.Run("Dropped", func(t *testing.T) {
		if _, err := Open(nonce, ciphertext, tag, key, nil); !errors.Is(err, ErrAuthentication) {
			t.Errorf("got %v, want ErrAuthentication", err)
		}
	})
}

func TestLengthContracts(t *testing.T) {
	key := make([]byte, KeySize)
	nonce := make([]byte, NonceSize)
	tag := make([]byte, TagSize)

	t.Run("SealBadKey", func(t *testing.T) {
		if _, _, err := Seal(nil, key[:31], nonce, nil); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("got %v, want ErrInvalidLength", err)
		}
	})
	t.Run("SealBadNonce", func(t *testing.T) {
		if _, _, err := Seal(nil, key, nonce[:11], nil); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("got %v, want ErrInvalidLength", err)
		}
	})
	t.Run("OpenBadKey", func(t *testing.T) {
		if _, err := Open(nonce, nil, tag, key[:16], nil); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("got %v, want ErrInvalidLength", err)
		}
	})
	t.Run("OpenBadNonce", func(t *testing.T) {
		if _, err := Open(nonce[:8], nil, tag, key, nil); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("got %v, want ErrInvalidLength", err)
		}
	})
	t.Run("OpenBadTag", func(t *testing.T) {
		if _, err := Open(nonce, nil, tag[:12], key, nil); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("got %v, want ErrInvalidLength", err)
		}
	})
}

func TestCiphertextLength(t *testing.T) {
	key := make([]byte, KeySize)
	nonce := make([]byte, NonceSize)
	for _, n := range []int{0, 1, 15, 16, 17, 1000} {
		ciphertext, tag, err := Seal(make([]byte, n), key, nonce, nil)
		if err != nil {
			t.Fatal(err)
		}
		if len(ciphertext) != n {
			t.Errorf("ciphertext length = %d, want %d", len(ciphertext), n)
		}
		if len(tag) != TagSize {
			t.Errorf("tag length = %d, want %d", len(tag), TagSize)
		}
	}
}
