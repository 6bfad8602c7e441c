// Package aead wraps AES-256-GCM with explicit length contracts and a
// split ciphertext/tag API.
//
// The hybrid encryption envelope stores the GCM authentication tag as its
// own trailing field, so [Seal] returns ciphertext and tag separately and
// [Open] accepts them separately, rather than using the concatenated form
// the standard library produces.
//
// Key, nonce, and tag lengths are fixed at 32, 12, and 16 bytes and are
// validated before the primitive is invoked; violations return
// [ErrInvalidLength]. A failed tag verification returns [ErrAuthentication]
// and never releases plaintext. Wrong key, wrong additional data, and
// tampered input are deliberately indistinguishable to avoid acting as a
// decryption oracle.
package aead
