// Package ecies implements hybrid public-key encryption over an arbitrary
// elliptic curve group: ephemeral elliptic-curve key agreement composed
// with AES-256-GCM.
//
// A sender enciphers a byte payload to a recipient identified only by a
// public point; the holder of the matching private scalar recovers it.
// No pre-shared key is needed, and tampering with any part of the output
// is detected on decryption.
//
// # Scheme
//
// Encryption runs in four steps:
//
//  1. Sample a one-time ephemeral scalar r and point R = r*G, rejecting
//     degenerate candidates ([GenerateEphemeral]).
//  2. Derive a 32-byte symmetric key as SHA-256 of the x-coordinate of
//     r*P, where P is the recipient's public point ([DeriveEncryptKey]).
//  3. Seal the message with AES-256-GCM under a fresh random nonce.
//  4. Emit the envelope R ∥ nonce ∥ ciphertext ∥ tag.
//
// Decryption inverts this: the recipient derives the same key from
// d*R = d*(r*G) = r*(d*G) = r*P, since scalar multiplication commutes in
// the exponent, then opens the ciphertext ([DeriveDecryptKey], [Decrypt]).
//
// # Envelope Format
//
//	offset 0   33 bytes  compressed ephemeral point (0x02/0x03 ∥ x)
//	offset 33  12 bytes  AES-GCM nonce
//	offset 45  n bytes   ciphertext, same length as the message
//	offset 45+n 16 bytes authentication tag
//
// The envelope is self-describing; no external length metadata is needed.
//
// # Errors
//
// Malformed input (truncated envelope, bad point prefix, undecodable
// point, point at infinity) fails with an error wrapping [ErrInvalidInput]
// before any cryptographic output is produced. A failed tag verification
// is returned as [aead.ErrAuthentication]; a wrong key and corrupted
// ciphertext are deliberately indistinguishable.
//
// # Security Considerations
//
// All randomness, for scalar sampling and for nonces alike, comes from
// crypto/rand. Derived keys and shared-secret coordinates are wiped before
// the functions return. Every call is a pure function of its inputs with
// no shared state, so concurrent use with independent inputs is safe.
package ecies
