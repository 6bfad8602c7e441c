// Package commands defines the ecx CLI.
//
// Commands
//
//   - keygen   Generate a secp256k1 key pair and print it as hex
//   - encrypt  Encrypt a file or stdin to a compressed public point
//   - decrypt  Decrypt a base64 envelope with a private key
//
// # Implementation
//
// Each subcommand is a thin wrapper over the ecies package with hex keys
// and base64 envelopes on the wire. Private key bytes decoded from flags
// are wiped once the scalar is constructed.
package commands
