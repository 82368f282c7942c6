// Package password implements the credential hashing engine: salted key
// derivation, constant-time verification, strength validation, secure random
// password generation, and guaranteed wiping of secret buffers.
//
// # Derivation scheme
//
// Keys are derived with PBKDF2-HMAC-SHA-256 using 100000 iterations, a
// 16-byte salt, and a 32-byte (256-bit) output. The parameters are fixed
// engine constants, not caller options, so a misconfigured caller cannot
// weaken derived keys. Same (password, salt) always yields the same key; the
// salt is stored alongside the derived key and generated fresh per credential.
//
// # Secret buffer lifecycle
//
// Every operation that consumes a password buffer wipes it before returning,
// on success and on error alike. Callers that need the password afterwards
// must copy it first; package secure provides a protected container for such
// retained copies. The engine borrows buffers only for the duration of one
// call and never keeps a reference.
//
// # Concurrency
//
// All operations are stateless apart from reads of the process-wide
// crypto/rand source, which is safe for concurrent use. Key derivation is
// CPU-bound and intentionally slow (tens of milliseconds per call); schedule
// it off latency-critical paths, for example on a DerivationPool.
//
// # What this package must NOT do
//
//   - Store or transport credentials - callers own persistence.
//   - Log secret material or derivation errors - errors are returned, never
//     logged or swallowed.
//   - Inspect credential identity semantics - it only sees raw buffers.
package password
