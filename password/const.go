package password

// Fixed engine parameters for key derivation and password policy.
//
// These values are deliberately not caller-configurable. Exposing iteration
// count or key length as options would allow a misconfigured caller to weaken
// every derived key, so the engine pins them at compile time.
const (
	// Iterations is the PBKDF2 iteration count. 100000 iterations of
	// HMAC-SHA-256 makes each derivation cost tens of milliseconds on current
	// hardware, which is the point: brute-force search pays the same price
	// per guess.
	Iterations = 100000

	// KeyLength is the derived key size in bytes (256 bits).
	KeyLength = 32

	// SaltLength is the salt size in bytes. Salts are random, per-credential,
	// and stored alongside the derived key. They are not secret but must not
	// be reused across unrelated derivations.
	SaltLength = 16

	// MinPasswordLength is the minimum accepted password length for both the
	// strength policy and the generator.
	MinPasswordLength = 8

	// DefaultPasswordLength is the length used by GenerateDefaultPassword.
	DefaultPasswordLength = 16
)

// Character classes used by the password generator.
//
// SpecialChars is the exact set the generator draws specials from. The
// strength policy is broader: any character that is neither a letter nor a
// digit counts as special.
const (
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	DigitChars     = "0123456789"
	SpecialChars   = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

const allChars = UppercaseChars + LowercaseChars + DigitChars + SpecialChars
