package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns all vault cryptography. It knows nothing about files,
// envelopes or notes: its only job is to turn a password into a key and to
// seal or open a byte payload under that key.
//
// Scheme:
//
//	Salt, Nonce = GenerateSalt() + GenerateNonce()   (step 1, fresh per write)
//	Key         = DeriveKey(password, Salt)           (step 2)
//	Ciphertext  = Encrypt(plaintext, Key, Nonce)      (step 3)
//	Plaintext   = Decrypt(Ciphertext, Key, Nonce)     (reverse)
type KeyChainService interface {
	// GenerateSalt returns 16 random bytes. The salt is not a secret and is
	// stored next to the ciphertext in the envelope.
	GenerateSalt() ([]byte, error)

	// GenerateNonce returns 24 random bytes for a single encryption. The
	// extended nonce size makes random generation safe without a counter.
	GenerateNonce() ([]byte, error)

	// DeriveKey derives a 32-byte key from password and salt with Argon2id.
	// Identical inputs always give the same key. A wrong password is not an
	// error here; it surfaces later as an authentication failure.
	DeriveKey(password string, salt []byte) ([]byte, error)

	// Encrypt seals plaintext with XChaCha20-Poly1305. The 16-byte tag is
	// appended to the returned ciphertext.
	Encrypt(plaintext, key, nonce []byte) ([]byte, error)

	// Decrypt opens ciphertext produced by Encrypt. A tag mismatch returns
	// [ErrAuthentication] and never a partially decrypted plaintext.
	Decrypt(ciphertext, key, nonce []byte) ([]byte, error)
}
