package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyHasher owns everything the server knows about API keys.
// It does not know about users, storage or transport.
//
// Flow:
//
//	key     = GenerateKey()          returned to the user exactly once
//	encoded = Hash(key)              persisted next to the username
//	ok      = Compare(encoded, key)  on every gated request
type KeyHasher interface {
	// GenerateKey returns a fresh 128-bit secret encoded as 32 lowercase hex
	// characters.
	GenerateKey() (string, error)

	// Hash derives a salted hash of key and returns it in the self-describing
	// form "pbkdf2:sha256:<iterations>$<salt-hex>$<hash-hex>".
	Hash(key string) (string, error)

	// Compare reports whether key matches the encoded hash produced by Hash.
	// A malformed encoded value yields false and [ErrMalformedHash].
	Compare(encoded, key string) (bool, error)
}
