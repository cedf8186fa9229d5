package codec

import (
	"context"
	"crypto/rand"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/crypto/scrypt"
)

// Keychain supplies the symmetric key used by the secure-file codec.
// Implementations decide where the key material comes from; the store
// only ever sees the derived key.
type Keychain interface {
	Key(ctx context.Context) ([]byte, error)
}

// Static is a keychain holding raw key bytes.
type Static struct {
	key []byte
}

// NewStatic wraps raw key material. The key must be exactly KeySize bytes.
func NewStatic(key []byte) (*Static, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("static key must be %d bytes, got %d", KeySize, len(key))
	}
	k := make([]byte, KeySize)
	copy(k, key)
	return &Static{key: k}, nil
}

// Key implements Keychain.
func (s *Static) Key(ctx context.Context) ([]byte, error) {
	return s.key, nil
}

const saltSize = 16

// scrypt cost parameters. Changing them changes the derived key, so
// existing secure files would stop decrypting.
const (
	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

// Passphrase derives the key from a user passphrase via scrypt. The
// random salt is generated once per install and persisted next to the
// documents it protects.
type Passphrase struct {
	mu         sync.Mutex
	passphrase []byte
	saltPath   string
	derived    []byte
}

// NewPassphrase creates a passphrase keychain. saltPath is where the
// per-install salt lives; it is created on first use.
func NewPassphrase(passphrase, saltPath string) *Passphrase {
	return &Passphrase{
		passphrase: []byte(passphrase),
		saltPath:   saltPath,
	}
}

// Key derives (and caches) the AES key. Derivation is CPU-bound; it
// runs at most once per process.
func (p *Passphrase) Key(ctx context.Context) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.derived != nil {
		return p.derived, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	salt, err := p.loadOrCreateSalt()
	if err != nil {
		return nil, err
	}

	key, err := scrypt.Key(p.passphrase, salt, scryptN, scryptR, scryptP, KeySize)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	p.derived = key
	return key, nil
}

func (p *Passphrase) loadOrCreateSalt() ([]byte, error) {
	salt, err := os.ReadFile(p.saltPath)
	if err == nil {
		if len(salt) != saltSize {
			return nil, fmt.Errorf("salt file %s is corrupt", p.saltPath)
		}
		return salt, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read salt file: %w", err)
	}

	salt = make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	if err := os.WriteFile(p.saltPath, salt, 0600); err != nil {
		return nil, fmt.Errorf("failed to write salt file: %w", err)
	}
	return salt, nil
}

// LoadKeyFile builds a keychain from a key file. A file of exactly
// KeySize bytes is used as a raw key; anything else is treated as a
// passphrase, with the salt stored alongside the key file.
func LoadKeyFile(path string) (Keychain, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}
	if len(data) == KeySize {
		return NewStatic(data)
	}
	pass := strings.TrimSpace(string(data))
	if pass == "" {
		return nil, fmt.Errorf("key file %s is empty", path)
	}
	return NewPassphrase(pass, path+".salt"), nil
}
