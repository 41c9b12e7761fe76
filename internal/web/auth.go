// internal/web/auth.go
package web

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/argon2"
)

// Credentials is the single admin account the interface is guarded with.
// The password is stored as a salted Argon2id hash.
type Credentials struct {
	Username string
	Hash     string
	Salt     string
}

// NewCredentials hashes a plaintext password into admin credentials.
func NewCredentials(username, password string) (Credentials, error) {
	hash, salt, err := hashPassword(password)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{Username: username, Hash: hash, Salt: salt}, nil
}

// argonKey derives the password hash. Parameters follow the Argon2id
// recommendation for interactive logins.
func argonKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// hashPassword generates a salted Argon2id hash of the password.
func hashPassword(password string) (string, string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", "", err
	}

	hash := argonKey([]byte(password), salt)

	encodedHash := base64.StdEncoding.EncodeToString(hash)
	encodedSalt := base64.StdEncoding.EncodeToString(salt)

	return encodedHash, encodedSalt, nil
}

// verifyPassword compares a password with a salted hash.
func verifyPassword(password, salt, hash string) (bool, error) {
	decodedSalt, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return false, fmt.Errorf("failed to decode salt: %w", err)
	}

	decodedHash, err := base64.StdEncoding.DecodeString(hash)
	if err != nil {
		return false, fmt.Errorf("failed to decode hash: %w", err)
	}

	comparisonHash := argonKey([]byte(password), decodedSalt)

	return string(decodedHash) == string(comparisonHash), nil
}

// SessionStore keeps issued admin sessions in memory. Sessions do not
// survive a restart; an expired or unknown token just means logging in
// again.
type SessionStore struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	ttl    time.Duration
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		tokens: make(map[string]time.Time),
		ttl:    ttl,
	}
}

// Issue creates a new session token.
func (s *SessionStore) Issue() string {
	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = time.Now().Add(s.ttl)
	s.mu.Unlock()
	return token
}

// Valid reports whether the token belongs to a live session, dropping it
// if it has expired.
func (s *SessionStore) Valid(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.tokens[token]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(s.tokens, token)
		return false
	}
	return true
}

// Revoke ends the session.
func (s *SessionStore) Revoke(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}
