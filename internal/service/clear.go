package service

import (
	"time"

	"github.com/fernet/fernet-go"

	"github.com/kvargasm/Budget-Tracker-Backend/internal/apperrors"
)

const clearTokenMessage = "clear-all"

// ClearGuard issues and verifies the short-lived tokens that gate the
// destructive clear-all operation. A caller first requests a token, then
// presents it back within the TTL to confirm.
type ClearGuard struct {
	key *fernet.Key
	ttl time.Duration
}

func NewClearGuard(encodedKey string, ttl time.Duration) (*ClearGuard, error) {
	key, err := fernet.DecodeKey(encodedKey)
	if err != nil {
		return nil, err
	}
	return &ClearGuard{key: key, ttl: ttl}, nil
}

// NewClearGuardWithKey generates a fresh key. Used when no key is
// configured; tokens then only survive within one process lifetime, which
// is all the confirmation flow needs.
func NewClearGuardWithKey(ttl time.Duration) (*ClearGuard, error) {
	var key fernet.Key
	if err := key.Generate(); err != nil {
		return nil, err
	}
	return &ClearGuard{key: &key, ttl: ttl}, nil
}

// IssueToken returns a signed confirmation token valid for the guard's TTL.
func (g *ClearGuard) IssueToken() (string, error) {
	tok, err := fernet.EncryptAndSign([]byte(clearTokenMessage), g.key)
	if err != nil {
		return "", err
	}
	return string(tok), nil
}

// VerifyToken checks the signature, the TTL, and the embedded message.
func (g *ClearGuard) VerifyToken(token string) error {
	msg := fernet.VerifyAndDecrypt([]byte(token), g.ttl, []*fernet.Key{g.key})
	if string(msg) != clearTokenMessage {
		return apperrors.ErrInvalidConfirmation
	}
	return nil
}

// RequestClearAll starts the destructive clear flow and returns the token
// the caller must echo back to confirm.
func (s *StateService) RequestClearAll(guard *ClearGuard) (string, error) {
	return guard.IssueToken()
}

// ConfirmClearAll verifies the token and, if valid, empties all
// collections. An expired or tampered token leaves the state untouched.
func (s *StateService) ConfirmClearAll(guard *ClearGuard, token string) error {
	if err := guard.VerifyToken(token); err != nil {
		return err
	}
	s.clearAll()
	return nil
}
