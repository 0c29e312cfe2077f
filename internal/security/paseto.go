package security

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/o1egl/paseto"
)

const symmetricKeySize = 32

// PasetoMaker is a PASETO v2 local token maker.
type PasetoMaker struct {
	paseto       *paseto.V2
	symmetricKey []byte
}

// NewPasetoMaker returns a Maker backed by a 32-byte symmetric key.
func NewPasetoMaker(symmetricKey string) (Maker, error) {
	if len(symmetricKey) != symmetricKeySize {
		return nil, errors.New("invalid key size: must be exactly 32 characters")
	}

	maker := &PasetoMaker{
		paseto:       paseto.NewV2(),
		symmetricKey: []byte(symmetricKey),
	}
	return maker, nil
}

// CreateToken creates a new token for a specific user and duration
func (m *PasetoMaker) CreateToken(userID uuid.UUID, duration time.Duration, version int64, scope string) (string, *Payload, error) {
	payload, err := NewPayload(userID, duration, version, scope)
	if err != nil {
		return "", nil, err
	}

	token, err := m.paseto.Encrypt(m.symmetricKey, payload, nil)
	return token, payload, err
}

// VerifyToken checks if the token is valid or not
func (m *PasetoMaker) VerifyToken(token string) (*Payload, error) {
	payload := &Payload{}

	err := m.paseto.Decrypt(token, m.symmetricKey, payload, nil)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if err := payload.Valid(); err != nil {
		return nil, err
	}

	return payload, nil
}
