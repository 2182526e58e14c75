package id

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

// Generator creates opaque IDs for rows the service writes itself.
type Generator interface {
	NewID() (string, error)
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	v, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return v.String(), nil
}

const (
	InviteCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	InviteCodeLength   = 6
)

// CodeGenerator creates short human-enterable codes.
type CodeGenerator interface {
	NewCode() (string, error)
}

// InviteCodeGenerator draws InviteCodeLength characters from
// InviteCodeAlphabet with crypto/rand.
type InviteCodeGenerator struct{}

func NewInviteCodeGenerator() *InviteCodeGenerator {
	return &InviteCodeGenerator{}
}

func (g *InviteCodeGenerator) NewCode() (string, error) {
	alphabetSize := big.NewInt(int64(len(InviteCodeAlphabet)))
	buf := make([]byte, InviteCodeLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("read random index: %w", err)
		}
		buf[i] = InviteCodeAlphabet[n.Int64()]
	}
	return string(buf), nil
}
