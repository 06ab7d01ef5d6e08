// Package security computes password digests.
package security

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/umbreon222/Todo-List-Api/internal/model"
)

var _ model.PasswordHasher = (*SaltedSHA3)(nil)

// SaltedSHA3 hashes passwords as the hex encoded SHA3-256 of password followed by a process wide salt.
type SaltedSHA3 struct {
	salt string
}

func NewSaltedSHA3(salt string) *SaltedSHA3 {
	return &SaltedSHA3{salt: salt}
}

func (h *SaltedSHA3) Hash(password string) string {
	sum := sha3.Sum256([]byte(password + h.salt))
	return hex.EncodeToString(sum[:])
}
