// file: internals/helpers/password.go
package helper

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/argon2"
)

/* ===============================
   Argon2id credential hashing
=================================*/

// Parameters follow the argon2id defaults the original deployment used.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	argonSaltLen = 16
)

var ErrHashMismatch = errors.New("credential does not match stored hash")

// HashPassword returns a PHC-formatted argon2id hash.
func HashPassword(plain string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key := argon2.IDKey([]byte(plain), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// CheckPasswordHash verifies plain against an encoded argon2id hash using a
// constant-time comparison. Returns ErrHashMismatch on failure.
func CheckPasswordHash(encoded, plain string) error {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return errors.New("unsupported hash format")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return err
	}
	var mem uint32
	var iters uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return err
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return err
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return err
	}

	got := argon2.IDKey([]byte(plain), salt, iters, mem, par, uint32(len(want)))
	if subtle.ConstantTimeCompare(got, want) != 1 {
		return ErrHashMismatch
	}
	return nil
}

/* ===============================
   Generated credentials
=================================*/

const (
	pwUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	pwLowercase = "abcdefghijklmnopqrstuvwxyz"
	pwNumbers   = "0123456789"
	pwSymbols   = "!@#$%^&*()_+{}[]"
)

// GenerateRandomPassword builds a random password guaranteed to contain at
// least one character of each class, shuffled.
func GenerateRandomPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}
	all := pwUppercase + pwLowercase + pwNumbers + pwSymbols

	chars := make([]byte, 0, length)
	for _, set := range []string{pwUppercase, pwLowercase, pwNumbers, pwSymbols} {
		ch, err := pickChar(set)
		if err != nil {
			return "", err
		}
		chars = append(chars, ch)
	}
	for len(chars) < length {
		ch, err := pickChar(all)
		if err != nil {
			return "", err
		}
		chars = append(chars, ch)
	}

	// Fisher-Yates so the required classes are not always at the front.
	for i := len(chars) - 1; i > 0; i-- {
		jBig, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", err
		}
		j := int(jBig.Int64())
		chars[i], chars[j] = chars[j], chars[i]
	}
	return string(chars), nil
}

func pickChar(set string) (byte, error) {
	idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, err
	}
	return set[idx.Int64()], nil
}
