// Package codegen produces the short public wager codes and the ledger
// references used as idempotency tokens.
package codegen

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

// Ambiguous glyphs (0/O, 1/l/I) are excluded so codes survive being read
// aloud or retyped.
const wagerIDAlphabet = "abcdefghjkmnpqrstuvwxyzABCDEFGHJKMNPQRSTUVWXYZ23456789"

const wagerIDLength = 8

func WagerID() string {
	b := make([]byte, wagerIDLength)
	max := big.NewInt(int64(len(wagerIDAlphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			panic(err)
		}
		b[i] = wagerIDAlphabet[n.Int64()]
	}
	return string(b)
}

// Reference returns a 32-char idempotency token for internally initiated
// ledger entries. Externally initiated entries (payment processor callbacks)
// carry the processor's own reference instead.
func Reference() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
