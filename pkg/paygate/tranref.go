package paygate

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// A transaction reference encodes the campaign and donor so that a gateway
// callback alone is enough to recover both. Format:
//
//	<campaign uuid>_<donor uuid>_<8 hex chars>
//
// UUIDs never contain underscores, so splitting on "_" is unambiguous.

// NewTranRef builds a globally unique transaction reference.
func NewTranRef(campaignID, donorID uuid.UUID) string {
	var nonce [4]byte
	_, _ = rand.Read(nonce[:])
	return fmt.Sprintf("%s_%s_%s", campaignID, donorID, hex.EncodeToString(nonce[:]))
}

// ParseTranRef recovers the campaign and donor identity from a reference.
func ParseTranRef(ref string) (campaignID, donorID uuid.UUID, err error) {
	parts := strings.Split(ref, "_")
	if len(parts) != 3 {
		return uuid.Nil, uuid.Nil, fmt.Errorf("malformed transaction reference %q", ref)
	}

	campaignID, err = uuid.Parse(parts[0])
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("malformed campaign id in transaction reference: %w", err)
	}

	donorID, err = uuid.Parse(parts[1])
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("malformed donor id in transaction reference: %w", err)
	}

	return campaignID, donorID, nil
}

// IsSuccessStatus reports whether a gateway-reported status counts as a
// settled payment. The gateway is inconsistent about casing and whitespace.
func IsSuccessStatus(status string) bool {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case "VALID", "SUCCESS":
		return true
	}
	return false
}
