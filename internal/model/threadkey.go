package model

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// DeriveThreadKey maps a conversation's participant ids (local member
// included) to a stable key: every member computes the same key no matter
// the ordering, and the ids are not recoverable from it. Ids are assumed
// already normalized (lowercase UUID form); no casing is applied here.
func DeriveThreadKey(participants []string) string {
	ids := append([]string(nil), participants...)
	sort.Strings(ids)
	sum := sha256.Sum256([]byte(strings.Join(ids, "-")))
	return hex.EncodeToString(sum[:])
}
