// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

const testHashKey = "test-secret-key"

func TestHashString_MatchesHMAC(t *testing.T) {
	got := HashString("session-token", testHashKey)

	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write([]byte("session-token"))
	want := hex.EncodeToString(mac.Sum(nil))

	if got != want {
		t.Errorf("HashString mismatch:\n  got:  %s\n  want: %s", got, want)
	}
}

func TestHashString_Deterministic(t *testing.T) {
	if HashString("a", testHashKey) != HashString("a", testHashKey) {
		t.Fatal("hash must be deterministic for the same input")
	}
}

// TestHashString_DifferentInputs checks that tokens and keys both change the digest.
func TestHashString_DifferentInputs(t *testing.T) {
	base := HashString("token-1", testHashKey)

	if base == HashString("token-2", testHashKey) {
		t.Error("different tokens must produce different hashes")
	}
	if base == HashString("token-1", "other-key") {
		t.Error("different keys must produce different hashes")
	}
	if len(base) != sha256.Size*2 {
		t.Errorf("expected hex digest of length %d, got %d", sha256.Size*2, len(base))
	}
}
