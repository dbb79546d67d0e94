package auth

import (
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/helpdesk/internal/domain"
)

var testEpoch = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	cases := []struct {
		userID string
		role   domain.Role
	}{
		{"user1-id", domain.RoleUser},
		{"agent1-id", domain.RoleAgent},
	}
	tm := NewTokenManager("test-secret", 60).WithClock(fixedClock(testEpoch))

	for _, tc := range cases {
		token, err := tm.Issue(tc.userID, tc.role)
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		if token == "" {
			t.Fatalf("expected non-empty token")
		}
		identity, err := tm.Verify(token)
		if err != nil {
			t.Fatalf("verify: %v", err)
		}
		if identity.UserID != tc.userID {
			t.Fatalf("expected user id %q, got %q", tc.userID, identity.UserID)
		}
		if identity.Role != tc.role {
			t.Fatalf("expected role %q, got %q", tc.role, identity.Role)
		}
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 60).WithClock(fixedClock(testEpoch))
	token, err := tm.Issue("user1-id", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := tm.WithClock(fixedClock(testEpoch.Add(59 * time.Minute))).Verify(token); err != nil {
		t.Fatalf("token should still be valid before expiry: %v", err)
	}
	if _, err := tm.WithClock(fixedClock(testEpoch.Add(61 * time.Minute))).Verify(token); err == nil {
		t.Fatalf("expected verification failure after expiry")
	}
}

func TestVerifyTamperedToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 60).WithClock(fixedClock(testEpoch))
	token, err := tm.Issue("user1-id", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected compact JWS with 3 parts, got %d", len(parts))
	}
	for i, label := range []string{"header", "payload", "signature"} {
		mutated := make([]string, 3)
		copy(mutated, parts)
		mutated[i] = flipChar(parts[i])
		if _, err := tm.Verify(strings.Join(mutated, ".")); err == nil {
			t.Fatalf("expected verification failure for altered %s", label)
		}
	}
}

func TestVerifyWrongKey(t *testing.T) {
	issuer := NewTokenManager("other-secret", 60).WithClock(fixedClock(testEpoch))
	token, err := issuer.Issue("user1-id", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	verifier := NewTokenManager("test-secret", 60).WithClock(fixedClock(testEpoch))
	if _, err := verifier.Verify(token); err == nil {
		t.Fatalf("expected verification failure for token signed with another key")
	}
}

func TestVerifyUnknownRole(t *testing.T) {
	secret := "test-secret"
	claims := jwt.MapClaims{
		"sub":  "user1-id",
		"role": "ADMIN",
		"iat":  testEpoch.Unix(),
		"exp":  testEpoch.Add(time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	tm := NewTokenManager(secret, 60).WithClock(fixedClock(testEpoch))
	if _, err := tm.Verify(raw); err == nil {
		t.Fatalf("expected unknown role to be a malformed-token failure")
	}
}

func TestVerifyMalformedToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	for _, token := range []string{"", "garbage", "a.b", "a.b.c"} {
		if _, err := tm.Verify(token); err == nil {
			t.Fatalf("expected failure for malformed token %q", token)
		}
	}
}

// flipChar swaps the first character for a different one so the segment no
// longer matches what was signed.
func flipChar(s string) string {
	if s == "" {
		return "x"
	}
	replacement := byte('A')
	if s[0] == 'A' {
		replacement = 'B'
	}
	return string(replacement) + s[1:]
}
