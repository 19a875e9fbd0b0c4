package deals

import (
	"testing"
	"time"
)

func TestImpressionKeyDistinctPerContext(t *testing.T) {
	a := impressionKey(1, "top_deals", "view-a")
	b := impressionKey(1, "top_deals", "view-b")
	c := impressionKey(1, "sidebar", "view-a")
	d := impressionKey(2, "top_deals", "view-a")

	keys := map[string]bool{a: true, b: true, c: true, d: true}
	if len(keys) != 4 {
		t.Fatalf("impression keys collide: %q %q %q %q", a, b, c, d)
	}

	if again := impressionKey(1, "top_deals", "view-a"); again != a {
		t.Fatalf("impression key not stable: %q vs %q", again, a)
	}
}

func TestClickTokenRoundTrip(t *testing.T) {
	key := "0123456789abcdef"
	issued := time.Unix(1700000000, 0)

	token, err := EncodeClickToken(ClickToken{ServiceID: 42, Placement: "top_deals", IssuedAt: issued}, key)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	decoded, err := DecodeClickToken(token, key)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if decoded.ServiceID != 42 {
		t.Fatalf("expected service 42, got %d", decoded.ServiceID)
	}
	if decoded.Placement != "top_deals" {
		t.Fatalf("expected placement top_deals, got %q", decoded.Placement)
	}
	if !decoded.IssuedAt.Equal(issued) {
		t.Fatalf("expected issued_at %v, got %v", issued, decoded.IssuedAt)
	}
}

func TestDecodeClickTokenGarbage(t *testing.T) {
	key := "0123456789abcdef"

	if _, err := DecodeClickToken("not-a-token", key); err == nil {
		t.Fatalf("expected error for garbage token")
	}
}
