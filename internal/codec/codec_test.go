package codec

import (
	"math"
	"testing"
	"time"
)

func TestRoundTrip(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	buf := Encode([]byte("hello"), 5*time.Second, now)

	value, status := Decode(buf, now.Add(2*time.Second))
	if status != OK {
		t.Fatalf("status = %v, want OK", status)
	}
	if string(value) != "hello" {
		t.Fatalf("value = %q, want %q", value, "hello")
	}
}

func TestNeverExpires(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	buf := Encode([]byte{}, 0, now)

	_, status := Decode(buf, now.Add(100*365*24*time.Hour))
	if status != OK {
		t.Fatalf("status = %v, want OK", status)
	}
}

func TestExpired(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	buf := Encode([]byte("v"), time.Second, now)

	_, status := Decode(buf, now.Add(2*time.Second))
	if status != Expired {
		t.Fatalf("status = %v, want Expired", status)
	}
}

func TestExpiresAtBoundaryIsNotExpired(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	buf := Encode([]byte("v"), time.Second, now)

	// Decoding exactly at the expiration instant must still be a hit:
	// expiration is strictly-less-than: a deadline equal to now has not expired yet.
	_, status := Decode(buf, now.Add(time.Second))
	if status != OK {
		t.Fatalf("status = %v, want OK at the exact expiration boundary", status)
	}
}

func TestCorruptShortFile(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	for n := 0; n < HeaderSize; n++ {
		buf := make([]byte, n)
		_, status := Decode(buf, now)
		if status != Corrupt {
			t.Fatalf("len=%d: status = %v, want Corrupt", n, status)
		}
	}
}

func TestSaturatingExpiration(t *testing.T) {
	now := time.Unix(int64(math.MaxInt64/2), 0)
	buf := Encode([]byte("v"), time.Duration(math.MaxInt64), now)
	// Must not wrap around to a small/expired value.
	_, status := Decode(buf, now.Add(time.Second))
	if status != OK {
		t.Fatalf("status = %v, want OK (saturated, not wrapped)", status)
	}
}

func TestEmptyValue(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	buf := Encode(nil, 0, now)
	if len(buf) != HeaderSize {
		t.Fatalf("len(buf) = %d, want %d", len(buf), HeaderSize)
	}
	value, status := Decode(buf, now)
	if status != OK || len(value) != 0 {
		t.Fatalf("value=%v status=%v, want empty/OK", value, status)
	}
}
