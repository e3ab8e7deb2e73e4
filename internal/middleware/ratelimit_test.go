package middleware

import "testing"

func TestTokenBucketExhaustion(t *testing.T) {
	limiter := NewTokenBucket(3, 3)

	for i := 0; i < 3; i++ {
		if !limiter.allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if limiter.allow("10.0.0.1") {
		t.Fatal("request over capacity should be denied")
	}
}

func TestTokenBucketPerClientIsolation(t *testing.T) {
	limiter := NewTokenBucket(1, 1)

	if !limiter.allow("10.0.0.1") {
		t.Fatal("first client should be allowed")
	}
	if !limiter.allow("10.0.0.2") {
		t.Fatal("second client should have its own bucket")
	}
	if limiter.allow("10.0.0.1") {
		t.Fatal("first client should be exhausted")
	}
}

func TestTokenBucketDefaultCapacity(t *testing.T) {
	limiter := NewTokenBucket(0, 5)
	if limiter.capacity != 5 {
		t.Errorf("capacity = %d, want 5", limiter.capacity)
	}
}
