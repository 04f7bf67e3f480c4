package domain

import "testing"

func TestPairKeySymmetric(t *testing.T) {
	if PairKey("alice", "bob") != PairKey("bob", "alice") {
		t.Fatalf("pair key must not depend on argument order")
	}
	if PairKey("alice", "bob") != "alice:bob" {
		t.Fatalf("unexpected key: %s", PairKey("alice", "bob"))
	}
}

func TestPairKeyDistinctPairs(t *testing.T) {
	if PairKey("alice", "bob") == PairKey("alice", "carol") {
		t.Fatalf("distinct pairs must produce distinct keys")
	}
}

func TestOtherSide(t *testing.T) {
	f := Friendship{RequesterID: "u1", RecipientID: "u2"}
	if got := f.OtherSide("u1"); got != "u2" {
		t.Fatalf("expected u2, got %s", got)
	}
	if got := f.OtherSide("u2"); got != "u1" {
		t.Fatalf("expected u1, got %s", got)
	}
}
