// Copyright (c) 2026 Lucas Pereira.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"math/rand"
	"testing"
)

func newTestRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func makeCandidates(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("p%02d", i)
	}
	return ids
}

// assertDerangement checks the result is a fixed-point-free bijection on
// exactly the candidate set
func assertDerangement(t *testing.T, candidates []string, result map[string]string) {
	t.Helper()

	if len(result) != len(candidates) {
		t.Fatalf("Expected %d assignments, got %d", len(candidates), len(result))
	}

	inSet := make(map[string]bool, len(candidates))
	for _, id := range candidates {
		inSet[id] = true
	}

	seen := make(map[string]bool, len(result))
	for giver, recipient := range result {
		if !inSet[giver] {
			t.Errorf("Giver %s is not a candidate", giver)
		}
		if !inSet[recipient] {
			t.Errorf("Recipient %s is not a candidate", recipient)
		}
		if giver == recipient {
			t.Errorf("Self-match for %s", giver)
		}
		if seen[recipient] {
			t.Errorf("Recipient %s assigned twice", recipient)
		}
		seen[recipient] = true
	}
}

func TestDerange_TooFewCandidates(t *testing.T) {
	rng := newTestRand(1)

	if _, err := Derange(nil, rng); err != ErrTooFewCandidates {
		t.Errorf("Expected ErrTooFewCandidates for empty set, got %v", err)
	}

	if _, err := Derange([]string{"only"}, rng); err != ErrTooFewCandidates {
		t.Errorf("Expected ErrTooFewCandidates for singleton, got %v", err)
	}
}

func TestDerange_TwoCandidatesIsSwap(t *testing.T) {
	// Exactly one derangement exists for n == 2; any seed must return it
	for seed := int64(0); seed < 10; seed++ {
		result, err := Derange([]string{"a", "b"}, newTestRand(seed))
		if err != nil {
			t.Fatalf("Derange failed for n=2: %v", err)
		}
		if result["a"] != "b" || result["b"] != "a" {
			t.Fatalf("Expected the swap {a:b, b:a}, got %v", result)
		}
	}
}

func TestDerange_Property(t *testing.T) {
	sizes := []int{3, 4, 5, 8, 20, 100}

	for _, n := range sizes {
		candidates := makeCandidates(n)
		for seed := int64(0); seed < 50; seed++ {
			result, err := Derange(candidates, newTestRand(seed))
			if err != nil {
				t.Fatalf("Derange failed for n=%d seed=%d: %v", n, seed, err)
			}
			assertDerangement(t, candidates, result)
		}
	}
}

func TestDerange_Deterministic(t *testing.T) {
	candidates := makeCandidates(10)

	r1, err := Derange(candidates, newTestRand(42))
	if err != nil {
		t.Fatal(err)
	}
	r2, err := Derange(candidates, newTestRand(42))
	if err != nil {
		t.Fatal(err)
	}

	for giver, recipient := range r1 {
		if r2[giver] != recipient {
			t.Fatalf("Same seed should produce same assignment: %s -> %s vs %s", giver, recipient, r2[giver])
		}
	}
}

func TestDerange_DoesNotMutateInput(t *testing.T) {
	candidates := makeCandidates(5)
	original := make([]string, len(candidates))
	copy(original, candidates)

	if _, err := Derange(candidates, newTestRand(7)); err != nil {
		t.Fatal(err)
	}

	for i := range candidates {
		if candidates[i] != original[i] {
			t.Fatalf("Input slice mutated at %d: %s != %s", i, candidates[i], original[i])
		}
	}
}

func TestDerange_ThreeCandidatesCoversBothDerangements(t *testing.T) {
	// n == 3 has exactly 2 derangements (the two 3-cycles); over many
	// seeds both should appear, or the sampling is not uniform
	candidates := []string{"a", "b", "c"}
	seenCycle1 := false // a->b->c->a
	seenCycle2 := false // a->c->b->a

	for seed := int64(0); seed < 200; seed++ {
		result, err := Derange(candidates, newTestRand(seed))
		if err != nil {
			t.Fatal(err)
		}
		if result["a"] == "b" {
			seenCycle1 = true
		} else {
			seenCycle2 = true
		}
	}

	if !seenCycle1 || !seenCycle2 {
		t.Errorf("Both derangements of 3 elements should appear across seeds: cycle1=%v cycle2=%v", seenCycle1, seenCycle2)
	}
}
