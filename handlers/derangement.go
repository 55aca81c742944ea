// Copyright (c) 2026 Lucas Pereira.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"math/rand"
)

// maxShuffleAttempts bounds the reject-and-reshuffle loop. The probability
// that a uniform random permutation is a derangement approaches 1/e, so in
// practice a handful of attempts suffice; the ceiling only guards against
// an unbounded loop.
const maxShuffleAttempts = 100

var (
	// ErrTooFewCandidates means a derangement is impossible: fewer than
	// two unmatched participants
	ErrTooFewCandidates = errors.New("at least 2 unmatched participants are required")

	// ErrNoDerangement means the shuffle loop hit its attempt ceiling
	ErrNoDerangement = errors.New("failed to find a valid assignment")
)

// Derange maps each candidate ID to a distinct other candidate ID, forming
// a permutation of the candidate set with no fixed points. The result is
// uniform over all derangements of the set. The caller supplies the random
// source so tests can seed it.
func Derange(candidates []string, rng *rand.Rand) (map[string]string, error) {
	n := len(candidates)
	if n < 2 {
		return nil, ErrTooFewCandidates
	}

	// n == 2 has exactly one derangement: the swap. Return it directly
	// instead of relying on the shuffle loop to find it.
	if n == 2 {
		return map[string]string{
			candidates[0]: candidates[1],
			candidates[1]: candidates[0],
		}, nil
	}

	perm := make([]string, n)
	copy(perm, candidates)

	for attempt := 0; attempt < maxShuffleAttempts; attempt++ {
		rng.Shuffle(n, func(i, j int) {
			perm[i], perm[j] = perm[j], perm[i]
		})

		// Any fixed point rejects the whole permutation. Patching it with
		// a local swap would skew the distribution away from uniform.
		if hasFixedPoint(candidates, perm) {
			continue
		}

		result := make(map[string]string, n)
		for i, id := range candidates {
			result[id] = perm[i]
		}
		return result, nil
	}

	return nil, ErrNoDerangement
}

func hasFixedPoint(candidates, perm []string) bool {
	for i := range candidates {
		if perm[i] == candidates[i] {
			return true
		}
	}
	return false
}
