package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutcomeOf(t *testing.T) {
	cases := []struct {
		err  error
		want Outcome
	}{
		{err: nil, want: OutcomeSuccess},
		{err: fmt.Errorf("approve: %w", ErrBelowMinimum), want: OutcomeValidation},
		{err: fmt.Errorf("[repository/find] %w", ErrRecordNotFound), want: OutcomeNotFound},
		{err: ErrNotOwner, want: OutcomeForbidden},
		{err: ErrAlreadyProcessed, want: OutcomeConflict},
		{err: ErrDuplicateKey, want: OutcomeConflict},
		{err: ErrInsufficientPrincipal, want: OutcomeInsufficientFunds},
		{err: ErrDependencyFailure, want: OutcomeDependency},
		{err: errors.New("boom"), want: OutcomeInternal},
	}
	for _, c := range cases {
		require.Equal(t, c.want, OutcomeOf(c.err), "%v", c.err)
	}
	require.True(t, OutcomeConflict.IsExpected())
	require.False(t, OutcomeInternal.IsExpected())
}
