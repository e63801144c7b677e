package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"majalahku_backend/internals/features/editorial/articles/model"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{model.StatusDraft, model.StatusSubmitted, true},
		{model.StatusSubmitted, model.StatusInReview, true},
		{model.StatusSubmitted, model.StatusRejected, true},
		{model.StatusInReview, model.StatusAccepted, true},
		{model.StatusInReview, model.StatusRevisions, true},
		{model.StatusRevisions, model.StatusInReview, true},
		{model.StatusAccepted, model.StatusPublished, true},
		{model.StatusPublished, model.StatusArchived, true},
		{model.StatusRejected, model.StatusDraft, true},

		// illegal jumps
		{model.StatusDraft, model.StatusPublished, false},
		{model.StatusDraft, model.StatusAccepted, false},
		{model.StatusSubmitted, model.StatusPublished, false},
		{model.StatusPublished, model.StatusDraft, false},
		{model.StatusArchived, model.StatusPublished, false},
		{model.StatusRejected, model.StatusPublished, false},

		// self-transitions are not a thing
		{model.StatusDraft, model.StatusDraft, false},
		{model.StatusInReview, model.StatusInReview, false},
	}

	for _, tc := range cases {
		got := CanTransition(tc.from, tc.to)
		assert.Equalf(t, tc.want, got, "%s → %s", tc.from, tc.to)
	}
}

func TestNextStatuses(t *testing.T) {
	assert.ElementsMatch(t,
		[]string{model.StatusRevisions, model.StatusAccepted, model.StatusRejected},
		NextStatuses(model.StatusInReview))

	assert.Empty(t, NextStatuses(model.StatusArchived))

	// unknown status has no outgoing edges
	assert.Empty(t, NextStatuses("bogus"))
}

func TestNextStatusesReturnsCopy(t *testing.T) {
	got := NextStatuses(model.StatusDraft)
	if assert.Len(t, got, 1) {
		got[0] = "mutated"
		assert.Equal(t, []string{model.StatusSubmitted}, NextStatuses(model.StatusDraft))
	}
}
