package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/interference/internal/catalog"
)

func resultState(t *testing.T, signal ...string) *State {
	t.Helper()
	s := testState(t)
	answerAll(t, s, signal...)
	require.Equal(t, PhaseResult, s.Phase)
	return s
}

func TestFollowUp_OpenSubmitClose(t *testing.T) {
	s := resultState(t, "Q21", "Q22", "Q23", "Q24", "Q25", "Q1", "Q5", "Q9", "Q13", "Q17")

	require.NoError(t, OpenFollowUp(s))
	assert.Equal(t, PhaseFollowUp, s.Phase)

	plan, err := SubmitFollowUp(s, "  ship the prototype in two weeks  ", RouteBoth)
	require.NoError(t, err)
	assert.Equal(t, catalog.CategoryThresholdFear, plan.Focus)
	assert.Equal(t, "ship the prototype in two weeks", plan.Idea)
	assert.Equal(t, RouteBoth, plan.Route)
	assert.Equal(t, NextSteps, plan.Steps)
	assert.Same(t, plan, s.FollowUp)

	require.NoError(t, CloseFollowUp(s))
	assert.Equal(t, PhaseResult, s.Phase)
	assert.NotNil(t, s.Result, "result survives the follow-up round trip")
}

func TestFollowUp_NoDominantFocus(t *testing.T) {
	s := resultState(t)
	require.NoError(t, OpenFollowUp(s))

	plan, err := SubmitFollowUp(s, "", DefaultRoute)
	require.NoError(t, err)
	assert.Equal(t, catalog.CategoryNone, plan.Focus)
	assert.Empty(t, plan.Idea)
}

func TestFollowUp_InvalidRoute(t *testing.T) {
	s := resultState(t)
	require.NoError(t, OpenFollowUp(s))

	_, err := SubmitFollowUp(s, "idea", Route("carrier pigeon"))
	assert.ErrorIs(t, err, ErrInvalidRoute)
	assert.Nil(t, s.FollowUp)
}

func TestFollowUp_WrongPhase(t *testing.T) {
	s := testState(t)

	assert.ErrorIs(t, OpenFollowUp(s), ErrWrongPhase)
	assert.ErrorIs(t, CloseFollowUp(s), ErrWrongPhase)
	_, err := SubmitFollowUp(s, "idea", DefaultRoute)
	assert.ErrorIs(t, err, ErrWrongPhase)
}

func TestParseRoute(t *testing.T) {
	r, err := ParseRoute("not sure yet")
	require.NoError(t, err)
	assert.Equal(t, RouteNotSure, r)

	r, err = ParseRoute("GiveItToGot.com")
	require.NoError(t, err)
	assert.Equal(t, RouteGiveItToGot, r)

	_, err = ParseRoute("elsewhere")
	assert.ErrorIs(t, err, ErrInvalidRoute)
}

func TestBuildSummary(t *testing.T) {
	s := resultState(t, "Q1", "Q2", "Q3", "Q5", "Q6", "Q9", "Q10", "Q13")

	sum, err := BuildSummary(s)
	require.NoError(t, err)
	assert.Equal(t, s.ID, sum.SessionID)
	assert.Equal(t, 25, sum.Answered)
	assert.Equal(t, "Misalignment", sum.Report.Headline)

	Reset(s)
	_, err = BuildSummary(s)
	assert.ErrorIs(t, err, ErrWrongPhase)
}
