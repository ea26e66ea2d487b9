package session

import (
	"fmt"
	"strings"

	"github.com/abhisek/interference/internal/catalog"
)

// Route is where a follow-up request should be directed.
type Route string

const (
	RouteContributionism Route = "Contributionism"
	RouteGiveItToGot     Route = "giveittogot.com"
	RouteBoth            Route = "Both"
	RouteNotSure         Route = "Not sure yet"
)

// DefaultRoute is preselected in the follow-up form.
const DefaultRoute = RouteGiveItToGot

// AllRoutes returns the routes in display order.
func AllRoutes() []Route {
	return []Route{RouteContributionism, RouteGiveItToGot, RouteBoth, RouteNotSure}
}

// ParseRoute resolves a route by its exact or case-folded name.
func ParseRoute(s string) (Route, error) {
	for _, r := range AllRoutes() {
		if strings.EqualFold(string(r), strings.TrimSpace(s)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRoute, s)
}

// NextSteps is the fixed checklist shown after a follow-up is submitted.
var NextSteps = []string{
	"Define the outcome in one sentence.",
	"Define constraints (time, money, tools, environment).",
	"Define the smallest proof step that can be done today (15 to 30 minutes).",
	"Decide what should be generated next (plan, copy, UI, code, outreach).",
}

// FollowUpPlan is what the follow-up flow hands back to the caller.
type FollowUpPlan struct {
	Focus catalog.Category // Dominant category, or CategoryNone
	Idea  string
	Route Route
	Steps []string
}

// OpenFollowUp moves from the result to the follow-up flow.
func OpenFollowUp(s *State) error {
	if err := requirePhase(s, "open follow-up", PhaseResult); err != nil {
		return err
	}
	s.Phase = PhaseFollowUp
	return nil
}

// CloseFollowUp returns from the follow-up flow to the result.
func CloseFollowUp(s *State) error {
	if err := requirePhase(s, "close follow-up", PhaseFollowUp); err != nil {
		return err
	}
	s.Phase = PhaseResult
	return nil
}

// SubmitFollowUp captures the project idea and route and returns the next
// steps. The idea is optional. Resubmitting replaces the previous plan.
func SubmitFollowUp(s *State, idea string, route Route) (*FollowUpPlan, error) {
	if err := requirePhase(s, "submit follow-up", PhaseFollowUp); err != nil {
		return nil, err
	}
	route, err := ParseRoute(string(route))
	if err != nil {
		return nil, err
	}

	focus := catalog.CategoryNone
	if s.Result != nil {
		focus = s.Result.Dominant
	}

	plan := &FollowUpPlan{
		Focus: focus,
		Idea:  strings.TrimSpace(idea),
		Route: route,
		Steps: append([]string(nil), NextSteps...),
	}
	s.FollowUp = plan
	return plan, nil
}
