// Package catalog holds the fixed push/pull/legs plan catalog and the
// heuristics that map free-text workout and exercise names back to a plan.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

type Kind string

const (
	KindPush    Kind = "push"
	KindPull    Kind = "pull"
	KindLegs    Kind = "legs"
	KindUnknown Kind = "unknown"
)

// Kinds returns the plan kinds in enumeration order. The order is used
// for classifier precedence and for calendar tie-breaks.
func Kinds() []Kind {
	return []Kind{KindPush, KindPull, KindLegs}
}

type Section struct {
	Title     string   `json:"title"`
	Exercises []string `json:"exercises"`
}

type Plan struct {
	Key      Kind      `json:"key"`
	Title    string    `json:"title"`
	Button   string    `json:"button"`
	Sections []Section `json:"sections"`
}

//go:embed plans.json
var plansJSON []byte

var plans = mustLoadPlans(plansJSON)

func mustLoadPlans(data []byte) []Plan {
	loaded, err := parsePlans(data)
	if err != nil {
		panic(err)
	}
	return loaded
}

func parsePlans(data []byte) ([]Plan, error) {
	var loaded []Plan
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parse plans: %w", err)
	}

	kinds := Kinds()
	if len(loaded) != len(kinds) {
		return nil, fmt.Errorf("expected %d plans, got %d", len(kinds), len(loaded))
	}
	for i, p := range loaded {
		if p.Key != kinds[i] {
			return nil, fmt.Errorf("plan %d: expected key %s, got %s", i, kinds[i], p.Key)
		}
		if p.Title == "" || len(p.Sections) == 0 {
			return nil, fmt.Errorf("plan %s: title and sections are required", p.Key)
		}
	}
	return loaded, nil
}

// All returns every plan in enumeration order.
func All() []Plan {
	all := make([]Plan, 0, len(plans))
	for _, p := range plans {
		all = append(all, p.clone())
	}
	return all
}

// Lookup returns the plan for key. Unknown keys report false.
func Lookup(key Kind) (Plan, bool) {
	for _, p := range plans {
		if p.Key == key {
			return p.clone(), true
		}
	}
	return Plan{}, false
}

// Exercises returns the plan's exercise names flattened in section order.
func (p Plan) Exercises() []string {
	var names []string
	for _, s := range p.Sections {
		names = append(names, s.Exercises...)
	}
	return names
}

func (p Plan) clone() Plan {
	c := p
	c.Sections = make([]Section, len(p.Sections))
	for i, s := range p.Sections {
		c.Sections[i] = Section{
			Title:     s.Title,
			Exercises: append([]string(nil), s.Exercises...),
		}
	}
	return c
}

// ParseKind accepts a plan key as typed by a user ("push", "Legs", "leg").
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "push":
		return KindPush, nil
	case "pull":
		return KindPull, nil
	case "legs", "leg":
		return KindLegs, nil
	}
	return KindUnknown, fmt.Errorf("unknown plan [%s], expected one of push, pull, legs", s)
}
