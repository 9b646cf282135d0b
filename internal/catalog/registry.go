// Package catalog holds the metric catalog: a hierarchical, named registry
// of measurable statistics. Categories group leaf metrics; only leaves carry
// stored values. The registry is loaded once and read-only afterwards.
package catalog

import (
	"fmt"

	"github.com/isports/aflstats/internal/model"
)

// ErrUnknownAlias is wrapped by Resolve when no leaf matches.
var ErrUnknownAlias = fmt.Errorf("unknown metric alias")

type aliasKey struct {
	alias   string
	subject model.SubjectType
}

// Registry indexes metric definitions by id and by (alias, subject type).
// Alias lookup is case-sensitive exact match.
type Registry struct {
	defs     []model.MetricDefinition
	byID     map[int64]model.MetricDefinition
	byAlias  map[aliasKey]model.MetricDefinition
	children map[int64][]model.MetricDefinition
}

// NewRegistry builds a registry from definition rows. Definition order is
// preserved for report rendering. A duplicate leaf alias within one subject
// type is a catalog-authoring error and fails construction.
func NewRegistry(defs []model.MetricDefinition) (*Registry, error) {
	r := &Registry{
		defs:     defs,
		byID:     make(map[int64]model.MetricDefinition, len(defs)),
		byAlias:  make(map[aliasKey]model.MetricDefinition),
		children: make(map[int64][]model.MetricDefinition),
	}
	for _, d := range defs {
		if _, dup := r.byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate metric id %d", d.ID)
		}
		r.byID[d.ID] = d
		if !d.IsLeaf() {
			continue
		}
		k := aliasKey{d.Alias, d.Subject}
		if prev, dup := r.byAlias[k]; dup {
			return nil, fmt.Errorf("duplicate %s alias %q (ids %d and %d)",
				d.Subject, d.Alias, prev.ID, d.ID)
		}
		r.byAlias[k] = d
		r.children[d.ParentID] = append(r.children[d.ParentID], d)
	}
	for _, d := range defs {
		if d.IsLeaf() {
			if _, ok := r.byID[d.ParentID]; !ok {
				return nil, fmt.Errorf("leaf %q references missing category %d", d.Alias, d.ParentID)
			}
		}
	}
	return r, nil
}

// Categories returns the top-level definitions for a subject type, in
// catalog order.
func (r *Registry) Categories(subject model.SubjectType) []model.MetricDefinition {
	var out []model.MetricDefinition
	for _, d := range r.defs {
		if !d.IsLeaf() && d.Subject == subject {
			out = append(out, d)
		}
	}
	return out
}

// Leaves returns every leaf definition for a subject type, in catalog order.
func (r *Registry) Leaves(subject model.SubjectType) []model.MetricDefinition {
	var out []model.MetricDefinition
	for _, d := range r.defs {
		if d.IsLeaf() && d.Subject == subject {
			out = append(out, d)
		}
	}
	return out
}

// Children returns the leaves of one category, in catalog order.
func (r *Registry) Children(categoryID int64) []model.MetricDefinition {
	return r.children[categoryID]
}

// Resolve finds a leaf by stable alias within a subject type.
func (r *Registry) Resolve(alias string, subject model.SubjectType) (model.MetricDefinition, error) {
	d, ok := r.byAlias[aliasKey{alias, subject}]
	if !ok {
		return model.MetricDefinition{}, fmt.Errorf("%w: %s %q", ErrUnknownAlias, subject, alias)
	}
	return d, nil
}

// ByID returns a definition by id.
func (r *Registry) ByID(id int64) (model.MetricDefinition, bool) {
	d, ok := r.byID[id]
	return d, ok
}
