package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Category is a spending category. A category with a ParentID is a
// subcategory and must not be the parent of another category.
type Category struct {
	Model
	Name     string     `json:"name" example:"Groceries"`
	ParentID *uuid.UUID `json:"parentId,omitempty" example:"0e4c4a3e-1d8e-4f0a-93a7-7ac2dfe1bba9"`
	Color    string     `json:"color,omitempty" example:"#22c55e"`
	Icon     string     `json:"icon,omitempty" example:"shopping-cart"`
}

// IsRoot reports whether the category has no parent.
func (c Category) IsRoot() bool {
	return c.ParentID == nil
}

// CategoryTree is an immutable, indexed view of a category snapshot.
type CategoryTree struct {
	categories []Category
	byID       map[uuid.UUID]Category
	children   map[uuid.UUID][]uuid.UUID
	roots      []uuid.UUID
}

// NewCategoryTree indexes the categories and verifies that the snapshot
// is exactly two levels deep.
//
// The input slice is copied and never modified.
func NewCategoryTree(categories []Category) (*CategoryTree, error) {
	tree := &CategoryTree{
		categories: append([]Category(nil), categories...),
		byID:       make(map[uuid.UUID]Category, len(categories)),
		children:   make(map[uuid.UUID][]uuid.UUID),
	}

	for _, c := range categories {
		if _, ok := tree.byID[c.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCategory, c.ID)
		}
		tree.byID[c.ID] = c
	}

	for _, c := range categories {
		if c.IsRoot() {
			tree.roots = append(tree.roots, c.ID)
			continue
		}

		parent, ok := tree.byID[*c.ParentID]
		if !ok {
			return nil, fmt.Errorf("%w: parent %s of category %s", ErrCategoryNotFound, *c.ParentID, c.ID)
		}

		if !parent.IsRoot() {
			return nil, fmt.Errorf("%w: category %s has parent %s, which is a subcategory itself", ErrCategoryNesting, c.ID, parent.ID)
		}

		tree.children[parent.ID] = append(tree.children[parent.ID], c.ID)
	}

	return tree, nil
}

// Get returns the category with the ID.
func (t *CategoryTree) Get(id uuid.UUID) (Category, bool) {
	c, ok := t.byID[id]
	return c, ok
}

// Contains reports whether the category exists.
func (t *CategoryTree) Contains(id uuid.UUID) bool {
	_, ok := t.byID[id]
	return ok
}

// Categories returns all categories in input order.
func (t *CategoryTree) Categories() []Category {
	return append([]Category(nil), t.categories...)
}

// Roots returns all categories without a parent, in input order.
func (t *CategoryTree) Roots() []Category {
	roots := make([]Category, 0, len(t.roots))
	for _, id := range t.roots {
		roots = append(roots, t.byID[id])
	}
	return roots
}

// Children returns the direct children of the category, in input order.
func (t *CategoryTree) Children(id uuid.UUID) []Category {
	ids := t.children[id]
	children := make([]Category, 0, len(ids))
	for _, child := range ids {
		children = append(children, t.byID[child])
	}
	return children
}

// Family returns the category's ID followed by the IDs of its direct children.
func (t *CategoryTree) Family(id uuid.UUID) []uuid.UUID {
	return append([]uuid.UUID{id}, t.children[id]...)
}

// RootOf returns the root category ID a category rolls up into.
func (t *CategoryTree) RootOf(id uuid.UUID) (uuid.UUID, bool) {
	c, ok := t.byID[id]
	if !ok {
		return uuid.Nil, false
	}
	if c.IsRoot() {
		return c.ID, true
	}
	return *c.ParentID, true
}
