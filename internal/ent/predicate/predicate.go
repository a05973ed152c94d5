// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Category is the predicate function for category builders.
type Category func(*sql.Selector)

// Draft is the predicate function for draft builders.
type Draft func(*sql.Selector)

// Image is the predicate function for image builders.
type Image func(*sql.Selector)

// Record is the predicate function for record builders.
type Record func(*sql.Selector)
