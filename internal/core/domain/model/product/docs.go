// Package product holds the read-mostly catalog entity the ordering
// context resolves unit prices from when placing orders.
package product
