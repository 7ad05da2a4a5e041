// Package kernel contains the shared value objects of the ordering domain:
// UUID, the typed identifiers built on top of it (OrderID, CustomerID,
// ProductID), and Money.
//
// Kernel types are immutable, compared by value, and validated at
// construction. Aggregates and application services depend on them but the
// kernel itself depends on nothing above the error and guard helpers.
package kernel
