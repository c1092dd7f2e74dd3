// Package models defines the bill document and the records derived from it.
//
// # Document
//
// A Bill is the aggregate root for one splitting session:
//   - LineItem: something on the receipt, priced per unit with a quantity
//   - Person: someone sharing the bill (colour is display only)
//   - Adjustment: a fee, tip or tax, either fixed or a percentage of the subtotal
//   - Assignment: the set of people who split one item equally
//
// The editing layer owns the invariants that tie these together: ids are
// unique within a bill, assignments only reference existing items and people,
// and an assignment never has an empty person set.
//
// # Derived records
//
// BillSummary and PersonTotal are produced by the calculator on demand and
// are never persisted. They carry a full breakdown of which share of which
// item and adjustment each person owes.
//
// # Design Principles
//
//  1. Plain value records, no behaviour beyond small helpers
//  2. Relationships by id strings, never pointers
//  3. JSON names match the stored document so old documents keep loading
package models
