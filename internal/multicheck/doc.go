// Package multicheck implements the state and layout behind a checkbox group
// with a leading "Select All" control.
//
// The package has two halves:
//
//   - [Controller] owns the working selection set. It reconciles the set
//     against an externally supplied baseline, derives the Select All state, and
//     notifies its owner after every change.
//   - [SplitIntoColumns] partitions the option list into a fixed number of
//     equal-length columns, padding short columns with [Placeholder] entries.
//
// # Baselines
//
// A baseline is the caller's snapshot of which values should be selected. A nil
// baseline means the caller does not manage selection at all, and the group
// starts empty. A non-nil baseline (even an empty one) seeds the working set
// and replaces it wholesale every time the caller supplies a different one.
// Edits made between two baselines are discarded by the second.
//
// [BaselineTracker] performs the comparison that decides whether a newly
// rendered baseline differs from the last applied one.
//
// # Notifications
//
// Every mutation, including the initial seeding done by [New], is reported to
// the registered [ChangeFunc] with the selected options in option order.
// Redundant notifications are not suppressed.
//
// # Thread Safety
//
// A Controller is not safe for concurrent use. It is meant to be owned by a
// single event loop, such as a Bubble Tea model's Update method.
package multicheck
