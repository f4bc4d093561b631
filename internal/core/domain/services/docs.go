// Package services holds the domain services of the packaging engine. Each is a pure
// value with no I/O:
//
//   - OrderGatekeeper admits the orders of a batch (status, date, ownership, packaging,
//     time-frame homogeneity)
//   - EarlyAssignmentGuard produces the confirmable warning for assignments made too early
//   - ConflictDetector keeps one package per fulfiller per time frame per day
//   - PackageBuilder creates packages and transitions staff to Busy in memory
//   - WorkloadEstimator derives handling minutes, load and suggested start times
//
// Rule violations are errs.BusinessRuleError values built by the New*Error helpers in
// errors.go so that callers can match sentinels and render localized messages.
package services
