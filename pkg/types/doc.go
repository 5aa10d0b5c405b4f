// Package types defines the shared vocabulary of the veckit containers:
// typed contract-violation errors, the container header snapshot, and
// construction options.
//
// Design goals:
//   - One behavioral contract for both container layouts.
//   - Contract violations carry a stable Kind so harnesses can branch on intent.
//   - Empty-state conditions are never errors.
package types
