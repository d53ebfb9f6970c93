// Package machine implements a deterministic single-tape Turing Machine
// that decides whether a string over {a, b} is a palindrome.
//
// The package defines the fundamental types for the simulation:
//
//   - [State]: closed enumeration of control states (q0 .. q_halt)
//   - [Tape]: sparse, effectively unbounded cell storage
//   - [StepRecord]: one executed transition; the ordered slice of records
//     is the complete trace
//   - [Machine]: tape + head + state + step counter, driven by Step/Run
//
// # Example
//
//	m, _ := machine.New("abba")
//	result, _ := m.Run(ctx, machine.DefaultMaxSteps)
//	fmt.Println(result.Verdict, result.Steps)
//
// # Thread Safety
//
// Machine instances are NOT thread-safe. Separate instances share nothing
// and may run concurrently.
package machine
