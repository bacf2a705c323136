package check

// Checker is implemented by all check types.
//
// Implementations:
//   - maccheck.Check: rejects macOS 14.4+ and the MacBookPro16,1 model
type Checker interface {
	Run() Result
}
