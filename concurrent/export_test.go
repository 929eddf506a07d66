package concurrent

// MarkPoisonedForTest sets n's poison flag directly, for exercising
// ErrPoisoned from concurrent_test without having to engineer an actual
// worker panic. Exported only for the test build; absent from production
// binaries since this file carries the _test.go suffix.
func MarkPoisonedForTest[K comparable, N any, E any](n *Node[K, N, E]) {
	n.poisoned.Store(true)
}
