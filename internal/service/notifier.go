package service

// Notifier pushes fire-and-forget staleness signals to the presentation
// layer: "the data backing this path may be stale". No response is expected
// and delivery is best-effort.
type Notifier interface {
	Revalidate(path string)
}
