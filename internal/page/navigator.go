package page

// Navigator opens a URL in a new browsing context. Implementations are best
// effort; the renderer never retries a failed Open.
type Navigator interface {
	Open(url string) error
}

type NavigatorFunc func(url string) error

func (f NavigatorFunc) Open(url string) error {
	return f(url)
}
