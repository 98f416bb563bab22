package server

import (
	"log/slog"
	"net/http"
)

// redirectNavigator answers the current request with a redirect to the
// external URL. The link that issued the request already opened a new
// browsing context, so the redirect lands there.
type redirectNavigator struct {
	w http.ResponseWriter
	r *http.Request
}

func (n redirectNavigator) Open(url string) error {
	slog.Info("Redirecting to external URL", slog.String("url", url), slog.String("path", n.r.URL.Path))
	http.Redirect(n.w, n.r, url, http.StatusSeeOther)
	return nil
}
