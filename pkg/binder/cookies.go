package binder

import "net/http"

// Cookies returns the request cookies keyed by name. When a name repeats,
// the first occurrence wins.
func Cookies(r *http.Request) map[string]string {
	cookies := r.Cookies()
	out := make(map[string]string, len(cookies))
	for _, c := range cookies {
		if _, ok := out[c.Name]; !ok {
			out[c.Name] = c.Value
		}
	}
	return out
}
