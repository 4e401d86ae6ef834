package paramkey

import (
	"strconv"
	"strings"
	"unicode"
)

// Uniquer hands out keys that are unique within its scope. The first claim of
// a key gets it verbatim; later claims receive `-1`, `-2`, ... in claim order.
type Uniquer struct {
	taken    map[string]struct{}
	reserved map[string]struct{}
}

// NewUniquer creates an empty scope.
func NewUniquer() *Uniquer {
	return &Uniquer{taken: make(map[string]struct{}), reserved: make(map[string]struct{})}
}

// Reserve marks keys that will be claimed verbatim later. A suffixed variant
// handed out for a colliding claim never takes a reserved key.
func (u *Uniquer) Reserve(keys ...string) {
	for _, k := range keys {
		u.reserved[k] = struct{}{}
	}
}

// Claim returns base if it is free, otherwise the first suffixed variant that
// is neither taken nor reserved.
func (u *Uniquer) Claim(base string) string {
	if _, ok := u.taken[base]; !ok {
		u.taken[base] = struct{}{}
		return base
	}
	for i := 1; ; i++ {
		candidate := base + "-" + strconv.Itoa(i)
		_, reserved := u.reserved[candidate]
		if _, ok := u.taken[candidate]; !ok && !reserved {
			u.taken[candidate] = struct{}{}
			return candidate
		}
	}
}

// Taken reports whether key was already claimed.
func (u *Uniquer) Taken(key string) bool {
	_, ok := u.taken[key]
	return ok
}

// Slug turns a display name into a key segment: lower case, every run of
// characters other than letters and digits collapsed into a single `-`.
func Slug(name string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			dash = false
			continue
		}
		if !dash && sb.Len() > 0 {
			sb.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(sb.String(), "-")
	if slug == "" {
		return "group"
	}
	return slug
}
