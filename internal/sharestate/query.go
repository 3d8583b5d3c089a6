package sharestate

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/csg33k/semogye/internal/numfmt"
)

// Codec converts one field between its form value and its query parameter.
// Encode returning "" removes the parameter.
type Codec[T any] struct {
	Decode func(raw string) T
	Encode func(v T) string
}

// CommaNumber maps a grouped amount ("12,000") to bare digits ("12000").
var CommaNumber = Codec[string]{
	Decode: func(raw string) string { return numfmt.FormatThousands(numfmt.ParseDigits(raw)) },
	Encode: positiveDigits,
}

// PlainNumber maps a digit string to itself, dropping anything else.
var PlainNumber = Codec[string]{
	Decode: func(raw string) string {
		if n := numfmt.ParseDigits(raw); n > 0 {
			return strconv.FormatInt(n, 10)
		}
		return ""
	},
	Encode: positiveDigits,
}

// Int maps a non-negative integer to its decimal form. Zero is omitted.
var Int = Codec[int64]{
	Decode: numfmt.ParseDigits,
	Encode: func(n int64) string {
		if n > 0 {
			return strconv.FormatInt(n, 10)
		}
		return ""
	},
}

// YesNo maps a flag to "yes" or "no". Anything other than "no" reads as yes.
var YesNo = Codec[bool]{
	Decode: func(raw string) bool { return raw != "no" },
	Encode: func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	},
}

func positiveDigits(v string) string {
	if n := numfmt.ParseDigits(v); n > 0 {
		return strconv.FormatInt(n, 10)
	}
	return ""
}

// Field is a form value bound to a query parameter.
type Field interface {
	Key() string
	restore(raw string)
	encode() string
}

type binding[T any] struct {
	key   string
	ptr   *T
	codec Codec[T]
}

func (b *binding[T]) Key() string        { return b.key }
func (b *binding[T]) restore(raw string) { *b.ptr = b.codec.Decode(raw) }
func (b *binding[T]) encode() string     { return b.codec.Encode(*b.ptr) }

// Bind ties the value at ptr to the query parameter key.
func Bind[T any](key string, ptr *T, c Codec[T]) Field {
	return &binding[T]{key: key, ptr: ptr, codec: c}
}

// Mode selects how the browser records an updated URL.
type Mode int

const (
	Replace Mode = iota
	Push
)

// Header is the htmx response header that applies the mode.
func (m Mode) Header() string {
	if m == Push {
		return "HX-Push-Url"
	}
	return "HX-Replace-Url"
}

// Sync keeps a set of bound fields and the query string in step.
type Sync struct {
	mode     Mode
	fields   []Field
	restored bool
}

func NewSync(mode Mode, fields ...Field) *Sync {
	return &Sync{mode: mode, fields: fields}
}

func (s *Sync) Mode() Mode { return s.mode }

// Restore copies present, non-empty parameters into the bound fields. Only
// the first call has any effect; it reports whether any field was set.
func (s *Sync) Restore(q url.Values) bool {
	if s.restored {
		return false
	}
	s.restored = true
	set := false
	for _, f := range s.fields {
		if raw := q.Get(f.Key()); raw != "" {
			f.restore(raw)
			set = true
		}
	}
	return set
}

// Apply returns a copy of q with every bound field encoded into it. Fields
// that encode to "" are removed. Parameters not bound to a field are kept.
func (s *Sync) Apply(q url.Values) url.Values {
	out := make(url.Values, len(q)+len(s.fields))
	for k, v := range q {
		out[k] = append([]string(nil), v...)
	}
	for _, f := range s.fields {
		if v := f.encode(); v != "" {
			out.Set(f.Key(), v)
		} else {
			out.Del(f.Key())
		}
	}
	return out
}

// URL is path with the synchronised query string, or bare path when the
// query ends up empty.
func (s *Sync) URL(path string, q url.Values) string {
	qs := s.Apply(q).Encode()
	if qs == "" {
		return path
	}
	return path + "?" + qs
}

// SetHeader tells htmx which URL to show for the current field values.
func (s *Sync) SetHeader(h http.Header, path string, q url.Values) {
	h.Set(s.mode.Header(), s.URL(path, q))
}
