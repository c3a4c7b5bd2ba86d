package store

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// Store is the document store contract repositories run against. Update
// applies fn under the store lock and, when fn succeeds, rewrites the whole
// document durably (last write wins). View is the read path; callers must
// copy out anything they keep past the callback.
type Store interface {
	View(fn func(doc *Document))
	Update(fn func(doc *Document) error) error
}
