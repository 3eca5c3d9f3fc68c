package tree

import (
	"fmt"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator returns a three-way string comparator that orders strings by the
// collation rules of the given BCP 47 language tag (for example "en", "de",
// "sv"). Options such as collate.IgnoreCase are passed through.
//
// The comparator is not safe for concurrent use; build one per goroutine.
func Collator(tag string, opts ...collate.Option) (func(a, b string) int, error) {
	lang, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("collation %q: %w: %w", tag, ErrUnsupported, err)
	}
	c := collate.New(lang, opts...)
	return c.CompareString, nil
}
