package earnings

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// NameResolver resolves display names for symbols out of a securities
// metadata JSON document, shaped as {"AAPL": {"name": "Apple Inc."}, ...}.
//
// It memoizes lookups for the lifetime of one report run; it is a collaborator
// of the rendering layer and never takes part in the core computation.
type NameResolver struct {
	doc   any
	cache map[string]string
}

// NewNameResolver reads the metadata document from r.
func NewNameResolver(r io.Reader) (*NameResolver, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not read securities metadata: %w", err)
	}
	return &NameResolver{doc: doc, cache: make(map[string]string)}, nil
}

// Resolve returns the display name for a symbol, or the symbol itself when
// the document has no entry for it.
func (n *NameResolver) Resolve(symbol string) string {
	if n == nil || symbol == "" {
		return symbol
	}
	if name, ok := n.cache[symbol]; ok {
		return name
	}

	name := symbol
	path := fmt.Sprintf("$[%q].name", symbol)
	if jval, err := jsonpath.Get(path, n.doc); err == nil {
		// jsonpath is never clear about whether it returns a list of one
		// answer or a single answer, keep the first one if any.
		if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
			jval = jlist[0]
		}
		if s, ok := jval.(string); ok && s != "" {
			name = s
		}
	}
	n.cache[symbol] = name
	return name
}
