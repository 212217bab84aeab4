package libdiff

import (
	"encoding/json"
	"fmt"

	"github.com/kane-format/kane/token"

	jsonpatch "github.com/evanphx/json-patch"
)

type patchOp struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value string `json:"value,omitempty"`
}

// PatchDoc is the JSON document patches apply to.
type PatchDoc struct {
	Tokens []string `json:"tokens"`
}

// JSONPatch renders edits as an RFC 6902 patch over the PatchDoc holding
// the token lines (see Lines) of the source.
func JSONPatch(edits []Edit) ([]byte, error) {
	ops := []patchOp{}
	i := 0
	for _, e := range edits {
		switch e.Op {
		case Equal:
			i += len(e.Tokens)
		case Delete:
			for range e.Tokens {
				ops = append(ops, patchOp{Op: "remove", Path: fmt.Sprintf("/tokens/%d", i)})
			}
		case Insert:
			for _, t := range e.Tokens {
				ops = append(ops, patchOp{Op: "add", Path: fmt.Sprintf("/tokens/%d", i), Value: t})
				i++
			}
		}
	}
	return json.Marshal(ops)
}

// ApplyJSONPatch applies an RFC 6902 patch to the PatchDoc of toks and
// returns the patched token lines.
func ApplyJSONPatch(toks []token.Token, patch []byte) ([]string, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("could not decode patch: %w", err)
	}
	doc, err := json.Marshal(PatchDoc{Tokens: Lines(toks)})
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("could not apply patch: %w", err)
	}
	res := PatchDoc{}
	if err := json.Unmarshal(out, &res); err != nil {
		return nil, fmt.Errorf("patch result is not a token document: %w", err)
	}
	return res.Tokens, nil
}
