package verify

import "localelint/internal/document"

// verifyBytes verifies in-memory documents keyed by identifier.
func (v *Verifier) verifyBytes(docs map[string][]byte) Report {
	agg := v.newAggregator()
	for id, data := range docs {
		doc, err := document.Parse(id, data)
		result, tree := v.verifyParsed(id, doc, err)
		agg.Add(result, tree)
	}
	return v.finish(agg)
}

// verifyDocument runs one document through loading, the key-path check and
// comparison, returning the tree the key path was walked in.
func (v *Verifier) verifyDocument(id string, data []byte) (DocumentResult, *document.Node) {
	doc, err := document.Parse(id, data)
	return v.verifyParsed(id, doc, err)
}
