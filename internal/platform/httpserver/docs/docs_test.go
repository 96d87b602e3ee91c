package docs

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/swaggo/swag"
)

type document struct {
	Paths       map[string]map[string]operation `json:"paths"`
	Definitions map[string]json.RawMessage      `json:"definitions"`
}

type operation struct {
	Responses map[string]struct {
		Schema map[string]any `json:"schema"`
	} `json:"responses"`
}

func readDocument(t *testing.T) document {
	t.Helper()
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("read doc: %v", err)
	}
	var doc document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("decode doc: %v", err)
	}
	return doc
}

func TestDocumentDescribesTypedResponses(t *testing.T) {
	doc := readDocument(t)

	createAsset, ok := doc.Paths["/assets"]["post"]
	if !ok {
		t.Fatalf("expected POST /assets to be documented")
	}
	if _, ok := createAsset.Responses["201"]; !ok {
		t.Fatalf("expected 201 for asset creation, got %v", createAsset.Responses)
	}
	if _, ok := createAsset.Responses["200"]; ok {
		t.Fatalf("asset creation must not document 200")
	}

	approve := doc.Paths["/requests/approve/{id}"]["patch"]
	for _, code := range []string{"200", "403", "404", "409"} {
		if _, ok := approve.Responses[code]; !ok {
			t.Fatalf("expected %s on approve, got %v", code, approve.Responses)
		}
	}
}

func TestDocumentReferencesResolve(t *testing.T) {
	doc := readDocument(t)
	raw, _ := swag.ReadDoc(SwaggerInfo.InstanceName())

	for _, part := range strings.Split(raw, `"#/definitions/`)[1:] {
		name := part[:strings.Index(part, `"`)]
		if _, ok := doc.Definitions[name]; !ok {
			t.Fatalf("dangling reference %s", name)
		}
	}
	if len(doc.Paths) == 0 {
		t.Fatalf("expected documented paths")
	}
}
