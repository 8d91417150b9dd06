package cedar

import (
	_ "embed"
	"fmt"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

//go:embed schema.graphql
var schemaSDL string

var schema = gqlparser.MustLoadSchema(&ast.Source{Name: "cedar.graphql", Input: schemaSDL})

const listSystemsQuery = `query ListSystems {
  cedarSystems {
    id
    name
    acronym
  }
}`

// validateQuery checks a query document against the directory schema and
// returns the name of its single operation.
func validateQuery(query string) (string, error) {
	doc, errs := gqlparser.LoadQuery(schema, query)
	if len(errs) > 0 {
		return "", fmt.Errorf("cedar: invalid query: %w", errs)
	}
	if len(doc.Operations) != 1 {
		return "", fmt.Errorf("cedar: query must contain exactly one operation (got %d)", len(doc.Operations))
	}
	return doc.Operations[0].Name, nil
}

type graphQLRequest struct {
	Query         string `json:"query"`
	OperationName string `json:"operationName,omitempty"`
}
