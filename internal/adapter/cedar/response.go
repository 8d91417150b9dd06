package cedar

import (
	"encoding/json"

	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/easi-app/easi-server/internal/domain"
)

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors gqlerror.List   `json:"errors"`
}

type listSystemsData struct {
	CedarSystems []apiSystem `json:"cedarSystems"`
}

type apiSystem struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Acronym *string `json:"acronym"`
}

func mapSystems(in []apiSystem) []domain.CedarSystem {
	out := make([]domain.CedarSystem, 0, len(in))
	for _, s := range in {
		sys := domain.CedarSystem{ID: s.ID, Name: s.Name}
		if s.Acronym != nil {
			sys.Acronym = *s.Acronym
		}
		out = append(out, sys)
	}
	return out
}
