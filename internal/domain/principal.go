package domain

// Principal is the authenticated caller of a request.
type Principal struct {
	EUAID      string
	Name       string
	JobCodes   []string
	IsGRTAdmin bool
	IsTRBAdmin bool
}
