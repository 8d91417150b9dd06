package domain

// CMSComponent is an office or division a requester can belong to.
type CMSComponent struct {
	Name    string
	Acronym string
}

var cmsComponents = []CMSComponent{
	{Name: "Center for Clinical Standards and Quality", Acronym: "CCSQ"},
	{Name: "Center for Consumer Information and Insurance Oversight", Acronym: "CCIIO"},
	{Name: "Center for Medicare", Acronym: "CM"},
	{Name: "Center for Medicaid and CHIP Services", Acronym: "CMCS"},
	{Name: "Center for Medicare and Medicaid Innovation", Acronym: "CMMI"},
	{Name: "Center for Program Integrity", Acronym: "CPI"},
	{Name: "CMS Wide", Acronym: "CMS"},
	{Name: "Emergency Preparedness and Response Operations", Acronym: "EPRO"},
	{Name: "Federal Coordinated Health Care Office", Acronym: "FCHCO"},
	{Name: "Office of Acquisition and Grants Management", Acronym: "OAGM"},
	{Name: "Office of Communications", Acronym: "OC"},
	{Name: "Office of Enterprise Data and Analytics", Acronym: "OEDA"},
	{Name: "Office of Equal Opportunity and Civil Rights", Acronym: "OEOCR"},
	{Name: "Office of Financial Management", Acronym: "OFM"},
	{Name: "Office of Hearings and Inquiries", Acronym: "OHI"},
	{Name: "Office of Information Technology", Acronym: "OIT"},
	{Name: "Office of Legislation", Acronym: "OL"},
	{Name: "Office of Minority Health", Acronym: "OMH"},
	{Name: "Office of Program Operations and Local Engagement", Acronym: "OPOLE"},
	{Name: "Office of Security, Facilities, and Logistics Operations", Acronym: "OSFLO"},
	{Name: "Office of Strategic Operations and Regulatory Affairs", Acronym: "OSORA"},
	{Name: "Office of Strategy, Performance, and Results", Acronym: "OSPR"},
	{Name: "Office of the Actuary", Acronym: "OACT"},
	{Name: "Office of the Administrator", Acronym: "OA"},
	{Name: "Other", Acronym: ""},
}

var componentAcronyms = func() map[string]string {
	m := make(map[string]string, len(cmsComponents))
	for _, c := range cmsComponents {
		m[c.Name] = c.Acronym
	}
	return m
}()

// ComponentAcronym returns the acronym for a component name.
// ok is false when the component is unknown or has no acronym.
func ComponentAcronym(name string) (string, bool) {
	acronym := componentAcronyms[name]
	return acronym, acronym != ""
}
