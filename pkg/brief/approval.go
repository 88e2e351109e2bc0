package brief

// Groups partitions approved proposals by category. Every known category has
// an entry; order inside a bucket follows input order.
type Groups map[Category][]ApprovedProposal

// FilterApproved keeps only APPROVED proposals, in input order. Any other
// status, known or not, is dropped here and never reaches the renderer.
func FilterApproved(proposals []Proposal) []ApprovedProposal {
	approved := make([]ApprovedProposal, 0, len(proposals))
	for _, p := range proposals {
		if !p.IsApproved() {
			continue
		}
		if p.Extra == nil {
			p.Extra = ExtraData{}
		}
		approved = append(approved, ApprovedProposal{Proposal: p})
	}
	return approved
}

// GroupByCategory buckets approved proposals into the six known categories.
func GroupByCategory(approved []ApprovedProposal) Groups {
	groups := make(Groups, len(Categories))
	for _, c := range Categories {
		groups[c] = []ApprovedProposal{}
	}
	for _, p := range approved {
		c := p.Category
		if _, known := groups[c]; !known {
			c = CategoryOther
		}
		groups[c] = append(groups[c], p)
	}
	return groups
}

// Total returns the number of proposals across all buckets.
func (g Groups) Total() int {
	n := 0
	for _, ps := range g {
		n += len(ps)
	}
	return n
}
