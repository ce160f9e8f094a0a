package domains

const MaxTeamNameBytes = 31

type Team struct {
	Name    string
	Members []*User
}

// MemberIDs returns member ids in join order.
func (t *Team) MemberIDs() []string {
	ids := make([]string, 0, len(t.Members))
	for _, m := range t.Members {
		ids = append(ids, m.ID)
	}
	return ids
}
