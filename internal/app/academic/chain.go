package academic

// ChainRecord is one record of a student+cycle temporal chain, reduced to
// the attributes the cascade rule needs.
type ChainRecord struct {
	ID        int64
	StartYear int
	EndYear   int
	Call      string
}

// laterThan compares school-year spans lexicographically.
func (c ChainRecord) laterThan(o ChainRecord) bool {
	if c.StartYear != o.StartYear {
		return c.StartYear > o.StartYear
	}
	return c.EndYear > o.EndYear
}

// CascadeSet selects every record that must go when target is deleted:
// the target itself, every record of the chain with a strictly later year
// pair, and, when the target is an Ordinaria, the Extraordinaria of the
// same year pair (the two form a paired unit). Academic progression is
// sequential, so anything built on top of the target cannot outlive it.
// The second return is false when the target id is not in the chain.
func CascadeSet(chain []ChainRecord, targetID int64) ([]ChainRecord, bool) {
	var target ChainRecord
	found := false
	for _, r := range chain {
		if r.ID == targetID {
			target = r
			found = true
			break
		}
	}
	if !found {
		return nil, false
	}

	var out []ChainRecord
	for _, r := range chain {
		switch {
		case r.ID == target.ID:
			out = append(out, r)
		case r.laterThan(target):
			out = append(out, r)
		case target.Call == "Ordinaria" && r.Call == "Extraordinaria" &&
			r.StartYear == target.StartYear && r.EndYear == target.EndYear:
			out = append(out, r)
		}
	}
	return out, true
}
