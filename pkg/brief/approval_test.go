package brief

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func proposal(status string, cat Category, title, desc string, extra ExtraData) Proposal {
	return Proposal{
		Status:      status,
		Category:    cat,
		Title:       title,
		Description: desc,
		Impact:      "MEDIO",
		Extra:       extra,
	}
}

func approved(cat Category, title, desc string, extra ExtraData) Proposal {
	return proposal(StatusApproved, cat, title, desc, extra)
}

func TestFilterApproved(t *testing.T) {
	proposals := []Proposal{
		proposal("DRAFT", CategoryCatering, "borrador", "", nil),
		proposal("approved", CategoryTechnical, "a", "", nil),
		proposal("SUBMITTED", CategoryTechnical, "enviada", "", nil),
		proposal("REJECTED", CategoryTechnical, "rechazada", "", nil),
		proposal(" Approved ", CategoryAgenda, "b", "", ExtraData{"horario": "10:00"}),
		proposal("CANCELLED", CategoryOther, "cancelada", "", nil),
		proposal("PENDING", CategoryOther, "pendiente", "", nil),
		proposal("APPROVED_LATER", CategoryOther, "rara", "", nil),
	}

	got := FilterApproved(proposals)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Title)
	assert.NotNil(t, got[0].Extra, "extra bag is always an object")
	assert.Equal(t, "b", got[1].Title)
	assert.Equal(t, "10:00", got[1].Extra.Text("horario"))
}

func TestGroupByCategory(t *testing.T) {
	proposals := []Proposal{
		approved(CategoryTechnical, "t1", "", nil),
		approved(CategoryCatering, "c1", "", nil),
		proposal("REJECTED", CategoryCatering, "rechazada", "", nil),
		approved(CategoryTechnical, "t2", "", nil),
		approved(Category("DESCONOCIDA"), "o1", "", nil),
		approved(CategoryOther, "o2", "", nil),
	}
	approvedOnly := FilterApproved(proposals)
	groups := GroupByCategory(approvedOnly)

	require.Len(t, groups, len(Categories))
	for _, c := range Categories {
		assert.NotNil(t, groups[c], "bucket %s exists", c)
	}
	assert.Equal(t, len(approvedOnly), groups.Total())

	titles := func(ps []ApprovedProposal) []string {
		out := make([]string, 0, len(ps))
		for _, p := range ps {
			out = append(out, p.Title)
		}
		return out
	}
	assert.Equal(t, []string{"t1", "t2"}, titles(groups[CategoryTechnical]))
	assert.Equal(t, []string{"c1"}, titles(groups[CategoryCatering]))
	assert.Equal(t, []string{"o1", "o2"}, titles(groups[CategoryOther]))
	assert.Empty(t, groups[CategoryAgenda])
}

func TestGroupByCategory_Empty(t *testing.T) {
	groups := GroupByCategory(nil)
	assert.Equal(t, 0, groups.Total())
	assert.Len(t, groups, len(Categories))
}
