package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/pos-catalog-sync/internal/catalog"
	"github.com/ginjaninja78/pos-catalog-sync/pkg/logging"
)

func product(plu, dept int, price string) catalog.Product {
	return catalog.Product{
		PLU:                     plu,
		DepartmentID:            dept,
		Name:                    "Product",
		Price:                   price,
		PriceModifierMultiplier: 1,
	}
}

func TestPlanClassification(t *testing.T) {
	source := []catalog.Product{
		product(1001, 10, "5.00"), // new -> add
		product(1002, 10, "4.50"), // exists -> update candidate
	}
	target := []catalog.Product{
		product(1002, 10, "3.00"),
		product(1003, 10, "2.00"), // missing from source -> delete candidate
	}

	r := &Reconciler{Log: logging.Nop}
	plan := r.Plan(source, target)

	require.Len(t, plan.Adds, 1)
	assert.Equal(t, 1001, plan.Adds[0].PLU)

	require.Len(t, plan.Updates, 1)
	assert.Equal(t, 1002, plan.Updates[0].PLU)
	assert.Equal(t, "4.50", plan.Updates[0].Price)

	require.Len(t, plan.DeleteCandidates, 1)
	assert.Equal(t, catalog.Key{PLU: 1003, DepartmentID: 10}, plan.DeleteCandidates[0])

	assert.Equal(t, 2, plan.SourceKeyed)
	assert.Equal(t, 2, plan.TargetKeyed)
}

// A zero PLU or department on either side excludes the record from every
// classification.
func TestPlanExcludesInvalidKeys(t *testing.T) {
	source := []catalog.Product{
		product(0, 10, "1.00"),
		product(1001, 0, "1.00"),
	}
	target := []catalog.Product{
		product(0, 20, "2.00"),
		product(2002, 0, "2.00"),
	}

	r := &Reconciler{Log: logging.Nop}
	plan := r.Plan(source, target)

	assert.Empty(t, plan.Adds)
	assert.Empty(t, plan.Updates)
	assert.Empty(t, plan.DeleteCandidates)
	assert.Zero(t, plan.SourceKeyed)
	assert.Zero(t, plan.TargetKeyed)
}

// Two source rows with the same composite key collapse to one product and
// the later row fully overrides the earlier one, no field merging.
func TestPlanDuplicateSourceKeysLastWins(t *testing.T) {
	first := product(1001, 10, "1.00")
	first.Name = "First"
	first.TextArea1 = "first text"

	second := product(1001, 10, "9.99")
	second.Name = "Second"

	r := &Reconciler{Log: logging.Nop}
	plan := r.Plan([]catalog.Product{first, second}, nil)

	require.Len(t, plan.Adds, 1)
	assert.Equal(t, "Second", plan.Adds[0].Name)
	assert.Equal(t, "9.99", plan.Adds[0].Price)
	assert.Equal(t, "", plan.Adds[0].TextArea1, "earlier row's fields must not leak through")
	assert.Equal(t, 1, plan.SourceKeyed)
}

// Duplicate target keys produce only one delete-candidate entry.
func TestPlanDuplicateTargetKeys(t *testing.T) {
	target := []catalog.Product{
		product(1003, 10, "1.00"),
		product(1003, 10, "2.00"),
	}

	r := &Reconciler{Log: logging.Nop}
	plan := r.Plan(nil, target)

	assert.Len(t, plan.DeleteCandidates, 1)
}
