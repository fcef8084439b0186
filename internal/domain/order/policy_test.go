package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitchen_orders/internal/domain/catalog"
)

func TestResolveCook_ExplicitOverrideWins(t *testing.T) {
	dish := &catalog.Dish{ID: "d1", Name: "Schnitzel", DefaultCookID: "c1"}

	cookID, err := ResolveCook(dish, "c2")

	require.NoError(t, err)
	assert.Equal(t, "c2", cookID)
}

func TestResolveCook_FallsBackToDefault(t *testing.T) {
	dish := &catalog.Dish{ID: "d1", Name: "Schnitzel", DefaultCookID: "c1"}

	cookID, err := ResolveCook(dish, "")

	require.NoError(t, err)
	assert.Equal(t, "c1", cookID)
}

func TestResolveCook_NoDefaultNoOverride(t *testing.T) {
	dish := &catalog.Dish{ID: "d1", Name: "Schnitzel"}

	_, err := ResolveCook(dish, "")

	assert.ErrorIs(t, err, ErrMissingDefaultCook)
}

func TestResolveCook_NilDishWithOverride(t *testing.T) {
	// Resolution does not validate existence, the override is taken verbatim.
	cookID, err := ResolveCook(nil, "c9")

	require.NoError(t, err)
	assert.Equal(t, "c9", cookID)
}

func TestPlanUpsert_NewLine(t *testing.T) {
	plan, err := PlanUpsert(nil, 10, "no salt")

	require.NoError(t, err)
	assert.True(t, plan.Create)
	assert.Equal(t, 10, plan.Quantity)
	assert.Equal(t, "no salt", plan.Notes)
}

func TestPlanUpsert_MergeAccumulatesQuantity(t *testing.T) {
	existing := &Line{ID: "l1", Quantity: 10, Notes: "old note"}

	plan, err := PlanUpsert(existing, 15, "new note")

	require.NoError(t, err)
	assert.False(t, plan.Create)
	assert.Equal(t, "l1", plan.LineID)
	assert.Equal(t, 25, plan.Quantity)
	assert.Equal(t, "new note", plan.Notes)
}

func TestPlanUpsert_NotesReplacedEvenWhenEmpty(t *testing.T) {
	existing := &Line{ID: "l1", Quantity: 10, Notes: "old note"}

	plan, err := PlanUpsert(existing, 5, "")

	require.NoError(t, err)
	assert.Equal(t, "", plan.Notes)
}

func TestPlanUpsert_RejectsInvalidQuantity(t *testing.T) {
	_, err := PlanUpsert(nil, 0, "")
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = PlanUpsert(&Line{ID: "l1", Quantity: 10}, 501, "")
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}
