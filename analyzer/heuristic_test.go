package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BaSui01/formflow/culture"
	"github.com/BaSui01/formflow/types"
)

func dinnerRequest() *types.UserFurnitureRequest {
	return &types.UserFurnitureRequest{
		EventType:      "dinner-party",
		Culture:        "japanese",
		GuestCount:     8,
		BudgetRange:    types.BudgetLuxury,
		FormalityLevel: types.FormalityFormal,
	}
}

func TestHeuristicAnalyze(t *testing.T) {
	h := NewHeuristic(culture.NewStore())

	analysis, err := h.Analyze(context.Background(), dinnerRequest())
	require.NoError(t, err)
	require.Len(t, analysis.FurniturePieces, 3)

	chairs := analysis.FurniturePieces[0]
	assert.Equal(t, "chair", chairs.Type)
	assert.Equal(t, 8, chairs.Quantity)
	assert.InDelta(t, 0.38, chairs.Parameters.Height, 1e-9)
	assert.Equal(t, "wood-oak", chairs.Parameters.PrimaryMaterial)
	assert.Equal(t, types.CraftsmanshipMasterwork, chairs.Parameters.CraftsmanshipLevel)

	tables := analysis.FurniturePieces[1]
	assert.Equal(t, "table", tables.Type)
	assert.Equal(t, 2, tables.Quantity, "one table per started group of six")

	lamps := analysis.FurniturePieces[2]
	assert.Equal(t, "lamp", lamps.Type)
	assert.Equal(t, 2, lamps.Quantity)

	assert.Equal(t, "japanese dinner-party", analysis.OverallTheme)
}

func TestHeuristicSkipsLampsForCasualEvents(t *testing.T) {
	h := NewHeuristic(culture.NewStore())

	req := dinnerRequest()
	req.FormalityLevel = types.FormalityCasual
	req.BudgetRange = types.BudgetMedium

	analysis, err := h.Analyze(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, analysis.FurniturePieces, 2)
	assert.Equal(t, types.CraftsmanshipSimple, analysis.FurniturePieces[0].Parameters.CraftsmanshipLevel)
}

func TestHeuristicUnknownCulture(t *testing.T) {
	h := NewHeuristic(culture.NewStore())

	req := dinnerRequest()
	req.Culture = "martian"

	analysis, err := h.Analyze(context.Background(), req)
	require.NoError(t, err)
	// Degrades to the default profile instead of failing.
	assert.Equal(t, "wood-oak", analysis.FurniturePieces[0].Parameters.PrimaryMaterial)
	assert.Equal(t, "default dinner-party", analysis.OverallTheme)
}

func TestHeuristicRejectsInvalidRequest(t *testing.T) {
	h := NewHeuristic(culture.NewStore())

	req := dinnerRequest()
	req.GuestCount = 0

	_, err := h.Analyze(context.Background(), req)
	require.Error(t, err)
	assert.True(t, types.IsErrorCode(err, types.ErrInvalidRequest))
}

func TestHeuristicHonorsCancelledContext(t *testing.T) {
	h := NewHeuristic(culture.NewStore())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.Analyze(ctx, dinnerRequest())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCraftsmanshipForBudget(t *testing.T) {
	assert.Equal(t, types.CraftsmanshipMasterwork, craftsmanshipForBudget(types.BudgetLuxury))
	assert.Equal(t, types.CraftsmanshipRefined, craftsmanshipForBudget(types.BudgetHigh))
	assert.Equal(t, types.CraftsmanshipSimple, craftsmanshipForBudget(types.BudgetMedium))
	assert.Equal(t, types.CraftsmanshipSimple, craftsmanshipForBudget(types.BudgetLow))
}
