// =============================================================================
// 📦 测试数据工厂 - 生成请求测试数据
// =============================================================================
// 提供预定义的参数化参数与批量请求，用于测试
// =============================================================================
package fixtures

import (
	"github.com/BaSui01/formflow/types"
)

// =============================================================================
// 🪑 参数工厂
// =============================================================================

// JapaneseChairParams 返回一把日式椅子的有效参数
func JapaneseChairParams() types.ParametricParameters {
	return types.ParametricParameters{
		Type:                "chair",
		Culture:             "japanese",
		Width:               0.45,
		Depth:               0.45,
		Height:              0.40,
		PrimaryMaterial:     "wood-oak",
		SecondaryMaterial:   "fabric-linen",
		Formality:           types.FormalitySemiFormal,
		CraftsmanshipLevel:  types.CraftsmanshipMasterwork,
		CulturalElements:    []string{"tatami-platform", "shoji-pattern"},
		ColorPalette:        []string{"natural-wood", "charcoal"},
		DecorativeIntensity: 0.6,
	}
}

// ScandinavianTableParams 返回一张北欧餐桌的有效参数
func ScandinavianTableParams() types.ParametricParameters {
	return types.ParametricParameters{
		Type:                "table",
		Culture:             "scandinavian",
		Width:               1.8,
		Depth:               0.9,
		Height:              0.74,
		PrimaryMaterial:     "wood-birch",
		Formality:           types.FormalityCasual,
		CraftsmanshipLevel:  types.CraftsmanshipSimple,
		ColorPalette:        []string{"pale-wood", "white"},
		DecorativeIntensity: 0.2,
	}
}

// InvalidParams 返回尺寸和材质都缺失的参数，用于验证器测试
func InvalidParams() types.ParametricParameters {
	return types.ParametricParameters{
		Type:    "chair",
		Culture: "japanese",
		Width:   -1,
		Height:  0,
	}
}

// =============================================================================
// 🎉 批量请求工厂
// =============================================================================

// DinnerPartyRequest 返回一个 8 人晚宴的批量请求
func DinnerPartyRequest() *types.UserFurnitureRequest {
	return &types.UserFurnitureRequest{
		EventType:  "dinner-party",
		Culture:    "japanese",
		GuestCount: 8,
		SpaceDimensions: types.Dimensions{
			Width:  6.0,
			Height: 2.8,
			Depth:  5.0,
		},
		BudgetRange:    types.BudgetHigh,
		FormalityLevel: types.FormalityFormal,
	}
}

// CasualGatheringRequest 返回一个小型休闲聚会的批量请求
func CasualGatheringRequest() *types.UserFurnitureRequest {
	return &types.UserFurnitureRequest{
		EventType:  "gathering",
		Culture:    "scandinavian",
		GuestCount: 4,
		SpaceDimensions: types.Dimensions{
			Width:  4.0,
			Height: 2.6,
			Depth:  4.0,
		},
		BudgetRange:    types.BudgetMedium,
		FormalityLevel: types.FormalityCasual,
	}
}
