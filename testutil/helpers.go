// =============================================================================
// 🧪 测试辅助函数
// =============================================================================
// 提供通用的测试辅助函数和断言
//
// 使用方法:
//
//	ctx := testutil.TestContext(t)
//	testutil.AssertScoreNormalized(t, result.Score)
// =============================================================================
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/BaSui01/formflow/types"
)

// =============================================================================
// 🎯 上下文辅助
// =============================================================================

// TestContext 返回带超时的测试上下文
func TestContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// TestContextWithTimeout 返回带自定义超时的测试上下文
func TestContextWithTimeout(t *testing.T, timeout time.Duration) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}

// CancelledContext 返回已取消的上下文
func CancelledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

// =============================================================================
// 🔍 断言辅助
// =============================================================================

// AssertScoreNormalized 断言真实性评分的所有分量都在 [0,1] 范围内
func AssertScoreNormalized(t *testing.T, score types.AuthenticityScore) {
	t.Helper()

	checks := map[string]float64{
		"proportions":       score.Proportions,
		"materials":         score.Materials,
		"aesthetics":        score.Aesthetics,
		"cultural_elements": score.CulturalElements,
		"construction":      score.Construction,
		"overall":           score.Overall,
	}
	for name, v := range checks {
		if v < 0 || v > 1 {
			t.Errorf("score component %s out of range [0,1]: %v", name, v)
		}
	}
}

// AssertSceneWellFormed 断言场景树的每个节点都有名称和有效形状
func AssertSceneWellFormed(t *testing.T, root *types.SceneNode) {
	t.Helper()

	if root == nil {
		t.Fatal("scene root is nil")
	}
	root.Walk(func(n *types.SceneNode) {
		if n.Name == "" {
			t.Error("scene node has empty name")
		}
		switch n.Shape {
		case types.ShapeBox, types.ShapeCylinder, types.ShapeGroup:
		default:
			t.Errorf("scene node %q has unknown shape %q", n.Name, n.Shape)
		}
	})
}
