// =============================================================================
// 🪑 MockTemplate - 家具模板模拟实现
// =============================================================================
// 用于测试的模板模拟，支持调用计数与几何生成错误注入
// =============================================================================
package mocks

import (
	"sync/atomic"

	"github.com/BaSui01/formflow/engine"
	"github.com/BaSui01/formflow/types"
)

// MockTemplate 包装真实模板，记录几何生成调用次数，并可注入错误
type MockTemplate struct {
	inner engine.Template

	geometryCalls atomic.Int64
	geometryErr   error
}

// NewMockTemplate 创建包装 inner 的 MockTemplate
func NewMockTemplate(inner engine.Template) *MockTemplate {
	return &MockTemplate{inner: inner}
}

// WithGeometryError 设置几何生成错误
func (m *MockTemplate) WithGeometryError(err error) *MockTemplate {
	m.geometryErr = err
	return m
}

// GeometryCalls 返回几何生成调用次数
func (m *MockTemplate) GeometryCalls() int {
	return int(m.geometryCalls.Load())
}

func (m *MockTemplate) GenerateGeometry(params types.ParametricParameters) (*types.SceneNode, error) {
	m.geometryCalls.Add(1)
	if m.geometryErr != nil {
		return nil, m.geometryErr
	}
	return m.inner.GenerateGeometry(params)
}

func (m *MockTemplate) GenerateMetadata(params types.ParametricParameters, profile types.CulturalProfile) (types.Metadata, error) {
	return m.inner.GenerateMetadata(params, profile)
}

func (m *MockTemplate) ValidateParameters(params types.ParametricParameters) bool {
	return m.inner.ValidateParameters(params)
}

func (m *MockTemplate) CulturalProportions(profile types.CulturalProfile) types.Proportions {
	return m.inner.CulturalProportions(profile)
}

var _ engine.Template = (*MockTemplate)(nil)
