// =============================================================================
// 🤖 MockAnalyzer - 需求分析器模拟实现
// =============================================================================
// 用于测试的需求分析器模拟，支持固定结果、错误注入与延迟注入
//
// 使用方法:
//
//	analyzer := mocks.NewMockAnalyzer().
//	    WithResult(&types.AnalysisResult{...}).
//	    WithError(errors.New("boom"))
// =============================================================================
package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/BaSui01/formflow/types"
)

// MockAnalyzer 是需求分析器的模拟实现
type MockAnalyzer struct {
	mu sync.Mutex

	// 固定返回值
	result *types.AnalysisResult

	// 错误注入
	err error
	// 前 failCount 次调用返回 err，之后返回 result
	failCount int

	// 延迟注入（模拟慢响应）
	delay time.Duration

	// 调用记录
	calls    int
	requests []*types.UserFurnitureRequest
}

// NewMockAnalyzer 创建新的 MockAnalyzer
func NewMockAnalyzer() *MockAnalyzer {
	return &MockAnalyzer{}
}

// WithResult 设置固定分析结果
func (m *MockAnalyzer) WithResult(r *types.AnalysisResult) *MockAnalyzer {
	m.result = r
	return m
}

// WithError 设置固定错误
func (m *MockAnalyzer) WithError(err error) *MockAnalyzer {
	m.err = err
	return m
}

// WithFailures 设置前 n 次调用失败，之后成功
func (m *MockAnalyzer) WithFailures(n int, err error) *MockAnalyzer {
	m.failCount = n
	m.err = err
	return m
}

// WithDelay 设置响应延迟
func (m *MockAnalyzer) WithDelay(d time.Duration) *MockAnalyzer {
	m.delay = d
	return m
}

// Name 返回分析器名称
func (m *MockAnalyzer) Name() string {
	return "mock"
}

// Analyze 实现 analyzer.Analyzer 接口
func (m *MockAnalyzer) Analyze(ctx context.Context, req *types.UserFurnitureRequest) (*types.AnalysisResult, error) {
	m.mu.Lock()
	m.calls++
	call := m.calls
	m.requests = append(m.requests, req)
	delay := m.delay
	m.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil && (m.failCount == 0 || call <= m.failCount) {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	// 默认结果: 每位客人一把椅子
	pieces := make([]types.FurniturePiece, 0, req.GuestCount)
	for i := 0; i < req.GuestCount; i++ {
		pieces = append(pieces, types.FurniturePiece{
			Type: "chair",
			Parameters: types.ParametricParameters{
				Type:               "chair",
				Culture:            req.Culture,
				Width:              0.45,
				Depth:              0.45,
				Height:             0.45,
				PrimaryMaterial:    "wood-oak",
				Formality:          types.FormalitySemiFormal,
				CraftsmanshipLevel: types.CraftsmanshipRefined,
			},
			Quantity: 1,
		})
	}
	return &types.AnalysisResult{
		FurniturePieces: pieces,
		OverallTheme:    req.Culture + " mock theme",
	}, nil
}

// Calls 返回调用次数
func (m *MockAnalyzer) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// LastRequest 返回最近一次请求，无调用时返回 nil
func (m *MockAnalyzer) LastRequest() *types.UserFurnitureRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return nil
	}
	return m.requests[len(m.requests)-1]
}
