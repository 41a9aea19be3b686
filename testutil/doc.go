// Copyright (c) FormFlow Authors.
// Licensed under the MIT License.

/*
Package testutil 提供 FormFlow 测试的共享工具和辅助函数。

# 概述

testutil 包为整个项目的单元测试与属性测试提供统一的辅助能力，
避免各包重复实现相似的测试基础设施。所有测试应优先使用此包
中的工具函数和 Mock 实现。

# 核心能力

  - 上下文辅助: TestContext / TestContextWithTimeout / CancelledContext，
    自动注册 Cleanup 防止泄漏
  - 断言工具: AssertScoreNormalized 校验评分分量落在 [0,1]，
    AssertSceneWellFormed 校验场景树节点完整性

# 子包

  - testutil/mocks: Mock 实现，包括 MockAnalyzer（需求分析器）与
    MockTemplate（家具模板包装器），均支持 Builder 模式与错误注入
  - testutil/fixtures: 测试数据工厂，提供预置生成参数与批量请求样例

# 使用示例

	ctx := testutil.TestContext(t)
	analyzer := mocks.NewMockAnalyzer().WithError(errors.New("offline"))
	_, err := analyzer.Analyze(ctx, fixtures.DinnerPartyRequest())
	require.Error(t, err)
*/
package testutil
