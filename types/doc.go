// Copyright (c) FormFlow Authors.
// Licensed under the MIT License.

/*
Package types 提供 FormFlow 引擎的全局共享类型定义。

# 概述

types 是最底层的公共包，不依赖任何内部包，为 culture、engine、templates、
analyzer 等上层模块提供统一的类型契约。所有跨包共享的结构体、枚举和
错误码均定义于此，以避免循环依赖。

# 核心类型

  - CulturalProfile      — 文化档案（比例、材料偏好、美学、人体工学）
  - ParametricParameters — 参数化生成请求，值类型，同时作为缓存键来源
  - AuthenticityScore    — 五维文化真实性评分（全部归一化到 [0,1]）
  - GenerationResult     — 生成结果（几何、材质、元数据、评分、性能）
  - SceneNode            — 不透明场景图节点，引擎仅按 Component 标签遍历
  - UserFurnitureRequest — 批量生成的用户请求
  - Error / ErrorCode    — 结构化错误体系，含 Retryable 标记

# 主要能力

  - 错误工具链：IsErrorCode / IsRetryable / GetErrorCode
  - 深拷贝：GenerationResult.Clone / SceneNode.Clone（缓存防御性拷贝）
  - 场景遍历：SceneNode.Walk / SceneNode.CountNodes
*/
package types
