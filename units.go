package main

// 示例模块在 init() 中注册到全局注册表。
import _ "github.com/any-hub/gomonkey/internal/sample"
