// Package patch 负责把入口点目录解析为可调用的补丁与参数解析函数。
//
// 解析单个入口点时会在副作用守卫下加载其模块：补丁模块在加载期不得导入
// 与自身无关的模块，否则整个解析失败。
package patch
