// Package modules 实现 gomonkey 的进程内模块运行时。
//
// 模块由编译期注册的 Source 工厂在首次 Import 时构建，并缓存在 Runtime 的模块表中；
// Runtime 在隐式源码查找之前依次询问 meta path 上的 Finder，
// 因此插入到 meta path 首位的 Finder 能够拦截之后的每一次模块加载。
//
// 模块作者需要：
//  1. 在 init() 中通过 MustRegisterSource 注册模块名与工厂函数；
//  2. 在工厂中通过 Module.Set 暴露属性，通过 Runtime.Import 声明依赖；
//  3. 保持工厂无副作用（除依赖导入外），同一 Runtime 内每个模块只构建一次。
package modules
