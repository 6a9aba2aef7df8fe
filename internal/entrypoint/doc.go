// Package entrypoint 维护 gomonkey 的插件清单：每个入口点由 group/name/target 组成，
// target 形如 "unit:attr.sub"，指向运行时中的模块及其属性路径。
//
// 入口点可以在 init() 中通过 MustRegister 注册，也可以由 HCL/YAML 清单文件在启动时加载。
// 同一 group 内名称唯一，Group 返回的顺序即注册顺序，也就是补丁的目录顺序。
package entrypoint
