//go:build !mobile

// stub.go - 桌面构建下的占位
//
// 不带 -tags mobile 时只编译这个文件，移动端入口
// （mobile.go / embed.go）被构建标签排除在外。
package mobile

// Dummy 空导出函数，让桌面构建下本包仍可被引用
func Dummy() {}
