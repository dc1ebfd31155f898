//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建前需要把仓库根目录的 data/ 复制到此目录：
//
//	cp -r ../data ./data
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/ornaments.yaml data/layout.yaml data/gestures.yaml
//go:embed data/landmarks_sample.yaml
var dataFS embed.FS
