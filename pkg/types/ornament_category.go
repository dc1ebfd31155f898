package types

// OrnamentCategory 定义挂饰的类别
// 每个类别对应 data/ornaments.yaml 中的一行参数
// （重量、缩放范围、碰撞半径、配色），运行时纯表查找
type OrnamentCategory int

const (
	// CategoryUnknown 未知类别
	CategoryUnknown OrnamentCategory = iota
	// CategoryBall 圆球
	CategoryBall
	// CategoryBox 礼盒
	CategoryBox
	// CategoryIcicle 冰柱
	CategoryIcicle
	// CategoryBell 铃铛
	CategoryBell
	// CategoryCandy 拐杖糖
	CategoryCandy
	// CategoryLight 彩灯
	CategoryLight
	// CategoryPinecone 松果
	CategoryPinecone
	// CategoryPhoto 照片框（上传图片专用，不参与加权抽取）
	CategoryPhoto
)

// ornamentCategoryNames 类别名 ↔ 枚举的映射表
// 名称与 data/ornaments.yaml 中的 key 一致
var ornamentCategoryNames = map[OrnamentCategory]string{
	CategoryBall:     "ball",
	CategoryBox:      "box",
	CategoryIcicle:   "icicle",
	CategoryBell:     "bell",
	CategoryCandy:    "candy",
	CategoryLight:    "light",
	CategoryPinecone: "pinecone",
	CategoryPhoto:    "photo",
}

// String 返回类别的字符串表示
func (c OrnamentCategory) String() string {
	if name, ok := ornamentCategoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseOrnamentCategory 从配置文件中的类别名解析枚举值
// 未知名称返回 CategoryUnknown 和 false
func ParseOrnamentCategory(name string) (OrnamentCategory, bool) {
	for c, n := range ornamentCategoryNames {
		if n == name {
			return c, true
		}
	}
	return CategoryUnknown, false
}

// DrawableCategories 返回参与加权随机抽取的 7 个挂饰类别
func DrawableCategories() []OrnamentCategory {
	return []OrnamentCategory{
		CategoryBall, CategoryBox, CategoryIcicle, CategoryBell,
		CategoryCandy, CategoryLight, CategoryPinecone,
	}
}
