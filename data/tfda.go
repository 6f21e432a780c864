// Package data bundles the TFDA common-food reference table used as the
// search fallback tier. Values are per serving.
package data

type ReferenceFood struct {
	Name        string
	Calories    float64
	Protein     float64
	Carbs       float64
	Fat         float64
	ServingSize string
}

var Foods = []ReferenceFood{
	// 米麵類
	{Name: "白米飯", Calories: 130, Protein: 2.6, Carbs: 28, Fat: 0.2, ServingSize: "100克"},
	{Name: "米粉", Calories: 109, Protein: 2.2, Carbs: 24, Fat: 0.3, ServingSize: "100克"},
	{Name: "麵條", Calories: 138, Protein: 5, Carbs: 28, Fat: 0.5, ServingSize: "100克"},
	{Name: "烏龍麵", Calories: 138, Protein: 4.2, Carbs: 27, Fat: 0.5, ServingSize: "100克"},
	{Name: "意大利麵", Calories: 131, Protein: 5, Carbs: 25, Fat: 1.1, ServingSize: "100克"},
	{Name: "粥 (白粥)", Calories: 40, Protein: 1, Carbs: 9, Fat: 0.1, ServingSize: "100克"},
	{Name: "糙米", Calories: 111, Protein: 2.6, Carbs: 23, Fat: 0.9, ServingSize: "100克"},
	{Name: "燕麥", Calories: 389, Protein: 17, Carbs: 66, Fat: 6.9, ServingSize: "100克"},
	{Name: "饅頭", Calories: 220, Protein: 7, Carbs: 44, Fat: 1.5, ServingSize: "100克"},
	{Name: "米漢堡 (100g)", Calories: 250, Protein: 5, Carbs: 45, Fat: 3, ServingSize: "100克"},

	// 蛋白質
	{Name: "雞蛋", Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11, ServingSize: "100克"},
	{Name: "雞肉（去皮）", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, ServingSize: "100克"},
	{Name: "雞腿肉", Calories: 209, Protein: 26, Carbs: 0, Fat: 11, ServingSize: "100克"},
	{Name: "雞胸肉", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, ServingSize: "100克"},
	{Name: "鴨肉", Calories: 337, Protein: 19, Carbs: 0, Fat: 28, ServingSize: "100克"},
	{Name: "豬肉（瘦）", Calories: 242, Protein: 27, Carbs: 0, Fat: 14, ServingSize: "100克"},
	{Name: "豬肉（五花）", Calories: 395, Protein: 19, Carbs: 0, Fat: 35, ServingSize: "100克"},
	{Name: "牛肉（瘦）", Calories: 250, Protein: 26, Carbs: 0, Fat: 15, ServingSize: "100克"},
	{Name: "羊肉", Calories: 294, Protein: 25, Carbs: 0, Fat: 21, ServingSize: "100克"},
	{Name: "牛腩", Calories: 220, Protein: 18, Carbs: 0, Fat: 16, ServingSize: "100克"},
	{Name: "魚肉 (鱸魚)", Calories: 91, Protein: 20.5, Carbs: 0, Fat: 1.7, ServingSize: "100克"},
	{Name: "鮭魚", Calories: 208, Protein: 20, Carbs: 0, Fat: 13, ServingSize: "100克"},
	{Name: "鯛魚", Calories: 96, Protein: 20, Carbs: 0, Fat: 1.5, ServingSize: "100克"},
	{Name: "蝦", Calories: 99, Protein: 20, Carbs: 0, Fat: 0.3, ServingSize: "100克"},
	{Name: "蟹肉", Calories: 95, Protein: 20, Carbs: 0, Fat: 1, ServingSize: "100克"},
	{Name: "魷魚", Calories: 92, Protein: 15.6, Carbs: 3.1, Fat: 1.4, ServingSize: "100克"},
	{Name: "章魚", Calories: 82, Protein: 14.9, Carbs: 3.1, Fat: 1.0, ServingSize: "100克"},
	{Name: "豆腐", Calories: 76, Protein: 8, Carbs: 1.5, Fat: 4.8, ServingSize: "100克"},
	{Name: "豆干", Calories: 182, Protein: 17, Carbs: 7, Fat: 11, ServingSize: "100克"},
	{Name: "黑豆", Calories: 132, Protein: 11, Carbs: 12, Fat: 0.5, ServingSize: "100克"},

	// 乳製品
	{Name: "牛奶", Calories: 61, Protein: 3.2, Carbs: 4.8, Fat: 3.3, ServingSize: "100毫升"},
	{Name: "優格", Calories: 59, Protein: 3.5, Carbs: 4.7, Fat: 0.4, ServingSize: "100克"},
	{Name: "起司 (切達)", Calories: 402, Protein: 25, Carbs: 1.3, Fat: 33, ServingSize: "100克"},
	{Name: "奶油", Calories: 717, Protein: 0.6, Carbs: 0.4, Fat: 81, ServingSize: "100克"},

	// 蔬菜
	{Name: "番茄", Calories: 18, Protein: 0.9, Carbs: 3.9, Fat: 0.2, ServingSize: "100克"},
	{Name: "青菜", Calories: 31, Protein: 2.6, Carbs: 5.2, Fat: 0.3, ServingSize: "100克"},
	{Name: "高麗菜", Calories: 23, Protein: 1.3, Carbs: 5.2, Fat: 0.2, ServingSize: "100克"},
	{Name: "油菜", Calories: 15, Protein: 2.2, Carbs: 2.3, Fat: 0.2, ServingSize: "100克"},
	{Name: "菠菜", Calories: 23, Protein: 2.7, Carbs: 3.6, Fat: 0.4, ServingSize: "100克"},
	{Name: "胡蘿蔔", Calories: 41, Protein: 0.9, Carbs: 10, Fat: 0.2, ServingSize: "100克"},
	{Name: "黃瓜", Calories: 15, Protein: 0.6, Carbs: 3.6, Fat: 0.1, ServingSize: "100克"},
	{Name: "洋蔥", Calories: 40, Protein: 1.1, Carbs: 9, Fat: 0.1, ServingSize: "100克"},
	{Name: "大蒜", Calories: 149, Protein: 6.4, Carbs: 33, Fat: 0.5, ServingSize: "100克"},
	{Name: "花椰菜", Calories: 34, Protein: 2.8, Carbs: 7, Fat: 0.4, ServingSize: "100克"},
	{Name: "玉米", Calories: 86, Protein: 3.3, Carbs: 19, Fat: 1.2, ServingSize: "100克"},
	{Name: "馬鈴薯", Calories: 77, Protein: 2, Carbs: 17, Fat: 0.1, ServingSize: "100克"},
	{Name: "茄子", Calories: 25, Protein: 1, Carbs: 6, Fat: 0.2, ServingSize: "100克"},
	{Name: "青椒", Calories: 20, Protein: 0.9, Carbs: 4.6, Fat: 0.2, ServingSize: "100克"},

	// 水果
	{Name: "蘋果", Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2, ServingSize: "100克"},
	{Name: "香蕉", Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3, ServingSize: "100克"},
	{Name: "橘子", Calories: 47, Protein: 0.7, Carbs: 12, Fat: 0.3, ServingSize: "100克"},
	{Name: "檸檬", Calories: 29, Protein: 1.1, Carbs: 9, Fat: 0.3, ServingSize: "100克"},
	{Name: "葡萄", Calories: 67, Protein: 0.6, Carbs: 17, Fat: 0.4, ServingSize: "100克"},
	{Name: "西瓜", Calories: 30, Protein: 0.6, Carbs: 7.6, Fat: 0.2, ServingSize: "100克"},
	{Name: "草莓", Calories: 32, Protein: 0.8, Carbs: 7.7, Fat: 0.3, ServingSize: "100克"},
	{Name: "芒果", Calories: 60, Protein: 0.8, Carbs: 15, Fat: 0.4, ServingSize: "100克"},
	{Name: "鳳梨", Calories: 50, Protein: 0.5, Carbs: 13, Fat: 0.1, ServingSize: "100克"},
	{Name: "木瓜", Calories: 43, Protein: 0.5, Carbs: 11, Fat: 0.3, ServingSize: "100克"},
	{Name: "奇異果", Calories: 61, Protein: 1.1, Carbs: 15, Fat: 0.5, ServingSize: "100克"},

	// 穀物與根莖
	{Name: "地瓜", Calories: 86, Protein: 1.6, Carbs: 20, Fat: 0.1, ServingSize: "100克"},
	{Name: "芋頭", Calories: 89, Protein: 1.5, Carbs: 21, Fat: 0.2, ServingSize: "100克"},
	{Name: "紫米", Calories: 360, Protein: 6.9, Carbs: 77, Fat: 2.5, ServingSize: "100克"},
	{Name: "糯米", Calories: 350, Protein: 6.6, Carbs: 80, Fat: 1.2, ServingSize: "100克"},

	// 麵包與烘焙
	{Name: "白麵包", Calories: 265, Protein: 8.4, Carbs: 49, Fat: 3.2, ServingSize: "100克"},
	{Name: "吐司", Calories: 278, Protein: 8.7, Carbs: 49, Fat: 3.8, ServingSize: "100克"},
	{Name: "全麥麵包", Calories: 247, Protein: 9.2, Carbs: 41, Fat: 3.3, ServingSize: "100克"},
	{Name: "饼干", Calories: 502, Protein: 6.1, Carbs: 69, Fat: 24, ServingSize: "100克"},

	// 堅果與種子
	{Name: "花生", Calories: 567, Protein: 25.8, Carbs: 16.1, Fat: 49.2, ServingSize: "100克"},
	{Name: "核桃", Calories: 654, Protein: 15.2, Carbs: 13.7, Fat: 65.2, ServingSize: "100克"},
	{Name: "杏仁", Calories: 579, Protein: 21.2, Carbs: 21.6, Fat: 49.9, ServingSize: "100克"},
	{Name: "芝麻", Calories: 573, Protein: 17.7, Carbs: 23.4, Fat: 49.7, ServingSize: "100克"},

	// 油脂與調味
	{Name: "豬油", Calories: 898, Protein: 0, Carbs: 0, Fat: 100, ServingSize: "100克"},
	{Name: "植物油", Calories: 884, Protein: 0, Carbs: 0, Fat: 100, ServingSize: "100克"},
	{Name: "橄欖油", Calories: 884, Protein: 0, Carbs: 0, Fat: 100, ServingSize: "100克"},
	{Name: "醬油", Calories: 61, Protein: 8, Carbs: 5, Fat: 0, ServingSize: "15毫升"},
	{Name: "鹽", Calories: 0, Protein: 0, Carbs: 0, Fat: 0, ServingSize: "1克"},
	{Name: "糖", Calories: 387, Protein: 0, Carbs: 100, Fat: 0, ServingSize: "100克"},

	// 飲品
	{Name: "綠茶", Calories: 0, Protein: 0, Carbs: 0, Fat: 0, ServingSize: "200毫升"},
	{Name: "咖啡 (黑)", Calories: 2, Protein: 0.3, Carbs: 0, Fat: 0, ServingSize: "200毫升"},
	{Name: "拿鐵", Calories: 125, Protein: 5, Carbs: 11, Fat: 6, ServingSize: "200毫升"},
	{Name: "豆漿", Calories: 54, Protein: 3.3, Carbs: 6.3, Fat: 1.8, ServingSize: "100毫升"},
	{Name: "果汁", Calories: 45, Protein: 0.5, Carbs: 11, Fat: 0, ServingSize: "100毫升"},

	// 小吃與速食
	{Name: "滷肉飯 (台式)", Calories: 350, Protein: 12, Carbs: 45, Fat: 12, ServingSize: "100克"},
	{Name: "牛肉麵", Calories: 220, Protein: 14, Carbs: 30, Fat: 7, ServingSize: "100克"},
	{Name: "鹽酥雞", Calories: 320, Protein: 20, Carbs: 10, Fat: 22, ServingSize: "100克"},
	{Name: "珍珠奶茶", Calories: 230, Protein: 2, Carbs: 40, Fat: 6, ServingSize: "1杯(約350ml)"},
	{Name: "炸雞排", Calories: 450, Protein: 28, Carbs: 20, Fat: 30, ServingSize: "100克"},
	{Name: "關東煮", Calories: 80, Protein: 6, Carbs: 6, Fat: 3, ServingSize: "100克"},
	{Name: "章魚燒", Calories: 210, Protein: 7, Carbs: 26, Fat: 9, ServingSize: "100克"},

	// 甜點
	{Name: "豆花", Calories: 120, Protein: 5, Carbs: 14, Fat: 5, ServingSize: "100克"},
	{Name: "紅豆餅", Calories: 260, Protein: 6, Carbs: 45, Fat: 6, ServingSize: "100克"},
	{Name: "蛋糕 (海綿)", Calories: 389, Protein: 5, Carbs: 50, Fat: 17, ServingSize: "100克"},
	{Name: "冰淇淋", Calories: 207, Protein: 3.5, Carbs: 24, Fat: 11, ServingSize: "100克"},

	// 便利商店常見
	{Name: "飯糰", Calories: 300, Protein: 8, Carbs: 45, Fat: 8, ServingSize: "1個(約100g)"},
	{Name: "便當 (排骨)", Calories: 650, Protein: 28, Carbs: 80, Fat: 25, ServingSize: "整份"},
	{Name: "三明治", Calories: 280, Protein: 10, Carbs: 30, Fat: 12, ServingSize: "1份"},
	{Name: "速食漢堡", Calories: 295, Protein: 12, Carbs: 33, Fat: 12, ServingSize: "1個"},

	// 乾貨與罐頭
	{Name: "金針菇 (乾)", Calories: 350, Protein: 21, Carbs: 50, Fat: 3, ServingSize: "100克"},
	{Name: "干貝 (乾)", Calories: 250, Protein: 60, Carbs: 0, Fat: 1, ServingSize: "100克"},

	// 補充項目
	{Name: "蜂蜜", Calories: 304, Protein: 0.3, Carbs: 82, Fat: 0, ServingSize: "100克"},
	{Name: "燕麥餅乾", Calories: 450, Protein: 6, Carbs: 62, Fat: 18, ServingSize: "100克"},
	{Name: "巧克力", Calories: 546, Protein: 4.9, Carbs: 61, Fat: 31, ServingSize: "100克"},
}
