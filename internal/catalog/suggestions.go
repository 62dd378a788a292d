package catalog

import "github.com/slam0615/sc2026/internal/schema"

// defaultSuggestions are the per-topic advice cards shown under the result
// view. Icon names follow the presentation layer's icon set.
var defaultSuggestions = []schema.Suggestion{
	{
		Icon:  "Briefcase",
		Title: "健康政策與組織支持",
		Content: "由高階主管具名承諾推動健康職場，設置委員會或專責人員，並將健康促進納入年度計畫與預算。\n" +
			"政策內容應公告周知，讓員工清楚單位對健康的重視與資源投入。",
	},
	{
		Icon:  "Search",
		Title: "健康需求評估",
		Content: "善用健康檢查結果與問卷調查，找出單位的主要健康問題（如代謝症候群、肌肉骨骼不適），" +
			"據以規劃活動優先順序，避免活動與需求脫節。",
	},
	{
		Icon:  "Activity",
		Title: "身體活動",
		Content: "鼓勵員工每週累積 150 分鐘以上中等強度身體活動。可辦理健走、樓梯運動、運動社團，" +
			"或提供運動設施與費用補助，降低參與門檻。",
	},
	{
		Icon:  "Utensils",
		Title: "健康飲食",
		Content: "供膳場所提供少油、少鹽、少糖及高纖之健康餐飲選擇，標示熱量與營養成分，" +
			"並推廣多喝白開水、少喝含糖飲料。",
	},
	{
		Icon:  "Scale",
		Title: "健康體位管理",
		Content: "結合健康檢查資料推動體重管理班或減重競賽，協助 BMI 過高之員工設定可達成的目標，" +
			"並提供飲食與運動之個別建議。",
	},
	{
		Icon:  "Ban",
		Title: "菸害防制",
		Content: "落實室內工作場所全面禁菸，張貼明顯禁菸標示，並主動提供戒菸班、戒菸專線或" +
			"醫療院所戒菸服務之轉介資訊。",
	},
	{
		Icon:  "ShieldCheck",
		Title: "安全防護與職業病預防",
		Content: "定期實施作業環境監測，提供適當個人防護具並督導使用；針對重複性作業、重物搬運等" +
			"人因性危害進行工程或行政改善。",
	},
	{
		Icon:  "Smile",
		Title: "心理健康與壓力調適",
		Content: "建立員工協助方案（EAP）或心理諮詢管道，辦理壓力管理與正念課程，" +
			"並留意工時與職場霸凌等心理社會危害因子。",
	},
	{
		Icon:  "Wind",
		Title: "空氣品質與通風",
		Content: "維持工作場所良好通風與適宜溫濕度，定期清潔空調系統；" +
			"於空氣品質不良時提供適當防護或調整戶外作業。",
	},
	{
		Icon:  "Users",
		Title: "眷屬與社區參與",
		Content: "將健康促進活動擴及員工眷屬、承攬商與社區，例如邀請參加健康活動、四癌篩檢或疫苗接種，" +
			"認養公園綠地供健走使用，共同營造支持性環境。",
	},
}
