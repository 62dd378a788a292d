package catalog

import "github.com/slam0615/sc2026/internal/schema"

// defaultParts declares the five weighted parts. The budgets sum to 100 and
// each must agree with the summed points of the part's questions below.
var defaultParts = []schema.Part{
	{ID: 1, Title: "一、職場健康政策與計畫", Points: 30},
	{ID: 2, Title: "二、職場健康需求評估", Points: 14},
	{ID: 3, Title: "三、健康促進設施與活動", Points: 38},
	{ID: 4, Title: "四、生理健康工作環境", Points: 12},
	{ID: 5, Title: "五、社區參與", Points: 6},
}

// defaultQuestions is the fixed questionnaire in presentation order. The
// validator reports the first unanswered question in this order.
var defaultQuestions = []schema.Question{
	// 一、職場健康政策與計畫 (30 分)
	{ID: 1, Part: 1, Points: 5, Text: "單位訂有職場健康促進相關政策或書面承諾，並經高階主管簽署公告。"},
	{ID: 2, Part: 1, Points: 5, Text: "單位設有推動職場健康促進之委員會，或指定專責（兼辦）人員。"},
	{ID: 3, Part: 1, Points: 5, Text: "年度工作計畫納入職場健康促進項目，並編列經費或相關資源。"},
	{ID: 4, Part: 1, Points: 5, Text: "健康促進計畫之規劃過程有勞工或其代表參與討論。"},
	{ID: 5, Part: 1, Points: 5, Text: "定期檢討健康促進計畫之執行成效，並留有會議或檢討紀錄。"},
	{ID: 6, Part: 1, Points: 5, Text: "將職場健康促進推動成果納入年度報告，或對內外公開分享。"},

	// 二、職場健康需求評估 (14 分)
	{ID: 7, Part: 2, Points: 5, Text: "定期辦理員工健康檢查，且整體受檢率達八成以上。",
		Note: "一般健康檢查應依勞工健康保護規則之年限規定辦理；未依規定辦理者本題請勾選「否」。"},
	{ID: 8, Part: 2, Points: 5, Text: "分析員工健康檢查結果，掌握單位主要健康問題與高風險族群。"},
	{ID: 9, Part: 2, Points: 4, Text: "曾以問卷、座談或訪談等方式調查員工健康需求，作為活動規劃依據。"},

	// 三、健康促進設施與活動 (38 分)
	{ID: 10, Part: 3, Points: 4, Text: "辦理健康飲食推廣活動，或於供膳場所提供健康餐飲選擇。"},
	{ID: 11, Part: 3, Points: 4, Text: "辦理身體活動推廣，如健走活動、運動社團或體適能課程。"},
	{ID: 12, Part: 3, Points: 4, Text: "提供運動設施、運動空間，或運動費用補助。"},
	{ID: 13, Part: 3, Points: 4, Text: "辦理菸害防制宣導，並於工作場所設置明顯禁菸標示。",
		Note: "室內工作場所全面禁菸為菸害防制法之規定；僅依法設置標示而無宣導者，本題請勾選「否」。"},
	{ID: 14, Part: 3, Points: 4, Text: "提供戒菸服務轉介管道，或辦理戒菸班、戒菸競賽等活動。"},
	{ID: 15, Part: 3, Points: 4, Text: "辦理壓力管理、正念紓壓或其他心理健康促進活動。"},
	{ID: 16, Part: 3, Points: 4, Text: "提供員工協助方案（EAP）或心理諮詢、輔導管道。"},
	{ID: 17, Part: 3, Points: 4, Text: "辦理癌症防治宣導，或協助安排四癌篩檢服務。"},
	{ID: 18, Part: 3, Points: 3, Text: "設置符合規定之哺集乳室，並維持良好使用狀態。"},
	{ID: 19, Part: 3, Points: 3, Text: "定期辦理健康講座，或提供健康資訊專欄、電子報等宣導管道。"},

	// 四、生理健康工作環境 (12 分)
	{ID: 20, Part: 4, Points: 3, Text: "工作場所之採光、通風及溫濕度適宜，並定期檢點維護。"},
	{ID: 21, Part: 4, Points: 3, Text: "定期實施作業環境監測，並針對發現之危害進行改善。"},
	{ID: 22, Part: 4, Points: 3, Text: "提供必要之個人防護具，並督導勞工正確使用。"},
	{ID: 23, Part: 4, Points: 3, Text: "針對人因性危害（如重複性作業、重物搬運）採取改善措施。"},

	// 五、社區參與 (6 分)
	{ID: 24, Part: 5, Points: 3, Text: "辦理或參與社區健康促進活動，並邀請員工眷屬共同參加。"},
	{ID: 25, Part: 5, Points: 3, Text: "與社區、承攬商或供應商分享健康促進資源或經驗。"},
}
