package catalog

import "github.com/slam0615/sc2026/internal/schema"

// defaultBands partitions [0,100] in ascending order. The evaluator falls
// back to the first entry, so the lowest band is declared first.
var defaultBands = []schema.EvaluationBand{
	{
		Low:   0,
		High:  49,
		Title: "起步職場：健康促進待建立",
		Content: "貴單位的職場健康促進推動尚在起步階段。建議先由高階主管簽署健康職場承諾，指定專責人員，" +
			"並從員工健康檢查與需求調查著手，盤點單位目前的健康問題。\n" +
			"可先選擇一至兩項員工最有感的活動（如健走、健康飲食）開始推動，逐步累積經驗與參與度。",
	},
	{
		Low:   50,
		High:  69,
		Title: "成長中職場：已有基礎，持續擴展",
		Content: "貴單位已具備職場健康促進的基本架構，部分活動也已起步。建議將健康檢查結果與需求調查" +
			"納入年度計畫的規劃依據，讓活動更貼近員工實際需求。\n" +
			"同時可強化計畫的檢討機制，定期檢視執行成效，並將資源投入成效較佳的項目。",
	},
	{
		Low:   70,
		High:  89,
		Title: "績優職場：表現良好，追求卓越",
		Content: "貴單位的職場健康促進推動已相當完整，政策、評估與活動面向皆有具體作為。建議進一步將" +
			"健康促進融入日常管理，例如將成效指標納入部門目標，並擴大勞工參與決策的深度。\n" +
			"亦可開始將關懷範圍延伸至員工眷屬、承攬商與社區，深化健康職場文化。",
	},
	{
		Low:   90,
		High:  100,
		Title: "典範職場：全面落實，堪為標竿",
		Content: "恭喜貴單位！職場健康促進已全面落實於政策、環境與活動之中，足為其他單位之標竿。" +
			"建議持續維持現有推動能量，並將經驗對外分享，帶動產業與社區共同提升。\n" +
			"可考慮申請相關健康職場認證或獎項，讓努力獲得更多肯定。",
	},
}
