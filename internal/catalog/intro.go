package catalog

// introText is shown on the intro view before the questionnaire begins.
const introText = `本計分表協助各單位自我檢視職場健康促進之推動現況。

問卷共分五大構面、25 題，總分 100 分：
一、職場健康政策與計畫（30 分）
二、職場健康需求評估（14 分）
三、健康促進設施與活動（38 分）
四、生理健康工作環境（12 分）
五、社區參與（6 分）

每題請依貴單位實際推動情形勾選「是」或「否」；勾選「是」即獲得該題配分。
填答完成並送出後，系統將計算各構面得分率與總得分，並依總得分提供整體評語及
各項議題之具體建議，作為後續改善之參考。

填答結果僅供單位自我評估使用，不會對外傳送或留存。`
