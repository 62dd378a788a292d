package catalog

import "github.com/slam0615/sc2026/internal/schema"

// defaultCities is the locality table for the address selectors. District
// options depend on the selected city; a city change always resets the
// district selection.
var defaultCities = []schema.City{
	{Name: "臺北市", Districts: []string{"中正區", "大同區", "中山區", "松山區", "大安區", "萬華區", "信義區", "士林區", "北投區", "內湖區", "南港區", "文山區"}},
	{Name: "新北市", Districts: []string{"板橋區", "三重區", "中和區", "永和區", "新莊區", "新店區", "土城區", "蘆洲區", "汐止區", "樹林區", "淡水區", "三峽區"}},
	{Name: "桃園市", Districts: []string{"桃園區", "中壢區", "平鎮區", "八德區", "楊梅區", "蘆竹區", "大溪區", "龜山區", "大園區", "觀音區"}},
	{Name: "臺中市", Districts: []string{"中區", "東區", "南區", "西區", "北區", "北屯區", "西屯區", "南屯區", "太平區", "大里區", "豐原區", "沙鹿區"}},
	{Name: "臺南市", Districts: []string{"中西區", "東區", "南區", "北區", "安平區", "安南區", "永康區", "歸仁區", "新營區", "善化區"}},
	{Name: "高雄市", Districts: []string{"楠梓區", "左營區", "鼓山區", "三民區", "鹽埕區", "前金區", "新興區", "苓雅區", "前鎮區", "旗津區", "小港區", "鳳山區", "岡山區"}},
	{Name: "基隆市", Districts: []string{"仁愛區", "信義區", "中正區", "中山區", "安樂區", "暖暖區", "七堵區"}},
	{Name: "新竹市", Districts: []string{"東區", "北區", "香山區"}},
	{Name: "新竹縣", Districts: []string{"竹北市", "竹東鎮", "新埔鎮", "關西鎮", "湖口鄉", "新豐鄉", "芎林鄉", "寶山鄉"}},
	{Name: "苗栗縣", Districts: []string{"苗栗市", "頭份市", "竹南鎮", "後龍鎮", "通霄鎮", "苑裡鎮", "卓蘭鎮"}},
	{Name: "彰化縣", Districts: []string{"彰化市", "員林市", "和美鎮", "鹿港鎮", "溪湖鎮", "二林鎮", "田中鎮", "北斗鎮"}},
	{Name: "南投縣", Districts: []string{"南投市", "埔里鎮", "草屯鎮", "竹山鎮", "集集鎮", "名間鄉"}},
	{Name: "雲林縣", Districts: []string{"斗六市", "斗南鎮", "虎尾鎮", "西螺鎮", "土庫鎮", "北港鎮"}},
	{Name: "嘉義市", Districts: []string{"東區", "西區"}},
	{Name: "嘉義縣", Districts: []string{"太保市", "朴子市", "布袋鎮", "大林鎮", "民雄鄉", "水上鄉"}},
	{Name: "屏東縣", Districts: []string{"屏東市", "潮州鎮", "東港鎮", "恆春鎮", "萬丹鄉", "內埔鄉"}},
	{Name: "宜蘭縣", Districts: []string{"宜蘭市", "羅東鎮", "蘇澳鎮", "頭城鎮", "礁溪鄉", "五結鄉"}},
	{Name: "花蓮縣", Districts: []string{"花蓮市", "鳳林鎮", "玉里鎮", "新城鄉", "吉安鄉", "壽豐鄉"}},
	{Name: "臺東縣", Districts: []string{"臺東市", "成功鎮", "關山鎮", "卑南鄉", "鹿野鄉", "太麻里鄉"}},
	{Name: "澎湖縣", Districts: []string{"馬公市", "湖西鄉", "白沙鄉", "西嶼鄉", "望安鄉", "七美鄉"}},
	{Name: "金門縣", Districts: []string{"金城鎮", "金湖鎮", "金沙鎮", "金寧鄉", "烈嶼鄉"}},
	{Name: "連江縣", Districts: []string{"南竿鄉", "北竿鄉", "莒光鄉", "東引鄉"}},
}
