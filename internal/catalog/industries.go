package catalog

// defaultIndustries is the fixed industry selector list, following the
// national standard industry classification's major divisions.
var defaultIndustries = []string{
	"農、林、漁、牧業",
	"礦業及土石採取業",
	"製造業",
	"電力及燃氣供應業",
	"用水供應及污染整治業",
	"營建工程業",
	"批發及零售業",
	"運輸及倉儲業",
	"住宿及餐飲業",
	"出版影音及資通訊業",
	"金融及保險業",
	"不動產業",
	"專業、科學及技術服務業",
	"支援服務業",
	"公共行政及國防",
	"教育業",
	"醫療保健及社會工作服務業",
	"藝術、娛樂及休閒服務業",
	"其他服務業",
}
