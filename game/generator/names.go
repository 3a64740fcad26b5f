package generator

// Name pools for generated catalog data. Generation cycles through each pool
// with a numbered suffix once it runs dry, so any catalog size works.

var cityNames = []string{
	"Arlington", "Berwick", "Coalport", "Dunmore", "Eastvale",
	"Foxbridge", "Granthill", "Harwick", "Ironton", "Junction City",
	"Kestrel Falls", "Longford", "Millhaven", "Northgate", "Oakmoor",
	"Pinewatch", "Quarry Bend", "Redcliff", "Silverford", "Tamworth",
}

var opponentNames = []string{
	"Aldous Whitmore", "Beatrice Crane", "Cornelius Vail",
	"Dorothea Ashford", "Edmund Blackwell", "Florence Hale",
}

type resourceSpec struct {
	name       string
	value      int
	minValue   int
	maxValue   int
	volatility int
}

var resourceSpecs = []resourceSpec{
	{"Grain", 10, 5, 20, 2},
	{"Coal", 18, 10, 30, 3},
	{"Timber", 8, 4, 16, 2},
	{"Iron", 25, 15, 45, 4},
	{"Textiles", 14, 8, 24, 2},
	{"Livestock", 12, 6, 22, 3},
	{"Machinery", 40, 25, 70, 5},
	{"Mail", 6, 4, 10, 1},
}

type trainSpec struct {
	name       string
	cost       int
	upkeep     int
	speed      int
	cargoSpace int
}

var trainSpecs = []trainSpec{
	{"Ironhorse", 100, 2, 1, 10},
	{"Prairie Runner", 180, 3, 2, 14},
	{"Comet", 300, 5, 3, 8},
	{"Atlas", 450, 6, 2, 24},
	{"Sovereign", 700, 9, 4, 20},
}
