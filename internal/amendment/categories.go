package amendment

import "slices"

// Category is a registry subject classification.
type Category struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// categories lists the registry category codes in code order.
var categories = []Category{
	{Code: "001", Name: "憲法"},
	{Code: "002", Name: "刑事"},
	{Code: "003", Name: "財務通則"},
	{Code: "004", Name: "水産業"},
	{Code: "005", Name: "観光"},
	{Code: "006", Name: "国会"},
	{Code: "007", Name: "警察"},
	{Code: "008", Name: "国有財産"},
	{Code: "009", Name: "鉱業"},
	{Code: "010", Name: "郵務"},
	{Code: "011", Name: "行政組織"},
	{Code: "012", Name: "消防"},
	{Code: "013", Name: "国税"},
	{Code: "014", Name: "工業"},
	{Code: "015", Name: "電気通信"},
	{Code: "016", Name: "国家公務員"},
	{Code: "017", Name: "国土開発"},
	{Code: "018", Name: "事業"},
	{Code: "019", Name: "商業"},
	{Code: "020", Name: "労働"},
	{Code: "021", Name: "行政手続"},
	{Code: "022", Name: "土地"},
	{Code: "023", Name: "国債"},
	{Code: "024", Name: "金融・保険"},
	{Code: "025", Name: "環境保全"},
	{Code: "026", Name: "統計"},
	{Code: "027", Name: "都市計画"},
	{Code: "028", Name: "教育"},
	{Code: "029", Name: "外国為替・貿易"},
	{Code: "030", Name: "厚生"},
	{Code: "031", Name: "地方自治"},
	{Code: "032", Name: "道路"},
	{Code: "033", Name: "文化"},
	{Code: "034", Name: "陸運"},
	{Code: "035", Name: "社会福祉"},
	{Code: "036", Name: "地方財政"},
	{Code: "037", Name: "河川"},
	{Code: "038", Name: "産業通則"},
	{Code: "039", Name: "海運"},
	{Code: "040", Name: "社会保険"},
	{Code: "041", Name: "司法"},
	{Code: "042", Name: "災害対策"},
	{Code: "043", Name: "農業"},
	{Code: "044", Name: "航空"},
	{Code: "045", Name: "防衛"},
	{Code: "046", Name: "民事"},
	{Code: "047", Name: "建築・住宅"},
	{Code: "048", Name: "林業"},
	{Code: "049", Name: "貨物運送"},
	{Code: "050", Name: "外事"},
}

// Categories returns a copy of the category catalogue.
func Categories() []Category {
	return slices.Clone(categories)
}

// IsCategoryCode reports whether code is a known category code.
func IsCategoryCode(code string) bool {
	return slices.ContainsFunc(categories, func(c Category) bool {
		return c.Code == code
	})
}
