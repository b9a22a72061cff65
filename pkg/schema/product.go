package schema

// ProductSnapshotSchemaV1 describes one product record inside the
// bundled offline catalog snapshot.
const ProductSnapshotSchemaV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "product_snapshot",
	"fields": [
		{"name": "id", "type": "string"},
		{"name": "name", "type": "string"},
		{"name": "brand", "type": "string"},
		{"name": "description", "type": "string", "default": ""},
		{"name": "sku", "type": "string", "default": ""},
		{"name": "status", "type": "string", "default": ""},
		{"name": "price", "type": "double"},
		{"name": "original_price", "type": "double", "default": 0},
		{"name": "discount", "type": "int", "default": 0},
		{"name": "in_stock", "type": "boolean", "default": true},
		{"name": "stock", "type": "int", "default": 0},
		{"name": "image", "type": "string", "default": ""},
		{"name": "images", "type": {"type": "array", "items": "string"}, "default": []},
		{"name": "rating", "type": "double", "default": 0},
		{"name": "review_count", "type": "int", "default": 0},
		{"name": "category", "type": "string", "default": ""},
		{"name": "product_type", "type": "string", "default": ""},
		{"name": "skin_type", "type": {"type": "array", "items": "string"}, "default": []},
		{"name": "hair_type", "type": {"type": "array", "items": "string"}, "default": []},
		{"name": "hair_concern", "type": {"type": "array", "items": "string"}, "default": []},
		{"name": "hair_texture", "type": {"type": "array", "items": "string"}, "default": []},
		{"name": "skin_concern", "type": {"type": "array", "items": "string"}, "default": []},
		{"name": "skin_tone", "type": {"type": "array", "items": "string"}, "default": []},
		{"name": "finish", "type": {"type": "array", "items": "string"}, "default": []},
		{"name": "fragrance_family", "type": "string", "default": ""},
		{"name": "concentration", "type": "string", "default": ""},
		{"name": "season", "type": {"type": "array", "items": "string"}, "default": []},
		{"name": "ingredients", "type": {"type": "array", "items": "string"}, "default": []},
		{"name": "benefits", "type": {"type": "array", "items": "string"}, "default": []},
		{"name": "flags", "type": {
			"type": "record",
			"name": "product_flags",
			"fields": [
				{"name": "is_new", "type": "boolean", "default": false},
				{"name": "is_sale", "type": "boolean", "default": false},
				{"name": "is_trending", "type": "boolean", "default": false},
				{"name": "cruelty_free", "type": "boolean", "default": false},
				{"name": "vegan", "type": "boolean", "default": false},
				{"name": "luxury", "type": "boolean", "default": false},
				{"name": "clean_beauty", "type": "boolean", "default": false},
				{"name": "dermatologist_recommended", "type": "boolean", "default": false},
				{"name": "salon_professional", "type": "boolean", "default": false},
				{"name": "sulfate_free", "type": "boolean", "default": false},
				{"name": "long_lasting", "type": "boolean", "default": false},
				{"name": "fragrance_free", "type": "boolean", "default": false}
			]
		}}
	]
}`

type (
	ProductSnapshotV1 struct {
		ID            string   `avro:"id" json:"_id"`
		Name          string   `avro:"name" json:"name"`
		Brand         string   `avro:"brand" json:"brand"`
		Description   string   `avro:"description" json:"description"`
		SKU           string   `avro:"sku" json:"sku"`
		Status        string   `avro:"status" json:"status"`
		Price         float64  `avro:"price" json:"price"`
		OriginalPrice float64  `avro:"original_price" json:"originalPrice"`
		Discount      int      `avro:"discount" json:"discount"`
		InStock       bool     `avro:"in_stock" json:"inStock"`
		Stock         int      `avro:"stock" json:"stock"`
		Image         string   `avro:"image" json:"image"`
		Images        []string `avro:"images" json:"images"`
		Rating        float64  `avro:"rating" json:"rating"`
		ReviewCount   int      `avro:"review_count" json:"reviewCount"`

		Category        string   `avro:"category" json:"category"`
		ProductType     string   `avro:"product_type" json:"productType"`
		SkinType        []string `avro:"skin_type" json:"skinType"`
		HairType        []string `avro:"hair_type" json:"hairType"`
		HairConcern     []string `avro:"hair_concern" json:"hairConcern"`
		HairTexture     []string `avro:"hair_texture" json:"hairTexture"`
		SkinConcern     []string `avro:"skin_concern" json:"skinConcern"`
		SkinTone        []string `avro:"skin_tone" json:"skinTone"`
		Finish          []string `avro:"finish" json:"finish"`
		FragranceFamily string   `avro:"fragrance_family" json:"fragranceFamily"`
		Concentration   string   `avro:"concentration" json:"concentration"`
		Season          []string `avro:"season" json:"season"`
		Ingredients     []string `avro:"ingredients" json:"ingredients"`
		Benefits        []string `avro:"benefits" json:"benefits"`

		Flags ProductFlagsV1 `avro:"flags" json:"flags"`
	}

	ProductFlagsV1 struct {
		IsNew                    bool `avro:"is_new" json:"isNew"`
		IsSale                   bool `avro:"is_sale" json:"isSale"`
		IsTrending               bool `avro:"is_trending" json:"isTrending"`
		CrueltyFree              bool `avro:"cruelty_free" json:"crueltyFree"`
		Vegan                    bool `avro:"vegan" json:"vegan"`
		Luxury                   bool `avro:"luxury" json:"luxury"`
		CleanBeauty              bool `avro:"clean_beauty" json:"cleanBeauty"`
		DermatologistRecommended bool `avro:"dermatologist_recommended" json:"dermatologistRecommended"`
		SalonProfessional        bool `avro:"salon_professional" json:"salonProfessional"`
		SulfateFree              bool `avro:"sulfate_free" json:"sulfateFree"`
		LongLasting              bool `avro:"long_lasting" json:"longLasting"`
		FragranceFree            bool `avro:"fragrance_free" json:"fragranceFree"`
	}
)
