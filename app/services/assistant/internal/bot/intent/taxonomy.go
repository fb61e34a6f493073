package intent

const (
	KeyGreeting = "Greeting"
	KeyUnknown  = "Unknown"

	// UnknownCode prefixes generated ids for categories missing a code.
	UnknownCode = "UNK"
)

// Entry binds a canonical category key to its id-prefix code and the
// synonyms matched against inbound text. Slice order is the tie-break
// order for equal scores, so entries must stay stable across releases.
type Entry struct {
	Key      string
	Code     string
	Synonyms []string
}

type Taxonomy []Entry

// CodeFor resolves the 3-letter id prefix for a category key.
func (t Taxonomy) CodeFor(key string) string {
	for _, e := range t {
		if e.Key == key {
			return e.Code
		}
	}
	return UnknownCode
}

// Billing is the employee-facing taxonomy used to file ledger entries.
var Billing = Taxonomy{
	{Key: "Operations", Code: "OPS", Synonyms: []string{
		"operation", "operations", "operational", "delay", "shift", "staff", "store issue", "counter", "ops",
	}},
	{Key: "Sales", Code: "SAL", Synonyms: []string{
		"sale", "sales", "sold", "invoice", "billing", "bill", "receipt", "discount", "refund",
	}},
	{Key: "Inventory", Code: "INV", Synonyms: []string{
		"inventory", "stock", "restock", "out of stock", "warehouse", "shortage",
	}},
	{Key: "Marketing", Code: "MKT", Synonyms: []string{
		"marketing", "campaign", "promotion", "promo", "social media", "advert", "advertising",
	}},
	{Key: "Logistics", Code: "LOG", Synonyms: []string{
		"logistics", "delivery", "courier", "shipment", "dispatch", "parcel", "rider",
	}},
	{Key: "Maintenance", Code: "MNT", Synonyms: []string{
		"maintenance", "repair", "broken", "electricity", "generator", "aircon", "ac not working",
	}},
}

// Products is the customer-facing taxonomy. Codes exist only so both
// taxonomies share one mechanism; the customer flow never generates ids.
var Products = Taxonomy{
	{Key: "Footwear", Code: "FTW", Synonyms: []string{
		"shoes", "shoe", "sneakers", "joggers", "sandals", "slippers", "loafers", "footwear", "heels",
	}},
	{Key: "Apparel", Code: "APP", Synonyms: []string{
		"shirt", "t-shirt", "tshirt", "polo", "jeans", "trousers", "kurta", "hoodie", "jacket", "sweater", "dress", "clothes", "clothing",
	}},
	{Key: "Accessories", Code: "ACC", Synonyms: []string{
		"watch", "wallet", "belt", "cap", "bag", "handbag", "sunglasses", "socks", "scarf", "accessories",
	}},
	{Key: "Fragrance", Code: "FRG", Synonyms: []string{
		"perfume", "fragrance", "scent", "attar", "body spray", "deodorant",
	}},
}

// Greetings short-circuits classification: equality or prefix followed by
// a space, after lowercasing and trimming.
var Greetings = []string{
	"hi", "hello", "hey", "salam", "salaam", "assalam o alaikum", "aoa",
	"good morning", "good afternoon", "good evening",
}

// ProductKeywords drives the orchestrator override: a hit routes the
// message through the catalog resolver instead of the model reply.
var ProductKeywords = []string{
	"shoes", "shoe", "sneakers", "joggers", "sandals", "slippers", "heels",
	"shirt", "t-shirt", "tshirt", "polo", "jeans", "trousers", "kurta",
	"hoodie", "jacket", "sweater", "dress", "abaya",
	"watch", "wallet", "belt", "cap", "bag", "handbag", "sunglasses", "socks",
	"perfume", "fragrance", "price", "catalog", "catalogue", "collection",
}
