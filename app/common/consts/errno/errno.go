package errno

const (
	StatusOK = 10000
)

// request errors
const (
	InvalidPayload = 40000 + iota
	InvalidParam
)

// dependency errors
const (
	LedgerUnavailable = 50000 + iota
	CatalogReloadFailed
)
