package filters

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Pagination is a plain offset/limit window. Rows inserted or deleted between two
// page requests can shift the window, so a client may see a row twice or miss one.
type Pagination struct {
	Skip  int `schema:"skip" json:"skip" validate:"gte=0"`
	Limit int `schema:"limit" json:"limit" validate:"gte=1,lte=100"`
}

func NewPagination() Pagination {
	return Pagination{Skip: 0, Limit: DefaultLimit}
}

func (p Pagination) Offset() int {
	return p.Skip
}
