package shop

type Entity struct {
	ID int64
}

type Describable interface {
	Describe() string
}

type Customer struct {
	Entity
	Describable
	Name   string
	orders []Order
	Home   *Address
}

func (c *Customer) Describe() string {
	return c.Name
}

// Deprecated: use Describe instead.
func (c *Customer) Label() string {
	return c.Name
}

type Order struct {
	Total float64
	Items []string
}

func (o Order) Add(item string, qty int) (float64, error) {
	return o.Total, nil
}

type Address struct {
	Street string
	City   string
}

type Status int

const (
	StatusOpen Status = iota
	StatusClosed
)
