package core

// UnknownLabel is the resolved label for transactions whose customer_id
// references no known customer. Unresolved references are a normal
// outcome, never an error.
const UnknownLabel = "Unknown"

// Directory resolves a transaction to its owning customer's name.
// The index is built once per Dataset; lookups are case-sensitive on the
// identifier key (identifiers are opaque keys, not search text).
type Directory struct {
	names map[ID]string
}

// NewDirectory builds the customer index for one snapshot. When the same
// ID appears twice the first occurrence wins, matching a first-match scan
// of the customer collection.
func NewDirectory(customers []Customer) *Directory {
	names := make(map[ID]string, len(customers))
	for _, c := range customers {
		if _, ok := names[c.ID]; !ok {
			names[c.ID] = c.Name
		}
	}
	return &Directory{names: names}
}

// Resolve returns the customer name for the transaction, or UnknownLabel
// when the reference does not resolve.
func (d *Directory) Resolve(t Transaction) string {
	if name, ok := d.names[t.CustomerID]; ok {
		return name
	}
	return UnknownLabel
}

// Len returns the number of indexed customers.
func (d *Directory) Len() int {
	return len(d.names)
}
