package kernel

// Typed identifiers for the ordering domain. Each wraps a UUID so that an
// order identifier cannot be passed where a customer or product identifier
// is expected. Parsing from text fails on malformed input.

// OrderID uniquely identifies an Order aggregate.
type OrderID struct {
	id UUID
}

// NewOrderID generates a fresh random OrderID.
func NewOrderID() OrderID {
	return OrderID{id: NewUUID()}
}

// OrderIDFromString parses an OrderID from its canonical textual form.
func OrderIDFromString(s string) (OrderID, error) {
	id, err := UUIDFromString(s)
	if err != nil {
		return OrderID{}, err
	}
	return OrderID{id: id}, nil
}

// String returns the canonical textual form of the identifier.
func (o OrderID) String() string {
	return o.id.String()
}

// UUID returns the underlying UUID value.
func (o OrderID) UUID() UUID {
	return o.id
}

// IsEqual compares two order identifiers by value.
func (o OrderID) IsEqual(other OrderID) bool {
	return o.id.IsEqual(other.id)
}

// Validate returns an error for the zero value.
func (o OrderID) Validate() error {
	return o.id.Validate()
}

// CustomerID uniquely identifies the customer placing an order. Customers
// live in another bounded context; only the identifier crosses into this one.
type CustomerID struct {
	id UUID
}

// NewCustomerID generates a fresh random CustomerID.
func NewCustomerID() CustomerID {
	return CustomerID{id: NewUUID()}
}

// CustomerIDFromString parses a CustomerID from its canonical textual form.
func CustomerIDFromString(s string) (CustomerID, error) {
	id, err := UUIDFromString(s)
	if err != nil {
		return CustomerID{}, err
	}
	return CustomerID{id: id}, nil
}

// String returns the canonical textual form of the identifier.
func (c CustomerID) String() string {
	return c.id.String()
}

// UUID returns the underlying UUID value.
func (c CustomerID) UUID() UUID {
	return c.id
}

// IsEqual compares two customer identifiers by value.
func (c CustomerID) IsEqual(other CustomerID) bool {
	return c.id.IsEqual(other.id)
}

// Validate returns an error for the zero value.
func (c CustomerID) Validate() error {
	return c.id.Validate()
}

// ProductID uniquely identifies a product in the catalog.
type ProductID struct {
	id UUID
}

// NewProductID generates a fresh random ProductID.
func NewProductID() ProductID {
	return ProductID{id: NewUUID()}
}

// ProductIDFromString parses a ProductID from its canonical textual form.
func ProductIDFromString(s string) (ProductID, error) {
	id, err := UUIDFromString(s)
	if err != nil {
		return ProductID{}, err
	}
	return ProductID{id: id}, nil
}

// String returns the canonical textual form of the identifier.
func (p ProductID) String() string {
	return p.id.String()
}

// UUID returns the underlying UUID value.
func (p ProductID) UUID() UUID {
	return p.id
}

// IsEqual compares two product identifiers by value.
func (p ProductID) IsEqual(other ProductID) bool {
	return p.id.IsEqual(other.id)
}

// Validate returns an error for the zero value.
func (p ProductID) Validate() error {
	return p.id.Validate()
}
