package numeric

import "database/sql/driver"

// NullDecimal represents a decimal that can be null.
// Its zero value is null.
// NullDecimal implements the [sql.Scanner] and [driver.Valuer] interfaces,
// so it can be used as a scan destination and as a query argument.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
type NullDecimal struct {
	Decimal Decimal
	Valid   bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Decimal.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullDecimal) Scan(value any) error {
	if value == nil {
		n.Decimal = Decimal{}
		n.Valid = false
		return nil
	}
	err := n.Decimal.Scan(value)
	n.Valid = err == nil
	return err
}

// Value implements the [driver.Valuer] interface.
// See also method [Decimal.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullDecimal) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Decimal.Value()
}
