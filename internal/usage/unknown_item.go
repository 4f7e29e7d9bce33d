package usage

import "fmt"

// UnknownItem is returned when an order names an item not on the menu.
func UnknownItem(name string) *Error {
	return &Error{
		Kind:    ErrUnknownItem,
		Message: fmt.Sprintf("conch: '%s' is not on the menu. Try 'menu'.", name),
	}
}
