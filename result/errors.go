package result

import "fmt"

// VariantError is the panic value raised by Unwrap and UnwrapErr when the
// Result holds the other variant. Payload is that variant's value, as
// stored, so no caller data is lost.
type VariantError struct {
	Called  string
	Held    Tag
	Payload any
}

// Error implements the error interface.
func (e *VariantError) Error() string {
	return fmt.Sprintf("called %s on %s: %v", e.Called, e.Held, e.Payload)
}

// Unwrap exposes the payload to errors.Is/As when it is itself an error.
func (e *VariantError) Unwrap() error {
	if err, ok := e.Payload.(error); ok {
		return err
	}
	return nil
}

// Recover extracts the payload of type P from a value returned by the
// built-in recover. It returns false if recovered is not a *VariantError or
// its payload is not a P.
//
//	defer func() {
//		p := recover()
//		if e, ok := result.Recover[string](p); ok {
//			log.Print(e)
//		} else if p != nil {
//			panic(p)
//		}
//	}()
func Recover[P any](recovered any) (P, bool) {
	var zero P
	ve, ok := recovered.(*VariantError)
	if !ok {
		return zero, false
	}
	p, ok := ve.Payload.(P)
	if !ok {
		return zero, false
	}
	return p, true
}
